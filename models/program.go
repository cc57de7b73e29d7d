package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PROGRAMS_COLLECTION = "programs"

var programModel *ProgramModel

type Program struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	UUID       string             `json:"uuid" bson:"uuid" example:"1918b738-979f-42cb-bde0-13335366fa86"`
	Name       string             `json:"name" bson:"name" example:"Ciencia de Datos"`
	Status     string             `json:"status" bson:"status" example:"active"`
	CourseKeys []string           `json:"course_keys" bson:"course_keys"`
	V          int32              `json:"__v" bson:"__v"`
}

type ProgramModel struct {
	CollectionName string
}

func (program *ProgramModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(program.CollectionName)
}

func (program *ProgramModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return program.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (program *ProgramModel) GetOne(filter bson.D) *mongo.SingleResult {
	return program.Use().FindOne(db.Ctx, filter)
}

func (program *ProgramModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return program.Use().Find(db.Ctx, filter, options)
}

func (program *ProgramModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return program.Use().Aggregate(db.Ctx, pipeline)
}

func (program *ProgramModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return program.Use().InsertOne(db.Ctx, data)
}

func NewProgramModel() Collection {
	if programModel == nil {
		programModel = &ProgramModel{
			CollectionName: PROGRAMS_COLLECTION,
		}
	}
	return programModel
}
