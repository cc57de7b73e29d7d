package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const SUBSECTIONS_COLLECTION = "subsections"

var subsectionModel *SubsectionModel

type Subsection struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Section            primitive.ObjectID `json:"section" bson:"section"`
	Course             primitive.ObjectID `json:"course" bson:"course"`
	Name               string             `json:"name" bson:"name" example:"Tarea 1"`
	Graded             bool               `json:"graded" bson:"graded"`
	AssignmentType     string             `json:"assignment_type,omitempty" bson:"assignment_type,omitempty" example:"Homework"`
	Due                *time.Time         `json:"due,omitempty" bson:"due,omitempty"`
	VisibleToStaffOnly bool               `json:"visible_to_staff_only" bson:"visible_to_staff_only"`
	V                  int32              `json:"__v" bson:"__v"`
}

func (subsection *Subsection) Visible() bool {
	return !subsection.VisibleToStaffOnly
}

type SubsectionModel struct {
	CollectionName string
}

func (subsection *SubsectionModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(subsection.CollectionName)
}

func (subsection *SubsectionModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return subsection.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (subsection *SubsectionModel) GetOne(filter bson.D) *mongo.SingleResult {
	return subsection.Use().FindOne(db.Ctx, filter)
}

func (subsection *SubsectionModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return subsection.Use().Find(db.Ctx, filter, options)
}

func (subsection *SubsectionModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return subsection.Use().Aggregate(db.Ctx, pipeline)
}

func (subsection *SubsectionModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return subsection.Use().InsertOne(db.Ctx, data)
}

func NewSubsectionModel() Collection {
	if subsectionModel == nil {
		subsectionModel = &SubsectionModel{
			CollectionName: SUBSECTIONS_COLLECTION,
		}
	}
	return subsectionModel
}
