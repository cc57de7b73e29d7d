package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const UPDATES_COLLECTION = "course_updates"

var updateModel *UpdateModel

type CourseUpdate struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Course  primitive.ObjectID `json:"course" bson:"course"`
	Content string             `json:"content" bson:"content"`
	Date    time.Time          `json:"date" bson:"date"`
	Deleted bool               `json:"deleted" bson:"deleted"`
	V       int32              `json:"__v" bson:"__v"`
}

type UpdateModel struct {
	CollectionName string
}

func (update *UpdateModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(update.CollectionName)
}

func (update *UpdateModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return update.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (update *UpdateModel) GetOne(filter bson.D) *mongo.SingleResult {
	return update.Use().FindOne(db.Ctx, filter)
}

func (update *UpdateModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return update.Use().Find(db.Ctx, filter, options)
}

func (update *UpdateModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return update.Use().Aggregate(db.Ctx, pipeline)
}

func (update *UpdateModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return update.Use().InsertOne(db.Ctx, data)
}

func NewUpdateModel() Collection {
	if updateModel == nil {
		updateModel = &UpdateModel{
			CollectionName: UPDATES_COLLECTION,
		}
	}
	return updateModel
}
