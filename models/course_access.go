package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COURSE_ACCESS_COLLECTION = "course_access_roles"

// Course access roles
const (
	ROLE_COURSE_STAFF      = "staff"
	ROLE_COURSE_INSTRUCTOR = "instructor"
)

var courseAccessModel *CourseAccessModel

type CourseAccessRole struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User   primitive.ObjectID `json:"user" bson:"user"`
	Course primitive.ObjectID `json:"course" bson:"course"`
	Role   string             `json:"role" bson:"role" example:"instructor"`
	V      int32              `json:"__v" bson:"__v"`
}

type CourseAccessModel struct {
	CollectionName string
}

func (access *CourseAccessModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(access.CollectionName)
}

func (access *CourseAccessModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return access.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (access *CourseAccessModel) GetOne(filter bson.D) *mongo.SingleResult {
	return access.Use().FindOne(db.Ctx, filter)
}

func (access *CourseAccessModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return access.Use().Find(db.Ctx, filter, options)
}

func (access *CourseAccessModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return access.Use().Aggregate(db.Ctx, pipeline)
}

func (access *CourseAccessModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return access.Use().InsertOne(db.Ctx, data)
}

func NewCourseAccessModel() Collection {
	if courseAccessModel == nil {
		courseAccessModel = &CourseAccessModel{
			CollectionName: COURSE_ACCESS_COLLECTION,
		}
	}
	return courseAccessModel
}
