package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USERS_COLLECTION = "users"

// User types
const (
	STAFF      = "staff"
	INSTRUCTOR = "instructor"
	STUDENT    = "student"
)

var userModel *UserModel

type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Username string             `json:"username" bson:"username" example:"jperez"`
	Email    string             `json:"email" bson:"email" example:"jperez@example.com"`
	Name     string             `json:"name" bson:"name" example:"Juan Pérez"`
	UserType string             `json:"user_type" bson:"user_type" example:"student"`
	IsStaff  bool               `json:"is_staff" bson:"is_staff"`
	V        int32              `json:"__v" bson:"__v"`
}

type SimpleUser struct {
	ID       string `json:"_id,omitempty" example:"63785424db1efbc237faecca"`
	Username string `json:"username,omitempty" bson:"username" extensions:"x-omitempty"`
	Name     string `json:"name,omitempty" bson:"name" extensions:"x-omitempty"`
}

type UserModel struct {
	CollectionName string
}

func (user *UserModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(user.CollectionName)
}

func (user *UserModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return user.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (user *UserModel) GetOne(filter bson.D) *mongo.SingleResult {
	return user.Use().FindOne(db.Ctx, filter)
}

func (user *UserModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return user.Use().Find(db.Ctx, filter, options)
}

func (user *UserModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return user.Use().Aggregate(db.Ctx, pipeline)
}

func (user *UserModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return user.Use().InsertOne(db.Ctx, data)
}

func NewUserModel() Collection {
	if userModel == nil {
		userModel = &UserModel{
			CollectionName: USERS_COLLECTION,
		}
	}
	return userModel
}
