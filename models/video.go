package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const VIDEOS_COLLECTION = "videos"

// Encoding profiles
const (
	PROFILE_MOBILE_LOW  = "mobile_low"
	PROFILE_MOBILE_HIGH = "mobile_high"
	PROFILE_DESKTOP     = "desktop_mp4"
)

var videoModel *VideoModel

type Encoding struct {
	Profile string `json:"profile" bson:"profile" example:"mobile_low"`
	URL     string `json:"url" bson:"url"`
}

type Video struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Course    primitive.ObjectID `json:"course" bson:"course"`
	Unit      primitive.ObjectID `json:"unit" bson:"unit"`
	Name      string             `json:"name" bson:"name"`
	ValID     string             `json:"val_id,omitempty" bson:"val_id,omitempty"`
	Duration  float64            `json:"duration" bson:"duration" example:"183.5"` // Seconds
	Encodings []Encoding         `json:"encodings" bson:"encodings"`
	V         int32              `json:"__v" bson:"__v"`
}

// MobileEncoded reports whether some encoding targets a mobile profile.
func (video *Video) MobileEncoded() bool {
	for _, encoding := range video.Encodings {
		if encoding.Profile == PROFILE_MOBILE_LOW || encoding.Profile == PROFILE_MOBILE_HIGH {
			return true
		}
	}
	return false
}

type VideoModel struct {
	CollectionName string
}

func (video *VideoModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(video.CollectionName)
}

func (video *VideoModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return video.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (video *VideoModel) GetOne(filter bson.D) *mongo.SingleResult {
	return video.Use().FindOne(db.Ctx, filter)
}

func (video *VideoModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return video.Use().Find(db.Ctx, filter, options)
}

func (video *VideoModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return video.Use().Aggregate(db.Ctx, pipeline)
}

func (video *VideoModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return video.Use().InsertOne(db.Ctx, data)
}

func NewVideoModel() Collection {
	if videoModel == nil {
		videoModel = &VideoModel{
			CollectionName: VIDEOS_COLLECTION,
		}
	}
	return videoModel
}
