package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ASSETS_COLLECTION = "course_assets"

var assetModel *AssetModel

type Asset struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Course      primitive.ObjectID `json:"course" bson:"course"`
	DisplayName string             `json:"display_name" bson:"display_name" example:"syllabus.pdf"`
	ContentType string             `json:"content_type" bson:"content_type" example:"application/pdf"`
	// Object key inside the course bucket
	Key       string    `json:"key" bson:"key"`
	Size      int64     `json:"size" bson:"size"`
	Locked    bool      `json:"locked" bson:"locked"`
	DateAdded time.Time `json:"date_added" bson:"date_added"`
	V         int32     `json:"__v" bson:"__v"`
}

type AssetModel struct {
	CollectionName string
}

func (asset *AssetModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(asset.CollectionName)
}

func (asset *AssetModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return asset.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (asset *AssetModel) GetOne(filter bson.D) *mongo.SingleResult {
	return asset.Use().FindOne(db.Ctx, filter)
}

func (asset *AssetModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return asset.Use().Find(db.Ctx, filter, options)
}

func (asset *AssetModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return asset.Use().Aggregate(db.Ctx, pipeline)
}

func (asset *AssetModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return asset.Use().InsertOne(db.Ctx, data)
}

func NewAssetModel() Collection {
	if assetModel == nil {
		assetModel = &AssetModel{
			CollectionName: ASSETS_COLLECTION,
		}
	}
	return assetModel
}
