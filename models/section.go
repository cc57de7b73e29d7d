package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const SECTIONS_COLLECTION = "sections"

var sectionModel *SectionModel

type Section struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Course             primitive.ObjectID `json:"course" bson:"course"`
	Name               string             `json:"name" bson:"name" example:"Semana 1"`
	VisibleToStaffOnly bool               `json:"visible_to_staff_only" bson:"visible_to_staff_only"`
	HideFromToc        bool               `json:"hide_from_toc" bson:"hide_from_toc"`
	Highlights         []string           `json:"highlights" bson:"highlights"`
	V                  int32              `json:"__v" bson:"__v"`
}

// Visible reports whether learners can reach the section at all.
func (section *Section) Visible() bool {
	return !section.VisibleToStaffOnly && !section.HideFromToc
}

type SectionModel struct {
	CollectionName string
}

func (section *SectionModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(section.CollectionName)
}

func (section *SectionModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return section.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (section *SectionModel) GetOne(filter bson.D) *mongo.SingleResult {
	return section.Use().FindOne(db.Ctx, filter)
}

func (section *SectionModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return section.Use().Find(db.Ctx, filter, options)
}

func (section *SectionModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return section.Use().Aggregate(db.Ctx, pipeline)
}

func (section *SectionModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return section.Use().InsertOne(db.Ctx, data)
}

func NewSectionModel() Collection {
	if sectionModel == nil {
		sectionModel = &SectionModel{
			CollectionName: SECTIONS_COLLECTION,
		}
	}
	return sectionModel
}
