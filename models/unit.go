package models

import (
	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const UNITS_COLLECTION = "units"

var unitModel *UnitModel

// Block types
const (
	BLOCK_VIDEO    = "video"
	BLOCK_HTML     = "html"
	BLOCK_PROBLEM  = "problem"
	BLOCK_DISCUSS  = "discussion"
	BLOCK_OPEN_RES = "openassessment"
)

type Block struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Type string             `json:"type" bson:"type" example:"video"`
	Name string             `json:"name" bson:"name"`
}

type Unit struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Subsection         primitive.ObjectID `json:"subsection" bson:"subsection"`
	Course             primitive.ObjectID `json:"course" bson:"course"`
	Name               string             `json:"name" bson:"name"`
	VisibleToStaffOnly bool               `json:"visible_to_staff_only" bson:"visible_to_staff_only"`
	Blocks             []Block            `json:"blocks" bson:"blocks"`
	V                  int32              `json:"__v" bson:"__v"`
}

func (unit *Unit) Visible() bool {
	return !unit.VisibleToStaffOnly
}

// BlockTypes returns the distinct block types inside the unit.
func (unit *Unit) BlockTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, block := range unit.Blocks {
		if !seen[block.Type] {
			seen[block.Type] = true
			types = append(types, block.Type)
		}
	}
	return types
}

type UnitModel struct {
	CollectionName string
}

func (unit *UnitModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(unit.CollectionName)
}

func (unit *UnitModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return unit.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (unit *UnitModel) GetOne(filter bson.D) *mongo.SingleResult {
	return unit.Use().FindOne(db.Ctx, filter)
}

func (unit *UnitModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return unit.Use().Find(db.Ctx, filter, options)
}

func (unit *UnitModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return unit.Use().Aggregate(db.Ctx, pipeline)
}

func (unit *UnitModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return unit.Use().InsertOne(db.Ctx, data)
}

func NewUnitModel() Collection {
	if unitModel == nil {
		unitModel = &UnitModel{
			CollectionName: UNITS_COLLECTION,
		}
	}
	return unitModel
}
