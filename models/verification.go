package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const VERIFICATIONS_COLLECTION = "manual_verifications"

// Verification statuses
const (
	VERIFICATION_APPROVED = "approved"
	VERIFICATION_DENIED   = "denied"
)

var verificationModel *VerificationModel

type ManualVerification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	ReceiptID string             `json:"receipt_id" bson:"receipt_id" example:"1918b738-979f-42cb-bde0-13335366fa86"`
	Status    string             `json:"status" bson:"status" example:"approved"`
	Name      string             `json:"name" bson:"name" example:"Juan Pérez"`
	Reason    string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	V         int32              `json:"__v" bson:"__v"`
}

type VerificationModel struct {
	CollectionName string
}

func (verification *VerificationModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(verification.CollectionName)
}

func (verification *VerificationModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return verification.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (verification *VerificationModel) GetOne(filter bson.D) *mongo.SingleResult {
	return verification.Use().FindOne(db.Ctx, filter)
}

func (verification *VerificationModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return verification.Use().Find(db.Ctx, filter, options)
}

func (verification *VerificationModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return verification.Use().Aggregate(db.Ctx, pipeline)
}

func (verification *VerificationModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return verification.Use().InsertOne(db.Ctx, data)
}

func NewVerificationModel() Collection {
	if verificationModel == nil {
		verificationModel = &VerificationModel{
			CollectionName: VERIFICATIONS_COLLECTION,
		}
	}
	return verificationModel
}
