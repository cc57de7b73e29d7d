package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CERTIFICATES_COLLECTION = "generated_certificates"

// Certificate modes
const (
	MODE_HONOR        = "honor"
	MODE_VERIFIED     = "verified"
	MODE_PROFESSIONAL = "professional"
	MODE_NO_ID_PROF   = "no-id-professional"
)

// Certificate statuses
const (
	CERT_DOWNLOADABLE = "downloadable"
	CERT_GENERATING   = "generating"
	CERT_UNAVAILABLE  = "unavailable"
	CERT_REVOKED      = "revoked"
)

// VerifiedCertModes are the modes pushed to the credentials service.
var VerifiedCertModes = []string{MODE_VERIFIED, MODE_PROFESSIONAL, MODE_NO_ID_PROF}

// EligibleCertStatuses are statuses considered awarded or about to be.
var EligibleCertStatuses = []string{CERT_DOWNLOADABLE, CERT_GENERATING}

var certificateModel *CertificateModel

type GeneratedCertificate struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CourseKey string             `json:"course_key" bson:"course_key" example:"course-v1:OpenCampus+CS101+2023"`
	Mode      string             `json:"mode" bson:"mode" example:"verified"`
	Status    string             `json:"status" bson:"status" example:"downloadable"`
	Grade     string             `json:"grade,omitempty" bson:"grade,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	V         int32              `json:"__v" bson:"__v"`
}

// IsValid reports whether the certificate still stands (not revoked).
func (certificate *GeneratedCertificate) IsValid() bool {
	return certificate.Status == CERT_DOWNLOADABLE || certificate.Status == CERT_GENERATING
}

func (certificate *GeneratedCertificate) IsVerifiedMode() bool {
	for _, mode := range VerifiedCertModes {
		if certificate.Mode == mode {
			return true
		}
	}
	return false
}

type CertificateModel struct {
	CollectionName string
}

func (certificate *CertificateModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(certificate.CollectionName)
}

func (certificate *CertificateModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return certificate.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (certificate *CertificateModel) GetOne(filter bson.D) *mongo.SingleResult {
	return certificate.Use().FindOne(db.Ctx, filter)
}

func (certificate *CertificateModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return certificate.Use().Find(db.Ctx, filter, options)
}

func (certificate *CertificateModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return certificate.Use().Aggregate(db.Ctx, pipeline)
}

func (certificate *CertificateModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return certificate.Use().InsertOne(db.Ctx, data)
}

func NewCertificateModel() Collection {
	if certificateModel == nil {
		certificateModel = &CertificateModel{
			CollectionName: CERTIFICATES_COLLECTION,
		}
	}
	return certificateModel
}
