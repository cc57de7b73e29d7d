package models

import (
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COURSES_COLLECTION = "courses"

var courseModel *CourseModel

type Grader struct {
	Type      string  `json:"type" bson:"type" example:"Homework"`
	Weight    float64 `json:"weight" bson:"weight" example:"0.15"`
	MinCount  int     `json:"min_count" bson:"min_count"`
	DropCount int     `json:"drop_count" bson:"drop_count"`
}

type CourseCertificate struct {
	Name     string `json:"name" bson:"name"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type Course struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Key       string             `json:"key" bson:"key" example:"course-v1:OpenCampus+CS101+2023"`
	Name      string             `json:"name" bson:"name" example:"Introducción a la Computación"`
	Org       string             `json:"org" bson:"org" example:"OpenCampus"`
	SelfPaced bool               `json:"self_paced" bson:"self_paced"`
	// Zero time means the platform default placeholder start
	Start time.Time  `json:"start" bson:"start"`
	End   *time.Time `json:"end,omitempty" bson:"end,omitempty"`
	// Highlights for messaging
	HighlightsEnabled bool `json:"highlights_enabled" bson:"highlights_enabled"`
	// Grading policy
	Graders []Grader `json:"graders" bson:"graders"`
	// Certificates
	CertHTMLViewEnabled  bool                `json:"cert_html_view_enabled" bson:"cert_html_view_enabled"`
	Certificates         []CourseCertificate `json:"certificates" bson:"certificates"`
	CertificatesActive   bool                `json:"certificates_active" bson:"certificates_active"`
	CertificateAvailable *time.Time          `json:"certificate_available,omitempty" bson:"certificate_available,omitempty"`
	V                    int32               `json:"__v" bson:"__v"`
}

// HasStartDate reports whether the author replaced the default placeholder start.
func (course *Course) HasStartDate() bool {
	return !course.Start.IsZero()
}

func (course *Course) HasGradingPolicy() bool {
	return len(course.Graders) > 0
}

func (course *Course) SumOfWeights() float64 {
	var sum float64
	for _, grader := range course.Graders {
		sum += grader.Weight
	}
	return sum
}

func (course *Course) HasCertificate() bool {
	for _, certificate := range course.Certificates {
		if certificate.IsActive {
			return true
		}
	}
	return false
}

// CertificatesViewable reports whether certificates may be shown to learners,
// either per-course HTML view or after the availability date.
func (course *Course) CertificatesViewable(now time.Time) bool {
	if course.CertHTMLViewEnabled {
		return true
	}
	if course.CertificateAvailable != nil {
		return now.After(*course.CertificateAvailable)
	}
	if course.End != nil {
		return now.After(*course.End)
	}
	return course.SelfPaced
}

type CourseModel struct {
	CollectionName string
}

func (course *CourseModel) Use() *mongo.Collection {
	return db.DbConnect.GetCollection(course.CollectionName)
}

func (course *CourseModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	return course.Use().FindOne(db.Ctx, bson.D{{
		Key:   "_id",
		Value: id,
	}})
}

func (course *CourseModel) GetOne(filter bson.D) *mongo.SingleResult {
	return course.Use().FindOne(db.Ctx, filter)
}

func (course *CourseModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	return course.Use().Find(db.Ctx, filter, options)
}

func (course *CourseModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return course.Use().Aggregate(db.Ctx, pipeline)
}

func (course *CourseModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	return course.Use().InsertOne(db.Ctx, data)
}

func NewCourseModel() Collection {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSES_COLLECTION,
		}
	}
	return courseModel
}
