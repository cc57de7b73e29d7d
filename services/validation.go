package services

import (
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"github.com/OpenCampus/Campus_BContentstore/forms"
	"github.com/OpenCampus/Campus_BContentstore/funct"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validationService *ValidationService

type ValidationService struct{}

type DatesValidation struct {
	HasStartDate bool `json:"has_start_date"`
	HasEndDate   bool `json:"has_end_date"`
}

type AssignmentsValidation struct {
	TotalNumber             int `json:"total_number"`
	TotalVisible            int `json:"total_visible"`
	NumWithDatesBeforeStart int `json:"assignments_with_dates_before_start"`
	NumWithDatesAfterEnd    int `json:"assignments_with_dates_after_end"`
}

type GradesValidation struct {
	HasGradingPolicy bool    `json:"has_grading_policy"`
	SumOfWeights     float64 `json:"sum_of_weights"`
}

type CertificatesValidation struct {
	IsActivated    bool `json:"is_activated"`
	HasCertificate bool `json:"has_certificate"`
	IsEnabled      bool `json:"is_enabled"`
}

type UpdatesValidation struct {
	HasUpdate bool `json:"has_update"`
}

func (v *ValidationService) datesValidation(course *models.Course) DatesValidation {
	return DatesValidation{
		HasStartDate: course.HasStartDate(),
		HasEndDate:   course.End != nil,
	}
}

func (v *ValidationService) assignmentsValidation(
	course *models.Course,
	assignments []models.Subsection,
) AssignmentsValidation {
	visibleAssignments := funct.Filter(assignments, func(assignment models.Subsection) bool {
		return assignment.Visible()
	})
	beforeStart := funct.Count(visibleAssignments, func(assignment models.Subsection) bool {
		return assignment.Due != nil && assignment.Due.Before(course.Start)
	})
	afterEnd := funct.Count(visibleAssignments, func(assignment models.Subsection) bool {
		return assignment.Due != nil && course.End != nil && assignment.Due.After(*course.End)
	})
	return AssignmentsValidation{
		TotalNumber:             len(assignments),
		TotalVisible:            len(visibleAssignments),
		NumWithDatesBeforeStart: beforeStart,
		NumWithDatesAfterEnd:    afterEnd,
	}
}

func (v *ValidationService) gradesValidation(course *models.Course) GradesValidation {
	return GradesValidation{
		HasGradingPolicy: course.HasGradingPolicy(),
		SumOfWeights:     course.SumOfWeights(),
	}
}

func (v *ValidationService) certificatesValidation(course *models.Course) CertificatesValidation {
	return CertificatesValidation{
		IsActivated:    course.CertificatesActive,
		HasCertificate: course.HasCertificate(),
		IsEnabled:      course.CertHTMLViewEnabled,
	}
}

func (v *ValidationService) getAssignments(idObjCourse primitive.ObjectID) ([]models.Subsection, error) {
	var assignments []models.Subsection
	cursor, err := subsectionModel.GetAll(bson.D{
		{
			Key:   "course",
			Value: idObjCourse,
		},
		{
			Key:   "graded",
			Value: true,
		},
	}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (v *ValidationService) hasUpdate(idObjCourse primitive.ObjectID) (bool, error) {
	var updates []models.CourseUpdate
	cursor, err := updateModel.GetAll(bson.D{
		{
			Key:   "course",
			Value: idObjCourse,
		},
		{
			Key:   "deleted",
			Value: false,
		},
	}, options.Find().SetLimit(1))
	if err != nil {
		return false, err
	}
	if err := cursor.All(db.Ctx, &updates); err != nil {
		return false, err
	}
	return len(updates) > 0, nil
}

// GetCourseValidation assembles the requested validation blocks.
func (v *ValidationService) GetCourseValidation(
	idCourse string,
	query *forms.ValidationQuery,
) (map[string]interface{}, *res.ErrorRes) {
	course, errRes := GetCourseFromID(idCourse)
	if errRes != nil {
		return nil, errRes
	}

	response := make(map[string]interface{})
	if query.WantsDates() {
		response["dates"] = v.datesValidation(course)
	}
	if query.WantsAssignments() {
		assignments, err := v.getAssignments(course.ID)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		response["assignments"] = v.assignmentsValidation(course, assignments)
	}
	if query.WantsGrades() {
		response["grades"] = v.gradesValidation(course)
	}
	if query.WantsCertificates() {
		response["certificates"] = v.certificatesValidation(course)
	}
	if query.WantsUpdates() {
		hasUpdate, err := v.hasUpdate(course.ID)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		response["updates"] = UpdatesValidation{
			HasUpdate: hasUpdate,
		}
	}
	return response, nil
}

func NewValidationService() *ValidationService {
	if validationService == nil {
		validationService = &ValidationService{}
	}
	return validationService
}
