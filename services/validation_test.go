package services

import (
	"testing"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/stretchr/testify/assert"
)

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestDatesValidation(t *testing.T) {
	service := NewValidationService()

	validation := service.datesValidation(&models.Course{})
	assert.False(t, validation.HasStartDate)
	assert.False(t, validation.HasEndDate)

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	validation = service.datesValidation(&models.Course{
		Start: start,
		End:   timePtr(start.AddDate(0, 4, 0)),
	})
	assert.True(t, validation.HasStartDate)
	assert.True(t, validation.HasEndDate)
}

func TestAssignmentsValidation(t *testing.T) {
	service := NewValidationService()
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 4, 0)
	course := &models.Course{Start: start, End: &end}

	assignments := []models.Subsection{
		{Graded: true, Due: timePtr(start.AddDate(0, 0, -1))},
		{Graded: true, Due: timePtr(end.AddDate(0, 0, 1))},
		{Graded: true, Due: timePtr(start.AddDate(0, 1, 0))},
		{Graded: true, VisibleToStaffOnly: true, Due: timePtr(start.AddDate(0, 0, -5))},
	}

	validation := service.assignmentsValidation(course, assignments)
	assert.Equal(t, 4, validation.TotalNumber)
	assert.Equal(t, 3, validation.TotalVisible)
	assert.Equal(t, 1, validation.NumWithDatesBeforeStart)
	assert.Equal(t, 1, validation.NumWithDatesAfterEnd)
}

func TestAssignmentsValidationNoEndDate(t *testing.T) {
	service := NewValidationService()
	course := &models.Course{Start: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)}

	assignments := []models.Subsection{
		{Graded: true, Due: timePtr(course.Start.AddDate(1, 0, 0))},
	}
	validation := service.assignmentsValidation(course, assignments)
	assert.Equal(t, 0, validation.NumWithDatesAfterEnd)
}

func TestGradesValidation(t *testing.T) {
	service := NewValidationService()

	validation := service.gradesValidation(&models.Course{})
	assert.False(t, validation.HasGradingPolicy)
	assert.Equal(t, 0.0, validation.SumOfWeights)

	validation = service.gradesValidation(&models.Course{
		Graders: []models.Grader{
			{Type: "Homework", Weight: 0.4},
			{Type: "Exam", Weight: 0.6},
		},
	})
	assert.True(t, validation.HasGradingPolicy)
	assert.Equal(t, 1.0, validation.SumOfWeights)
}

func TestCertificatesValidation(t *testing.T) {
	service := NewValidationService()

	validation := service.certificatesValidation(&models.Course{
		CertificatesActive:  true,
		CertHTMLViewEnabled: true,
		Certificates: []models.CourseCertificate{
			{Name: "Certificado", IsActive: false},
		},
	})
	assert.True(t, validation.IsActivated)
	assert.True(t, validation.IsEnabled)
	assert.False(t, validation.HasCertificate)

	validation = service.certificatesValidation(&models.Course{
		Certificates: []models.CourseCertificate{
			{Name: "Certificado", IsActive: true},
		},
	})
	assert.True(t, validation.HasCertificate)
}
