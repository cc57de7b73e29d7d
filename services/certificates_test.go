package services

import (
	"errors"
	"testing"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedPrograms(t *testing.T) {
	programs := []models.Program{
		{UUID: "uuid-b", CourseKeys: []string{"course-1", "course-2"}},
		{UUID: "uuid-a", CourseKeys: []string{"course-1"}},
		{UUID: "uuid-c", CourseKeys: []string{"course-1", "course-3"}},
		{UUID: "uuid-empty"},
	}
	certified := map[string]bool{
		"course-1": true,
		"course-2": true,
	}

	completed := completedPrograms(programs, certified)
	assert.Equal(t, []string{"uuid-a", "uuid-b"}, completed)
}

func TestCompletedProgramsNone(t *testing.T) {
	programs := []models.Program{
		{UUID: "uuid-a", CourseKeys: []string{"course-1"}},
	}
	assert.Empty(t, completedPrograms(programs, map[string]bool{}))
}

func TestSubtractPrograms(t *testing.T) {
	remaining := subtractPrograms(
		[]string{"uuid-a", "uuid-b", "uuid-c"},
		[]string{"uuid-b"},
	)
	assert.Equal(t, []string{"uuid-a", "uuid-c"}, remaining)

	remaining = subtractPrograms(
		[]string{"uuid-a"},
		[]string{"uuid-a"},
	)
	assert.Empty(t, remaining)
}

func TestAwardBackOffDoublesEachRetry(t *testing.T) {
	awardBackOff := newAwardBackOff()

	expected := time.Second
	for retries := 0; retries < MAX_AWARD_RETRIES; retries++ {
		next := awardBackOff.NextBackOff()
		assert.Equal(t, expected, next)
		expected *= 2
	}
	assert.Equal(t, backoff.Stop, awardBackOff.NextBackOff())
}

func TestAwardCourseCertificateRetriesWhenIssuanceDisabled(t *testing.T) {
	enabled := settingsData.CREDENTIALS_ISSUANCE_ENABLED
	settingsData.CREDENTIALS_ISSUANCE_ENABLED = false
	defer func() { settingsData.CREDENTIALS_ISSUANCE_ENABLED = enabled }()

	service := NewCertificatesService()
	err := service.awardCourseCertificate("xiu", "course-v1:OpenCampus+CS101+2023")
	require.Error(t, err)

	// Recoverable condition, must stay retryable
	var permanent *backoff.PermanentError
	assert.False(t, errors.As(err, &permanent))
}

func TestAwardProgramCertificatesRetriesWhenIssuanceDisabled(t *testing.T) {
	enabled := settingsData.CREDENTIALS_ISSUANCE_ENABLED
	settingsData.CREDENTIALS_ISSUANCE_ENABLED = false
	defer func() { settingsData.CREDENTIALS_ISSUANCE_ENABLED = enabled }()

	service := NewCertificatesService()
	err := service.awardProgramCertificates("xiu")
	require.Error(t, err)

	var permanent *backoff.PermanentError
	assert.False(t, errors.As(err, &permanent))
}

func TestAwardBackOffPermanentErrorStopsRetrying(t *testing.T) {
	calls := 0
	err := backoff.Retry(func() error {
		calls++
		return backoff.Permanent(assert.AnError)
	}, newAwardBackOff())

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
