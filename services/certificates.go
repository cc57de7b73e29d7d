package services

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/db"
	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Maximum number of retries before giving up on awarding credentials.
// 11 retries with exponential backoff wait at most 2047 seconds in total,
// about 30 minutes.
const MAX_AWARD_RETRIES = 11

var certificatesService *CertificatesService

type CertificatesService struct {
	credentials *CredentialsClient
}

// newAwardBackOff reproduces the 2^retries countdown of the award tasks.
func newAwardBackOff() backoff.BackOff {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = time.Second
	expBackOff.Multiplier = 2
	expBackOff.RandomizationFactor = 0
	expBackOff.MaxInterval = time.Hour
	expBackOff.MaxElapsedTime = 0
	return backoff.WithMaxRetries(expBackOff, MAX_AWARD_RETRIES)
}

func (c *CertificatesService) getUserByUsername(username string) (*models.User, error) {
	var user *models.User
	cursor := userModel.GetOne(bson.D{{
		Key:   "username",
		Value: username,
	}})
	if err := cursor.Decode(&user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *CertificatesService) getEligibleCertificate(
	user *models.User,
	courseKey string,
) (*models.GeneratedCertificate, error) {
	var certificate *models.GeneratedCertificate
	cursor := certificateModel.GetOne(bson.D{
		{
			Key:   "user",
			Value: user.ID,
		},
		{
			Key:   "course_key",
			Value: courseKey,
		},
		{
			Key: "status",
			Value: bson.M{
				"$in": models.EligibleCertStatuses,
			},
		},
	})
	if err := cursor.Decode(&certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (c *CertificatesService) getCourseByKey(courseKey string) (*models.Course, error) {
	var course *models.Course
	cursor := courseModel.GetOne(bson.D{{
		Key:   "key",
		Value: courseKey,
	}})
	if err := cursor.Decode(&course); err != nil {
		return nil, err
	}
	return course, nil
}

func (c *CertificatesService) getCertifiedCourseKeys(user *models.User) (map[string]bool, error) {
	var certificates []models.GeneratedCertificate
	cursor, err := certificateModel.GetAll(bson.D{
		{
			Key:   "user",
			Value: user.ID,
		},
		{
			Key: "status",
			Value: bson.M{
				"$in": models.EligibleCertStatuses,
			},
		},
	}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &certificates); err != nil {
		return nil, err
	}
	courseKeys := make(map[string]bool)
	for _, certificate := range certificates {
		courseKeys[certificate.CourseKey] = true
	}
	return courseKeys, nil
}

// completedPrograms returns the UUIDs of active programs whose every course
// run is certified, sorted for deterministic awarding order.
func completedPrograms(programs []models.Program, certifiedCourseKeys map[string]bool) []string {
	var completed []string
	for _, program := range programs {
		if len(program.CourseKeys) == 0 {
			continue
		}
		done := true
		for _, courseKey := range program.CourseKeys {
			if !certifiedCourseKeys[courseKey] {
				done = false
				break
			}
		}
		if done {
			completed = append(completed, program.UUID)
		}
	}
	sort.Strings(completed)
	return completed
}

// subtractPrograms drops already certified UUIDs, keeping order.
func subtractPrograms(programUUIDs, certifiedUUIDs []string) []string {
	certified := make(map[string]bool)
	for _, uuid := range certifiedUUIDs {
		certified[uuid] = true
	}
	var remaining []string
	for _, uuid := range programUUIDs {
		if !certified[uuid] {
			remaining = append(remaining, uuid)
		}
	}
	return remaining
}

func (c *CertificatesService) awardCourseCertificate(username, courseKey string) error {
	if !settingsData.CREDENTIALS_ISSUANCE_ENABLED {
		logger.Warn("Credentials issuance is disabled, task will retry")
		return fmt.Errorf("credentials issuance disabled")
	}
	user, err := c.getUserByUsername(username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error(
				"Award course certificate called with invalid username",
				zap.String("username", username),
			)
			return backoff.Permanent(fmt.Errorf("no user %s", username))
		}
		return err
	}
	certificate, err := c.getEligibleCertificate(user, courseKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error(
				"No eligible certificate found",
				zap.String("username", username),
				zap.String("course", courseKey),
			)
			return backoff.Permanent(fmt.Errorf("no certificate for %s in %s", username, courseKey))
		}
		return err
	}
	if !certificate.IsVerifiedMode() {
		logger.Info(
			"Certificate mode not pushed to credentials",
			zap.String("mode", certificate.Mode),
		)
		return nil
	}
	course, err := c.getCourseByKey(courseKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error(
				"Award course certificate called without course data",
				zap.String("course", courseKey),
			)
			return backoff.Permanent(fmt.Errorf("no course %s", courseKey))
		}
		return err
	}
	if !course.CertificatesViewable(time.Now()) {
		logger.Info(
			"Certificates not viewable for course run",
			zap.String("course", courseKey),
		)
		return nil
	}
	if err := c.credentials.PostCourseCertificate(username, certificate); err != nil {
		return err
	}
	logger.Info(
		"Awarded certificate",
		zap.String("course", courseKey),
		zap.String("username", username),
	)
	if err := nats.PublishEncode("notify/certificate_awarded", map[string]interface{}{
		"username":   username,
		"course_key": courseKey,
		"mode":       certificate.Mode,
	}); err != nil {
		logger.Warn("Could not notify certificate award", zap.Error(err))
	}
	// Render the downloadable PDF; the credential already stands, so a
	// failure here only logs
	if key, err := c.UploadCertificatePDF(user, course, certificate); err != nil {
		logger.Warn(
			"Could not upload certificate PDF",
			zap.String("course", courseKey),
			zap.Error(err),
		)
	} else {
		logger.Info("Uploaded certificate PDF", zap.String("key", key))
	}
	return nil
}

func (c *CertificatesService) awardProgramCertificates(username string) error {
	if !settingsData.CREDENTIALS_ISSUANCE_ENABLED {
		logger.Warn("Credentials issuance is disabled, task will retry")
		return fmt.Errorf("credentials issuance disabled")
	}
	user, err := c.getUserByUsername(username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error(
				"Award program certificates called with invalid username",
				zap.String("username", username),
			)
			return backoff.Permanent(fmt.Errorf("no user %s", username))
		}
		return err
	}

	var programs []models.Program
	cursor, err := programModel.GetAll(bson.D{{
		Key:   "status",
		Value: "active",
	}}, &options.FindOptions{})
	if err != nil {
		return err
	}
	if err := cursor.All(db.Ctx, &programs); err != nil {
		return err
	}
	certifiedCourseKeys, err := c.getCertifiedCourseKeys(user)
	if err != nil {
		return err
	}
	programUUIDs := completedPrograms(programs, certifiedCourseKeys)
	if len(programUUIDs) == 0 {
		logger.Info(
			"User has no completed programs",
			zap.String("username", username),
		)
		return nil
	}

	certifiedUUIDs, err := c.credentials.GetCertifiedPrograms(username)
	if err != nil {
		return err
	}
	newProgramUUIDs := subtractPrograms(programUUIDs, certifiedUUIDs)
	if len(newProgramUUIDs) == 0 {
		logger.Info(
			"User is not eligible for any new program certificates",
			zap.String("username", username),
		)
		return nil
	}

	// Keep awarding the remaining programs even when one fails; a failed
	// award retries the whole task, which is idempotent
	retry := false
	for _, programUUID := range newProgramUUIDs {
		err := c.credentials.AwardProgramCertificate(username, programUUID)
		if errors.Is(err, ErrCredentialNotFound) {
			logger.Error(
				"Certificate for program not configured",
				zap.String("program", programUUID),
				zap.String("username", username),
			)
			continue
		}
		if err != nil {
			logger.Warn(
				"Failed to award program certificate",
				zap.String("program", programUUID),
				zap.String("username", username),
				zap.Error(err),
			)
			retry = true
			continue
		}
		logger.Info(
			"Awarded program certificate",
			zap.String("program", programUUID),
			zap.String("username", username),
		)
	}
	if retry {
		return fmt.Errorf("failed to award some program certificates to %s", username)
	}
	return nil
}

// AwardCourseCertificates pushes an earned course certificate to the
// credentials service, retrying with exponential backoff.
func (c *CertificatesService) AwardCourseCertificates(username, courseKey string) error {
	logger.Info(
		"Running task award_course_certificates",
		zap.String("username", username),
		zap.String("course", courseKey),
	)
	return backoff.Retry(func() error {
		return c.awardCourseCertificate(username, courseKey)
	}, newAwardBackOff())
}

// AwardProgramCertificates awards program credentials for every program the
// user completed, retrying with exponential backoff.
func (c *CertificatesService) AwardProgramCertificates(username string) error {
	logger.Info(
		"Running task award_program_certificates",
		zap.String("username", username),
	)
	return backoff.Retry(func() error {
		return c.awardProgramCertificates(username)
	}, newAwardBackOff())
}

// GetUserCertificates lists the user's certificates for the dashboard.
func (c *CertificatesService) GetUserCertificates(claims *Claims) ([]models.GeneratedCertificate, *res.ErrorRes) {
	user, err := c.getUserByUsername(claims.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("no existe el usuario indicado"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	var certificates []models.GeneratedCertificate
	cursor, err := certificateModel.GetAll(bson.D{{
		Key:   "user",
		Value: user.ID,
	}}, &options.FindOptions{})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &certificates); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return certificates, nil
}

func NewCertificatesService() *CertificatesService {
	if certificatesService == nil {
		certificatesService = &CertificatesService{
			credentials: NewCredentialsClient(),
		}
	}
	return certificatesService
}
