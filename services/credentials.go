package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/go-resty/resty/v2"
)

// Credential types
const (
	PROGRAM_CERTIFICATE = "program"
	COURSE_CERTIFICATE  = "course-run"
)

// Credential statuses
const (
	CREDENTIAL_AWARDED = "awarded"
	CREDENTIAL_REVOKED = "revoked"
)

// ErrCredentialNotFound: the credentials service has no configuration for the
// requested program. Not retryable.
var ErrCredentialNotFound = errors.New("credential not configured")

var credentialsClient *CredentialsClient

type credentialPayload struct {
	Type         string `json:"type"`
	ProgramUUID  string `json:"program_uuid,omitempty"`
	CourseRunKey string `json:"course_run_key,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

type awardRequest struct {
	Username   string            `json:"username"`
	Status     string            `json:"status,omitempty"`
	Credential credentialPayload `json:"credential"`
	Attributes []interface{}     `json:"attributes"`
}

type credentialResult struct {
	Credential credentialPayload `json:"credential"`
	Status     string            `json:"status"`
}

type credentialsListRes struct {
	Next    *string            `json:"next"`
	Results []credentialResult `json:"results"`
}

type CredentialsClient struct {
	client *resty.Client
}

func newCredentialsClient(baseURL string) *CredentialsClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Second*10).
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(time.Second*10).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() >= 500 || r.StatusCode() == http.StatusTooManyRequests
		})
	return &CredentialsClient{
		client: client,
	}
}

func (c *CredentialsClient) request() (*resty.Request, error) {
	token, err := NewServiceToken(settingsData.CREDENTIALS_SERVICE_USERNAME)
	if err != nil {
		return nil, err
	}
	return c.client.R().SetAuthToken(token), nil
}

// GetCertifiedPrograms returns the program UUIDs already awarded to the user,
// walking every page of the listing.
func (c *CredentialsClient) GetCertifiedPrograms(username string) ([]string, error) {
	var programUUIDs []string
	next := ""
	for {
		req, err := c.request()
		if err != nil {
			return nil, err
		}
		var list credentialsListRes
		req.SetResult(&list)

		var response *resty.Response
		if next == "" {
			response, err = req.
				SetQueryParams(map[string]string{
					"username": username,
					"type":     PROGRAM_CERTIFICATE,
					"status":   CREDENTIAL_AWARDED,
				}).
				Get("/credentials/")
		} else {
			// Absolute URL handed back by the service
			response, err = req.Get(next)
		}
		if err != nil {
			return nil, err
		}
		if response.IsError() {
			return nil, fmt.Errorf("credentials service: %s", response.Status())
		}
		for _, result := range list.Results {
			programUUIDs = append(programUUIDs, result.Credential.ProgramUUID)
		}
		if list.Next == nil || *list.Next == "" {
			break
		}
		next = *list.Next
	}
	return programUUIDs, nil
}

// AwardProgramCertificate issues a program credential to the user.
func (c *CredentialsClient) AwardProgramCertificate(username, programUUID string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	response, err := req.
		SetBody(&awardRequest{
			Username: username,
			Credential: credentialPayload{
				Type:        PROGRAM_CERTIFICATE,
				ProgramUUID: programUUID,
			},
			Attributes: []interface{}{},
		}).
		Post("/credentials/")
	if err != nil {
		return err
	}
	if response.StatusCode() == http.StatusNotFound {
		return ErrCredentialNotFound
	}
	if response.IsError() {
		return fmt.Errorf("credentials service: %s", response.Status())
	}
	return nil
}

// PostCourseCertificate pushes an awarded or revoked course credential.
func (c *CredentialsClient) PostCourseCertificate(
	username string,
	certificate *models.GeneratedCertificate,
) error {
	status := CREDENTIAL_REVOKED
	if certificate.IsValid() {
		status = CREDENTIAL_AWARDED
	}
	req, err := c.request()
	if err != nil {
		return err
	}
	response, err := req.
		SetBody(&awardRequest{
			Username: username,
			Status:   status,
			Credential: credentialPayload{
				Type:         COURSE_CERTIFICATE,
				CourseRunKey: certificate.CourseKey,
				Mode:         certificate.Mode,
			},
			Attributes: []interface{}{},
		}).
		Post("/credentials/")
	if err != nil {
		return err
	}
	if response.IsError() {
		return fmt.Errorf("credentials service: %s", response.Status())
	}
	return nil
}

func NewCredentialsClient() *CredentialsClient {
	if credentialsClient == nil {
		credentialsClient = newCredentialsClient(settingsData.CREDENTIALS_API_URL)
	}
	return credentialsClient
}
