package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/funct"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var journalsService *JournalsService

type JournalAboutPage struct {
	Slug         string `json:"slug"`
	CardImageURL string `json:"card_image_absolute_url"`
}

type Journal struct {
	Name         string           `json:"name"`
	Organization string           `json:"organization"`
	AboutPage    JournalAboutPage `json:"journalaboutpage"`
}

type JournalAccess struct {
	UUID           string  `json:"uuid"`
	ExpirationDate string  `json:"expiration_date"` // 2006-01-02
	Journal        Journal `json:"journal"`
}

type journalAccessListRes struct {
	Results []JournalAccess `json:"results"`
}

type JournalsService struct {
	client *resty.Client
}

func newJournalsService(baseURL string) *JournalsService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Second * 5)
	return &JournalsService{
		client: client,
	}
}

func (j *JournalsService) fetchJournalAccess(username string) ([]JournalAccess, error) {
	var list journalAccessListRes
	response, err := j.client.R().
		SetQueryParam("user", username).
		SetResult(&list).
		Get("/journalaccess/")
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, fmt.Errorf("journals service: %s", response.Status())
	}
	return list.Results, nil
}

// GetLearnerJournals returns the user's unexpired journal accesses. The
// dashboard renders without journals when the remote service is down, so
// remote failures degrade to an empty list.
func (j *JournalsService) GetLearnerJournals(claims *Claims) ([]JournalAccess, *res.ErrorRes) {
	if !settingsData.JOURNALS_ENABLED {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("journals integration is disabled"),
			StatusCode: http.StatusNotFound,
		}
	}
	accesses, err := j.fetchJournalAccess(claims.Username)
	if err != nil {
		logger.Warn(
			"Could not fetch journal access",
			zap.String("username", claims.Username),
			zap.Error(err),
		)
		return []JournalAccess{}, nil
	}
	today := time.Now().Format("2006-01-02")
	valid := funct.Filter(accesses, func(access JournalAccess) bool {
		return access.ExpirationDate >= today
	})
	if valid == nil {
		valid = []JournalAccess{}
	}
	return valid, nil
}

func NewJournalsService() *JournalsService {
	if journalsService == nil {
		journalsService = newJournalsService(settingsData.JOURNALS_API_URL)
	}
	return journalsService
}
