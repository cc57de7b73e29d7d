package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalsTestServer(t *testing.T, accesses []JournalAccess) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/journalaccess/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": accesses,
		})
	}))
}

func TestGetLearnerJournalsDisabled(t *testing.T) {
	enabled := settingsData.JOURNALS_ENABLED
	settingsData.JOURNALS_ENABLED = false
	defer func() { settingsData.JOURNALS_ENABLED = enabled }()

	service := newJournalsService("http://localhost:0")
	_, errRes := service.GetLearnerJournals(&Claims{Username: "xiu"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
}

func TestGetLearnerJournalsFiltersExpired(t *testing.T) {
	enabled := settingsData.JOURNALS_ENABLED
	settingsData.JOURNALS_ENABLED = true
	defer func() { settingsData.JOURNALS_ENABLED = enabled }()

	today := time.Now()
	server := journalsTestServer(t, []JournalAccess{
		{
			UUID:           "access-valid",
			ExpirationDate: today.AddDate(0, 1, 0).Format("2006-01-02"),
			Journal:        Journal{Name: "Revista de Datos"},
		},
		{
			UUID:           "access-today",
			ExpirationDate: today.Format("2006-01-02"),
		},
		{
			UUID:           "access-expired",
			ExpirationDate: today.AddDate(0, 0, -1).Format("2006-01-02"),
		},
	})
	defer server.Close()

	service := newJournalsService(server.URL)
	journals, errRes := service.GetLearnerJournals(&Claims{Username: "xiu"})
	require.Nil(t, errRes)
	require.Len(t, journals, 2)
	assert.Equal(t, "access-valid", journals[0].UUID)
	assert.Equal(t, "access-today", journals[1].UUID)
}

func TestGetLearnerJournalsDegradesWhenServiceDown(t *testing.T) {
	enabled := settingsData.JOURNALS_ENABLED
	settingsData.JOURNALS_ENABLED = true
	defer func() { settingsData.JOURNALS_ENABLED = enabled }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newJournalsService(server.URL)
	journals, errRes := service.GetLearnerJournals(&Claims{Username: "xiu"})
	require.Nil(t, errRes)
	assert.Empty(t, journals)
	assert.NotNil(t, journals)
}
