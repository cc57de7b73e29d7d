package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCertifiedPrograms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/", r.URL.Path)
		assert.Equal(t, "xiu", r.URL.Query().Get("username"))
		assert.Equal(t, PROGRAM_CERTIFICATE, r.URL.Query().Get("type"))
		assert.Equal(t, CREDENTIAL_AWARDED, r.URL.Query().Get("status"))
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"credential": map[string]string{"program_uuid": "uuid-a"}, "status": "awarded"},
				{"credential": map[string]string{"program_uuid": "uuid-b"}, "status": "awarded"},
			},
		})
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)
	programUUIDs, err := client.GetCertifiedPrograms("xiu")
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-a", "uuid-b"}, programUUIDs)
}

func TestGetCertifiedProgramsWalksPages(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"next": server.URL + "/credentials/?page=2&username=xiu",
				"results": []map[string]interface{}{
					{"credential": map[string]string{"program_uuid": "uuid-a"}, "status": "awarded"},
				},
			})
			return
		}
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"next": nil,
			"results": []map[string]interface{}{
				{"credential": map[string]string{"program_uuid": "uuid-b"}, "status": "awarded"},
			},
		})
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)
	programUUIDs, err := client.GetCertifiedPrograms("xiu")
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-a", "uuid-b"}, programUUIDs)
}

func TestAwardProgramCertificate(t *testing.T) {
	var received awardRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)
	err := client.AwardProgramCertificate("xiu", "uuid-a")
	require.NoError(t, err)
	assert.Equal(t, "xiu", received.Username)
	assert.Equal(t, PROGRAM_CERTIFICATE, received.Credential.Type)
	assert.Equal(t, "uuid-a", received.Credential.ProgramUUID)
	assert.NotNil(t, received.Attributes)
}

func TestAwardProgramCertificateNotConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)
	err := client.AwardProgramCertificate("xiu", "uuid-missing")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestPostCourseCertificateStatus(t *testing.T) {
	var received awardRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)

	err := client.PostCourseCertificate("xiu", &models.GeneratedCertificate{
		CourseKey: "course-v1:OpenCampus+CS101+2023",
		Mode:      models.MODE_VERIFIED,
		Status:    models.CERT_DOWNLOADABLE,
	})
	require.NoError(t, err)
	assert.Equal(t, CREDENTIAL_AWARDED, received.Status)
	assert.Equal(t, COURSE_CERTIFICATE, received.Credential.Type)
	assert.Equal(t, "course-v1:OpenCampus+CS101+2023", received.Credential.CourseRunKey)
	assert.Equal(t, models.MODE_VERIFIED, received.Credential.Mode)

	err = client.PostCourseCertificate("xiu", &models.GeneratedCertificate{
		CourseKey: "course-v1:OpenCampus+CS101+2023",
		Mode:      models.MODE_VERIFIED,
		Status:    models.CERT_REVOKED,
	})
	require.NoError(t, err)
	assert.Equal(t, CREDENTIAL_REVOKED, received.Status)
}

func TestPostCourseCertificateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newCredentialsClient(server.URL)
	err := client.PostCourseCertificate("xiu", &models.GeneratedCertificate{
		Status: models.CERT_DOWNLOADABLE,
	})
	assert.Error(t, err)
}
