package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetAndUpdateProfile(t *testing.T) {
	handler := NewHandler(NewService(NewRepositoryStub(), defaults))

	w := httptest.NewRecorder()
	handler.GetProfile(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var dto ProfileDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, ProfileDTO{TargetSleep: 7, TargetStudy: 3}, dto)

	body, _ := json.Marshal(ProfileDTO{Name: "Aoi", TargetSleep: 8, TargetStudy: 2})
	w = httptest.NewRecorder()
	handler.UpdateProfile(w, httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBuffer(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, ProfileDTO{Name: "Aoi", TargetSleep: 8, TargetStudy: 2}, dto)
}

func TestHandler_UpdateProfileValidation(t *testing.T) {
	handler := NewHandler(NewService(NewRepositoryStub(), defaults))

	body, _ := json.Marshal(ProfileDTO{Name: "Aoi", TargetSleep: 8, TargetStudy: 20})
	w := httptest.NewRecorder()
	handler.UpdateProfile(w, httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBuffer(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid profile", errResponse.Error)
	assert.Contains(t, errResponse.Details, "targetStudy")
}
