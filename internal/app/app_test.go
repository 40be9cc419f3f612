package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayline/dayline/internal/config"
	"github.com/dayline/dayline/internal/test_utils"
	"github.com/dayline/dayline/pkg/history"
	"github.com/dayline/dayline/pkg/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) http.Handler {
	db := test_utils.SetupTestDB(t)
	cfg, err := config.Load("missing.yaml")
	require.NoError(t, err)
	cfg.Advice.ApiKey = ""

	deps, err := BuildDependencies(context.Background(), db, cfg)
	require.NoError(t, err)
	return NewRouter(deps)
}

func serve(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	buf := &bytes.Buffer{}
	if body != nil {
		_ = json.NewEncoder(buf).Encode(body)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, buf))
	return w
}

func TestRoutes_LogDayAndSummarize(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, http.MethodPost, "/api/daylog/2024-01-01/interval", map[string]any{"category": "sleep", "start": 0, "end": 7})
	require.Equal(t, http.StatusCreated, w.Code)
	w = serve(router, http.MethodPost, "/api/daylog/2024-01-02/interval", map[string]any{"category": "sleep", "start": 0, "end": 6})
	require.Equal(t, http.StatusCreated, w.Code)
	w = serve(router, http.MethodPost, "/api/daylog/2024-01-02/interval", map[string]any{"category": "study", "start": 9, "end": 11})
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodGet, "/api/timeline/2024-01-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dayTimeline timeline.DayTimelineDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dayTimeline))
	assert.Len(t, dayTimeline.Segments, 4)

	w = serve(router, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary history.SummaryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, 2, summary.DaysLogged)
	assert.Contains(t, summary.Groups, history.GroupSummaryDTO{Name: "sleep", Total: 13, Average: 6.5})
	assert.Equal(t, history.TargetsDTO{Sleep: 7, Study: 3}, summary.Targets)
}

func TestRoutes_WeekIsNotADate(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, http.MethodGet, "/api/timeline/week", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var week []timeline.DayTimelineDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&week))
	assert.Empty(t, week)
}

func TestRoutes_AdviceDisabledWithoutKey(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, http.MethodPost, "/api/advice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var dto struct {
		NoData bool `json:"noData"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.True(t, dto.NoData)

	w = serve(router, http.MethodPost, "/api/daylog/2024-01-01/interval", map[string]any{"category": "sleep", "start": 0, "end": 7})
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodPost, "/api/advice", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_TimelineDoesNotLogDays(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, http.MethodGet, "/api/timeline/2030-12-31", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary history.SummaryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.True(t, summary.NoData)
}

func TestRoutes_ProfileRoundTrip(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, http.MethodPut, "/api/profile", map[string]any{"name": "Aoi", "targetSleep": 8, "targetStudy": 4})
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dto struct {
		Name        string `json:"name"`
		TargetSleep int    `json:"targetSleep"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, "Aoi", dto.Name)
	assert.Equal(t, 8, dto.TargetSleep)
}

func TestBuildDependencies_RejectsUnknownGroupLabels(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	cfg, err := config.Load("missing.yaml")
	require.NoError(t, err)
	cfg.Summary.Groups = map[string][]string{"games": {"gaming"}}

	_, err = BuildDependencies(context.Background(), db, cfg)

	assert.Error(t, err)
}

func TestBuildDependencies_AdviceEnabledWithKey(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	cfg, err := config.Load("missing.yaml")
	require.NoError(t, err)
	cfg.Advice.ApiKey = "key"

	deps, err := BuildDependencies(context.Background(), db, cfg)

	require.NoError(t, err)
	assert.True(t, deps.AdviceService.Enabled())
}
