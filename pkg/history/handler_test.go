package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
	"github.com/dayline/dayline/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T, history map[string][]interval.Interval) *Handler {
	groups := mustGroups(t, map[string][]string{"sleep": {"sleep"}, "study": {"university", "study"}})
	provider := func(ctx context.Context) (map[string][]interval.Interval, error) {
		return history, nil
	}
	profiles := profile.NewService(profile.NewRepositoryStub(), profile.Profile{TargetSleep: 7, TargetStudy: 3})
	return NewHandler(NewService(provider, groups), profiles, NewCsvRenderer())
}

func TestHandler_GetSummary(t *testing.T) {
	handler := setupHandlerTest(t, map[string][]interval.Interval{
		"2024-01-01": {iv(category.Sleep, 0, 7)},
		"2024-01-02": {iv(category.Sleep, 0, 6), iv(category.Study, 9, 11)},
	})

	w := httptest.NewRecorder()
	handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var dto SummaryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, SummaryDTO{
		DaysLogged: 2,
		Groups: []GroupSummaryDTO{
			{Name: "sleep", Total: 13, Average: 6.5},
			{Name: "study", Total: 2, Average: 1},
		},
		Targets: TargetsDTO{Sleep: 7, Study: 3},
	}, dto)
}

func TestHandler_GetSummaryWithoutData(t *testing.T) {
	handler := setupHandlerTest(t, map[string][]interval.Interval{})

	w := httptest.NewRecorder()
	handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary?format=csv", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var dto SummaryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.True(t, dto.NoData)
	assert.Equal(t, NoDataMessage, dto.Message)
	assert.Empty(t, dto.Groups)
}

func TestHandler_GetSummaryAsCsv(t *testing.T) {
	handler := setupHandlerTest(t, map[string][]interval.Interval{
		"2024-01-01": {iv(category.Sleep, 0, 7)},
	})

	w := httptest.NewRecorder()
	handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary?format=csv", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Date,sleep,study\n2024-01-01,7.00,0.00\n"))
}

func TestHandler_GetSummaryHistoryFailure(t *testing.T) {
	provider := func(ctx context.Context) (map[string][]interval.Interval, error) {
		return nil, errors.New("database is down")
	}
	profiles := profile.NewService(profile.NewRepositoryStub(), profile.Profile{TargetSleep: 7, TargetStudy: 3})
	handler := NewHandler(NewService(provider, Groups{}), profiles, NewCsvRenderer())

	w := httptest.NewRecorder()
	handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
