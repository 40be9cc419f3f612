package category

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_List(t *testing.T) {
	handler := NewHandler(Default())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var dtos []CategoryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dtos))
	require.Len(t, dtos, 13)
	assert.Equal(t, CategoryDTO{Label: "university", Name: "大学", Color: "#B6D3FF"}, dtos[0])
	for _, dto := range dtos {
		assert.NotEqual(t, string(Uncovered), dto.Label)
	}
}
