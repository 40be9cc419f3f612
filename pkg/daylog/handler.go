package daylog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dayline/dayline/internal/rest"
	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type IntervalDTO struct {
	Index    int     `json:"index"`
	Category string  `json:"category"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
	Note     string  `json:"note"`
}

type DayLogDTO struct {
	Date      string        `json:"date"`
	Intervals []IntervalDTO `json:"intervals"`
}

type Handler struct {
	service  Service
	registry *category.Registry
}

func NewHandler(service Service, registry *category.Registry) *Handler {
	return &Handler{service: service, registry: registry}
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.service.GetDay(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, dayLogToDTO(day))
}

func (h *Handler) AddInterval(w http.ResponseWriter, r *http.Request) {
	i, ok := h.decodeInterval(w, r)
	if !ok {
		return
	}

	day, err := h.service.AddInterval(r.Context(), mux.Vars(r)["date"], i)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, dayLogToDTO(day))
}

func (h *Handler) UpdateInterval(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	i, ok := h.decodeInterval(w, r)
	if !ok {
		return
	}

	day, err := h.service.UpdateInterval(r.Context(), mux.Vars(r)["date"], index, i)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, dayLogToDTO(day))
}

func (h *Handler) DeleteInterval(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	day, err := h.service.DeleteInterval(r.Context(), mux.Vars(r)["date"], index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, dayLogToDTO(day))
}

func (h *Handler) decodeInterval(w http.ResponseWriter, r *http.Request) (interval.Interval, bool) {
	var dto IntervalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return interval.Interval{}, false
	}
	i, err := interval.New(h.registry, category.Label(dto.Category), dto.Start, dto.End, dto.Note)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid interval", err.Error())
		return interval.Interval{}, false
	}
	return i, true
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		rest.WriteError(w, http.StatusBadRequest, "Invalid interval index", "index must be a non-negative integer")
		return 0, false
	}
	return index, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *interval.ValidationError
	switch {
	case errors.As(err, &validationErr):
		rest.WriteError(w, http.StatusBadRequest, "Invalid interval", validationErr.Error())
	case errors.Is(err, ErrInvalidDate):
		rest.WriteError(w, http.StatusBadRequest, "Invalid date", err.Error())
	case errors.Is(err, ErrIntervalNotFound):
		rest.WriteError(w, http.StatusNotFound, "Interval not found", err.Error())
	default:
		log.Errorf("day log request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func dayLogToDTO(day DayLog) DayLogDTO {
	intervals := make([]IntervalDTO, 0, len(day.Intervals))
	for idx, i := range day.Intervals {
		intervals = append(intervals, IntervalDTO{
			Index:    idx,
			Category: string(i.Category),
			Start:    i.Start,
			End:      i.End,
			Duration: i.Duration(),
			Note:     i.Note,
		})
	}
	return DayLogDTO{Date: day.Date, Intervals: intervals}
}
