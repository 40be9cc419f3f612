package timeline

import (
	"errors"
	"net/http"

	"github.com/dayline/dayline/internal/rest"
	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/daylog"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SegmentDTO struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

type DayTimelineDTO struct {
	Date     string       `json:"date"`
	Segments []SegmentDTO `json:"segments"`
}

type Handler struct {
	service  Service
	registry *category.Registry
}

func NewHandler(service Service, registry *category.Registry) *Handler {
	return &Handler{service: service, registry: registry}
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	dayTimeline, err := h.service.Day(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		if errors.Is(err, daylog.ErrInvalidDate) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		log.Errorf("failed to build timeline: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.toDTO(dayTimeline))
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.service.Week(r.Context())
	if err != nil {
		log.Errorf("failed to build week timelines: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]DayTimelineDTO, 0, len(week))
	for _, day := range week {
		dtos = append(dtos, h.toDTO(day))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) toDTO(day DayTimeline) DayTimelineDTO {
	segments := make([]SegmentDTO, 0, len(day.Segments))
	for _, s := range day.Segments {
		segments = append(segments, SegmentDTO{
			Category: string(s.Category),
			Name:     h.registry.NameOf(s.Category),
			Color:    string(h.registry.ColorOf(s.Category)),
			Start:    s.Start,
			End:      s.End,
			Duration: s.Duration(),
		})
	}
	return DayTimelineDTO{Date: day.Date, Segments: segments}
}
