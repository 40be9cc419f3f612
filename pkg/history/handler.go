package history

import (
	"errors"
	"net/http"

	"github.com/dayline/dayline/internal/rest"
	"github.com/dayline/dayline/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// NoDataMessage is shown instead of a summary while nothing has been logged.
const NoDataMessage = "No data recorded yet. Log a day to see your averages."

type GroupSummaryDTO struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

type TargetsDTO struct {
	Sleep int `json:"sleep"`
	Study int `json:"study"`
}

type SummaryDTO struct {
	NoData     bool              `json:"noData"`
	Message    string            `json:"message,omitempty"`
	DaysLogged int               `json:"daysLogged"`
	Groups     []GroupSummaryDTO `json:"groups"`
	Targets    TargetsDTO        `json:"targets"`
}

type Handler struct {
	service     Service
	profiles    profile.Service
	csvRenderer Renderer
}

func NewHandler(service Service, profiles profile.Service, csvRenderer Renderer) *Handler {
	return &Handler{service: service, profiles: profiles, csvRenderer: csvRenderer}
}

// GetSummary returns the averages per group as JSON, or as CSV with ?format=csv.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context())
	if err != nil {
		log.Errorf("failed to get profile: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	targets := TargetsDTO{Sleep: p.TargetSleep, Study: p.TargetStudy}

	summary, err := h.service.Summary(r.Context())
	if errors.Is(err, ErrEmptyHistory) {
		rest.WriteJSON(w, http.StatusOK, SummaryDTO{
			NoData:  true,
			Message: NoDataMessage,
			Groups:  []GroupSummaryDTO{},
			Targets: targets,
		})
		return
	}
	if err != nil {
		log.Errorf("failed to summarize history: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" || r.Header.Get("Accept") == "text/csv" {
		csv, err := h.csvRenderer.Render(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="summary.csv"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("failed to write csv: %v", err)
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, SummaryToDTO(summary, targets))
}

func SummaryToDTO(summary Summary, targets TargetsDTO) SummaryDTO {
	groups := make([]GroupSummaryDTO, 0, len(summary.Groups))
	for _, g := range summary.Groups {
		groups = append(groups, GroupSummaryDTO{Name: g.Name, Total: g.Total, Average: g.Average})
	}
	return SummaryDTO{
		DaysLogged: summary.DaysLogged,
		Groups:     groups,
		Targets:    targets,
	}
}
