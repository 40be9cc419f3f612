package advice

import (
	"errors"
	"net/http"

	"github.com/dayline/dayline/internal/rest"
	"github.com/dayline/dayline/pkg/history"
	log "github.com/sirupsen/logrus"
)

type AveragesDTO struct {
	Sleep      float64 `json:"sleep"`
	Study      float64 `json:"study"`
	Smartphone float64 `json:"smartphone"`
	Unknown    float64 `json:"unknown"`
}

type AdviceDTO struct {
	NoData      bool        `json:"noData"`
	Message     string      `json:"message,omitempty"`
	Advice      string      `json:"advice"`
	DaysLogged  int         `json:"daysLogged"`
	Averages    AveragesDTO `json:"averages"`
	TargetSleep int         `json:"targetSleep"`
	TargetStudy int         `json:"targetStudy"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateAdvice(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Advise(r.Context())
	switch {
	case err == nil:
		rest.WriteJSON(w, http.StatusOK, AdviceToDTO(a))
	case errors.Is(err, history.ErrEmptyHistory):
		rest.WriteJSON(w, http.StatusOK, AdviceDTO{NoData: true, Message: history.NoDataMessage})
	case errors.Is(err, ErrAdviceDisabled):
		rest.WriteError(w, http.StatusServiceUnavailable, "Advice is disabled", "no generator API key configured")
	case errors.Is(err, ErrTimeout):
		rest.WriteError(w, http.StatusGatewayTimeout, "Advice generator timed out", err.Error())
	case errors.Is(err, ErrGeneratorUnavailable), errors.Is(err, ErrEmptyResponse):
		rest.WriteError(w, http.StatusBadGateway, "Advice generator failed", err.Error())
	default:
		log.Errorf("failed to create advice: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func AdviceToDTO(a Advice) AdviceDTO {
	return AdviceDTO{
		Advice:     a.Text,
		DaysLogged: a.DaysLogged,
		Averages: AveragesDTO{
			Sleep:      a.Averages.Sleep,
			Study:      a.Averages.Study,
			Smartphone: a.Averages.Smartphone,
			Unknown:    a.Averages.Unknown,
		},
		TargetSleep: a.TargetSleep,
		TargetStudy: a.TargetStudy,
	}
}
