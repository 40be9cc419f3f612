package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dayline/dayline/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ProfileDTO struct {
	Name        string `json:"name"`
	TargetSleep int    `json:"targetSleep"`
	TargetStudy int    `json:"targetStudy"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context())
	if err != nil {
		log.Errorf("failed to get profile: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ProfileToDTO(p))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var dto ProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	p, err := h.service.Update(r.Context(), Profile{
		Name:        dto.Name,
		TargetSleep: dto.TargetSleep,
		TargetStudy: dto.TargetStudy,
	})
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid profile", validationErr.Error())
			return
		}
		log.Errorf("failed to update profile: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ProfileToDTO(p))
}

func ProfileToDTO(p Profile) ProfileDTO {
	return ProfileDTO{
		Name:        p.Name,
		TargetSleep: p.TargetSleep,
		TargetStudy: p.TargetStudy,
	}
}
