package category

import (
	"net/http"

	"github.com/dayline/dayline/internal/rest"
)

type CategoryDTO struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// List returns the selectable categories in display order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories := h.registry.Categories()
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, CategoryToDTO(c))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func CategoryToDTO(c Category) CategoryDTO {
	return CategoryDTO{
		Label: string(c.Label),
		Name:  c.Name,
		Color: string(c.Color),
	}
}
