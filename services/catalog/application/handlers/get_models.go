package handlers

import (
	"net/http"

	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

// ModelListResponse is returned by both the admin and the public listing.
type ModelListResponse struct {
	Models []models.APIModel `json:"models"`
}

// GetModelsHandler handles GET /api/admin/models requests.
type GetModelsHandler struct {
	svc *appsvcs.Services
}

// NewGetModelsHandler returns a GetModelsHandler backed by the given services.
func NewGetModelsHandler(svc *appsvcs.Services) *GetModelsHandler {
	return &GetModelsHandler{svc: svc}
}

// Execute lists all models, newest first.
func (h *GetModelsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Catalog.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ModelListResponse{Models: models.SerializeAll(ms)})
}
