package handlers

import (
	"net/http"

	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

// PublicModelsHandler handles GET /api/models requests — the unauthenticated
// storefront listing. Same payload as the admin listing, asset IDs included.
type PublicModelsHandler struct {
	svc *appsvcs.Services
}

// NewPublicModelsHandler returns a PublicModelsHandler backed by the given services.
func NewPublicModelsHandler(svc *appsvcs.Services) *PublicModelsHandler {
	return &PublicModelsHandler{svc: svc}
}

// Execute lists all models, newest first, without requiring authentication.
func (h *PublicModelsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Catalog.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ModelListResponse{Models: models.SerializeAll(ms)})
}
