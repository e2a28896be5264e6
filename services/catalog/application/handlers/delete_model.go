package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
)

// MessageResponse is returned by operations with no result body.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteModelHandler handles DELETE /api/admin/models/{id} requests.
type DeleteModelHandler struct {
	svc *appsvcs.Services
}

// NewDeleteModelHandler returns a DeleteModelHandler backed by the given services.
func NewDeleteModelHandler(svc *appsvcs.Services) *DeleteModelHandler {
	return &DeleteModelHandler{svc: svc}
}

// Execute deletes a model and best-effort destroys its hosted image.
func (h *DeleteModelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Model deleted successfully"})
}
