package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

// PutModelHandler handles PUT /api/admin/models/{id} requests.
type PutModelHandler struct {
	svc *appsvcs.Services
}

// NewPutModelHandler returns a PutModelHandler backed by the given services.
func NewPutModelHandler(svc *appsvcs.Services) *PutModelHandler {
	return &PutModelHandler{svc: svc}
}

// Execute overwrites an existing model from a multipart form. The image file
// is optional; when omitted the stored image is kept.
func (h *PutModelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(httpx.MaxUploadBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	image, cleanup := imageFromRequest(r)
	defer cleanup()

	model, err := h.svc.Catalog.Update(r.Context(), chi.URLParam(r, "id"), modelFormFromRequest(r), image)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ModelResponse{
		Message: "Model updated successfully",
		Model:   models.Serialize(model),
	})
}
