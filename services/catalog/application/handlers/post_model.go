package handlers

import (
	"net/http"

	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
	"github.com/ghuser/aquacatalog/services/catalog/domain/models"
)

// ModelResponse is returned on successful model creation or update.
type ModelResponse struct {
	Message string          `json:"message"`
	Model   models.APIModel `json:"model"`
}

// PostModelHandler handles POST /api/admin/models requests.
type PostModelHandler struct {
	svc *appsvcs.Services
}

// NewPostModelHandler returns a PostModelHandler backed by the given services.
func NewPostModelHandler(svc *appsvcs.Services) *PostModelHandler {
	return &PostModelHandler{svc: svc}
}

// Execute creates a new model from a multipart form. The image file is required.
func (h *PostModelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(httpx.MaxUploadBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	image, cleanup := imageFromRequest(r)
	defer cleanup()

	model, err := h.svc.Catalog.Create(r.Context(), modelFormFromRequest(r), image)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ModelResponse{
		Message: "Model added successfully",
		Model:   models.Serialize(model),
	})
}
