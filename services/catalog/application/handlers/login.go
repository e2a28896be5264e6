package handlers

import (
	"net/http"

	"github.com/ghuser/aquacatalog/pkg/auth"
	"github.com/ghuser/aquacatalog/pkg/errhttp"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/aquacatalog/pkg/validator"
)

// LoginRequest is the request body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginHandler handles POST /api/admin/login requests.
type LoginHandler struct {
	auth *auth.Service
}

// NewLoginHandler returns a LoginHandler backed by the given auth service.
func NewLoginHandler(svc *auth.Service) *LoginHandler {
	return &LoginHandler{auth: svc}
}

// Execute exchanges the admin credential pair for a signed bearer token.
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token})
}
