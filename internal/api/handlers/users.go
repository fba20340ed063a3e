package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookshelfapp/bookshelf-server/internal/api/httpx"
	"github.com/bookshelfapp/bookshelf-server/internal/metrics"
	"github.com/bookshelfapp/bookshelf-server/internal/services"
	"github.com/bookshelfapp/bookshelf-server/internal/validate"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

type credentialsReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResp is the wire shape for register and login; the password hash
// never leaves the server.
type authResp struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Please enter all fields")
		return
	}
	u, token, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var vErr *validate.Error
		switch {
		case errors.As(err, &vErr):
			httpx.Error(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, services.ErrEmailTaken):
			httpx.Error(w, http.StatusBadRequest, "User already exists")
		default:
			httpx.Error(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	metrics.UsersRegistered.Inc()
	httpx.WriteJSON(w, http.StatusCreated, authResp{ID: u.ID, Name: u.Name, Email: u.Email, Token: token})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		httpx.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authResp{ID: u.ID, Name: u.Name, Email: u.Email, Token: token})
}
