// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/atoengine/portal/internal/app/store/users"
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Users: users, SessionMgr: sessionMgr, Log: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HandleLogin verifies credentials and establishes a cookie session.
// Wrong email and wrong password produce the same 401 body.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "login: load user", err)
		return
	}
	if u.Status == "disabled" {
		httpjson.Error(w, http.StatusUnauthorized, "account is disabled")
		return
	}
	if !h.Users.VerifyPassword(u, req.Password) {
		h.Log.Warn("login: wrong password", zap.String("email_ci", u.EmailCI))
		httpjson.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	sessUser := auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, sessUser); err != nil {
		h.Log.Error("login: save session failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "unable to create session")
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	httpjson.Respond(w, http.StatusOK, loginResponse{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	})
}
