package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careerdesk/job-portal/internal/config"
	"github.com/careerdesk/job-portal/internal/repository"
	"github.com/careerdesk/job-portal/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a}
}

// credentialsReq is the body of /auth and /add_admin.
type credentialsReq struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

// Login verifies credentials, issues a signed access token with the
// configured TTL and records it on the admin row.  Any credential failure is
// 403 with the same error text, so an unknown username is indistinguishable
// from a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "username/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return respondError(c, http.StatusForbidden, "Wrong password")
		}
		return respondError(c, http.StatusInternalServerError, err.Error())
	}
	if !utils.VerifyPassword(admin.Password, req.Password) {
		return respondError(c, http.StatusForbidden, "Wrong password")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, h.Cfg.JWTAlg, admin.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "issue token failed")
	}
	// Record the latest session on the admin row.  Validation never reads
	// this back; the previous token stays cryptographically valid until its
	// own expiry.
	if err := h.Admins.StoreToken(ctx, admin.Username, access.Token, access.Exp); err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, access.Token, "Login successful")
}

// AddAdmin creates another admin account.  The route is guarded by the JWT
// middleware, so only an authenticated admin can reach it.  The password is
// bcrypt-hashed before persisting.
func (h *AuthHandler) AddAdmin(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "username/password required")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "hash password failed")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	email := ""
	if req.Email != nil {
		email = *req.Email
	}
	if _, err := h.Admins.Create(ctx, req.Username, email, hash); err != nil {
		// Uniqueness violations surface as a generic server error with the
		// error text in the envelope.
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respond(c, http.StatusOK, fmt.Sprintf("%s created", req.Username), "")
}
