package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/middleware"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
	"github.com/vaughan-dsouza/jobboard/internal/utils"
	"go.uber.org/zap"
)

const (
	msgRegisterRequired = "Email, password and full_name are required"
	msgPasswordShort    = "Password must be at least 6 characters"
	msgEmailExists      = "Email already exists"
	msgLoginRequired    = "Email and password are required"
	msgBadCredentials   = "Invalid email or password"
	msgInvalidToken     = "Invalid token"
	msgUserNotFound     = "User not found"
)

type AuthHandler struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	authn    *middleware.Authenticator
	secret   string
	now      func() time.Time
	log      *zap.Logger
}

func NewAuthHandler(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	authn *middleware.Authenticator,
	secret string,
	now func() time.Time,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		authn:    authn,
		secret:   secret,
		now:      now,
		log:      log,
	}
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     models.Role `json:"role"`
}

type authResp struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    authUser `json:"user"`
}

// -------------- REGISTER ---------------------

func (h *AuthHandler) Register(ctx context.Context, ev function.Event) (function.Response, error) {
	var req registerReq
	if err := decodeBody(ev, &req); err != nil {
		return badRequest(msgInvalidJSON)
	}

	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := validate.Struct(req); err != nil {
		switch {
		case hasTag(err, "required"):
			return badRequest(msgRegisterRequired)
		case hasTag(err, "min"):
			return badRequest(msgPasswordShort)
		default:
			return badRequest(validationMessage(err))
		}
	}

	exists, err := h.users.EmailExists(ctx, req.Email)
	if err != nil {
		return function.Response{}, err
	}
	if exists {
		return badRequest(msgEmailExists)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return function.Response{}, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Phone:    &req.Phone,
		Role:     models.RoleUser,
	}

	if err := h.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return badRequest(msgEmailExists)
		}
		return function.Response{}, err
	}

	h.log.Info("user registered", zap.Int64("user_id", u.ID))
	return h.issue(ctx, u, http.StatusCreated)
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(ctx context.Context, ev function.Event) (function.Response, error) {
	var req loginReq
	if err := decodeBody(ev, &req); err != nil {
		return badRequest(msgInvalidJSON)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return badRequest(msgLoginRequired)
	}

	u, err := h.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return function.Error(http.StatusUnauthorized, msgBadCredentials), nil
	}
	if err != nil {
		return function.Response{}, err
	}

	if !utils.VerifyPassword(req.Password, u.Password) {
		return function.Error(http.StatusUnauthorized, msgBadCredentials), nil
	}

	return h.issue(ctx, u, http.StatusOK)
}

// issue mints a bearer token and a cookie session for u.
func (h *AuthHandler) issue(ctx context.Context, u *models.User, status int) (function.Response, error) {
	now := h.now()

	token, _, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), h.secret, now)
	if err != nil {
		return function.Response{}, fmt.Errorf("issue token: %w", err)
	}

	sessionToken, err := utils.NewSessionToken()
	if err != nil {
		return function.Response{}, fmt.Errorf("session token: %w", err)
	}

	err = h.sessions.Create(ctx, &models.Session{
		UserID:    u.ID,
		Token:     sessionToken,
		ExpiresAt: now.Add(utils.TokenTTL),
	})
	if err != nil {
		return function.Response{}, err
	}

	return function.JSON(status, authResp{
		Success: true,
		Token:   token,
		User: authUser{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     u.Role,
		},
	}, map[string]string{function.SetCookieHeader: utils.SessionCookie(sessionToken)}), nil
}

// -------------- ME ----------------------------

func (h *AuthHandler) Me(ctx context.Context, ev function.Event) (function.Response, error) {
	id, status := h.authn.Identify(ev)
	switch status {
	case middleware.AuthOK:
	case middleware.AuthAbsent, middleware.AuthMalformed:
		return unauthorized()
	default:
		return function.Error(http.StatusUnauthorized, msgInvalidToken), nil
	}

	u, err := h.users.GetByID(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return function.Error(http.StatusNotFound, msgUserNotFound), nil
	}
	if err != nil {
		return function.Response{}, err
	}

	return function.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	}, nil), nil
}

// -------------- LOGOUT -----------------------

// Logout drops the cookie session. Bearer tokens already issued stay valid
// until they expire.
func (h *AuthHandler) Logout(ctx context.Context, ev function.Event) (function.Response, error) {
	if token := utils.SessionTokenFromCookie(ev.Header("X-Cookie")); token != "" {
		if err := h.sessions.DeleteByToken(ctx, token); err != nil {
			return function.Response{}, err
		}
	}

	return function.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	}, map[string]string{function.SetCookieHeader: utils.ClearSessionCookie()}), nil
}
