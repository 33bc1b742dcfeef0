package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/service"
	"github.com/yavin/platform/pkg/httputil"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidEmail):
			logger.Error("registering error: invalid email")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email address", nil)
		case errors.Is(err, errorvalues.ErrWeakPassword):
			logger.Error("registering error: weak password")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Password must be at least 8 characters", nil)
		case errors.Is(err, errorvalues.ErrEmailTaken):
			logger.Error("registering error: email taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "An account with this email already exists", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	if err = s.sessions.Start(r.Context(), w, user.ID); err != nil {
		logger.Error("registering error: starting session error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error starting session", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"message": "Account created successfully",
		"user": map[string]any{
			"id":    user.ID.String(),
			"email": user.Email,
			"name":  user.Name,
		},
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			// Same answer for unknown email and wrong password
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	if err = s.sessions.Start(r.Context(), w, user.ID); err != nil {
		logger.Error("login error: starting session error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error starting session", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":          user.ID.String(),
			"email":       user.Email,
			"name":        user.Name,
			"streak_days": user.StreakDays,
			"total_xp":    user.TotalXP,
		},
	})
	logger.Info("successful login")
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	s.sessions.End(r.Context(), w, r)
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"message": "Logged out successfully",
	})
	logger.Info("logged out")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := GetUIDFromContext(r)
	if !ok {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logged_in": false})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, progress, err := s.userService.Profile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			// Stale session pointing at a gone user resolves to anonymous
			httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logged_in": false})
			return
		}
		logger.Error("getting profile error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"logged_in": true,
		"user": map[string]any{
			"id":          user.ID.String(),
			"email":       user.Email,
			"name":        user.Name,
			"streak_days": user.StreakDays,
			"total_xp":    user.TotalXP,
		},
		"progress": progress,
	})
	logger.Info("profile provided")
}
