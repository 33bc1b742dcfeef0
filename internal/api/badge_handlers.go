package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/yavin/platform/internal/catalog"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/httputil"
)

type CheckBadgesRequest struct {
	Trigger string `json:"trigger"`
}

// ListBadges shows earned and still-available badges. Anonymous callers
// get the full catalog as available
func (s *Server) ListBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := GetUIDFromContext(r)
	if !ok {
		httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
			"earned":    []catalog.Badge{},
			"available": catalog.Badges,
		})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	earned, available, err := s.badgeService.EarnedAndAvailable(ctx, uid)
	if err != nil {
		logger.Error("listing badges error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing badges", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"earned":    earned,
		"available": available,
	})
	logger.Info("badges provided")
}

func (s *Server) CheckBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req CheckBadgesRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("badge check error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	newBadges, err := s.badgeService.CheckBadges(ctx, uid, req.Trigger)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("badge check error: session user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}
		logger.Error("badge check error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking badges", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"new_badges": newBadges,
	})
	logger.Info("badges checked", slog.Int("newly_granted", len(newBadges)))
}
