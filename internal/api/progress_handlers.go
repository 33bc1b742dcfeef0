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
	"github.com/yavin/platform/pkg/entity"
	"github.com/yavin/platform/pkg/httputil"
)

type UpdateProgressRequest struct {
	SectionID string `json:"section_id"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"time_spent"`
}

type QuizSubmissionRequest struct {
	Section string `json:"section"`
	Score   int    `json:"score"`
	Total   int    `json:"total"`
}

func (s *Server) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req UpdateProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("progress update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.progressService.UpsertProgress(ctx, uid, &service.ProgressUpdate{
		SectionID: req.SectionID,
		Completed: req.Completed,
		TimeSpent: req.TimeSpent,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSection):
			logger.Error("progress update error: invalid section", slog.String("section", req.SectionID))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid section ID", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("progress update error: session user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in", nil)
		default:
			logger.Error("progress update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating progress", nil)
		}
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"xp_earned":   result.XPEarned,
		"total_xp":    result.TotalXP,
		"streak_days": result.StreakDays,
	})
	logger.Info("progress updated", slog.String("section", req.SectionID))
}

// SubmitQuiz works with or without a session: anonymous submissions are
// scored but never persisted
func (s *Server) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req QuizSubmissionRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("quiz error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	sub := &service.QuizSubmission{
		Section: req.Section,
		Score:   req.Score,
		Total:   req.Total,
	}
	uid, loggedIn := GetUIDFromContext(r)
	var result *entity.QuizResult
	if loggedIn {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		result, err = s.progressService.RecordQuiz(ctx, uid, sub)
	} else {
		result, err = s.progressService.ScoreOnly(sub)
	}
	if err != nil {
		s.writeQuizError(w, logger, err)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"score":      result.Score,
		"total":      result.Total,
		"percentage": result.Percentage,
		"bonus_xp":   result.BonusXP,
		"logged_in":  result.LoggedIn,
	})
	logger.Info("quiz recorded", slog.String("section", req.Section), slog.Int("percentage", result.Percentage))
}

func (s *Server) writeQuizError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, errorvalues.ErrInvalidQuizTotal) {
		logger.Error("quiz error: non-positive total")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Quiz total must be positive", nil)
		return
	}
	logger.Error("quiz error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording quiz", nil)
}
