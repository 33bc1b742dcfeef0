package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/yavin/platform/internal/catalog"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/entity"
	"github.com/yavin/platform/pkg/httputil"
)

type NewsletterRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
	PageURL string `json:"page_url"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query().Get("q")
	results := catalog.Search(query)
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
	logger.Info("search served", slog.Int("results", len(results)))
}

func (s *Server) Certificate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	cert, eligibility, err := s.certificateService.Generate(ctx, uid)
	if err != nil {
		logger.Error("certificate error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating certificate", nil)
		return
	}
	if eligibility != nil {
		httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
			"eligible":  false,
			"remaining": eligibility.Remaining,
		})
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"eligible":    true,
		"certificate": cert,
	})
	logger.Info("certificate generated")
}

func (s *Server) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req NewsletterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("newsletter error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	message, err := s.newsletterService.Subscribe(ctx, req.Email, req.Source)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidEmail) {
			logger.Error("newsletter error: invalid email")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Please enter a valid email address", nil)
			return
		}
		logger.Error("newsletter error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while subscribing", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"message": message,
	})
	logger.Info("newsletter subscription handled")
}

func (s *Server) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req FeedbackRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("feedback error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		logger.Error("feedback error: missing message")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Feedback message is required", nil)
		return
	}
	var userID *uuid.UUID
	if uid, ok := GetUIDFromContext(r); ok {
		userID = &uid
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.feedbackService.Submit(ctx, &entity.Feedback{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Message: req.Message,
		PageURL: req.PageURL,
	})
	if err != nil {
		logger.Error("feedback error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving feedback", nil)
		return
	}
	httputil.WriteSuccessResponse(w, http.StatusOK, map[string]any{
		"message": "Thank you for your feedback!",
	})
	logger.Info("feedback saved")
}

// Chat proxies the assistant question to the completion API. Upstream
// failures never surface as errors, the client always gets a readable answer
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ChatRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || strings.TrimSpace(req.Message) == "" {
		logger.Error("chat error: missing message")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Message is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*35)
	defer cancel()
	answer := s.chat.Ask(ctx, req.Message)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"response": answer,
	})
	logger.Info("chat answered")
}
