package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/yavin/platform/pkg/httputil"
)

type contextKey string

var (
	requestIDContextKey = contextKey("Request-ID")
	loggerContextKey    = contextKey("Logger")
	uidContextKey       = contextKey("User-ID")
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// SessionMiddleware resolves the session cookie to a user id. A missing,
// malformed or unknown cookie means anonymous, never an error
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := s.sessions.Resolve(r.Context(), r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		logger = logger.With(slog.String("uid", uid.String()))
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		ctx = context.WithValue(ctx, loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) RequireUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUIDFromContext(r); !ok {
			logger := GetLoggerFromCtx(r.Context())
			logger.Error("rejected anonymous request to protected route")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, bool) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	return uid, ok
}
