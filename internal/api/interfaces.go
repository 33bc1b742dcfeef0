package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type SessionServiceI interface {
	// Opens a session for uid and writes the signed cookie
	Start(ctx context.Context, w http.ResponseWriter, uid uuid.UUID) error
	// Maps the request's cookie to a user id, anonymous on any failure
	Resolve(ctx context.Context, r *http.Request) (uuid.UUID, bool)
	// Purges the session and expires the cookie
	End(ctx context.Context, w http.ResponseWriter, r *http.Request)
}

type ChatServiceI interface {
	// Always answers, degrading to canned text on any upstream failure
	Ask(ctx context.Context, message string) string
}
