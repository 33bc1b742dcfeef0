package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Every API response carries an explicit success indicator
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Success: false,
		Error:   message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteSuccessResponse injects "success": true into the payload map
func WriteSuccessResponse(w http.ResponseWriter, statusCode int, body map[string]any) {
	if body == nil {
		body = make(map[string]any, 1)
	}
	body["success"] = true
	WriteJSONResponse(w, statusCode, body)
}
