package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
)

type APIResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError maps application errors to HTTP responses. Internal errors
// never leak their cause to the client.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	message := err.Error()
	if statusCode >= http.StatusInternalServerError && statusCode != http.StatusServiceUnavailable {
		if svcErr, ok := application.IsServiceError(err); ok {
			message = svcErr.Message
		} else {
			message = "An internal error occurred"
		}
		logger.Error("request failed", "code", errorCode, "error", err)
	}

	writeResponse(w, statusCode, APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    errorCode,
			Message: message,
		},
	})
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeResponse(w, status, APIResponse{Success: true, Data: data})
}

func writeResponse(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
