package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/QuestBot_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool reuses encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto a status and user-facing message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Info(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
