package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/QuestBot_Go/internal/logger"
)

// URLParamPlayerID is the route parameter holding the player id
const URLParamPlayerID = "id"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
//	var req MoveRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerIDParam reads the {id} route parameter. On failure the response has
// already been written and ok is false.
func playerIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, URLParamPlayerID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid player id", "raw", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return 0, false
	}
	return id, true
}
