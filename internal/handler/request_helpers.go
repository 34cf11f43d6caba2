package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req StartGameRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetScaleParam reads the optional "scale" query parameter. A missing value yields fallback;
// a present value must parse as a positive finite number.
func GetScaleParam(r *http.Request, w http.ResponseWriter, fallback float64) (float64, bool) {
	raw := r.URL.Query().Get("scale")
	if raw == "" {
		return fallback, true
	}

	scale, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(scale > 0) || scale > maxScale {
		logger.FromContext(r.Context()).Warn("Invalid scale query parameter", "scale", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "scale"))
		return 0, false
	}
	return scale, true
}

// maxScale rejects absurd or infinite values from callers
const maxScale = 1e6
