package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
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

// respondServiceError logs a failed service call and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opMessage string, err error) {
	status, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opMessage, "error", err)
	} else {
		log.Warn(opMessage, "error", err, "status", status)
	}
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgProjectNotFoundErr  = "Project not found"
	ErrMsgNodeNotFoundError   = "No tree node at that path"
	ErrMsgItemNotFoundError   = "Item is not part of this project"
	ErrMsgInvalidRecipeError  = "Recipe is invalid"
	ErrMsgDuplicateRecipeErr  = "A recipe with that id already exists"
	ErrMsgRecipeCycleError    = "Recipes form a cycle"
	ErrMsgTooDeepError        = "Recipe tree is too deep"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message
// that does not leak internal detail. Validation failures keep their message since
// it names the offending field.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, ErrMsgProjectNotFoundErr
	case errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound, ErrMsgNodeNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDuplicateRecipe):
		return http.StatusConflict, ErrMsgDuplicateRecipeErr
	case errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRecipeCycle):
		return http.StatusBadRequest, ErrMsgRecipeCycleError
	case errors.Is(err, domain.ErrExpansionTooDeep):
		return http.StatusBadRequest, ErrMsgTooDeepError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
