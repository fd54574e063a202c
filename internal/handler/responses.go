package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hexlab-games/habitquest/internal/domain"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Character messages
	ErrMsgNoCharacterError     = "No character exists yet. Create one first."
	ErrMsgCharacterExistsError = "A character already exists. Delete or resurrect it instead."
	ErrMsgInvalidClassError    = "Unknown character class"

	// Quest messages
	ErrMsgQuestNotFoundError     = "Quest not found"
	ErrMsgInvalidDifficultyError = "Unknown difficulty"
	ErrMsgInvalidQuestTypeError  = "Unknown quest type"
	ErrMsgWrongQuestTypeError    = "That operation does not apply to this quest type"
	ErrMsgNoWeekdaysError        = "A daily quest needs at least one weekday"

	// Inventory messages
	ErrMsgItemNotFoundError = "Item not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal errors collapse to a generic message so nothing leaks to the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgNoCharacterError
	case errors.Is(err, domain.ErrCharacterExists):
		return http.StatusConflict, ErrMsgCharacterExistsError
	case errors.Is(err, domain.ErrInvalidClass):
		return http.StatusBadRequest, ErrMsgInvalidClassError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest, ErrMsgInvalidDifficultyError
	case errors.Is(err, domain.ErrInvalidQuestType):
		return http.StatusBadRequest, ErrMsgInvalidQuestTypeError
	case errors.Is(err, domain.ErrWrongQuestType):
		return http.StatusBadRequest, ErrMsgWrongQuestTypeError
	case errors.Is(err, domain.ErrNoWeekdaysSelected):
		return http.StatusBadRequest, ErrMsgNoWeekdaysError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// Wrapped errors with a domain base resolve through unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
