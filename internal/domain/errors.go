package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgCharacterExists   = "character already exists"
	ErrMsgInvalidClass      = "invalid character class"

	// Quest errors
	ErrMsgQuestNotFound      = "quest not found"
	ErrMsgInvalidDifficulty  = "invalid difficulty"
	ErrMsgInvalidQuestType   = "invalid quest type"
	ErrMsgWrongQuestType     = "operation does not apply to this quest type"
	ErrMsgNoWeekdaysSelected = "daily quest needs at least one weekday"

	// Inventory errors
	ErrMsgItemNotFound = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterExists   = errors.New(ErrMsgCharacterExists)
	ErrInvalidClass      = errors.New(ErrMsgInvalidClass)

	// Quest errors
	ErrQuestNotFound      = errors.New(ErrMsgQuestNotFound)
	ErrInvalidDifficulty  = errors.New(ErrMsgInvalidDifficulty)
	ErrInvalidQuestType   = errors.New(ErrMsgInvalidQuestType)
	ErrWrongQuestType     = errors.New(ErrMsgWrongQuestType)
	ErrNoWeekdaysSelected = errors.New(ErrMsgNoWeekdaysSelected)

	// Inventory errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
