package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgAnimalNotFound = "animal not found"
	ErrMsgInvalidAnimal  = "invalid animal definition"

	// Game lifecycle errors
	ErrMsgNoActiveGame       = "no active game"
	ErrMsgGameInProgress     = "a game is already in progress"
	ErrMsgHarvestPending     = "a harvest is waiting to be collected"
	ErrMsgNotReadyToHarvest  = "animal is not ready to harvest"
	ErrMsgInvalidTimeMode    = "invalid time mode"
	ErrMsgInvalidExperience  = "experience amount must not be negative"
	ErrMsgStorageUnavailable = "storage unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrAnimalNotFound = errors.New(ErrMsgAnimalNotFound)
	ErrInvalidAnimal  = errors.New(ErrMsgInvalidAnimal)

	// Game lifecycle errors
	ErrNoActiveGame            = errors.New(ErrMsgNoActiveGame)
	ErrGameInProgress          = errors.New(ErrMsgGameInProgress)
	ErrHarvestPending          = errors.New(ErrMsgHarvestPending)
	ErrNotReadyToHarvest       = errors.New(ErrMsgNotReadyToHarvest)
	ErrInvalidTimeMode         = errors.New(ErrMsgInvalidTimeMode)
	ErrInvalidExperienceAmount = errors.New(ErrMsgInvalidExperience)

	// Persistence errors
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
