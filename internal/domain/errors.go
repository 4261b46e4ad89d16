package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error kinds
	ErrMsgNotFound           = "not found"
	ErrMsgCapacityExceeded   = "capacity exceeded"
	ErrMsgInvalidTransition  = "invalid transition"
	ErrMsgPersistenceFailure = "persistence failure"
	ErrMsgInvalidInput       = "invalid input"

	// Lookups
	ErrMsgPlayerNotFound   = "player not found"
	ErrMsgItemNotFound     = "item not found"
	ErrMsgLocationNotFound = "location not found"
	ErrMsgSessionNotFound  = "no active session"

	// Combat
	ErrMsgNotInCombat          = "player is not in combat"
	ErrMsgAlreadyInCombat      = "player is in combat"
	ErrMsgNoMonsterAvailable   = "no monsters at this location"
	ErrMsgNoPotionAvailable    = "no potion in inventory"
	ErrMsgClassNotChosen       = "class has not been chosen"
	ErrMsgClassAlreadyChosen   = "class has already been chosen"
	ErrMsgInsufficientLevel    = "level too low for location"
	ErrMsgNotConnected         = "location is not connected"
	ErrMsgNotEquippable        = "item cannot be equipped"
	ErrMsgNotUsable            = "item cannot be used"
	ErrMsgInvalidClass         = "invalid class"
	ErrMsgInvalidEquipmentSlot = "invalid equipment slot"
	ErrMsgUnknownAction        = "unknown action type"
)

// Error kinds. Every specific error below wraps exactly one of these so callers
// can classify with errors.Is(err, domain.ErrInvalidTransition) and friends.
var (
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrCapacityExceeded   = errors.New(ErrMsgCapacityExceeded)
	ErrInvalidTransition  = errors.New(ErrMsgInvalidTransition)
	ErrPersistenceFailure = errors.New(ErrMsgPersistenceFailure)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound   = kind(ErrNotFound, ErrMsgPlayerNotFound)
	ErrItemNotFound     = kind(ErrNotFound, ErrMsgItemNotFound)
	ErrLocationNotFound = kind(ErrNotFound, ErrMsgLocationNotFound)
	ErrSessionNotFound  = kind(ErrNotFound, ErrMsgSessionNotFound)

	ErrNotInCombat        = kind(ErrInvalidTransition, ErrMsgNotInCombat)
	ErrAlreadyInCombat    = kind(ErrInvalidTransition, ErrMsgAlreadyInCombat)
	ErrNoMonsterAvailable = kind(ErrInvalidTransition, ErrMsgNoMonsterAvailable)
	ErrNoPotionAvailable  = kind(ErrInvalidTransition, ErrMsgNoPotionAvailable)
	ErrClassNotChosen     = kind(ErrInvalidTransition, ErrMsgClassNotChosen)
	ErrClassAlreadyChosen = kind(ErrInvalidTransition, ErrMsgClassAlreadyChosen)
	ErrInsufficientLevel  = kind(ErrInvalidTransition, ErrMsgInsufficientLevel)
	ErrNotConnected       = kind(ErrInvalidTransition, ErrMsgNotConnected)
	ErrNotEquippable      = kind(ErrInvalidTransition, ErrMsgNotEquippable)
	ErrNotUsable          = kind(ErrInvalidTransition, ErrMsgNotUsable)

	ErrInvalidClass         = kind(ErrInvalidInput, ErrMsgInvalidClass)
	ErrInvalidEquipmentSlot = kind(ErrInvalidInput, ErrMsgInvalidEquipmentSlot)
	ErrUnknownAction        = kind(ErrInvalidInput, ErrMsgUnknownAction)
)

// kindError is a specific error that also matches its kind under errors.Is
type kindError struct {
	kind error
	msg  string
}

func kind(k error, msg string) error {
	return &kindError{kind: k, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// PersistenceError wraps a backend failure so it classifies as ErrPersistenceFailure
// while keeping the underlying cause reachable.
func PersistenceError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistenceFailure, op, cause)
}
