package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player id"
	ErrMsgUnknownAction         = "Unknown action"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgResourceNotFound   = "Resource not found."
	ErrMsgServerFull         = "The world is full right now. Please try again later."
	ErrMsgActionNotAllowed   = "You can't do that right now."
)

// User-facing messages for specific domain errors
const (
	ErrMsgPlayerNotFoundError     = "Player not found"
	ErrMsgNoSessionError          = "You are not playing. Register to start a session."
	ErrMsgItemNotFoundError       = "You don't have that item"
	ErrMsgLocationNotFoundError   = "That location does not exist"
	ErrMsgNotInCombatError        = "You are not in combat"
	ErrMsgAlreadyInCombatError    = "You can't do that while fighting"
	ErrMsgNoMonsterError          = "There are no monsters here"
	ErrMsgNoPotionError           = "You have no potions"
	ErrMsgClassNotChosenError     = "Choose a class first"
	ErrMsgClassAlreadyChosenError = "You have already chosen a class"
	ErrMsgInsufficientLevelError  = "Your level is too low for that location"
	ErrMsgNotConnectedError       = "You can't get there from here"
	ErrMsgNotEquippableError      = "That item can't be equipped"
	ErrMsgNotUsableError          = "That item can't be used"
	ErrMsgInvalidClassError       = "Unknown class. Choose warrior, mage, rogue or archer"
	ErrMsgInvalidSlotError        = "Unknown slot. Use weapon, armor or artifact"
)

// Success messages
const (
	MsgSessionEnded  = "Session ended"
	MsgPlayerDeleted = "Player deleted"
)

type errorMapping struct {
	err    error
	status int
	msg    string
}

// serviceErrorMappings is checked in order, so specific errors come before their kinds
var serviceErrorMappings = []errorMapping{
	{domain.ErrPlayerNotFound, http.StatusNotFound, ErrMsgPlayerNotFoundError},
	{domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgNoSessionError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrLocationNotFound, http.StatusNotFound, ErrMsgLocationNotFoundError},
	{domain.ErrNotFound, http.StatusNotFound, ErrMsgResourceNotFound},

	{domain.ErrCapacityExceeded, http.StatusTooManyRequests, ErrMsgServerFull},

	{domain.ErrNotInCombat, http.StatusConflict, ErrMsgNotInCombatError},
	{domain.ErrAlreadyInCombat, http.StatusConflict, ErrMsgAlreadyInCombatError},
	{domain.ErrNoMonsterAvailable, http.StatusConflict, ErrMsgNoMonsterError},
	{domain.ErrNoPotionAvailable, http.StatusConflict, ErrMsgNoPotionError},
	{domain.ErrClassNotChosen, http.StatusConflict, ErrMsgClassNotChosenError},
	{domain.ErrClassAlreadyChosen, http.StatusConflict, ErrMsgClassAlreadyChosenError},
	{domain.ErrInsufficientLevel, http.StatusConflict, ErrMsgInsufficientLevelError},
	{domain.ErrNotConnected, http.StatusConflict, ErrMsgNotConnectedError},
	{domain.ErrNotEquippable, http.StatusConflict, ErrMsgNotEquippableError},
	{domain.ErrNotUsable, http.StatusConflict, ErrMsgNotUsableError},
	{domain.ErrInvalidTransition, http.StatusConflict, ErrMsgActionNotAllowed},

	{domain.ErrInvalidClass, http.StatusBadRequest, ErrMsgInvalidClassError},
	{domain.ErrInvalidEquipmentSlot, http.StatusBadRequest, ErrMsgInvalidSlotError},
	{domain.ErrUnknownAction, http.StatusBadRequest, ErrMsgUnknownAction},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestSummary},

	{domain.ErrPersistenceFailure, http.StatusServiceUnavailable, ErrMsgUnavailableError},
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Anything unrecognised is a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	for _, m := range serviceErrorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
