package handler

import (
	"net/http"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/game"
	"github.com/osse101/QuestBot_Go/internal/logger"
)

// RegisterPlayerRequest starts (or resumes) a player's session
type RegisterPlayerRequest struct {
	PlayerID int64  `json:"player_id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required,max=64,username"`
}

// ChooseClassRequest picks the player's class
type ChooseClassRequest struct {
	Class string `json:"class" validate:"required,playerclass"`
}

// HandleRegisterPlayer handles POST /players/register
func HandleRegisterPlayer(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		ctx := logger.WithPlayerID(r.Context(), req.PlayerID)
		p, err := svc.RegisterPlayer(ctx, req.PlayerID, req.Username)
		if err != nil {
			respondServiceError(w, r.WithContext(ctx), "Register player", err)
			return
		}
		respondJSON(w, http.StatusOK, newPlayerView(p))
	}
}

// HandleChooseClass handles POST /players/{id}/class
func HandleChooseClass(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		var req ChooseClassRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Choose class"); err != nil {
			return
		}

		p, err := svc.ChooseClass(r.Context(), id, domain.PlayerClass(req.Class))
		if err != nil {
			respondServiceError(w, r, "Choose class", err)
			return
		}
		respondJSON(w, http.StatusOK, newPlayerView(p))
	}
}

// HandleStatus handles GET /players/{id}
func HandleStatus(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		st, err := svc.Status(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Status", err)
			return
		}
		respondJSON(w, http.StatusOK, newStatusResponse(st))
	}
}

// HandleUnregister handles DELETE /players/{id}/session
func HandleUnregister(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.Unregister(r.Context(), id); err != nil {
			respondServiceError(w, r, "Unregister", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionEnded})
	}
}

// HandleDeletePlayer handles DELETE /players/{id}
func HandleDeletePlayer(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.DeletePlayer(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete player", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerDeleted})
	}
}

// HandleConnections handles GET /players/{id}/connections
func HandleConnections(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		locs, err := svc.Connections(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Connections", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: newLocationViews(locs)})
	}
}
