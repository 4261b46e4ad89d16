package handler

import (
	"context"
	"net/http"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/game"
)

// MoveRequest names the destination location
type MoveRequest struct {
	LocationID int `json:"location_id" validate:"required,gt=0"`
}

// IndexRequest addresses one inventory entry
type IndexRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// UnequipRequest names the slot to empty
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,equipslot"`
}

// ActionRequest is the generic action envelope
type ActionRequest struct {
	Type       string `json:"type" validate:"required"`
	LocationID int    `json:"location_id,omitempty" validate:"gte=0"`
	Index      int    `json:"index,omitempty" validate:"gte=0"`
	Slot       string `json:"slot,omitempty"`
}

type actionFunc func(ctx context.Context, playerID int64) (*domain.ActionResult, error)

// handleAction runs a body-less action for the {id} player
func handleAction(opName string, action actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		res, err := action(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, newActionResponse(res))
	}
}

// handleActionWithBody decodes REQ and runs the action it describes
func handleActionWithBody[REQ any](opName string, action func(ctx context.Context, playerID int64, req REQ) (*domain.ActionResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		var req REQ
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}
		res, err := action(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, newActionResponse(res))
	}
}

// HandleExplore handles POST /players/{id}/explore
func HandleExplore(svc game.Service) http.HandlerFunc {
	return handleAction("Explore", svc.Explore)
}

// HandleEnterCombat handles POST /players/{id}/combat
func HandleEnterCombat(svc game.Service) http.HandlerFunc {
	return handleAction("Enter combat", svc.EnterCombat)
}

// HandleAttack handles POST /players/{id}/combat/attack
func HandleAttack(svc game.Service) http.HandlerFunc {
	return handleAction("Attack", svc.Attack)
}

// HandleFlee handles POST /players/{id}/combat/flee
func HandleFlee(svc game.Service) http.HandlerFunc {
	return handleAction("Flee", svc.Flee)
}

// HandleUsePotion handles POST /players/{id}/combat/potion
func HandleUsePotion(svc game.Service) http.HandlerFunc {
	return handleAction("Use potion", svc.UsePotion)
}

// HandleMove handles POST /players/{id}/move
func HandleMove(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Move", func(ctx context.Context, id int64, req MoveRequest) (*domain.ActionResult, error) {
		return svc.Move(ctx, id, req.LocationID)
	})
}

// HandleEquip handles POST /players/{id}/equip
func HandleEquip(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Equip", func(ctx context.Context, id int64, req IndexRequest) (*domain.ActionResult, error) {
		return svc.Equip(ctx, id, *req.Index)
	})
}

// HandleUnequip handles POST /players/{id}/unequip
func HandleUnequip(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Unequip", func(ctx context.Context, id int64, req UnequipRequest) (*domain.ActionResult, error) {
		slot, err := domain.ParseEquipmentSlot(req.Slot)
		if err != nil {
			return nil, err
		}
		return svc.Unequip(ctx, id, slot)
	})
}

// HandleSell handles POST /players/{id}/sell
func HandleSell(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Sell", func(ctx context.Context, id int64, req IndexRequest) (*domain.ActionResult, error) {
		return svc.Sell(ctx, id, *req.Index)
	})
}

// HandleUseItem handles POST /players/{id}/use
func HandleUseItem(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Use item", func(ctx context.Context, id int64, req IndexRequest) (*domain.ActionResult, error) {
		return svc.UseItem(ctx, id, *req.Index)
	})
}

// HandleDispatch handles POST /players/{id}/actions
func HandleDispatch(svc game.Service) http.HandlerFunc {
	return handleActionWithBody("Action", func(ctx context.Context, id int64, req ActionRequest) (*domain.ActionResult, error) {
		action, err := domain.ParseAction(domain.ActionRequest{
			Type:       domain.ActionType(req.Type),
			LocationID: req.LocationID,
			Index:      req.Index,
			Slot:       req.Slot,
		})
		if err != nil {
			return nil, err
		}
		return svc.Dispatch(ctx, id, action)
	})
}
