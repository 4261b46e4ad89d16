package domain

import "fmt"

// ActionType is the wire name of an Action variant
type ActionType string

const (
	ActionTypeExplore     ActionType = "explore"
	ActionTypeEnterCombat ActionType = "enter_combat"
	ActionTypeAttack      ActionType = "attack"
	ActionTypeFlee        ActionType = "flee"
	ActionTypeUsePotion   ActionType = "use_potion"
	ActionTypeMove        ActionType = "move"
	ActionTypeEquip       ActionType = "equip"
	ActionTypeUnequip     ActionType = "unequip"
	ActionTypeSell        ActionType = "sell"
	ActionTypeUseItem     ActionType = "use_item"
)

// Action is a player command. The set of variants is closed: only the types
// in this file implement it.
type Action interface {
	Type() ActionType
	isAction()
}

type (
	ActionExplore     struct{}
	ActionEnterCombat struct{}
	ActionAttack      struct{}
	ActionFlee        struct{}
	ActionUsePotion   struct{}
	ActionMove        struct{ Target int }
	ActionEquip       struct{ Index int }
	ActionUnequip     struct{ Slot EquipmentSlot }
	ActionSell        struct{ Index int }
	ActionUseItem     struct{ Index int }
)

func (ActionExplore) Type() ActionType     { return ActionTypeExplore }
func (ActionEnterCombat) Type() ActionType { return ActionTypeEnterCombat }
func (ActionAttack) Type() ActionType      { return ActionTypeAttack }
func (ActionFlee) Type() ActionType        { return ActionTypeFlee }
func (ActionUsePotion) Type() ActionType   { return ActionTypeUsePotion }
func (ActionMove) Type() ActionType        { return ActionTypeMove }
func (ActionEquip) Type() ActionType       { return ActionTypeEquip }
func (ActionUnequip) Type() ActionType     { return ActionTypeUnequip }
func (ActionSell) Type() ActionType        { return ActionTypeSell }
func (ActionUseItem) Type() ActionType     { return ActionTypeUseItem }

func (ActionExplore) isAction()     {}
func (ActionEnterCombat) isAction() {}
func (ActionAttack) isAction()      {}
func (ActionFlee) isAction()        {}
func (ActionUsePotion) isAction()   {}
func (ActionMove) isAction()        {}
func (ActionEquip) isAction()       {}
func (ActionUnequip) isAction()     {}
func (ActionSell) isAction()        {}
func (ActionUseItem) isAction()     {}

// CombatOnly reports whether the action is only legal during combat
func CombatOnly(a Action) bool {
	switch a.(type) {
	case ActionAttack, ActionFlee, ActionUsePotion:
		return true
	}
	return false
}

// AllowedInCombat reports whether the action may be taken while fighting
func AllowedInCombat(a Action) bool {
	switch a.(type) {
	case ActionAttack, ActionFlee, ActionUsePotion, ActionEquip, ActionUnequip, ActionSell:
		return true
	}
	return false
}

// ActionRequest is the flat wire form of an Action
type ActionRequest struct {
	Type       ActionType `json:"type"`
	LocationID int        `json:"location_id,omitempty"`
	Index      int        `json:"index,omitempty"`
	Slot       string     `json:"slot,omitempty"`
}

// ParseAction converts the wire form into a typed Action
func ParseAction(req ActionRequest) (Action, error) {
	switch req.Type {
	case ActionTypeExplore:
		return ActionExplore{}, nil
	case ActionTypeEnterCombat:
		return ActionEnterCombat{}, nil
	case ActionTypeAttack:
		return ActionAttack{}, nil
	case ActionTypeFlee:
		return ActionFlee{}, nil
	case ActionTypeUsePotion:
		return ActionUsePotion{}, nil
	case ActionTypeMove:
		return ActionMove{Target: req.LocationID}, nil
	case ActionTypeEquip:
		return ActionEquip{Index: req.Index}, nil
	case ActionTypeUnequip:
		slot, err := ParseEquipmentSlot(req.Slot)
		if err != nil {
			return nil, err
		}
		return ActionUnequip{Slot: slot}, nil
	case ActionTypeSell:
		return ActionSell{Index: req.Index}, nil
	case ActionTypeUseItem:
		return ActionUseItem{Index: req.Index}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Type)
}
