package game

import (
	"context"
	"fmt"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/inventory"
	"github.com/osse101/QuestBot_Go/internal/logger"
)

// ValidateAction rejects actions the player cannot take in its current state
func ValidateAction(p *domain.Player, action domain.Action) error {
	if !p.HasClass() {
		return domain.ErrClassNotChosen
	}
	if domain.CombatOnly(action) && !p.InCombat {
		return domain.ErrNotInCombat
	}
	if p.InCombat && !domain.AllowedInCombat(action) {
		return domain.ErrAlreadyInCombat
	}
	return nil
}

// Dispatch validates and applies one action to the player's session. The
// returned result carries the player as persisted after the action.
func (s *service) Dispatch(ctx context.Context, playerID int64, action domain.Action) (*domain.ActionResult, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)

	if action == nil {
		return nil, fmt.Errorf("%w: missing action", domain.ErrInvalidInput)
	}

	var result *domain.ActionResult
	p, err := s.sessions.Update(ctx, playerID, func(p *domain.Player) error {
		if err := ValidateAction(p, action); err != nil {
			return err
		}
		var err error
		result, err = s.apply(p, action)
		if err != nil {
			return err
		}
		return p.CheckInvariants()
	})
	if err != nil {
		log.Info("Action rejected", "action", action.Type(), "error", err)
		return nil, err
	}

	result.Action = action.Type()
	result.Player = p
	recordMetrics(result)
	log.Debug("Action applied", "action", action.Type())
	return result, nil
}

func (s *service) apply(p *domain.Player, action domain.Action) (*domain.ActionResult, error) {
	result := &domain.ActionResult{}

	switch a := action.(type) {
	case domain.ActionExplore:
		out, err := s.explore(p)
		if err != nil {
			return nil, err
		}
		result.Explore = out
		result.GoldGained = out.Gold

	case domain.ActionEnterCombat:
		view, err := s.catalog.Location(p.LocationID, s.rnd)
		if err != nil {
			return nil, err
		}
		monster, err := s.resolver.EnterCombat(p, view)
		if err != nil {
			return nil, err
		}
		result.Combat = &domain.CombatOutcome{Result: domain.CombatOngoing, Monster: monster}

	case domain.ActionAttack:
		out, err := s.resolver.Attack(p)
		if err != nil {
			return nil, err
		}
		result.Combat = out
		result.GoldGained = out.GoldGained

	case domain.ActionFlee:
		out, err := s.resolver.Flee(p)
		if err != nil {
			return nil, err
		}
		result.Combat = out

	case domain.ActionUsePotion:
		out, err := s.resolver.UsePotion(p)
		if err != nil {
			return nil, err
		}
		result.Combat = out
		result.Healed = out.Healed

	case domain.ActionMove:
		if _, err := s.navigator.Move(p, a.Target); err != nil {
			return nil, err
		}

	case domain.ActionEquip:
		item, err := inventory.Equip(p, a.Index)
		if err != nil {
			return nil, err
		}
		result.Item = &item

	case domain.ActionUnequip:
		item, err := inventory.Unequip(p, a.Slot)
		if err != nil {
			return nil, err
		}
		result.Item = &item

	case domain.ActionSell:
		item, gold, err := inventory.Sell(p, a.Index)
		if err != nil {
			return nil, err
		}
		result.Item = &item
		result.GoldGained = gold

	case domain.ActionUseItem:
		item, healed, err := inventory.Use(p, a.Index)
		if err != nil {
			return nil, err
		}
		result.Item = &item
		result.Healed = healed

	default:
		return nil, fmt.Errorf("%w: unsupported action %T", domain.ErrInvalidInput, action)
	}
	return result, nil
}

// explore takes one draw to choose between an encounter, a find and nothing.
// Finds take a second draw to choose between an item and gold.
func (s *service) explore(p *domain.Player) (*domain.ExploreOutcome, error) {
	r := s.rnd()
	switch {
	case r < domain.ExploreMonsterThreshold:
		view, err := s.catalog.Location(p.LocationID, s.rnd)
		if err != nil {
			return nil, err
		}
		if len(view.Monsters) == 0 {
			return &domain.ExploreOutcome{Result: domain.ExploreNothing}, nil
		}
		monster, err := s.resolver.EnterCombat(p, view)
		if err != nil {
			return nil, err
		}
		return &domain.ExploreOutcome{Result: domain.ExploreMonster, Monster: monster}, nil

	case r < domain.ExploreFindThreshold:
		if s.rnd() < domain.ExploreItemChance {
			item, ok := s.catalog.RandomItem(s.rnd)
			if !ok {
				return &domain.ExploreOutcome{Result: domain.ExploreNothing}, nil
			}
			p.AddItem(item)
			return &domain.ExploreOutcome{Result: domain.ExploreItem, Item: &item}, nil
		}
		gold := s.randInt(domain.ExploreGoldMin, domain.ExploreGoldMax)
		p.Gold += gold
		return &domain.ExploreOutcome{Result: domain.ExploreGold, Gold: gold}, nil
	}
	return &domain.ExploreOutcome{Result: domain.ExploreNothing}, nil
}
