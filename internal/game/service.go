// Package game is the engine facade: every player-facing operation enters
// here, runs against the player's session and is persisted before it returns.
package game

import (
	"context"
	"fmt"

	"github.com/osse101/QuestBot_Go/internal/catalog"
	"github.com/osse101/QuestBot_Go/internal/combat"
	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/logger"
	"github.com/osse101/QuestBot_Go/internal/navigation"
	"github.com/osse101/QuestBot_Go/internal/progression"
	"github.com/osse101/QuestBot_Go/internal/session"
	"github.com/osse101/QuestBot_Go/internal/utils"
)

// Service defines the engine operations
type Service interface {
	RegisterPlayer(ctx context.Context, playerID int64, username string) (*domain.Player, error)
	ChooseClass(ctx context.Context, playerID int64, class domain.PlayerClass) (*domain.Player, error)
	Explore(ctx context.Context, playerID int64) (*domain.ActionResult, error)
	EnterCombat(ctx context.Context, playerID int64) (*domain.ActionResult, error)
	Attack(ctx context.Context, playerID int64) (*domain.ActionResult, error)
	Flee(ctx context.Context, playerID int64) (*domain.ActionResult, error)
	UsePotion(ctx context.Context, playerID int64) (*domain.ActionResult, error)
	Move(ctx context.Context, playerID int64, target int) (*domain.ActionResult, error)
	Equip(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error)
	Unequip(ctx context.Context, playerID int64, slot domain.EquipmentSlot) (*domain.ActionResult, error)
	Sell(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error)
	UseItem(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error)
	Dispatch(ctx context.Context, playerID int64, action domain.Action) (*domain.ActionResult, error)
	Status(ctx context.Context, playerID int64) (*Status, error)
	Connections(ctx context.Context, playerID int64) ([]domain.Location, error)
	Unregister(ctx context.Context, playerID int64) error
	DeletePlayer(ctx context.Context, playerID int64) error
	Locations() []domain.Location
	Items() []domain.Item
}

// World bundles the state the engine operates on. The engine never touches the
// player store directly: Sessions owns it, loading players on registration and
// saving after every state change, on unregister and on deletion.
type World struct {
	Catalog  *catalog.Catalog
	Sessions *session.Registry
}

// Status is the read-only view of an active player
type Status struct {
	Player           *domain.Player  `json:"player"`
	Location         domain.Location `json:"location"`
	ExperienceToNext int             `json:"experience_to_next"`
	RequiredXP       int             `json:"required_experience"`
}

type service struct {
	catalog   *catalog.Catalog
	sessions  *session.Registry
	resolver  *combat.Resolver
	navigator *navigation.Navigator
	rnd       func() float64
	randInt   func(min, max int) int
}

// NewService creates the engine over w
func NewService(w World) Service {
	return newService(w, utils.RandomFloat, utils.RandomInt)
}

func newService(w World, rnd func() float64, randInt func(min, max int) int) *service {
	return &service{
		catalog:   w.Catalog,
		sessions:  w.Sessions,
		resolver:  combat.NewResolverWithRand(rnd, randInt),
		navigator: navigation.NewNavigator(w.Catalog),
		rnd:       rnd,
		randInt:   randInt,
	}
}

func (s *service) RegisterPlayer(ctx context.Context, playerID int64, username string) (*domain.Player, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)

	p, err := s.sessions.Register(ctx, playerID, username)
	if err != nil {
		log.Warn("Registration failed", "error", err)
		return nil, err
	}
	return p, nil
}

func (s *service) ChooseClass(ctx context.Context, playerID int64, class domain.PlayerClass) (*domain.Player, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)

	class, err := domain.ParsePlayerClass(string(class))
	if err != nil {
		return nil, err
	}

	p, err := s.sessions.Update(ctx, playerID, func(p *domain.Player) error {
		if p.HasClass() {
			return domain.ErrClassAlreadyChosen
		}
		p.Class = class
		for _, id := range domain.StarterItems[class] {
			item, err := s.catalog.Item(id)
			if err != nil {
				return fmt.Errorf("starter item: %w", err)
			}
			p.AddItem(item)
		}
		return nil
	})
	if err != nil {
		log.Warn("Choose class failed", "class", class, "error", err)
		return nil, err
	}
	log.Info("Class chosen", "class", class)
	return p, nil
}

func (s *service) Explore(ctx context.Context, playerID int64) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionExplore{})
}

func (s *service) EnterCombat(ctx context.Context, playerID int64) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionEnterCombat{})
}

func (s *service) Attack(ctx context.Context, playerID int64) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionAttack{})
}

func (s *service) Flee(ctx context.Context, playerID int64) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionFlee{})
}

func (s *service) UsePotion(ctx context.Context, playerID int64) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionUsePotion{})
}

func (s *service) Move(ctx context.Context, playerID int64, target int) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionMove{Target: target})
}

func (s *service) Equip(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionEquip{Index: index})
}

func (s *service) Unequip(ctx context.Context, playerID int64, slot domain.EquipmentSlot) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionUnequip{Slot: slot})
}

func (s *service) Sell(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionSell{Index: index})
}

func (s *service) UseItem(ctx context.Context, playerID int64, index int) (*domain.ActionResult, error) {
	return s.Dispatch(ctx, playerID, domain.ActionUseItem{Index: index})
}

func (s *service) Status(ctx context.Context, playerID int64) (*Status, error) {
	var st *Status
	err := s.sessions.View(playerID, func(p *domain.Player) error {
		loc, err := s.catalog.LocationInfo(p.LocationID)
		if err != nil {
			return err
		}
		st = &Status{
			Player:           p.Clone(),
			Location:         loc,
			ExperienceToNext: progression.ExperienceToNextLevel(p),
			RequiredXP:       progression.RequiredExperience(p.Level),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Connections(ctx context.Context, playerID int64) ([]domain.Location, error) {
	var locs []domain.Location
	err := s.sessions.View(playerID, func(p *domain.Player) error {
		var err error
		locs, err = s.navigator.Connections(p.LocationID)
		return err
	})
	return locs, err
}

func (s *service) Unregister(ctx context.Context, playerID int64) error {
	ctx = logger.WithPlayerID(ctx, playerID)
	if err := s.sessions.Unregister(ctx, playerID); err != nil {
		logger.FromContext(ctx).Warn("Unregister failed", "error", err)
		return err
	}
	return nil
}

func (s *service) DeletePlayer(ctx context.Context, playerID int64) error {
	ctx = logger.WithPlayerID(ctx, playerID)
	if err := s.sessions.Delete(ctx, playerID); err != nil {
		logger.FromContext(ctx).Error("Delete player failed", "error", err)
		return err
	}
	return nil
}

func (s *service) Locations() []domain.Location {
	return s.catalog.Locations()
}

func (s *service) Items() []domain.Item {
	return s.catalog.Items()
}
