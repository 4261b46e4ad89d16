package navigation

import (
	"fmt"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// LocationSource is the part of the catalog navigation reads
type LocationSource interface {
	LocationInfo(id int) (domain.Location, error)
}

// Navigator moves players along the world graph
type Navigator struct {
	locations LocationSource
}

// NewNavigator creates a navigator over the given locations
func NewNavigator(locations LocationSource) *Navigator {
	return &Navigator{locations: locations}
}

// Move relocates p to target. Checks run in a fixed order: combat, target
// existence, level requirement, then adjacency from the current location.
// p is untouched when any check fails.
func (n *Navigator) Move(p *domain.Player, target int) (domain.Location, error) {
	if p.InCombat {
		return domain.Location{}, domain.ErrAlreadyInCombat
	}

	dest, err := n.locations.LocationInfo(target)
	if err != nil {
		return domain.Location{}, err
	}

	if p.Level < dest.RequiredLevel {
		return domain.Location{}, fmt.Errorf("%w: %s requires level %d, player is level %d",
			domain.ErrInsufficientLevel, dest.Name, dest.RequiredLevel, p.Level)
	}

	current, err := n.locations.LocationInfo(p.LocationID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("current location: %w", err)
	}
	if !current.ConnectsTo(target) {
		return domain.Location{}, fmt.Errorf("%w: %s -> %s", domain.ErrNotConnected, current.Name, dest.Name)
	}

	p.LocationID = dest.ID
	return dest, nil
}

// Connections lists the locations reachable in one move from locationID
func (n *Navigator) Connections(locationID int) ([]domain.Location, error) {
	current, err := n.locations.LocationInfo(locationID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Location, 0, len(current.Connections))
	for _, id := range current.Connections {
		loc, err := n.locations.LocationInfo(id)
		if err != nil {
			return nil, fmt.Errorf("connection %d of %s: %w", id, current.Name, err)
		}
		out = append(out, loc)
	}
	return out, nil
}
