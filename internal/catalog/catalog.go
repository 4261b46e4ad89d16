package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/utils"
)

// Catalog is the immutable, in-memory view of the world. All methods are safe
// for concurrent use without locking.
type Catalog struct {
	items     map[int]domain.Item
	itemIDs   []int
	locations map[int]domain.Location
	locIDs    []int
	monsters  map[int][]domain.MonsterTemplate // by location id
}

// New validates world and builds a catalog from it
func New(world domain.World) (*Catalog, error) {
	if err := Validate(world); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:     make(map[int]domain.Item, len(world.Items)),
		locations: make(map[int]domain.Location, len(world.Locations)),
		monsters:  make(map[int][]domain.MonsterTemplate),
	}
	for _, item := range world.Items {
		c.items[item.ID] = item
		c.itemIDs = append(c.itemIDs, item.ID)
	}
	for _, loc := range world.Locations {
		loc.Connections = slices.Clone(loc.Connections)
		c.locations[loc.ID] = loc
		c.locIDs = append(c.locIDs, loc.ID)
	}
	for _, m := range world.Monsters {
		m.Loot = slices.Clone(m.Loot)
		c.monsters[m.LocationID] = append(c.monsters[m.LocationID], m)
	}
	slices.Sort(c.itemIDs)
	slices.Sort(c.locIDs)
	for id := range c.monsters {
		slices.SortFunc(c.monsters[id], func(a, b domain.MonsterTemplate) int { return a.ID - b.ID })
	}
	return c, nil
}

// Validate checks that ids are unique and every reference resolves
func Validate(world domain.World) error {
	var errs []error

	items := make(map[int]bool, len(world.Items))
	for _, item := range world.Items {
		if items[item.ID] {
			errs = append(errs, fmt.Errorf("duplicate item id %d", item.ID))
		}
		items[item.ID] = true
		if !item.Kind.Valid() {
			errs = append(errs, fmt.Errorf("item %d: unknown kind %q", item.ID, item.Kind))
		}
		if item.Price < 0 || item.Power < 0 {
			errs = append(errs, fmt.Errorf("item %d: negative price or power", item.ID))
		}
	}

	locs := make(map[int]bool, len(world.Locations))
	for _, loc := range world.Locations {
		if locs[loc.ID] {
			errs = append(errs, fmt.Errorf("duplicate location id %d", loc.ID))
		}
		locs[loc.ID] = true
		if !loc.Kind.Valid() {
			errs = append(errs, fmt.Errorf("location %d: unknown kind %q", loc.ID, loc.Kind))
		}
		if loc.RequiredLevel < 1 {
			errs = append(errs, fmt.Errorf("location %d: required level must be at least 1", loc.ID))
		}
	}
	if len(world.Locations) > 0 && !locs[domain.StartingLocationID] {
		errs = append(errs, fmt.Errorf("starting location %d is missing", domain.StartingLocationID))
	}
	for _, loc := range world.Locations {
		for _, to := range loc.Connections {
			if !locs[to] {
				errs = append(errs, fmt.Errorf("location %d: connection to unknown location %d", loc.ID, to))
			}
		}
	}

	monsters := make(map[int]bool, len(world.Monsters))
	for _, m := range world.Monsters {
		if monsters[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate monster id %d", m.ID))
		}
		monsters[m.ID] = true
		if !locs[m.LocationID] {
			errs = append(errs, fmt.Errorf("monster %d: unknown location %d", m.ID, m.LocationID))
		}
		if m.Health <= 0 {
			errs = append(errs, fmt.Errorf("monster %d: health must be positive", m.ID))
		}
		for _, l := range m.Loot {
			if !items[l.ItemID] {
				errs = append(errs, fmt.Errorf("monster %d: loot references unknown item %d", m.ID, l.ItemID))
			}
			if l.DropChance < 0 || l.DropChance > 1 {
				errs = append(errs, fmt.Errorf("monster %d: drop chance %v outside [0,1]", m.ID, l.DropChance))
			}
		}
	}

	for _, ids := range domain.StarterItems {
		for _, id := range ids {
			if len(world.Items) > 0 && !items[id] {
				errs = append(errs, fmt.Errorf("starter item %d is missing", id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid world: %w", errors.Join(errs...))
	}
	return nil
}

// Item returns the item with the given id
func (c *Catalog) Item(id int) (domain.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Items lists every item in id order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, 0, len(c.itemIDs))
	for _, id := range c.itemIDs {
		out = append(out, c.items[id])
	}
	return out
}

// RandomItem picks an item uniformly using rnd
func (c *Catalog) RandomItem(rnd func() float64) (domain.Item, bool) {
	i := utils.RandomIndex(rnd, len(c.itemIDs))
	if i < 0 {
		return domain.Item{}, false
	}
	return c.items[c.itemIDs[i]], true
}

// LocationInfo returns the static definition of a location
func (c *Catalog) LocationInfo(id int) (domain.Location, error) {
	loc, ok := c.locations[id]
	if !ok {
		return domain.Location{}, fmt.Errorf("%w: id %d", domain.ErrLocationNotFound, id)
	}
	loc.Connections = slices.Clone(loc.Connections)
	return loc, nil
}

// Location resolves a location together with fresh monster instances. Each
// monster gets one draw from rnd; every loot row whose drop chance is at least
// that draw contributes its item.
func (c *Catalog) Location(id int, rnd func() float64) (domain.LocationView, error) {
	loc, err := c.LocationInfo(id)
	if err != nil {
		return domain.LocationView{}, err
	}

	templates := c.monsters[id]
	view := domain.LocationView{Location: loc, Monsters: make([]domain.Monster, 0, len(templates))}
	for _, t := range templates {
		view.Monsters = append(view.Monsters, t.Spawn(c.rollLoot(t, rnd())))
	}
	return view, nil
}

func (c *Catalog) rollLoot(t domain.MonsterTemplate, draw float64) []domain.Item {
	var loot []domain.Item
	for _, entry := range t.Loot {
		if entry.DropChance < draw {
			continue
		}
		if item, ok := c.items[entry.ItemID]; ok {
			loot = append(loot, item)
		}
	}
	return loot
}

// MonsterTemplates lists the templates living at a location, in id order
func (c *Catalog) MonsterTemplates(locationID int) []domain.MonsterTemplate {
	return slices.Clone(c.monsters[locationID])
}

// Locations lists every location in id order
func (c *Catalog) Locations() []domain.Location {
	out := make([]domain.Location, 0, len(c.locIDs))
	for _, id := range c.locIDs {
		loc := c.locations[id]
		loc.Connections = slices.Clone(loc.Connections)
		out = append(out, loc)
	}
	return out
}

// World returns the full content the catalog was built from, in id order
func (c *Catalog) World() domain.World {
	w := domain.World{Items: c.Items(), Locations: c.Locations()}
	for _, id := range c.locIDs {
		w.Monsters = append(w.Monsters, c.MonsterTemplates(id)...)
	}
	slices.SortFunc(w.Monsters, func(a, b domain.MonsterTemplate) int { return a.ID - b.ID })
	return w
}
