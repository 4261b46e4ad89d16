package domain

import "slices"

// LocationKind is the terrain of a location
type LocationKind string

const (
	LocationKindForest    LocationKind = "forest"
	LocationKindDungeon   LocationKind = "dungeon"
	LocationKindMountains LocationKind = "mountains"
	LocationKindVillage   LocationKind = "village"
	LocationKindRuins     LocationKind = "ruins"
)

// Valid reports whether k is a known location kind
func (k LocationKind) Valid() bool {
	switch k {
	case LocationKindForest, LocationKindDungeon, LocationKindMountains, LocationKindVillage, LocationKindRuins:
		return true
	}
	return false
}

// Location is a node of the world graph. Connections are outgoing edges.
type Location struct {
	ID            int          `json:"location_id" yaml:"id" db:"location_id"`
	Name          string       `json:"name" yaml:"name" db:"name"`
	Kind          LocationKind `json:"kind" yaml:"kind" db:"kind"`
	Description   string       `json:"description" yaml:"description" db:"description"`
	RequiredLevel int          `json:"required_level" yaml:"required_level" db:"required_level"`
	Connections   []int        `json:"connections" yaml:"connections" db:"connections"`
}

// ConnectsTo reports whether a direct edge leads from l to target
func (l Location) ConnectsTo(target int) bool {
	return slices.Contains(l.Connections, target)
}

// LocationView is a location as read at one moment: its monsters are fresh
// instances whose loot has already been rolled.
type LocationView struct {
	Location
	Monsters []Monster `json:"monsters"`
}
