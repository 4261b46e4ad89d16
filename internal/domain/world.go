package domain

// World is the full static game content: items, locations and monsters with
// their loot tables.
type World struct {
	Items     []Item            `json:"items" yaml:"items"`
	Locations []Location        `json:"locations" yaml:"locations"`
	Monsters  []MonsterTemplate `json:"monsters" yaml:"monsters"`
}
