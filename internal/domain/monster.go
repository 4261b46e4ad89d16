package domain

// LootEntry is one row of a monster's loot table
type LootEntry struct {
	ItemID     int     `json:"item_id" yaml:"item_id" db:"item_id"`
	DropChance float64 `json:"drop_chance" yaml:"drop_chance" db:"drop_chance"`
}

// MonsterTemplate is the catalog definition a combat Monster is spawned from
type MonsterTemplate struct {
	ID          int         `json:"monster_id" yaml:"id" db:"monster_id"`
	Name        string      `json:"name" yaml:"name" db:"name"`
	Level       int         `json:"level" yaml:"level" db:"level"`
	Health      int         `json:"health" yaml:"health" db:"health"`
	Damage      int         `json:"damage" yaml:"damage" db:"damage"`
	Experience  int         `json:"experience" yaml:"experience" db:"experience"`
	LocationID  int         `json:"location_id" yaml:"location_id" db:"location_id"`
	Description string      `json:"description" yaml:"description" db:"description"`
	Loot        []LootEntry `json:"loot,omitempty" yaml:"loot"`
}

// Spawn creates a combat instance carrying the given rolled loot
func (t MonsterTemplate) Spawn(loot []Item) Monster {
	return Monster{
		TemplateID:  t.ID,
		Name:        t.Name,
		Level:       t.Level,
		Health:      t.Health,
		MaxHealth:   t.Health,
		Damage:      t.Damage,
		Experience:  t.Experience,
		Description: t.Description,
		Loot:        loot,
	}
}

// Monster is a transient combat instance. It is never persisted.
type Monster struct {
	TemplateID  int    `json:"monster_id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Health      int    `json:"health"`
	MaxHealth   int    `json:"max_health"`
	Damage      int    `json:"damage"`
	Experience  int    `json:"experience"`
	Description string `json:"description"`
	Loot        []Item `json:"loot,omitempty"`
}

// Defeated reports whether the monster has no health left
func (m *Monster) Defeated() bool {
	return m.Health <= 0
}

// Clone returns an independent copy
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	c := *m
	c.Loot = append([]Item(nil), m.Loot...)
	return &c
}
