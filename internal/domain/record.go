package domain

import "time"

// EquipmentRecord is the persisted slot map; nil means an empty slot
type EquipmentRecord struct {
	Weapon   *int `json:"weapon"`
	Armor    *int `json:"armor"`
	Artifact *int `json:"artifact"`
}

// PlayerRecord is the persisted form of a Player. Items are stored by id and
// rehydrated from the catalog on load.
type PlayerRecord struct {
	ID         int64           `json:"player_id" db:"player_id"`
	Username   string          `json:"username" db:"username"`
	Health     int             `json:"health" db:"health"`
	MaxHealth  int             `json:"max_health" db:"max_health"`
	Experience int             `json:"experience" db:"experience"`
	Level      int             `json:"level" db:"level"`
	Gold       int             `json:"gold" db:"gold"`
	LocationID int             `json:"location_id" db:"location_id"`
	Class      string          `json:"player_class" db:"player_class"`
	Inventory  []int           `json:"inventory" db:"inventory"`
	Equipment  EquipmentRecord `json:"equipment" db:"equipment"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// ToRecord flattens p into its persisted form. Combat state is not persisted.
func (p *Player) ToRecord() PlayerRecord {
	ids := make([]int, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		ids = append(ids, item.ID)
	}
	id := func(i *Item) *int {
		if i == nil {
			return nil
		}
		v := i.ID
		return &v
	}
	return PlayerRecord{
		ID:         p.ID,
		Username:   p.Username,
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
		Experience: p.Experience,
		Level:      p.Level,
		Gold:       p.Gold,
		LocationID: p.LocationID,
		Class:      string(p.Class),
		Inventory:  ids,
		Equipment: EquipmentRecord{
			Weapon:   id(p.Equipment.Weapon),
			Armor:    id(p.Equipment.Armor),
			Artifact: id(p.Equipment.Artifact),
		},
	}
}
