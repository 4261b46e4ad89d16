package domain

import (
	"fmt"
	"strings"
)

// PlayerClass is the archetype chosen once per player
type PlayerClass string

const (
	ClassNone    PlayerClass = ""
	ClassWarrior PlayerClass = "warrior"
	ClassMage    PlayerClass = "mage"
	ClassRogue   PlayerClass = "rogue"
	ClassArcher  PlayerClass = "archer"
)

// ParsePlayerClass parses a class name case-insensitively
func ParsePlayerClass(s string) (PlayerClass, error) {
	c := PlayerClass(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ClassWarrior, ClassMage, ClassRogue, ClassArcher:
		return c, nil
	}
	return ClassNone, fmt.Errorf("%w: %q", ErrInvalidClass, s)
}

// DamageBonus is the flat bonus the class adds to every attack
func (c PlayerClass) DamageBonus() int {
	switch c {
	case ClassWarrior:
		return WarriorDamageBonus
	case ClassArcher:
		return ArcherDamageBonus
	}
	return 0
}

// EquipmentSlot names one of the three equipment slots
type EquipmentSlot string

const (
	SlotWeapon   EquipmentSlot = "weapon"
	SlotArmor    EquipmentSlot = "armor"
	SlotArtifact EquipmentSlot = "artifact"
)

// ParseEquipmentSlot parses a slot name case-insensitively
func ParseEquipmentSlot(s string) (EquipmentSlot, error) {
	slot := EquipmentSlot(strings.ToLower(strings.TrimSpace(s)))
	switch slot {
	case SlotWeapon, SlotArmor, SlotArtifact:
		return slot, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEquipmentSlot, s)
}

// Equipment holds at most one item per slot
type Equipment struct {
	Weapon   *Item `json:"weapon"`
	Armor    *Item `json:"armor"`
	Artifact *Item `json:"artifact"`
}

// Get returns the item in slot, or nil
func (e *Equipment) Get(slot EquipmentSlot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotArtifact:
		return e.Artifact
	}
	return nil
}

// Set replaces the item in slot and returns the previous one
func (e *Equipment) Set(slot EquipmentSlot, item *Item) *Item {
	prev := e.Get(slot)
	switch slot {
	case SlotWeapon:
		e.Weapon = item
	case SlotArmor:
		e.Armor = item
	case SlotArtifact:
		e.Artifact = item
	}
	return prev
}

// WeaponPower is the power of the equipped weapon, zero when unarmed
func (e *Equipment) WeaponPower() int {
	if e.Weapon == nil {
		return 0
	}
	return e.Weapon.Power
}

func (e Equipment) clone() Equipment {
	cp := func(i *Item) *Item {
		if i == nil {
			return nil
		}
		v := *i
		return &v
	}
	return Equipment{Weapon: cp(e.Weapon), Armor: cp(e.Armor), Artifact: cp(e.Artifact)}
}

// Player is the live game state of one player
type Player struct {
	ID             int64       `json:"player_id"`
	Username       string      `json:"username"`
	Health         int         `json:"health"`
	MaxHealth      int         `json:"max_health"`
	Experience     int         `json:"experience"`
	Level          int         `json:"level"`
	Gold           int         `json:"gold"`
	LocationID     int         `json:"location_id"`
	Class          PlayerClass `json:"class"`
	Inventory      []Item      `json:"inventory"`
	Equipment      Equipment   `json:"equipment"`
	InCombat       bool        `json:"in_combat"`
	CurrentMonster *Monster    `json:"current_monster,omitempty"`
}

// NewPlayer returns the state of a player on first contact
func NewPlayer(id int64, username string) *Player {
	return &Player{
		ID:         id,
		Username:   username,
		Health:     DefaultMaxHealth,
		MaxHealth:  DefaultMaxHealth,
		Level:      StartingLevel,
		Gold:       StartingGold,
		LocationID: StartingLocationID,
		Inventory:  []Item{},
	}
}

// Clone returns a deep copy that shares nothing with p
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Inventory = append(make([]Item, 0, len(p.Inventory)), p.Inventory...)
	c.Equipment = p.Equipment.clone()
	c.CurrentMonster = p.CurrentMonster.Clone()
	return &c
}

// HasClass reports whether the class has been chosen
func (p *Player) HasClass() bool {
	return p.Class != ClassNone
}

// Heal raises health by amount, capped at MaxHealth, and returns the amount healed
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health = min(p.MaxHealth, p.Health+amount)
	return p.Health - before
}

// AddItem appends a copy of item to the inventory
func (p *Player) AddItem(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItemAt removes and returns the inventory entry at index
func (p *Player) RemoveItemAt(index int) (Item, error) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, fmt.Errorf("%w: no inventory entry at index %d", ErrItemNotFound, index)
	}
	item := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return item, nil
}

// ItemAt returns the inventory entry at index without removing it
func (p *Player) ItemAt(index int) (Item, error) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, fmt.Errorf("%w: no inventory entry at index %d", ErrItemNotFound, index)
	}
	return p.Inventory[index], nil
}

// FirstItemOfKind returns the index of the first inventory entry of kind, or -1
func (p *Player) FirstItemOfKind(kind ItemKind) int {
	for i, item := range p.Inventory {
		if item.Kind == kind {
			return i
		}
	}
	return -1
}

// EndCombat drops the combat instance
func (p *Player) EndCombat() {
	p.InCombat = false
	p.CurrentMonster = nil
}

// StartCombat installs m as the current opponent
func (p *Player) StartCombat(m Monster) {
	p.InCombat = true
	p.CurrentMonster = &m
}

// CheckInvariants returns an error describing the first broken state rule.
// Used by tests and by the store before persisting.
func (p *Player) CheckInvariants() error {
	switch {
	case p.Health < 0 || p.Health > p.MaxHealth:
		return fmt.Errorf("health %d outside [0, %d]", p.Health, p.MaxHealth)
	case p.Experience < 0:
		return fmt.Errorf("negative experience %d", p.Experience)
	case p.Level < 1:
		return fmt.Errorf("level %d below 1", p.Level)
	case p.Gold < 0:
		return fmt.Errorf("negative gold %d", p.Gold)
	case p.InCombat != (p.CurrentMonster != nil):
		return fmt.Errorf("in_combat=%t disagrees with current monster", p.InCombat)
	}
	return nil
}
