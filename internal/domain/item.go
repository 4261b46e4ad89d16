package domain

// ItemKind classifies an item and decides which equipment slot, if any, it fits
type ItemKind string

const (
	ItemKindWeapon   ItemKind = "weapon"
	ItemKindArmor    ItemKind = "armor"
	ItemKindPotion   ItemKind = "potion"
	ItemKindArtifact ItemKind = "artifact"
	ItemKindMaterial ItemKind = "material"
)

// Valid reports whether k is a known item kind
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindWeapon, ItemKindArmor, ItemKindPotion, ItemKindArtifact, ItemKindMaterial:
		return true
	}
	return false
}

// Slot returns the equipment slot for equippable kinds
func (k ItemKind) Slot() (EquipmentSlot, bool) {
	switch k {
	case ItemKindWeapon:
		return SlotWeapon, true
	case ItemKindArmor:
		return SlotArmor, true
	case ItemKindArtifact:
		return SlotArtifact, true
	}
	return "", false
}

// Item is a catalog entry. Inventories and equipment hold value copies.
type Item struct {
	ID          int      `json:"item_id" yaml:"id" db:"item_id"`
	Name        string   `json:"name" yaml:"name" db:"name"`
	Kind        ItemKind `json:"kind" yaml:"kind" db:"kind"`
	Power       int      `json:"power" yaml:"power" db:"power"`
	Price       int      `json:"price" yaml:"price" db:"price"`
	Description string   `json:"description" yaml:"description" db:"description"`
}

// SellValue is what a merchant pays for the item
func (i Item) SellValue() int {
	return i.Price / SellPriceDivisor
}
