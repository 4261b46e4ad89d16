package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

var (
	rustySword = domain.Item{ID: 1, Name: "Ржавый меч", Kind: domain.ItemKindWeapon, Power: 10, Price: 20}
	shield     = domain.Item{ID: 2, Name: "Деревянный щит", Kind: domain.ItemKindArmor, Power: 5, Price: 15}
	potion     = domain.Item{ID: 4, Name: "Зелье здоровья", Kind: domain.ItemKindPotion, Power: 20, Price: 10}
	bow        = domain.Item{ID: 6, Name: "Лук охотника", Kind: domain.ItemKindWeapon, Power: 12, Price: 40}
	ring       = domain.Item{ID: 7, Name: "Кольцо силы", Kind: domain.ItemKindArtifact, Power: 5, Price: 100}
)

func playerWith(items ...domain.Item) *domain.Player {
	p := domain.NewPlayer(1, "hero")
	p.Class = domain.ClassWarrior
	p.Inventory = append([]domain.Item{}, items...)
	return p
}

// heldIDs returns every item id held anywhere by the player
func heldIDs(p *domain.Player) []int {
	ids := p.ToRecord().Inventory
	for _, slot := range []domain.EquipmentSlot{domain.SlotWeapon, domain.SlotArmor, domain.SlotArtifact} {
		if item := p.Equipment.Get(slot); item != nil {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func TestEquip(t *testing.T) {
	t.Run("slot follows kind", func(t *testing.T) {
		p := playerWith(rustySword, shield, ring)

		_, err := Equip(p, 2)
		require.NoError(t, err)
		_, err = Equip(p, 1)
		require.NoError(t, err)
		_, err = Equip(p, 0)
		require.NoError(t, err)

		assert.Empty(t, p.Inventory)
		assert.Equal(t, 1, p.Equipment.Weapon.ID)
		assert.Equal(t, 2, p.Equipment.Armor.ID)
		assert.Equal(t, 7, p.Equipment.Artifact.ID)
	})

	t.Run("swapped item returns to inventory", func(t *testing.T) {
		p := playerWith(rustySword, bow)
		_, err := Equip(p, 0)
		require.NoError(t, err)

		_, err = Equip(p, 0)
		require.NoError(t, err)

		assert.Equal(t, 6, p.Equipment.Weapon.ID)
		require.Len(t, p.Inventory, 1)
		assert.Equal(t, 1, p.Inventory[0].ID)
	})

	t.Run("potions cannot be equipped", func(t *testing.T) {
		p := playerWith(potion)
		_, err := Equip(p, 0)
		assert.ErrorIs(t, err, domain.ErrNotEquippable)
		assert.Len(t, p.Inventory, 1)
	})

	t.Run("bad index", func(t *testing.T) {
		p := playerWith(rustySword)
		_, err := Equip(p, 3)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestEquipUnequipRoundTrip(t *testing.T) {
	for i, item := range []domain.Item{rustySword, shield, ring} {
		t.Run(item.Name, func(t *testing.T) {
			p := playerWith(rustySword, shield, potion, ring)
			before := heldIDs(p)

			equipped, err := Equip(p, []int{0, 1, 3}[i])
			require.NoError(t, err)
			slot, _ := equipped.Kind.Slot()
			_, err = Unequip(p, slot)
			require.NoError(t, err)

			assert.ElementsMatch(t, before, heldIDs(p))
			assert.Nil(t, p.Equipment.Get(slot))
		})
	}
}

func TestUnequipEmptySlot(t *testing.T) {
	p := playerWith()
	_, err := Unequip(p, domain.SlotArmor)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSell(t *testing.T) {
	p := playerWith(rustySword, shield)

	item, gold, err := Sell(p, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, item.ID)
	assert.Equal(t, 7, gold)
	assert.Equal(t, 57, p.Gold)
	require.Len(t, p.Inventory, 1)

	_, _, err = Sell(p, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 57, p.Gold)
}

func TestUse(t *testing.T) {
	t.Run("potion heals and is consumed", func(t *testing.T) {
		p := playerWith(rustySword, potion)
		p.Health = 70

		item, healed, err := Use(p, 1)

		require.NoError(t, err)
		assert.Equal(t, 4, item.ID)
		assert.Equal(t, 20, healed)
		assert.Equal(t, 90, p.Health)
		assert.Len(t, p.Inventory, 1)
	})

	t.Run("weapons are not usable", func(t *testing.T) {
		p := playerWith(rustySword)
		_, _, err := Use(p, 0)
		assert.ErrorIs(t, err, domain.ErrNotUsable)
	})

	t.Run("rejected in combat", func(t *testing.T) {
		p := playerWith(potion)
		p.StartCombat(domain.Monster{Name: "Волк", Health: 10})
		_, _, err := Use(p, 0)
		assert.ErrorIs(t, err, domain.ErrAlreadyInCombat)
		assert.Len(t, p.Inventory, 1)
	})
}
