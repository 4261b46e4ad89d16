package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sword() Item {
	return Item{ID: 1, Name: "Ржавый меч", Kind: ItemKindWeapon, Power: 10, Price: 20}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(7, "hero")

	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 50, p.Gold)
	assert.Equal(t, 1, p.LocationID)
	assert.False(t, p.HasClass())
	assert.NotNil(t, p.Inventory)
	require.NoError(t, p.CheckInvariants())
}

func TestPlayerCloneIsDeep(t *testing.T) {
	p := NewPlayer(1, "a")
	p.AddItem(sword())
	w := sword()
	p.Equipment.Weapon = &w
	p.StartCombat(Monster{Name: "Волк", Health: 25, Loot: []Item{sword()}})

	c := p.Clone()
	c.Inventory[0].Name = "changed"
	c.Equipment.Weapon.Power = 99
	c.CurrentMonster.Health = 1
	c.CurrentMonster.Loot[0].ID = 42

	assert.Equal(t, "Ржавый меч", p.Inventory[0].Name)
	assert.Equal(t, 10, p.Equipment.Weapon.Power)
	assert.Equal(t, 25, p.CurrentMonster.Health)
	assert.Equal(t, 1, p.CurrentMonster.Loot[0].ID)
}

func TestHealCapsAtMax(t *testing.T) {
	p := NewPlayer(1, "a")
	p.Health = 90

	assert.Equal(t, 10, p.Heal(20))
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 0, p.Heal(-5))
}

func TestRemoveItemAt(t *testing.T) {
	p := NewPlayer(1, "a")
	p.AddItem(Item{ID: 1})
	p.AddItem(Item{ID: 2})
	p.AddItem(Item{ID: 3})

	item, err := p.RemoveItemAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.ID)
	assert.Equal(t, []int{1, 3}, p.ToRecord().Inventory)

	_, err = p.RemoveItemAt(5)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = p.RemoveItemAt(-1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToRecord(t *testing.T) {
	p := NewPlayer(9, "x")
	p.Class = ClassMage
	p.AddItem(Item{ID: 10})
	staff := Item{ID: 5, Kind: ItemKindWeapon}
	p.Equipment.Weapon = &staff
	p.StartCombat(Monster{Name: "Гоблин"})

	rec := p.ToRecord()

	assert.Equal(t, int64(9), rec.ID)
	assert.Equal(t, "mage", rec.Class)
	assert.Equal(t, []int{10}, rec.Inventory)
	require.NotNil(t, rec.Equipment.Weapon)
	assert.Equal(t, 5, *rec.Equipment.Weapon)
	assert.Nil(t, rec.Equipment.Armor)
	assert.Nil(t, rec.Equipment.Artifact)
}

func TestParsePlayerClass(t *testing.T) {
	c, err := ParsePlayerClass(" Warrior ")
	require.NoError(t, err)
	assert.Equal(t, ClassWarrior, c)

	_, err = ParsePlayerClass("bard")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEquipmentSetReturnsPrevious(t *testing.T) {
	var e Equipment
	a, b := sword(), sword()
	b.ID = 6

	assert.Nil(t, e.Set(SlotWeapon, &a))
	prev := e.Set(SlotWeapon, &b)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.ID)
	assert.Equal(t, 10, e.WeaponPower())
}

func TestCheckInvariants(t *testing.T) {
	p := NewPlayer(1, "a")
	p.InCombat = true
	assert.Error(t, p.CheckInvariants())

	p = NewPlayer(1, "a")
	p.Health = 101
	assert.Error(t, p.CheckInvariants())
}

func TestItemKindSlot(t *testing.T) {
	slot, ok := ItemKindArtifact.Slot()
	assert.True(t, ok)
	assert.Equal(t, SlotArtifact, slot)

	_, ok = ItemKindPotion.Slot()
	assert.False(t, ok)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(ActionRequest{Type: ActionTypeMove, LocationID: 3})
	require.NoError(t, err)
	assert.Equal(t, ActionMove{Target: 3}, a)

	a, err = ParseAction(ActionRequest{Type: ActionTypeUnequip, Slot: "ARMOR"})
	require.NoError(t, err)
	assert.Equal(t, ActionUnequip{Slot: SlotArmor}, a)

	_, err = ParseAction(ActionRequest{Type: "dance"})
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.True(t, CombatOnly(ActionFlee{}))
	assert.False(t, AllowedInCombat(ActionMove{}))
	assert.True(t, AllowedInCombat(ActionSell{}))
}
