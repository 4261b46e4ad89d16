package inventory

import (
	"fmt"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// Equip moves the inventory entry at index into the slot its kind belongs to.
// Whatever occupied the slot goes back to the end of the inventory.
func Equip(p *domain.Player, index int) (domain.Item, error) {
	item, err := p.ItemAt(index)
	if err != nil {
		return domain.Item{}, err
	}
	slot, ok := item.Kind.Slot()
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s is a %s", domain.ErrNotEquippable, item.Name, item.Kind)
	}

	if _, err := p.RemoveItemAt(index); err != nil {
		return domain.Item{}, err
	}
	if prev := p.Equipment.Set(slot, &item); prev != nil {
		p.AddItem(*prev)
	}
	return item, nil
}

// Unequip empties slot and returns its item to the inventory
func Unequip(p *domain.Player, slot domain.EquipmentSlot) (domain.Item, error) {
	item := p.Equipment.Get(slot)
	if item == nil {
		return domain.Item{}, fmt.Errorf("%w: %s slot is empty", domain.ErrItemNotFound, slot)
	}
	p.Equipment.Set(slot, nil)
	p.AddItem(*item)
	return *item, nil
}

// Sell removes the inventory entry at index and credits half its price.
// Returns the item sold and the gold received.
func Sell(p *domain.Player, index int) (domain.Item, int, error) {
	item, err := p.RemoveItemAt(index)
	if err != nil {
		return domain.Item{}, 0, err
	}
	gold := item.SellValue()
	p.Gold += gold
	return item, gold, nil
}

// Use consumes a potion from the inventory outside of combat. In combat the
// turn-costing potion action applies instead.
func Use(p *domain.Player, index int) (domain.Item, int, error) {
	if p.InCombat {
		return domain.Item{}, 0, domain.ErrAlreadyInCombat
	}
	item, err := p.ItemAt(index)
	if err != nil {
		return domain.Item{}, 0, err
	}
	if item.Kind != domain.ItemKindPotion {
		return domain.Item{}, 0, fmt.Errorf("%w: %s is a %s", domain.ErrNotUsable, item.Name, item.Kind)
	}

	if _, err := p.RemoveItemAt(index); err != nil {
		return domain.Item{}, 0, err
	}
	return item, p.Heal(item.Power), nil
}
