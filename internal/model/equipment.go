package model

import (
	"log/slog"

	"github.com/takkar/brimstone/internal/data"
)

// EquipmentSet holds one item per fixed slot and caches the aggregate stat
// bonuses those items contribute. The cache is recomputed from scratch on
// every equipment change rather than maintained incrementally, so a missed
// update can never double-count.
type EquipmentSet struct {
	slots   map[data.EquipSlot]*data.ItemTemplate
	bonuses data.ItemBonuses
}

// NewEquipmentSet returns an empty equipment set.
func NewEquipmentSet() *EquipmentSet {
	return &EquipmentSet{slots: make(map[data.EquipSlot]*data.ItemTemplate, len(data.EquipSlots))}
}

// Equip places item into its slot and returns the displaced item, if any.
// The caller returns the displaced item to inventory.
func (e *EquipmentSet) Equip(item data.ItemTemplate) (displaced *data.ItemTemplate) {
	displaced = e.slots[item.Slot]
	it := item
	e.slots[item.Slot] = &it
	e.recompute()

	slog.Debug("equipped item", "item", item.ID, "slot", item.Slot)
	return displaced
}

// Unequip clears a slot and returns the removed item, if any.
func (e *EquipmentSet) Unequip(slot data.EquipSlot) *data.ItemTemplate {
	removed := e.slots[slot]
	if removed == nil {
		return nil
	}
	delete(e.slots, slot)
	e.recompute()
	return removed
}

// ItemIn returns the item occupying slot, or nil.
func (e *EquipmentSet) ItemIn(slot data.EquipSlot) *data.ItemTemplate {
	return e.slots[slot]
}

// Bonuses returns the cached aggregate bonuses of everything equipped.
func (e *EquipmentSet) Bonuses() data.ItemBonuses {
	return e.bonuses
}

// DamageReduction returns the stacked reduction fraction, capped so armor
// can never zero out incoming damage.
func (e *EquipmentSet) DamageReduction() float64 {
	r := e.bonuses.DamageReduction
	if capv := data.Combat().MaxDamageReduction; r > capv {
		return capv
	}
	if r < 0 {
		return 0
	}
	return r
}

// recompute rebuilds the bonus cache from the current slot contents.
func (e *EquipmentSet) recompute() {
	var total data.ItemBonuses
	for _, item := range e.slots {
		b := item.Bonuses
		total.AttackPower += b.AttackPower
		total.DamageReduction += b.DamageReduction
		total.MaxHealth += b.MaxHealth
		total.MaxMana += b.MaxMana
		total.MovementSpeed += b.MovementSpeed
		total.Strength += b.Strength
		total.Dexterity += b.Dexterity
		total.Intelligence += b.Intelligence
	}
	e.bonuses = total
}

// EquippedIDs returns slot → item id for everything equipped, for
// serialization and HUD display.
func (e *EquipmentSet) EquippedIDs() map[data.EquipSlot]string {
	out := make(map[data.EquipSlot]string, len(e.slots))
	for slot, item := range e.slots {
		out[slot] = item.ID
	}
	return out
}
