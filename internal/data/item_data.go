package data

// EquipSlot names a fixed equipment slot.
type EquipSlot string

const (
	SlotWeapon EquipSlot = "weapon"
	SlotHelmet EquipSlot = "helmet"
	SlotChest  EquipSlot = "chest"
	SlotLegs   EquipSlot = "legs"
	SlotBoots  EquipSlot = "boots"
	SlotGloves EquipSlot = "gloves"
	SlotAmulet EquipSlot = "amulet"
	SlotRing   EquipSlot = "ring"
)

// EquipSlots lists every slot in display order.
var EquipSlots = []EquipSlot{
	SlotWeapon, SlotHelmet, SlotChest, SlotLegs,
	SlotBoots, SlotGloves, SlotAmulet, SlotRing,
}

// ItemBonuses are the aggregate stat contributions of one equipped item.
// DamageReduction is a fraction in [0,1).
type ItemBonuses struct {
	AttackPower     float64 `yaml:"attack_power"`
	DamageReduction float64 `yaml:"damage_reduction"`
	MaxHealth       float64 `yaml:"max_health"`
	MaxMana         float64 `yaml:"max_mana"`
	MovementSpeed   float64 `yaml:"movement_speed"`
	Strength        int     `yaml:"strength"`
	Dexterity       int     `yaml:"dexterity"`
	Intelligence    int     `yaml:"intelligence"`
}

// ItemTemplate is the immutable definition of one item kind.
type ItemTemplate struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Slot    EquipSlot   `yaml:"slot"`
	Rarity  Rarity      `yaml:"rarity"`
	Bonuses ItemBonuses `yaml:"bonuses"`
}

// itemTable maps item id → template. Set by Load.
var itemTable = defaultItems()

func defaultItems() map[string]ItemTemplate {
	list := []ItemTemplate{
		{ID: "rusty_blade", Name: "Rusty Blade", Slot: SlotWeapon, Rarity: RarityCommon, Bonuses: ItemBonuses{AttackPower: 3}},
		{ID: "iron_blade", Name: "Iron Blade", Slot: SlotWeapon, Rarity: RarityUncommon, Bonuses: ItemBonuses{AttackPower: 8, Strength: 1}},
		{ID: "flamebrand", Name: "Flamebrand", Slot: SlotWeapon, Rarity: RarityEpic, Bonuses: ItemBonuses{AttackPower: 22, Strength: 3, Intelligence: 2}},
		{ID: "tyrants_maw", Name: "Tyrant's Maw", Slot: SlotWeapon, Rarity: RarityLegendary, Bonuses: ItemBonuses{AttackPower: 40, Strength: 6}},
		{ID: "cloth_hood", Name: "Cloth Hood", Slot: SlotHelmet, Rarity: RarityCommon, Bonuses: ItemBonuses{DamageReduction: 0.02, MaxHealth: 5}},
		{ID: "warden_helm", Name: "Warden Helm", Slot: SlotHelmet, Rarity: RarityRare, Bonuses: ItemBonuses{DamageReduction: 0.08, MaxHealth: 25}},
		{ID: "hide_chestplate", Name: "Hide Chestplate", Slot: SlotChest, Rarity: RarityUncommon, Bonuses: ItemBonuses{DamageReduction: 0.06, MaxHealth: 15}},
		{ID: "bulwark_chestplate", Name: "Bulwark Chestplate", Slot: SlotChest, Rarity: RarityEpic, Bonuses: ItemBonuses{DamageReduction: 0.18, MaxHealth: 60, Strength: 2}},
		{ID: "ashen_greaves", Name: "Ashen Greaves", Slot: SlotLegs, Rarity: RarityRare, Bonuses: ItemBonuses{DamageReduction: 0.07, MovementSpeed: 0.3}},
		{ID: "worn_boots", Name: "Worn Boots", Slot: SlotBoots, Rarity: RarityCommon, Bonuses: ItemBonuses{MovementSpeed: 0.2}},
		{ID: "leather_gloves", Name: "Leather Gloves", Slot: SlotGloves, Rarity: RarityCommon, Bonuses: ItemBonuses{AttackPower: 2, Dexterity: 1}},
		{ID: "fang_amulet", Name: "Fang Amulet", Slot: SlotAmulet, Rarity: RarityUncommon, Bonuses: ItemBonuses{AttackPower: 4, MaxHealth: 10}},
		{ID: "cinder_amulet", Name: "Cinder Amulet", Slot: SlotAmulet, Rarity: RarityRare, Bonuses: ItemBonuses{Intelligence: 3, MaxMana: 25}},
		{ID: "heart_of_embers", Name: "Heart of Embers", Slot: SlotAmulet, Rarity: RarityLegendary, Bonuses: ItemBonuses{Intelligence: 6, MaxMana: 60, MaxHealth: 40}},
		{ID: "hunters_ring", Name: "Hunter's Ring", Slot: SlotRing, Rarity: RarityRare, Bonuses: ItemBonuses{Dexterity: 3, AttackPower: 5}},
		{ID: "ember_ring", Name: "Ember Ring", Slot: SlotRing, Rarity: RarityUncommon, Bonuses: ItemBonuses{Intelligence: 2, MaxMana: 15}},
		{ID: "colossus_band", Name: "Colossus Band", Slot: SlotRing, Rarity: RarityEpic, Bonuses: ItemBonuses{Strength: 4, MaxHealth: 35}},
	}
	table := make(map[string]ItemTemplate, len(list))
	for _, it := range list {
		table[it.ID] = it
	}
	return table
}

// GetItemTemplate returns the template for id, or false if unknown.
func GetItemTemplate(id string) (ItemTemplate, bool) {
	t, ok := itemTable[id]
	return t, ok
}

// ItemIDs returns all known item ids.
func ItemIDs() []string {
	ids := make([]string, 0, len(itemTable))
	for id := range itemTable {
		ids = append(ids, id)
	}
	return ids
}
