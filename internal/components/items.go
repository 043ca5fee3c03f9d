package components

import (
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

func init() {
	ecs.RegisterComponent(TypeInventory, decodeInventory)
	ecs.RegisterComponent(TypeItem, decodeItem)
	ecs.RegisterComponent(TypeEquippable, decodeEquippable)
	ecs.RegisterComponent(TypeConsumable, decodeConsumable)
	ecs.RegisterComponent(TypeCurrency, decodeCurrency)
	ecs.RegisterComponent(TypeKey, decodeKey)
	ecs.RegisterComponent(TypeEffect, decodeEffect)
	ecs.RegisterComponent(TypeDurability, decodeDurability)
}

// Inventory holds references to carried item entities by ID, bounded by
// Capacity (0 means unbounded).
type Inventory struct {
	Items    []uint64
	Capacity int
}

func (inv *Inventory) Type() string { return TypeInventory }

// Full reports whether the inventory has reached capacity.
func (inv *Inventory) Full() bool {
	return inv.Capacity > 0 && len(inv.Items) >= inv.Capacity
}

// Add appends an item entity ID. Returns false when full.
func (inv *Inventory) Add(id uint64) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, id)
	return true
}

// Remove drops the first occurrence of the item ID, reporting whether it
// was present.
func (inv *Inventory) Remove(id uint64) bool {
	for i, item := range inv.Items {
		if item == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (inv *Inventory) Encode() ecs.Record {
	items := make([]any, len(inv.Items))
	for i, id := range inv.Items {
		items[i] = id
	}
	return ecs.Record{"items": items, "capacity": inv.Capacity}
}

func decodeInventory(rec ecs.Record) (ecs.Component, error) {
	inv := &Inventory{Capacity: rec.Int("capacity")}
	if raw, ok := rec["items"].([]any); ok {
		for _, item := range raw {
			switch v := item.(type) {
			case int:
				inv.Items = append(inv.Items, uint64(v))
			case int64:
				inv.Items = append(inv.Items, uint64(v))
			case uint64:
				inv.Items = append(inv.Items, v)
			case float64:
				inv.Items = append(inv.Items, uint64(v))
			}
		}
	}
	return inv, nil
}

// Item is the base descriptor carried by any pickup entity.
type Item struct {
	Name   string
	Weight int
	Value  int
}

func (i *Item) Type() string { return TypeItem }

func (i *Item) Encode() ecs.Record {
	return ecs.Record{"name": i.Name, "weight": i.Weight, "value": i.Value}
}

func decodeItem(rec ecs.Record) (ecs.Component, error) {
	return &Item{
		Name:   rec.String("name"),
		Weight: rec.Int("weight"),
		Value:  rec.Int("value"),
	}, nil
}

// Equippable marks an item as wearable in a named slot with a flat bonus.
type Equippable struct {
	Slot  string
	Bonus int
}

func (e *Equippable) Type() string { return TypeEquippable }

func (e *Equippable) Encode() ecs.Record {
	return ecs.Record{"slot": e.Slot, "bonus": e.Bonus}
}

func decodeEquippable(rec ecs.Record) (ecs.Component, error) {
	return &Equippable{Slot: rec.String("slot"), Bonus: rec.Int("bonus")}, nil
}

// Consumable marks an item as usable a limited number of times. It names
// the effect it grants; applying the effect is a system responsibility,
// never the component's.
type Consumable struct {
	Uses   int
	Effect string
}

func (c *Consumable) Type() string { return TypeConsumable }

// Consume decrements remaining uses, reporting whether a use was left.
func (c *Consumable) Consume() bool {
	if c.Uses <= 0 {
		return false
	}
	c.Uses--
	return true
}

func (c *Consumable) Encode() ecs.Record {
	return ecs.Record{"uses": c.Uses, "effect": c.Effect}
}

func decodeConsumable(rec ecs.Record) (ecs.Component, error) {
	return &Consumable{Uses: rec.Int("uses"), Effect: rec.String("effect")}, nil
}

// Currency is a stack of coins.
type Currency struct {
	Amount int
}

func (c *Currency) Type() string { return TypeCurrency }

func (c *Currency) Encode() ecs.Record {
	return ecs.Record{"amount": c.Amount}
}

func decodeCurrency(rec ecs.Record) (ecs.Component, error) {
	return &Currency{Amount: rec.Int("amount")}, nil
}

// Key opens the named lock.
type Key struct {
	Opens string
}

func (k *Key) Type() string { return TypeKey }

func (k *Key) Encode() ecs.Record {
	return ecs.Record{"opens": k.Opens}
}

func decodeKey(rec ecs.Record) (ecs.Component, error) {
	return &Key{Opens: rec.String("opens")}, nil
}

// Effect is a timed modifier attached to an entity. Pure data; ticking and
// application belong to systems.
type Effect struct {
	Kind      string
	Magnitude int
	Duration  int
}

func (e *Effect) Type() string { return TypeEffect }

func (e *Effect) Encode() ecs.Record {
	return ecs.Record{"kind": e.Kind, "magnitude": e.Magnitude, "duration": e.Duration}
}

func decodeEffect(rec ecs.Record) (ecs.Component, error) {
	return &Effect{
		Kind:      rec.String("kind"),
		Magnitude: rec.Int("magnitude"),
		Duration:  rec.Int("duration"),
	}, nil
}

// Durability tracks item wear with the invariant 0 <= Current <= Max.
type Durability struct {
	current int
	max     int
}

// NewDurability creates a durability component, clamping current into
// [0, max].
func NewDurability(current, max int) *Durability {
	d := &Durability{max: core.Max(max, 0)}
	d.Set(current)
	return d
}

func (d *Durability) Type() string { return TypeDurability }

// Current returns remaining durability.
func (d *Durability) Current() int { return d.current }

// Max returns maximum durability.
func (d *Durability) Max() int { return d.max }

// Set assigns durability, clamped to [0, Max].
func (d *Durability) Set(v int) {
	d.current = core.Clamp(v, 0, d.max)
}

// Wear reduces durability by the given amount, clamping at zero.
func (d *Durability) Wear(amount int) {
	d.Set(d.current - amount)
}

// Broken reports whether durability reached zero.
func (d *Durability) Broken() bool { return d.current == 0 }

func (d *Durability) Encode() ecs.Record {
	return ecs.Record{"current": d.current, "max": d.max}
}

func decodeDurability(rec ecs.Record) (ecs.Component, error) {
	return NewDurability(rec.Int("current"), rec.Int("max")), nil
}
