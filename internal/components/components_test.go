package components

import (
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// roundTrip encodes a component, injects the type tag the way entity
// serialization does, and dispatches it back through the codec registry.
func roundTrip(t *testing.T, c ecs.Component) ecs.Component {
	t.Helper()
	rec := c.Encode()
	rec["type"] = c.Type()
	restored, err := ecs.DecodeComponent(c.Type(), rec)
	if err != nil {
		t.Fatalf("decode %s: %v", c.Type(), err)
	}
	return restored
}

func TestPositionRoundTrip(t *testing.T) {
	cases := []*Position{
		{Row: 0, Col: 0},
		{Row: 5, Col: 9},
		{Row: 120, Col: 300},
	}
	for _, p := range cases {
		got := roundTrip(t, p).(*Position)
		if *got != *p {
			t.Errorf("position round trip = %+v, want %+v", got, p)
		}
	}
}

func TestMovementRoundTrip(t *testing.T) {
	m := NewMovement()
	if m.Speed != 1 {
		t.Fatalf("default speed = %d, want 1", m.Speed)
	}
	m.Allowed[core.West] = false

	got := roundTrip(t, m).(*Movement)
	if got.Speed != 1 {
		t.Errorf("speed = %d, want 1", got.Speed)
	}
	if got.CanMove(core.West) {
		t.Error("west should stay forbidden after round trip")
	}
	for _, d := range []core.Direction{core.North, core.South, core.East} {
		if !got.CanMove(d) {
			t.Errorf("%s should stay permitted after round trip", d)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	r := &Render{Glyph: '@', Color: core.ColorBrightYellow}
	got := roundTrip(t, r).(*Render)
	if got.Glyph != '@' || got.Color != core.ColorBrightYellow {
		t.Errorf("render round trip = %+v", got)
	}
}

func TestHealthClamping(t *testing.T) {
	cases := []struct {
		name             string
		current, max     int
		wantCur, wantMax int
	}{
		{"full", 10, 10, 10, 10},
		{"over max clamps", 15, 10, 10, 10},
		{"negative clamps to zero", -5, 10, 0, 10},
		{"zero max", 3, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealth(tc.current, tc.max)
			if h.Current() != tc.wantCur || h.Max() != tc.wantMax {
				t.Errorf("NewHealth(%d,%d) = %d/%d, want %d/%d",
					tc.current, tc.max, h.Current(), h.Max(), tc.wantCur, tc.wantMax)
			}
		})
	}

	h := NewHealth(5, 10)
	h.Damage(100)
	if h.Current() != 0 || !h.Dead() {
		t.Errorf("after overkill: %d, dead=%v", h.Current(), h.Dead())
	}
	h.Heal(100)
	if h.Current() != 10 {
		t.Errorf("after overheal: %d, want 10", h.Current())
	}
}

func TestHealthClampsBeforeSerialization(t *testing.T) {
	// Constructed over max: the clamp happens before any encode.
	h := NewHealth(99, 10)
	got := roundTrip(t, h).(*Health)
	if got.Current() != 10 || got.Max() != 10 {
		t.Errorf("round trip = %d/%d, want 10/10", got.Current(), got.Max())
	}
}

func TestInputRoundTripAndClear(t *testing.T) {
	in := &Input{Intent: core.ActionMoveEast}
	got := roundTrip(t, in).(*Input)
	if got.Intent != core.ActionMoveEast {
		t.Errorf("intent = %v, want MoveEast", got.Intent)
	}
	got.Clear()
	if got.Intent != core.ActionNone {
		t.Errorf("intent after Clear = %v", got.Intent)
	}
}

func TestStairsVisibilityDevModeRoundTrip(t *testing.T) {
	s := roundTrip(t, &Stairs{Down: true}).(*Stairs)
	if !s.Down {
		t.Error("stairs down flag lost")
	}

	v := roundTrip(t, &Visibility{Visible: true, Radius: 6}).(*Visibility)
	if !v.Visible || v.Radius != 6 {
		t.Errorf("visibility round trip = %+v", v)
	}

	d := roundTrip(t, &DevMode{Enabled: true}).(*DevMode)
	if !d.Enabled {
		t.Error("devmode flag lost")
	}
}

func TestItemComponentsRoundTrip(t *testing.T) {
	item := roundTrip(t, &Item{Name: "rusty sword", Weight: 4, Value: 12}).(*Item)
	if item.Name != "rusty sword" || item.Weight != 4 || item.Value != 12 {
		t.Errorf("item round trip = %+v", item)
	}

	eq := roundTrip(t, &Equippable{Slot: "hand", Bonus: 2}).(*Equippable)
	if eq.Slot != "hand" || eq.Bonus != 2 {
		t.Errorf("equippable round trip = %+v", eq)
	}

	cons := roundTrip(t, &Consumable{Uses: 3, Effect: "heal"}).(*Consumable)
	if cons.Uses != 3 || cons.Effect != "heal" {
		t.Errorf("consumable round trip = %+v", cons)
	}

	cur := roundTrip(t, &Currency{Amount: 250}).(*Currency)
	if cur.Amount != 250 {
		t.Errorf("currency round trip = %+v", cur)
	}

	key := roundTrip(t, &Key{Opens: "iron-door"}).(*Key)
	if key.Opens != "iron-door" {
		t.Errorf("key round trip = %+v", key)
	}

	eff := roundTrip(t, &Effect{Kind: "poison", Magnitude: 2, Duration: 5}).(*Effect)
	if eff.Kind != "poison" || eff.Magnitude != 2 || eff.Duration != 5 {
		t.Errorf("effect round trip = %+v", eff)
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	inv := &Inventory{Capacity: 3}
	inv.Add(10)
	inv.Add(20)

	got := roundTrip(t, inv).(*Inventory)
	if got.Capacity != 3 || len(got.Items) != 2 || got.Items[0] != 10 || got.Items[1] != 20 {
		t.Errorf("inventory round trip = %+v", got)
	}
}

func TestInventoryCapacity(t *testing.T) {
	inv := &Inventory{Capacity: 2}
	if !inv.Add(1) || !inv.Add(2) {
		t.Fatal("adds under capacity should succeed")
	}
	if inv.Add(3) {
		t.Error("add over capacity should fail")
	}
	if !inv.Remove(1) {
		t.Error("remove of held item should succeed")
	}
	if inv.Remove(99) {
		t.Error("remove of absent item should fail")
	}
}

func TestConsumableUses(t *testing.T) {
	c := &Consumable{Uses: 2, Effect: "heal"}
	if !c.Consume() || !c.Consume() {
		t.Fatal("first two uses should succeed")
	}
	if c.Consume() {
		t.Error("third use should fail")
	}
}

func TestDurabilityClamping(t *testing.T) {
	d := NewDurability(50, 30)
	if d.Current() != 30 {
		t.Errorf("over-max construction = %d, want 30", d.Current())
	}
	d.Wear(100)
	if !d.Broken() {
		t.Error("fully worn item should be broken")
	}

	got := roundTrip(t, NewDurability(7, 20)).(*Durability)
	if got.Current() != 7 || got.Max() != 20 {
		t.Errorf("durability round trip = %d/%d", got.Current(), got.Max())
	}
}
