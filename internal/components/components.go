// Package components defines the game's component set: pure-data,
// serializable units of entity state. Every component registers its codec
// with the ecs registry at init time so snapshots can reconstruct entities
// generically from type tags. Components hold no references to systems or
// other components; all cross-component effects live in internal/game.
package components

import (
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// Component type discriminators, one per concern.
const (
	TypePosition   = "position"
	TypeMovement   = "movement"
	TypeRender     = "render"
	TypeHealth     = "health"
	TypeInput      = "input"
	TypeStairs     = "stairs"
	TypeInventory  = "inventory"
	TypeItem       = "item"
	TypeEquippable = "equippable"
	TypeConsumable = "consumable"
	TypeCurrency   = "currency"
	TypeKey        = "key"
	TypeEffect     = "effect"
	TypeDurability = "durability"
	TypeVisibility = "visibility"
	TypeDevMode    = "devmode"
)

// Entity tags used by the core systems.
const (
	TagPlayer   = "player"
	TagStairs   = "stairs"
	TagWall     = "wall"
	TagBlocking = "blocking"
)

func init() {
	ecs.RegisterComponent(TypePosition, decodePosition)
	ecs.RegisterComponent(TypeMovement, decodeMovement)
	ecs.RegisterComponent(TypeRender, decodeRender)
	ecs.RegisterComponent(TypeHealth, decodeHealth)
	ecs.RegisterComponent(TypeInput, decodeInput)
	ecs.RegisterComponent(TypeStairs, decodeStairs)
	ecs.RegisterComponent(TypeVisibility, decodeVisibility)
	ecs.RegisterComponent(TypeDevMode, decodeDevMode)
}

// Position locates an entity on the grid. The component does not enforce
// bounds; systems validate candidates against the current grid.
type Position struct {
	Row int
	Col int
}

func (p *Position) Type() string { return TypePosition }

func (p *Position) Encode() ecs.Record {
	return ecs.Record{"row": p.Row, "col": p.Col}
}

func decodePosition(rec ecs.Record) (ecs.Component, error) {
	return &Position{Row: rec.Int("row"), Col: rec.Int("col")}, nil
}

// Movement holds an entity's speed multiplier and the cardinal directions
// it is permitted to move in. It carries no current-direction state; the
// pending direction is transient input, not persisted movement state.
type Movement struct {
	Speed   int
	Allowed map[core.Direction]bool
}

// NewMovement returns a movement component with speed 1 and all four
// directions permitted.
func NewMovement() *Movement {
	allowed := make(map[core.Direction]bool, len(core.Directions))
	for _, d := range core.Directions {
		allowed[d] = true
	}
	return &Movement{Speed: 1, Allowed: allowed}
}

func (m *Movement) Type() string { return TypeMovement }

// CanMove reports whether the direction is permitted.
func (m *Movement) CanMove(d core.Direction) bool {
	return m.Allowed[d]
}

func (m *Movement) Encode() ecs.Record {
	names := make([]string, 0, len(m.Allowed))
	for _, d := range core.Directions {
		if m.Allowed[d] {
			names = append(names, d.String())
		}
	}
	return ecs.Record{"speed": m.Speed, "allowed": names}
}

func decodeMovement(rec ecs.Record) (ecs.Component, error) {
	m := &Movement{
		Speed:   rec.Int("speed"),
		Allowed: make(map[core.Direction]bool),
	}
	for _, name := range rec.Strings("allowed") {
		if d, ok := core.ParseDirection(name); ok {
			m.Allowed[d] = true
		}
	}
	if m.Speed == 0 {
		m.Speed = 1
	}
	return m, nil
}

// Render describes how an entity is drawn: a single glyph and a palette
// color. The platform decides the actual styling.
type Render struct {
	Glyph rune
	Color core.Color
}

func (r *Render) Type() string { return TypeRender }

func (r *Render) Encode() ecs.Record {
	return ecs.Record{"glyph": string(r.Glyph), "color": int(r.Color)}
}

func decodeRender(rec ecs.Record) (ecs.Component, error) {
	glyph := ' '
	if s := rec.String("glyph"); s != "" {
		glyph = []rune(s)[0]
	}
	return &Render{Glyph: glyph, Color: core.Color(rec.Int("color"))}, nil
}

// Health tracks hit points with the invariant 0 <= Current <= Max.
// Every mutation clamps.
type Health struct {
	current int
	max     int
}

// NewHealth creates a health component at full health. A current value
// outside [0, max] clamps before the component is ever observable.
func NewHealth(current, max int) *Health {
	h := &Health{max: core.Max(max, 0)}
	h.Set(current)
	return h
}

func (h *Health) Type() string { return TypeHealth }

// Current returns the current hit points.
func (h *Health) Current() int { return h.current }

// Max returns the maximum hit points.
func (h *Health) Max() int { return h.max }

// Set assigns current hit points, clamped to [0, Max].
func (h *Health) Set(v int) {
	h.current = core.Clamp(v, 0, h.max)
}

// Damage reduces current hit points, clamping at zero.
func (h *Health) Damage(amount int) {
	h.Set(h.current - amount)
}

// Heal raises current hit points, clamping at Max.
func (h *Health) Heal(amount int) {
	h.Set(h.current + amount)
}

// Dead reports whether current hit points reached zero.
func (h *Health) Dead() bool { return h.current == 0 }

func (h *Health) Encode() ecs.Record {
	return ecs.Record{"current": h.current, "max": h.max}
}

func decodeHealth(rec ecs.Record) (ecs.Component, error) {
	return NewHealth(rec.Int("current"), rec.Int("max")), nil
}

// Input carries the transient movement or quit intent queued for the
// current turn. The movement system clears it after resolution.
type Input struct {
	Intent core.Action
}

func (i *Input) Type() string { return TypeInput }

// Clear resets the pending intent.
func (i *Input) Clear() {
	i.Intent = core.ActionNone
}

func (i *Input) Encode() ecs.Record {
	return ecs.Record{"intent": int(i.Intent)}
}

func decodeInput(rec ecs.Record) (ecs.Component, error) {
	return &Input{Intent: core.Action(rec.Int("intent"))}, nil
}

// Stairs marks the level exit. Down distinguishes descending stairs from
// a future ascending variant.
type Stairs struct {
	Down bool
}

func (s *Stairs) Type() string { return TypeStairs }

func (s *Stairs) Encode() ecs.Record {
	return ecs.Record{"down": s.Down}
}

func decodeStairs(rec ecs.Record) (ecs.Component, error) {
	return &Stairs{Down: rec.Bool("down")}, nil
}

// Visibility controls whether an entity is drawn and how far it can see.
type Visibility struct {
	Visible bool
	Radius  int
}

func (v *Visibility) Type() string { return TypeVisibility }

func (v *Visibility) Encode() ecs.Record {
	return ecs.Record{"visible": v.Visible, "radius": v.Radius}
}

func decodeVisibility(rec ecs.Record) (ecs.Component, error) {
	return &Visibility{Visible: rec.Bool("visible"), Radius: rec.Int("radius")}, nil
}

// DevMode flags an entity (normally the player) as running with developer
// conveniences enabled.
type DevMode struct {
	Enabled bool
}

func (d *DevMode) Type() string { return TypeDevMode }

func (d *DevMode) Encode() ecs.Record {
	return ecs.Record{"enabled": d.Enabled}
}

func decodeDevMode(rec ecs.Record) (ecs.Component, error) {
	return &DevMode{Enabled: rec.Bool("enabled")}, nil
}
