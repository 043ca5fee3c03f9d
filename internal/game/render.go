package game

import (
	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// Render draws every visible entity with a position and render component
// into the screen buffer at the given offset. Entities are drawn in
// ascending ID order, so entities spawned later (the player) paint over
// earlier ones (walls, stairs) when they share a cell.
func Render(w *ecs.World, dst *core.Screen, offsetX, offsetY int) {
	w.EachEntity(func(e *ecs.Entity) bool {
		if visC, ok := e.Component(components.TypeVisibility); ok {
			if !visC.(*components.Visibility).Visible {
				return true
			}
		}
		posC, ok := e.Component(components.TypePosition)
		if !ok {
			return true
		}
		renC, ok := e.Component(components.TypeRender)
		if !ok {
			return true
		}
		pos := posC.(*components.Position)
		ren := renC.(*components.Render)
		dst.Set(offsetX+pos.Col, offsetY+pos.Row, ren.Glyph, ren.Color)
		return true
	})
}
