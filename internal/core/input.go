package core

// Direction is one of the four cardinal movement directions on the grid.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists all four cardinals in a fixed order.
var Directions = []Direction{North, South, West, East}

// Delta returns the (row, column) offset of one step in the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	}
	return 0, 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "unknown"
}

// ParseDirection maps a direction name back to its value. Inverse of
// String, used when decoding serialized movement components.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north":
		return North, true
	case "south":
		return South, true
	case "west":
		return West, true
	case "east":
		return East, true
	}
	return North, false
}

// Action represents a semantic turn intent, abstracted from physical key
// presses. Exactly one action is consumed per turn.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveNorth        // w, k, up arrow
	ActionMoveSouth        // s, j, down arrow
	ActionMoveWest         // a, h, left arrow
	ActionMoveEast         // d, l, right arrow
	ActionQuit             // q, ctrl+c
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveNorth:
		return "MoveNorth"
	case ActionMoveSouth:
		return "MoveSouth"
	case ActionMoveWest:
		return "MoveWest"
	case ActionMoveEast:
		return "MoveEast"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction an action encodes, and whether
// it is a movement action at all.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return North, true
	case ActionMoveSouth:
		return South, true
	case ActionMoveWest:
		return West, true
	case ActionMoveEast:
		return East, true
	}
	return North, false
}
