package ecs

// System is turn-scoped logic that reads and writes components across many
// entities. Systems keep no state between turns beyond what they own
// explicitly, and never cache grid or entity references across a level
// regeneration.
type System interface {
	// Name identifies the system in logs.
	Name() string

	// Update runs the system's slice of the current turn.
	Update(w *World) error
}
