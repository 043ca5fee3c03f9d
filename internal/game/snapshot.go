package game

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
)

// WorldRecord is the persisted session layout. The grid itself is never
// stored; it regenerates deterministically from the seed, generator, base
// dimensions, and level index. Dungeon width/height are recorded so a
// loader can detect an incompatible or corrupt file.
type WorldRecord struct {
	Entities     []ecs.EntityRecord `yaml:"entities"`
	NextEntityID uint64             `yaml:"next_entity_id"`
	Width        int                `yaml:"width"`
	Height       int                `yaml:"height"`

	Level     int    `yaml:"level"`
	Turns     int    `yaml:"turns"`
	Seed      int64  `yaml:"seed"`
	Generator string `yaml:"generator"`
	BaseW     int    `yaml:"base_width"`
	BaseH     int    `yaml:"base_height"`
	Growth    int    `yaml:"growth"`
	MaxW      int    `yaml:"max_width"`
	MaxH      int    `yaml:"max_height"`

	PlayerHealth int `yaml:"player_health"`
	VisionRadius int `yaml:"vision_radius"`
}

// Snapshot serializes the session's world: every entity record, the ID
// counter, grid dimensions, and the generation parameters needed to
// rebuild the grid.
func (s *Session) Snapshot() WorldRecord {
	rec := WorldRecord{
		NextEntityID: uint64(s.world.NextEntityID()),
		Level:        s.world.Level(),
		Turns:        s.turns,
		Seed:         s.cfg.Seed,
		Generator:    s.cfg.Generator,
		BaseW:        s.cfg.Width,
		BaseH:        s.cfg.Height,
		Growth:       s.maze.growth,
		MaxW:         s.maze.maxWidth,
		MaxH:         s.maze.maxHeight,
		PlayerHealth: s.playerHealth,
		VisionRadius: s.visionRadius,
	}
	if g := s.world.Grid(); g != nil {
		rec.Width = g.Width()
		rec.Height = g.Height()
	}
	s.world.EachEntity(func(e *ecs.Entity) bool {
		rec.Entities = append(rec.Entities, e.ToRecord())
		return true
	})
	return rec
}

// Save writes the session snapshot to a YAML file.
func (s *Session) Save(path string) error {
	data, err := yaml.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("game: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("game: write snapshot: %w", err)
	}
	return nil
}

// RestoreSession rebuilds a session from a world record: the grid is
// regenerated deterministically and the entity table is restored exactly
// as saved. Any undecodable component or a grid mismatch fails the whole
// load; a partially restored world would be silently corrupt.
func RestoreSession(rec WorldRecord, logger *log.Logger) (*Session, error) {
	if rec.Seed == 0 || rec.Generator == "" || rec.Level < 1 {
		return nil, fmt.Errorf("game: snapshot missing generation parameters")
	}

	s := NewSession(SessionConfig{
		Runtime: core.RuntimeConfig{
			Width:     rec.BaseW,
			Height:    rec.BaseH,
			Generator: rec.Generator,
			Seed:      rec.Seed,
		},
		Growth:       rec.Growth,
		MaxW:         rec.MaxW,
		MaxH:         rec.MaxH,
		PlayerHealth: rec.PlayerHealth,
		VisionRadius: rec.VisionRadius,
	}, logger)

	s.world.SetLevel(rec.Level)
	if err := s.maze.Update(s.world); err != nil {
		return nil, err
	}

	g := s.world.Grid()
	if g.Width() != rec.Width || g.Height() != rec.Height {
		return nil, fmt.Errorf("game: snapshot grid %dx%d does not match regenerated %dx%d",
			rec.Width, rec.Height, g.Width(), g.Height())
	}

	// The maze system materialized fresh wall entities; the snapshot's
	// entity table replaces them wholesale.
	s.world.ClearEntities()
	for _, entRec := range rec.Entities {
		e, err := ecs.EntityFromRecord(entRec)
		if err != nil {
			return nil, err
		}
		if err := s.world.AddEntity(e); err != nil {
			return nil, err
		}
	}
	s.world.SetNextEntityID(ecs.EntityID(rec.NextEntityID))

	s.turns = rec.Turns
	s.state = StateRunning
	return s, nil
}

// LoadSession reads a YAML snapshot file and restores the session.
func LoadSession(path string, logger *log.Logger) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("game: read snapshot: %w", err)
	}
	var rec WorldRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("game: parse snapshot: %w", err)
	}
	s, err := RestoreSession(rec, logger)
	if err != nil {
		return nil, fmt.Errorf("game: save data corrupt or incompatible: %w", err)
	}
	return s, nil
}
