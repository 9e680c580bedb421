package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvlgen/carve"
	"github.com/katalvlaran/lvlgen/classify"
	"github.com/katalvlaran/lvlgen/elevation"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/obstacle"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/room"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes stage diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// Generator runs the pipeline. It holds no per-level state, so one value may
// serve concurrent Generate calls.
type Generator struct {
	log *slog.Logger
}

// New returns a Generator that logs nowhere unless WithLogger is given.
func New(opts ...Option) *Generator {
	g := &Generator{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a level with a silent Generator.
func Generate(p Params) (*Level, error) {
	return New().Generate(p)
}

// Generate builds the level described by p.
//
// Behavior:
//  1. Validate p; nothing is allocated on failure.
//  2. Place rooms, then carve rooms and connecting channels.
//  3. Resolve elevations when enabled.
//  4. Classify every cell.
//  5. Place obstacles when enabled and reclassify.
//
// Randomness comes from a single stream seeded with p.Seed, consumed in the
// order placement, channel orientation, obstacle shuffle. Identical Params
// therefore give identical levels.
//
// Placement shortfall and non-converged smoothing are reported in
// Level.Warnings. A classification gap is returned as an error.
func (gen *Generator) Generate(p Params) (*Level, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ctx := context.Background()
	log := gen.log.With(slog.Int64("seed", p.Seed))
	start := time.Now()

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, fmt.Errorf("generator: grid: %w", err)
	}
	s := rng.New(p.Seed)
	lvl := &Level{Width: p.Width, Height: p.Height, Seed: p.Seed, Params: p, Grid: g}

	// rooms
	placed, err := room.Place(p.roomConfig(), s)
	if err != nil {
		return nil, fmt.Errorf("generator: place rooms: %w", err)
	}
	lvl.Rooms = placed.Rooms
	lvl.Stats.Attempts = placed.Attempts
	if n := placed.Shortfall(); n > 0 {
		w := &PlacementShortfall{Requested: placed.Requested, Placed: len(placed.Rooms), Attempts: placed.Attempts}
		lvl.Warnings = append(lvl.Warnings, w)
		log.LogAttrs(ctx, slog.LevelWarn, "room placement shortfall",
			slog.Int("requested", w.Requested), slog.Int("placed", w.Placed), slog.Int("attempts", w.Attempts))
	}
	log.Debug("rooms placed", "count", len(lvl.Rooms), "attempts", placed.Attempts)

	// channels
	if err = carve.Rooms(g, lvl.Rooms); err != nil {
		return nil, fmt.Errorf("generator: carve rooms: %w", err)
	}
	lvl.Channels, err = carve.Connect(g, lvl.Rooms, s, carve.WithWidth(p.ChannelWidth), carve.WithCornerRadius(p.CornerRadius))
	if err != nil {
		return nil, fmt.Errorf("generator: connect rooms: %w", err)
	}
	log.Debug("channels carved", "count", len(lvl.Channels), "passable", g.PassableCount())

	// elevation
	if p.Elevation {
		rep, err := elevation.Resolve(g, lvl.Rooms, elevation.WithPasses(p.SmoothingPasses))
		if err != nil {
			return nil, fmt.Errorf("generator: resolve elevation: %w", err)
		}
		lvl.Stats.Elevation = rep
		if !rep.Converged {
			w := &ConvergenceWarning{Passes: rep.Passes, Violations: rep.Violations}
			lvl.Warnings = append(lvl.Warnings, w)
			log.LogAttrs(ctx, slog.LevelWarn, "elevation smoothing did not converge",
				slog.Int("passes", rep.Passes), slog.Int("violations", rep.Violations))
		}
		log.Debug("elevation resolved", "passes", rep.Passes, "seeded", rep.Seeded, "unreached", rep.Unreached)
	}

	// tiles
	if lvl.Tiles, err = classify.Classify(g, lvl.Rooms); err != nil {
		return nil, fmt.Errorf("generator: classify: %w", err)
	}

	// obstacles
	if p.Obstacles && p.ObstacleDensity > 0 {
		res, err := obstacle.Place(g, lvl.Rooms, s,
			obstacle.WithDensity(p.ObstacleDensity), obstacle.WithMinArea(p.MinObstacleArea))
		if err != nil {
			return nil, fmt.Errorf("generator: place obstacles: %w", err)
		}
		lvl.Stats.Obstacles = res
		if res.Placed > 0 {
			if lvl.Tiles, err = classify.Classify(g, lvl.Rooms); err != nil {
				return nil, fmt.Errorf("generator: reclassify: %w", err)
			}
		}
		log.Debug("obstacles placed", "rooms", res.Rooms, "placed", res.Placed, "rejected", res.Rejected)
	}

	lvl.Stats.Draws = s.Draws()
	lvl.Stats.Passable = g.PassableCount()
	lvl.Stats.Regions = len(g.Regions())
	lvl.Stats.TileCount = countTiles(lvl.Tiles)

	log.Info("level generated",
		"width", p.Width, "height", p.Height,
		"rooms", len(lvl.Rooms), "warnings", len(lvl.Warnings),
		"elapsed", time.Since(start))
	return lvl, nil
}
