package qube

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// SpawnPolicy selects which face(s) receive the new tile after a move that
// changed the board. The two policies produce different games and are never
// blended: synchronized is one six-faced game, active-face is six loosely
// coupled single-face games.
type SpawnPolicy int

const (
	// SpawnChangedFaces spawns one tile on every face whose grid changed
	// (the synchronized cube, the canonical variant).
	SpawnChangedFaces SpawnPolicy = iota

	// SpawnActiveFace spawns one tile only on the face that was forward
	// when the move was made (the independent-faces variant).
	SpawnActiveFace
)

// MoveResult reports the outcome of a Move call.
type MoveResult struct {
	Moved    bool
	Rotation *RotationCommand // nil when nothing moved
}

// EngineConfig carries the tunable parts of an Engine.
type EngineConfig struct {
	Policy  SpawnPolicy
	WinTile int              // tile value that wins the game (default 2048)
	Spawn4  float64          // probability a spawned tile is 4 instead of 2
	Mapper  DirectionMapper  // nil selects the static table
	Seed    int64            // RNG seed for deterministic play
	Logger  *log.Logger      // nil discards diagnostics
}

// Engine owns the six face grids and executes moves across all of them.
// It is single-threaded and synchronous: Move is an atomic state transition,
// performs no I/O and never blocks. One caller at a time.
type Engine struct {
	grids   [FaceCount]Grid
	score   int
	policy  SpawnPolicy
	winTile int
	spawn4  float64
	mapper  DirectionMapper
	tracker *Tracker
	rng     *rand.Rand
	logger  *log.Logger
	history []TileMovement
}

// NewEngine creates an engine and seeds every face with two starting tiles.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.WinTile <= 0 {
		cfg.WinTile = 2048
	}
	if cfg.Spawn4 <= 0 {
		cfg.Spawn4 = 0.10
	}
	if cfg.Mapper == nil {
		cfg.Mapper = NewStaticMapper()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	e := &Engine{
		policy:  cfg.Policy,
		winTile: cfg.WinTile,
		spawn4:  cfg.Spawn4,
		mapper:  cfg.Mapper,
		tracker: NewTracker(),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		logger:  cfg.Logger,
	}
	e.Restart()
	return e
}

// Move executes one global swipe: every face slides in its own local
// direction, new tiles spawn per policy, and the cube rotates to bring the
// next face forward. If no face changed, all state is left untouched and no
// rotation is produced.
func (e *Engine) Move(dir Direction) MoveResult {
	if !dir.valid() {
		panic(fmt.Sprintf("qube: invalid direction %d", int(dir)))
	}

	var next [FaceCount]Grid
	var changed [FaceCount]bool
	var moves []TileMovement
	scoreGained := 0
	anyChanged := false

	for f := FaceFront; f < FaceCount; f++ {
		local := e.mapper.LocalDirection(f, dir)
		grid, score, ch, faceMoves := Slide(e.grids[f], local)
		next[f] = grid
		if ch {
			changed[f] = true
			anyChanged = true
			scoreGained += score
			for i := range faceMoves {
				faceMoves[i].Face = f
			}
			moves = append(moves, faceMoves...)
		}
	}

	if !anyChanged {
		return MoveResult{Moved: false}
	}

	e.grids = next
	e.score += scoreGained
	e.history = moves

	// Spawn before the rotation: the active-face policy targets the face
	// that was forward when the player swiped.
	switch e.policy {
	case SpawnActiveFace:
		e.spawnTile(e.tracker.Forward())
	default:
		for f := FaceFront; f < FaceCount; f++ {
			if changed[f] {
				e.spawnTile(f)
			}
		}
	}

	cmd := e.tracker.Command(dir)
	e.tracker.Apply(cmd)

	if ra, ok := e.mapper.(RotationAware); ok {
		ra.ApplyRotation(cmd.Axis, cmd.Degrees)
		// Move is the sole mutator of both, so they cannot disagree unless
		// something else touched the state.
		if front := ra.Front(); front != e.tracker.Forward() {
			e.logger.Error("orientation state diverged",
				"mapper", front, "tracker", e.tracker.Forward())
		}
	}

	return MoveResult{Moved: true, Rotation: &cmd}
}

// spawnTile places a 2 (or, with probability spawn4, a 4) on a uniformly
// random empty cell of the face. A full face is a silent no-op: the
// game-over check handles the terminal condition separately.
func (e *Engine) spawnTile(f Face) {
	empty := EmptyCells(e.grids[f])
	if len(empty) == 0 {
		e.logger.Warn("no empty cell to spawn on", "face", f)
		return
	}

	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.spawn4 {
		value = 4
	}
	e.grids[f][cell.Y][cell.X] = value
}

// Restart reinitializes all state: six cleared grids re-seeded with two
// tiles each, score zero, Front forward at identity orientation.
func (e *Engine) Restart() {
	e.grids = [FaceCount]Grid{}
	e.score = 0
	e.history = nil
	e.tracker.Reset()
	if ra, ok := e.mapper.(RotationAware); ok {
		ra.Reset()
	}

	for f := FaceFront; f < FaceCount; f++ {
		e.spawnTile(f)
		e.spawnTile(f)
	}
}

// FaceGrid returns a read-only snapshot of one face's grid.
func (e *Engine) FaceGrid(f Face) Grid {
	if !f.valid() {
		panic(fmt.Sprintf("qube: invalid face %d", int(f)))
	}
	return e.grids[f]
}

// Score returns the accumulated score across all faces.
func (e *Engine) Score() int {
	return e.score
}

// ActiveFace returns the face currently presented to the player.
func (e *Engine) ActiveFace() Face {
	return e.tracker.Forward()
}

// Tracker exposes the rotation tracker for the presentation layer.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// MoveHistory returns the tile movements from the most recent Move call.
func (e *Engine) MoveHistory() []TileMovement {
	out := make([]TileMovement, len(e.history))
	copy(out, e.history)
	return out
}

// HasWon returns true as soon as any cell on any face holds the win tile.
func (e *Engine) HasWon() bool {
	for f := FaceFront; f < FaceCount; f++ {
		if MaxTile(e.grids[f]) >= e.winTile {
			return true
		}
	}
	return false
}

// IsGameOver returns true only when every face is full and no face has an
// adjacent equal pair left. One face with a move available keeps the game
// going.
func (e *Engine) IsGameOver() bool {
	for f := FaceFront; f < FaceCount; f++ {
		if CanMove(e.grids[f]) {
			return false
		}
	}
	return true
}

// MaxTileOverall returns the highest tile value across all six faces.
func (e *Engine) MaxTileOverall() int {
	best := 0
	for f := FaceFront; f < FaceCount; f++ {
		if v := MaxTile(e.grids[f]); v > best {
			best = v
		}
	}
	return best
}
