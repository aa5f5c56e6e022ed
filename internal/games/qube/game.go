package qube

import (
	"github.com/vovakirdan/qube2048/internal/config"
	"github.com/vovakirdan/qube2048/internal/core"
	"github.com/vovakirdan/qube2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeSync is the synchronized cube: one tile spawns on every face
	// that changed, so all six faces form a single game.
	ModeSync Mode = "sync"

	// ModeFaces is the independent-faces variant: a tile spawns only on
	// the face that was forward when the player swiped.
	ModeFaces Mode = "faces"
)

// Game implements the cube 2048 puzzle for the arcade platform.
type Game struct {
	mode   Mode
	engine *Engine
	tick   uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	won           bool
	keepPlaying   bool // Player chose to continue past the win tile
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick

	lastRotation *RotationCommand
}

// Package-level variables for config
var configPath string

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates the synchronized cube game.
func New() *Game {
	return &Game{mode: ModeSync}
}

// NewFaces creates the independent-faces variant.
func NewFaces() *Game {
	return &Game{mode: ModeFaces}
}

func init() {
	registry.Register("qube", func() registry.Game {
		return New()
	})
	registry.Register("qube_faces", func() registry.Game {
		return NewFaces()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFaces {
		return "qube_faces"
	}
	return "qube"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFaces {
		return "Qube 2048 (Independent Faces)"
	}
	return "Qube 2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadQube(configPath)
	if err != nil {
		gameCfg = config.DefaultQubeConfig()
	}

	var mapper DirectionMapper
	if gameCfg.Game.Mapper == config.MapperOriented {
		mapper = NewOrientedMapper()
	} else {
		mapper = NewStaticMapper()
	}

	policy := SpawnChangedFaces
	if g.mode == ModeFaces {
		policy = SpawnActiveFace
	}

	g.engine = NewEngine(EngineConfig{
		Policy:  policy,
		WinTile: gameCfg.Game.WinTile,
		Spawn4:  gameCfg.Game.Spawn4,
		Mapper:  mapper,
		Seed:    cfg.Seed,
	})

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.keepPlaying = false
	g.paused = false
	g.moveProcessed = false
	g.lastRotation = nil

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and
// the face minimap.
func (g *Game) checkScreenSize() {
	minW := 58
	minH := 16
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A win shows an overlay until the player confirms to keep playing.
	if g.won && !g.keepPlaying {
		if in.Has(core.ActionConfirm) {
			g.keepPlaying = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset.
		return core.StepResult{State: g.State()}
	}

	// Process move input
	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	result := g.engine.Move(dir)
	if !result.Moved {
		return
	}

	g.lastRotation = result.Rotation

	if !g.won && g.engine.HasWon() {
		g.won = true
	}
	if g.engine.IsGameOver() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.gameOver || (g.won && !g.keepPlaying),
		Paused:   g.paused || g.tooSmall,
	}
}

// MaxTile returns the highest tile across all faces, for score records.
func (g *Game) MaxTile() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.MaxTileOverall()
}

// Engine exposes the underlying board engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
