package qube

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	ActiveFace Face
	Grids      [FaceCount]Grid
	MaxTile    int
	AngleX     int
	AngleY     int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.won && !g.keepPlaying:
		state = StateWon
	}

	var grids [FaceCount]Grid
	for f := FaceFront; f < FaceCount; f++ {
		grids[f] = g.engine.FaceGrid(f)
	}
	ax, ay, _ := g.engine.Tracker().Angles()

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.engine.Score(),
		ActiveFace: g.engine.ActiveFace(),
		Grids:      grids,
		MaxTile:    g.engine.MaxTileOverall(),
		AngleX:     ax,
		AngleY:     ay,
		State:      state,
	}
}
