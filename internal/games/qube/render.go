package qube

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/qube2048/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)

	miniCell = 1 // Minimap cells are single characters
)

// tileColor maps a tile value to a display color, roughly following the
// classic 2048 palette from pale to hot.
func tileColor(val int) core.Color {
	switch {
	case val <= 0:
		return core.ColorGray
	case val <= 4:
		return core.ColorWhite
	case val <= 16:
		return core.ColorYellow
	case val <= 64:
		return core.ColorOrange
	case val <= 256:
		return core.ColorBrightRed
	case val <= 1024:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}

// miniRune encodes a tile value as a single character for the minimap:
// '·' for empty, then the binary exponent in base-36 (2 -> '1', 4 -> '2',
// 1024 -> 'a', 2048 -> 'b').
func miniRune(val int) rune {
	if val == 0 {
		return '·'
	}
	exp := 0
	for v := val; v > 1; v >>= 1 {
		exp++
	}
	return []rune(strconv.FormatInt(int64(exp), 36))[0]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Layout: active face board on the left, unfolded cube net on the right.
	boardW := GridSize*cellWidth + 1
	boardH := GridSize*cellHeight + 1
	netW := 4*(GridSize+1) + 1
	hudHeight := 3

	totalW := boardW + 4 + netW
	boardX := (g.screenW - totalW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight + 1
	netX := boardX + boardW + 4
	netY := boardY + 1

	g.renderHUD(dst, boardX, totalW)
	g.renderBoard(dst, boardX, boardY)
	g.renderNet(dst, netX, netY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score, active face and last rotation.
func (g *Game) renderHUD(dst *core.Screen, boardX, totalW int) {
	// Title
	title := "QUBE 2048"
	titleX := boardX + (totalW-len(title))/2
	dst.DrawText(titleX, 0, title)

	// Score
	scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawText(boardX, 1, scoreStr)

	// Active face and best tile
	infoStr := fmt.Sprintf("Face: %s  Max: %d", g.engine.ActiveFace(), g.engine.MaxTileOverall())
	infoX := boardX + totalW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	// Last rotation command
	if g.lastRotation != nil {
		rotStr := fmt.Sprintf("Rotation: %s%+d°", g.lastRotation.Axis, g.lastRotation.Degrees)
		dst.DrawText(boardX, 2, rotStr)
	}

	// Mode indicator
	modeStr := "Synchronized"
	if g.mode == ModeFaces {
		modeStr = "Independent"
	}
	modeX := boardX + totalW - len(modeStr)
	dst.DrawText(modeX, 2, modeStr)
}

// renderBoard draws the active face's 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	grid := g.engine.FaceGrid(g.engine.ActiveFace())

	// Draw grid borders
	for y := range GridSize + 1 {
		for x := range GridSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := range GridSize {
		for x := range GridSize {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// Net layout: the classic unfolded cross, with the Top face above the
// Front column and Back trailing Right.
//
//	    [T]
//	[L] [F] [R] [B]
//	    [Bo]
var netLayout = []struct {
	face  Face
	col   int
	row   int
	label string
}{
	{FaceTop, 1, 0, "T"},
	{FaceLeft, 0, 1, "L"},
	{FaceFront, 1, 1, "F"},
	{FaceRight, 2, 1, "R"},
	{FaceBack, 3, 1, "B"},
	{FaceBottom, 1, 2, "V"},
}

// renderNet draws the unfolded six-face minimap. The active face's label
// is highlighted.
func (g *Game) renderNet(dst *core.Screen, netX, netY int) {
	active := g.engine.ActiveFace()

	for _, slot := range netLayout {
		faceX := netX + slot.col*(GridSize+1)
		faceY := netY + slot.row*(GridSize+1)

		labelColor := core.ColorGray
		if slot.face == active {
			labelColor = core.ColorBrightYellow
		}
		dst.DrawTextColored(faceX, faceY, slot.label, labelColor)

		grid := g.engine.FaceGrid(slot.face)
		for y := range GridSize {
			for x := range GridSize {
				val := grid[y][x]
				c := tileColor(val)
				if val == 0 {
					c = core.ColorGray
				}
				dst.SetCell(faceX+x, faceY+1+y, miniRune(val), c)
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.won && !g.keepPlaying {
		winStr := fmt.Sprintf("Reached %d!", g.engine.winTile)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN", winStr, "Enter: keep playing  R: restart")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.engine.MaxTileOverall())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Swipe | P: Pause | R: Restart | Q: Quit"
}
