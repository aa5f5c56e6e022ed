package qube

// GridSize is the board dimension of every face.
const GridSize = 4

// Grid is one face's 4x4 board. Cell value 0 means empty; non-zero values
// are powers of two.
type Grid [GridSize][GridSize]int

// TileMovement records one tile's displacement during a move. Produced per
// move for the presentation layer; not persisted.
type TileMovement struct {
	Face   Face
	FromX  int
	FromY  int
	ToX    int
	ToY    int
	Value  int  // value at the destination (doubled when merged)
	Merged bool // whether the tile took part in a merge
}

// lineMove is a tile displacement expressed in travel-order line indices,
// before being mapped back to grid coordinates.
type lineMove struct {
	from   int
	to     int
	value  int
	merged bool
}

// slideLine compacts and merges a single line toward index 0 (the travel
// edge). Equal adjacent values merge once into the doubled value; a freshly
// merged slot never merges again within the same pass, so three in a row
// never chain into one tile. Returns the new line, the score gained, and a
// movement record for every tile whose index changed or that merged.
func slideLine(line [GridSize]int) (result [GridSize]int, score int, moves []lineMove) {
	var merged [GridSize]bool
	var sources [GridSize][]int
	writePos := 0

	for i := range GridSize {
		v := line[i]
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && !merged[writePos-1] {
			result[writePos-1] = v * 2
			merged[writePos-1] = true
			score += v * 2
			sources[writePos-1] = append(sources[writePos-1], i)
		} else {
			result[writePos] = v
			sources[writePos] = append(sources[writePos], i)
			writePos++
		}
	}

	for to := 0; to < writePos; to++ {
		for _, from := range sources[to] {
			if from != to || merged[to] {
				moves = append(moves, lineMove{
					from:   from,
					to:     to,
					value:  result[to],
					merged: merged[to],
				})
			}
		}
	}

	return result, score, moves
}

// lineCoord maps a (line, travel-order position) pair to grid coordinates
// for the given slide direction. Position 0 is the edge tiles compact
// against.
func lineCoord(dir Direction, line, pos int) (x, y int) {
	switch dir {
	case DirLeft:
		return pos, line
	case DirRight:
		return GridSize - 1 - pos, line
	case DirUp:
		return line, pos
	case DirDown:
		return line, GridSize - 1 - pos
	default:
		panic("qube: invalid slide direction")
	}
}

// Slide performs a move on one grid in the given direction. Returns the new
// grid, the score gained from merges, whether the grid changed, and the
// movement records (Face left unset; the engine fills it in).
func Slide(g Grid, dir Direction) (Grid, int, bool, []TileMovement) {
	var out Grid
	totalScore := 0
	changed := false
	var moves []TileMovement

	for line := range GridSize {
		var in [GridSize]int
		for pos := range GridSize {
			x, y := lineCoord(dir, line, pos)
			in[pos] = g[y][x]
		}

		result, score, lineMoves := slideLine(in)
		totalScore += score

		for pos := range GridSize {
			x, y := lineCoord(dir, line, pos)
			out[y][x] = result[pos]
		}
		if result != in {
			changed = true
		}

		for _, m := range lineMoves {
			fx, fy := lineCoord(dir, line, m.from)
			tx, ty := lineCoord(dir, line, m.to)
			moves = append(moves, TileMovement{
				FromX:  fx,
				FromY:  fy,
				ToX:    tx,
				ToY:    ty,
				Value:  m.value,
				Merged: m.merged,
			})
		}
	}

	return out, totalScore, changed, moves
}

// EmptyCells returns coordinates of all empty cells.
func EmptyCells(g Grid) []struct{ X, Y int } {
	var cells []struct{ X, Y int }
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				cells = append(cells, struct{ X, Y int }{x, y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two orthogonally adjacent cells hold
// equal non-zero values.
func HasPossibleMerge(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			val := g[y][x]
			if val == 0 {
				continue
			}
			if x < GridSize-1 && g[y][x+1] == val {
				return true
			}
			if y < GridSize-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any slide or merge is possible on this grid.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}
