// Package qube implements 2048 played on all six faces of a cube at once.
// A single swipe slides and merges tiles on every face, each face resolving
// the global direction to its own local direction, then the cube rotates to
// bring a new face forward.
package qube

import "fmt"

// Direction represents a global, player-issued move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionCount is the number of move directions.
const DirectionCount = 4

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the mutually-opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		panic(fmt.Sprintf("qube: invalid direction %d", int(d)))
	}
}

// valid reports whether d is one of the four move directions.
func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// Face identifies one of the six cube faces.
type Face int

const (
	FaceFront Face = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceTop
	FaceBottom
)

// FaceCount is the number of cube faces.
const FaceCount = 6

// String returns a human-readable name for the face.
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "Front"
	case FaceRight:
		return "Right"
	case FaceBack:
		return "Back"
	case FaceLeft:
		return "Left"
	case FaceTop:
		return "Top"
	case FaceBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// valid reports whether f is one of the six faces.
func (f Face) valid() bool {
	return f >= FaceFront && f < FaceCount
}

// Axis identifies a cube rotation axis. X is horizontal (up/down swipes
// rotate around it), Y is vertical (left/right swipes rotate around it).
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotation cycles: a +90 degree step about an axis advances the forward
// face one position along the cycle for that axis. Faces lying on the
// rotation axis spin in place and are not part of the cycle.
var (
	yCycle = [4]Face{FaceFront, FaceRight, FaceBack, FaceLeft}
	xCycle = [4]Face{FaceFront, FaceTop, FaceBack, FaceBottom}
)

// rotateFace advances a face along the rotation cycle for the given axis by
// steps of 90 degrees. Negative steps walk the cycle backwards. A face on
// the rotation axis itself is returned unchanged.
func rotateFace(f Face, axis Axis, steps int) Face {
	if !f.valid() {
		panic(fmt.Sprintf("qube: invalid face %d", int(f)))
	}

	cycle := yCycle
	if axis == AxisX {
		cycle = xCycle
	}

	idx := -1
	for i, c := range cycle {
		if c == f {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Face lies on the rotation axis; it spins in place.
		return f
	}

	idx = ((idx+steps)%4 + 4) % 4
	return cycle[idx]
}
