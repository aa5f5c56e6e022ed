package qube

import "fmt"

// DirectionMapper resolves a global swipe direction to the direction a given
// face's grid must slide in. Implementations must be total and deterministic
// over all 24 (face, direction) pairs, and must map Up/Down to a mutually
// opposite pair for every face, likewise Left/Right.
type DirectionMapper interface {
	LocalDirection(face Face, dir Direction) Direction
}

// RotationAware is implemented by mappers that track the cube's accumulated
// orientation and must be advanced in lockstep with the rotation tracker.
type RotationAware interface {
	DirectionMapper

	// ApplyRotation accumulates a rotation about the given axis.
	// Degrees must be a multiple of 90.
	ApplyRotation(axis Axis, degrees int)

	// Front returns the face the mapper currently considers forward.
	Front() Face

	// Reset restores the identity orientation with Front forward.
	Reset()
}

// StaticMapper resolves directions through a fixed per-face lookup table.
// It assumes the cube's six-face topology is never arbitrarily reoriented:
// each face's on-screen "up" differs from the front face's by a fixed
// multiple of 90 degrees, so the mapping never changes between moves.
type StaticMapper struct {
	table [FaceCount][DirectionCount]Direction
}

// NewStaticMapper builds the lookup table for all six faces.
func NewStaticMapper() *StaticMapper {
	m := &StaticMapper{}

	identity := [DirectionCount]Direction{
		DirUp:    DirUp,
		DirDown:  DirDown,
		DirLeft:  DirLeft,
		DirRight: DirRight,
	}

	// Front and Top read the swipe as-is.
	m.table[FaceFront] = identity
	m.table[FaceTop] = identity

	// Back is seen mirrored from behind: left and right swap.
	m.table[FaceBack] = [DirectionCount]Direction{
		DirUp:    DirUp,
		DirDown:  DirDown,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	// Left is rotated a quarter turn: up becomes right, and so on around.
	m.table[FaceLeft] = [DirectionCount]Direction{
		DirUp:    DirRight,
		DirDown:  DirLeft,
		DirLeft:  DirUp,
		DirRight: DirDown,
	}

	// Right is rotated the opposite quarter turn.
	m.table[FaceRight] = [DirectionCount]Direction{
		DirUp:    DirLeft,
		DirDown:  DirRight,
		DirLeft:  DirDown,
		DirRight: DirUp,
	}

	// Bottom inverts the vertical axis relative to Top.
	m.table[FaceBottom] = [DirectionCount]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirLeft,
		DirRight: DirRight,
	}

	return m
}

// LocalDirection returns the direction the face's grid slides in for the
// given global swipe. Panics on invalid input: a silent fallback here would
// corrupt orientation tracking.
func (m *StaticMapper) LocalDirection(face Face, dir Direction) Direction {
	if !face.valid() {
		panic(fmt.Sprintf("qube: invalid face %d", int(face)))
	}
	if !dir.valid() {
		panic(fmt.Sprintf("qube: invalid direction %d", int(dir)))
	}
	return m.table[face][dir]
}
