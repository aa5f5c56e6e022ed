package qube

import "fmt"

// vec3 is a vector in the global frame: +X is screen right, +Y is screen up,
// +Z points out of the screen toward the viewer.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) dot(o vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// mat3 is a 3x3 rotation matrix in row-major order.
type mat3 [3][3]float64

func identityMat() mat3 {
	return mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// rotationMat builds an exact rotation matrix for a multiple of 90 degrees
// about the given axis. Restricting angles to quarter turns keeps every
// entry in {-1, 0, 1}, so accumulated transforms never drift.
func rotationMat(axis Axis, degrees int) mat3 {
	if degrees%90 != 0 {
		panic(fmt.Sprintf("qube: rotation must be a multiple of 90 degrees, got %d", degrees))
	}

	// sin/cos for 0, 90, 180, 270 degrees
	q := ((degrees/90)%4 + 4) % 4
	sin := [4]float64{0, 1, 0, -1}[q]
	cos := [4]float64{1, 0, -1, 0}[q]

	switch axis {
	case AxisX:
		return mat3{
			{1, 0, 0},
			{0, cos, -sin},
			{0, sin, cos},
		}
	case AxisY:
		// Sign chosen so that +90 carries the +X face to +Z: a positive
		// quarter turn about Y brings the Right face forward, matching the
		// face cycle.
		return mat3{
			{cos, 0, -sin},
			{0, 1, 0},
			{sin, 0, cos},
		}
	default:
		panic(fmt.Sprintf("qube: invalid axis %d", int(axis)))
	}
}

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

func (m mat3) apply(v vec3) vec3 {
	return vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// directionVec maps each global direction to its screen-plane unit vector.
var directionVec = [DirectionCount]vec3{
	DirUp:    {0, 1, 0},
	DirDown:  {0, -1, 0},
	DirLeft:  {-1, 0, 0},
	DirRight: {1, 0, 0},
}

// Base local axes per face in the unrotated reference frame. The vectors
// encode how each face's grid is oriented when projected to the screen: a
// face's up axis is the world direction its local Up slides toward, and
// likewise for right. At identity orientation they reproduce the static
// lookup table exactly.
var (
	baseUp = [FaceCount]vec3{
		FaceFront:  {0, 1, 0},
		FaceRight:  {1, 0, 0},
		FaceBack:   {0, 1, 0},
		FaceLeft:   {-1, 0, 0},
		FaceTop:    {0, 1, 0},
		FaceBottom: {0, -1, 0},
	}
	baseRight = [FaceCount]vec3{
		FaceFront:  {1, 0, 0},
		FaceRight:  {0, -1, 0},
		FaceBack:   {-1, 0, 0},
		FaceLeft:   {0, 1, 0},
		FaceTop:    {1, 0, 0},
		FaceBottom: {1, 0, 0},
	}
)

// OrientedMapper resolves directions by tracking the cube's accumulated 3D
// rotation. After every quarter turn it recomputes each face's world-space
// axes, so it stays correct even if the cube is reoriented arbitrarily,
// which the static table cannot express.
type OrientedMapper struct {
	rot   mat3
	front Face
}

// NewOrientedMapper creates a mapper at identity orientation, Front forward.
func NewOrientedMapper() *OrientedMapper {
	return &OrientedMapper{
		rot:   identityMat(),
		front: FaceFront,
	}
}

// LocalDirection rotates the face's base axes by the accumulated transform
// and picks the local direction whose world axis carries the requested
// global direction. With quarter-turn rotations every dot product is -1, 0
// or 1, and the up and right axes stay orthogonal, so at most one of them
// aligns with the goal. When the face's relevant axis has rotated out of
// the screen plane entirely, the global direction passes through unchanged;
// the identity fallback keeps Up/Down (and Left/Right) an opposite pair.
func (m *OrientedMapper) LocalDirection(face Face, dir Direction) Direction {
	if !face.valid() {
		panic(fmt.Sprintf("qube: invalid face %d", int(face)))
	}
	if !dir.valid() {
		panic(fmt.Sprintf("qube: invalid direction %d", int(dir)))
	}

	up := m.rot.apply(baseUp[face])
	right := m.rot.apply(baseRight[face])
	goal := directionVec[dir]

	if d := up.dot(goal); d > 0.5 {
		return DirUp
	} else if d < -0.5 {
		return DirDown
	}
	if d := right.dot(goal); d > 0.5 {
		return DirRight
	} else if d < -0.5 {
		return DirLeft
	}
	return dir
}

// ApplyRotation accumulates a quarter-turn rotation and advances the
// forward face along the cycle for the axis.
func (m *OrientedMapper) ApplyRotation(axis Axis, degrees int) {
	m.rot = rotationMat(axis, degrees).mul(m.rot)
	m.front = rotateFace(m.front, axis, degrees/90)
}

// Front returns the face currently facing the viewer.
func (m *OrientedMapper) Front() Face {
	return m.front
}

// Reset restores the identity orientation.
func (m *OrientedMapper) Reset() {
	m.rot = identityMat()
	m.front = FaceFront
}
