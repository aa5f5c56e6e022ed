package qube

import "fmt"

// RotationCommand tells the presentation layer how to visually reorient the
// cube after a move: a quarter turn about one axis, signed by direction.
type RotationCommand struct {
	Axis    Axis
	Degrees int
}

// Tracker maintains which face is currently forward and the accumulated
// rotation angles needed to visually present it. It holds no board or tile
// state; the engine consults it after every successful move and the
// presentation layer reads it to orient the cube.
type Tracker struct {
	forward Face
	angleX  int
	angleY  int
}

// NewTracker creates a tracker with Front forward and zero rotation.
func NewTracker() *Tracker {
	return &Tracker{forward: FaceFront}
}

// Forward returns the face currently presented to the player.
func (t *Tracker) Forward() Face {
	return t.forward
}

// SetForward forces the forward face, clearing accumulated angles.
// Panics on an invalid face.
func (t *Tracker) SetForward(f Face) {
	if !f.valid() {
		panic(fmt.Sprintf("qube: invalid face %d", int(f)))
	}
	t.forward = f
	t.angleX = 0
	t.angleY = 0
}

// Angles returns the accumulated rotation in degrees around the X, Y and Z
// axes. Z is always zero; swipes only rotate about X and Y.
func (t *Tracker) Angles() (x, y, z int) {
	return t.angleX, t.angleY, 0
}

// Command returns the rotation a swipe in the given direction produces.
// Convention: swiping Left turns the cube +90 about Y (Right face comes
// forward), Right turns -90 about Y, Up turns -90 about X (Bottom comes
// forward), Down turns +90 about X (Top comes forward).
func (t *Tracker) Command(dir Direction) RotationCommand {
	switch dir {
	case DirLeft:
		return RotationCommand{Axis: AxisY, Degrees: 90}
	case DirRight:
		return RotationCommand{Axis: AxisY, Degrees: -90}
	case DirUp:
		return RotationCommand{Axis: AxisX, Degrees: -90}
	case DirDown:
		return RotationCommand{Axis: AxisX, Degrees: 90}
	default:
		panic(fmt.Sprintf("qube: invalid direction %d", int(dir)))
	}
}

// NextFace returns the face that becomes forward after a swipe in the given
// direction, without mutating the tracker. A forward face lying on the
// rotation axis spins in place and stays forward.
func (t *Tracker) NextFace(dir Direction) Face {
	cmd := t.Command(dir)
	return rotateFace(t.forward, cmd.Axis, cmd.Degrees/90)
}

// Apply accumulates a rotation command: angles are advanced and the forward
// face follows the rotation cycle for the axis.
func (t *Tracker) Apply(cmd RotationCommand) {
	if cmd.Degrees%90 != 0 {
		panic(fmt.Sprintf("qube: rotation must be a multiple of 90 degrees, got %d", cmd.Degrees))
	}

	switch cmd.Axis {
	case AxisX:
		t.angleX = normalizeAngle(t.angleX + cmd.Degrees)
	case AxisY:
		t.angleY = normalizeAngle(t.angleY + cmd.Degrees)
	default:
		panic(fmt.Sprintf("qube: invalid axis %d", int(cmd.Axis)))
	}

	t.forward = rotateFace(t.forward, cmd.Axis, cmd.Degrees/90)
}

// Reset restores the initial state: Front forward, zero angles.
func (t *Tracker) Reset() {
	t.forward = FaceFront
	t.angleX = 0
	t.angleY = 0
}

// normalizeAngle wraps an angle into [0, 360).
func normalizeAngle(deg int) int {
	return (deg%360 + 360) % 360
}
