package qube

import "testing"

func TestTrackerCommand(t *testing.T) {
	tr := NewTracker()

	tests := []struct {
		dir      Direction
		expected RotationCommand
	}{
		{DirLeft, RotationCommand{Axis: AxisY, Degrees: 90}},
		{DirRight, RotationCommand{Axis: AxisY, Degrees: -90}},
		{DirUp, RotationCommand{Axis: AxisX, Degrees: -90}},
		{DirDown, RotationCommand{Axis: AxisX, Degrees: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tr.Command(tt.dir); got != tt.expected {
				t.Errorf("Command(%s) = %+v, want %+v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestTrackerCommandOppositeSwipesCancel(t *testing.T) {
	tr := NewTracker()
	for _, dir := range allDirections {
		a := tr.Command(dir)
		b := tr.Command(dir.Opposite())
		if a.Axis != b.Axis {
			t.Errorf("%s and %s rotate about different axes", dir, dir.Opposite())
		}
		if a.Degrees != -b.Degrees {
			t.Errorf("%s and %s do not cancel: %d vs %d", dir, dir.Opposite(), a.Degrees, b.Degrees)
		}
	}
}

func TestTrackerNextFace(t *testing.T) {
	tests := []struct {
		name     string
		forward  Face
		dir      Direction
		expected Face
	}{
		{"left swipe brings right face", FaceFront, DirLeft, FaceRight},
		{"right swipe brings left face", FaceFront, DirRight, FaceLeft},
		{"up swipe brings bottom face", FaceFront, DirUp, FaceBottom},
		{"down swipe brings top face", FaceFront, DirDown, FaceTop},
		{"left swipe from right face", FaceRight, DirLeft, FaceBack},
		{"top face spins on left swipe", FaceTop, DirLeft, FaceTop},
		{"bottom face spins on right swipe", FaceBottom, DirRight, FaceBottom},
		{"right face spins on up swipe", FaceRight, DirUp, FaceRight},
		{"left face spins on down swipe", FaceLeft, DirDown, FaceLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			tr.SetForward(tt.forward)
			if got := tr.NextFace(tt.dir); got != tt.expected {
				t.Errorf("NextFace(%s) from %s = %s, want %s", tt.dir, tt.forward, got, tt.expected)
			}
			if tr.Forward() != tt.forward {
				t.Error("NextFace must not mutate the tracker")
			}
		})
	}
}

func TestTrackerApply(t *testing.T) {
	tr := NewTracker()

	tr.Apply(RotationCommand{Axis: AxisY, Degrees: 90})
	if tr.Forward() != FaceRight {
		t.Errorf("Forward = %s, want Right", tr.Forward())
	}
	x, y, z := tr.Angles()
	if x != 0 || y != 90 || z != 0 {
		t.Errorf("Angles = (%d, %d, %d), want (0, 90, 0)", x, y, z)
	}

	tr.Apply(RotationCommand{Axis: AxisX, Degrees: 90})
	if tr.Forward() != FaceRight {
		t.Errorf("Forward = %s, want Right to spin in place", tr.Forward())
	}
	x, y, _ = tr.Angles()
	if x != 90 || y != 90 {
		t.Errorf("Angles = (%d, %d), want (90, 90)", x, y)
	}
}

func TestTrackerFullRevolution(t *testing.T) {
	tr := NewTracker()

	for range 4 {
		tr.Apply(RotationCommand{Axis: AxisY, Degrees: 90})
	}

	if tr.Forward() != FaceFront {
		t.Errorf("Forward after full revolution = %s, want Front", tr.Forward())
	}
	x, y, z := tr.Angles()
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("Angles after full revolution = (%d, %d, %d), want zeros", x, y, z)
	}
}

func TestTrackerNegativeAnglesNormalize(t *testing.T) {
	tr := NewTracker()

	tr.Apply(RotationCommand{Axis: AxisY, Degrees: -90})
	_, y, _ := tr.Angles()
	if y != 270 {
		t.Errorf("angle Y = %d, want 270", y)
	}
	if tr.Forward() != FaceLeft {
		t.Errorf("Forward = %s, want Left", tr.Forward())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(RotationCommand{Axis: AxisY, Degrees: 90})
	tr.Apply(RotationCommand{Axis: AxisX, Degrees: 90})

	tr.Reset()

	if tr.Forward() != FaceFront {
		t.Errorf("Forward after Reset = %s, want Front", tr.Forward())
	}
	x, y, z := tr.Angles()
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("Angles after Reset = (%d, %d, %d), want zeros", x, y, z)
	}
}

func TestTrackerSetForwardPanicsOnInvalidFace(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid face")
		}
	}()
	NewTracker().SetForward(Face(42))
}

func TestTrackerApplyRejectsPartialTurns(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 30 degree rotation")
		}
	}()
	NewTracker().Apply(RotationCommand{Axis: AxisY, Degrees: 30})
}
