package qube

import "testing"

var allDirections = []Direction{DirUp, DirDown, DirLeft, DirRight}

var allFaces = []Face{FaceFront, FaceRight, FaceBack, FaceLeft, FaceTop, FaceBottom}

func TestStaticMapperTable(t *testing.T) {
	m := NewStaticMapper()

	tests := []struct {
		face     Face
		dir      Direction
		expected Direction
	}{
		{FaceFront, DirUp, DirUp},
		{FaceFront, DirDown, DirDown},
		{FaceFront, DirLeft, DirLeft},
		{FaceFront, DirRight, DirRight},

		{FaceTop, DirUp, DirUp},
		{FaceTop, DirLeft, DirLeft},

		{FaceBack, DirUp, DirUp},
		{FaceBack, DirDown, DirDown},
		{FaceBack, DirLeft, DirRight},
		{FaceBack, DirRight, DirLeft},

		{FaceLeft, DirUp, DirRight},
		{FaceLeft, DirDown, DirLeft},
		{FaceLeft, DirLeft, DirUp},
		{FaceLeft, DirRight, DirDown},

		{FaceRight, DirUp, DirLeft},
		{FaceRight, DirDown, DirRight},
		{FaceRight, DirLeft, DirDown},
		{FaceRight, DirRight, DirUp},

		{FaceBottom, DirUp, DirDown},
		{FaceBottom, DirDown, DirUp},
		{FaceBottom, DirLeft, DirLeft},
		{FaceBottom, DirRight, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.face.String()+"/"+tt.dir.String(), func(t *testing.T) {
			if got := m.LocalDirection(tt.face, tt.dir); got != tt.expected {
				t.Errorf("LocalDirection(%s, %s) = %s, want %s", tt.face, tt.dir, got, tt.expected)
			}
		})
	}
}

func TestStaticMapperFrontIsIdentity(t *testing.T) {
	m := NewStaticMapper()
	for _, dir := range allDirections {
		if got := m.LocalDirection(FaceFront, dir); got != dir {
			t.Errorf("LocalDirection(Front, %s) = %s, want identity", dir, got)
		}
	}
}

// checkOppositePairs verifies that Up/Down and Left/Right each resolve to a
// mutually opposite pair on every face: 24 mappings in total.
func checkOppositePairs(t *testing.T, m DirectionMapper) {
	t.Helper()
	for _, face := range allFaces {
		up := m.LocalDirection(face, DirUp)
		down := m.LocalDirection(face, DirDown)
		if up.Opposite() != down {
			t.Errorf("face %s: Up -> %s and Down -> %s are not opposites", face, up, down)
		}

		left := m.LocalDirection(face, DirLeft)
		right := m.LocalDirection(face, DirRight)
		if left.Opposite() != right {
			t.Errorf("face %s: Left -> %s and Right -> %s are not opposites", face, left, right)
		}
	}
}

func TestStaticMapperOppositePairs(t *testing.T) {
	checkOppositePairs(t, NewStaticMapper())
}

func TestStaticMapperPanicsOnInvalidInput(t *testing.T) {
	m := NewStaticMapper()

	t.Run("invalid face", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for invalid face")
			}
		}()
		m.LocalDirection(Face(99), DirUp)
	})

	t.Run("invalid direction", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for invalid direction")
			}
		}()
		m.LocalDirection(FaceFront, Direction(-1))
	})
}

func TestDirectionOpposite(t *testing.T) {
	for _, dir := range allDirections {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%s.Opposite().Opposite() != %s", dir, dir)
		}
		if dir.Opposite() == dir {
			t.Errorf("%s is its own opposite", dir)
		}
	}
}

func TestRotateFace(t *testing.T) {
	tests := []struct {
		name     string
		face     Face
		axis     Axis
		steps    int
		expected Face
	}{
		{"front +1 around Y", FaceFront, AxisY, 1, FaceRight},
		{"front -1 around Y", FaceFront, AxisY, -1, FaceLeft},
		{"front +2 around Y", FaceFront, AxisY, 2, FaceBack},
		{"left +1 around Y", FaceLeft, AxisY, 1, FaceFront},
		{"front +1 around X", FaceFront, AxisX, 1, FaceTop},
		{"front -1 around X", FaceFront, AxisX, -1, FaceBottom},
		{"top +1 around X", FaceTop, AxisX, 1, FaceBack},
		{"top spins in place around Y", FaceTop, AxisY, 1, FaceTop},
		{"bottom spins in place around Y", FaceBottom, AxisY, -1, FaceBottom},
		{"right spins in place around X", FaceRight, AxisX, 1, FaceRight},
		{"left spins in place around X", FaceLeft, AxisX, -1, FaceLeft},
		{"full cycle returns home", FaceFront, AxisY, 4, FaceFront},
		{"negative wraps", FaceFront, AxisY, -5, FaceLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rotateFace(tt.face, tt.axis, tt.steps); got != tt.expected {
				t.Errorf("rotateFace(%s, %s, %d) = %s, want %s",
					tt.face, tt.axis, tt.steps, got, tt.expected)
			}
		})
	}
}
