package qube

import "testing"

func TestOrientedMapperIdentityMatchesStaticTable(t *testing.T) {
	oriented := NewOrientedMapper()
	static := NewStaticMapper()

	for _, face := range allFaces {
		for _, dir := range allDirections {
			got := oriented.LocalDirection(face, dir)
			want := static.LocalDirection(face, dir)
			if got != want {
				t.Errorf("identity orientation: LocalDirection(%s, %s) = %s, static table says %s",
					face, dir, got, want)
			}
		}
	}
}

func TestOrientedMapperRoundTrip(t *testing.T) {
	m := NewOrientedMapper()

	// Four quarter turns in the same direction are a full revolution.
	for i := range 4 {
		m.ApplyRotation(AxisY, 90)
		if i < 3 && m.Front() == FaceFront {
			t.Fatalf("front face returned home after only %d quarter turns", i+1)
		}
	}

	if m.Front() != FaceFront {
		t.Errorf("Front() after full revolution = %s, want Front", m.Front())
	}
	for _, dir := range allDirections {
		if got := m.LocalDirection(FaceFront, dir); got != dir {
			t.Errorf("after full revolution LocalDirection(Front, %s) = %s, want identity", dir, got)
		}
	}
}

func TestOrientedMapperFrontCycle(t *testing.T) {
	tests := []struct {
		name     string
		axis     Axis
		degrees  int
		expected []Face
	}{
		{"positive Y", AxisY, 90, []Face{FaceRight, FaceBack, FaceLeft, FaceFront}},
		{"negative Y", AxisY, -90, []Face{FaceLeft, FaceBack, FaceRight, FaceFront}},
		{"positive X", AxisX, 90, []Face{FaceTop, FaceBack, FaceBottom, FaceFront}},
		{"negative X", AxisX, -90, []Face{FaceBottom, FaceBack, FaceTop, FaceFront}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewOrientedMapper()
			for i, want := range tt.expected {
				m.ApplyRotation(tt.axis, tt.degrees)
				if got := m.Front(); got != want {
					t.Fatalf("after %d turns Front() = %s, want %s", i+1, got, want)
				}
			}
		})
	}
}

func TestOrientedMapperOppositePairsSurviveRotation(t *testing.T) {
	sequences := [][]RotationCommand{
		{{AxisY, 90}},
		{{AxisY, -90}},
		{{AxisX, 90}},
		{{AxisX, -90}},
		{{AxisY, 90}, {AxisX, 90}},
		{{AxisX, -90}, {AxisY, 90}, {AxisY, 90}},
		{{AxisY, 90}, {AxisX, 90}, {AxisY, -90}, {AxisX, -90}},
		{{AxisX, 180}, {AxisY, 270}},
	}

	for _, seq := range sequences {
		m := NewOrientedMapper()
		for _, cmd := range seq {
			m.ApplyRotation(cmd.Axis, cmd.Degrees)
		}
		checkOppositePairs(t, m)
	}
}

func TestOrientedMapperDeterministic(t *testing.T) {
	run := func() [FaceCount][DirectionCount]Direction {
		m := NewOrientedMapper()
		m.ApplyRotation(AxisY, 90)
		m.ApplyRotation(AxisX, -90)
		m.ApplyRotation(AxisY, 90)

		var out [FaceCount][DirectionCount]Direction
		for _, face := range allFaces {
			for _, dir := range allDirections {
				out[face][dir] = m.LocalDirection(face, dir)
			}
		}
		return out
	}

	if run() != run() {
		t.Error("identical rotation sequences produced different mappings")
	}
}

func TestOrientedMapperReset(t *testing.T) {
	m := NewOrientedMapper()
	m.ApplyRotation(AxisY, 90)
	m.ApplyRotation(AxisX, 90)

	m.Reset()

	if m.Front() != FaceFront {
		t.Errorf("Front() after Reset = %s, want Front", m.Front())
	}
	for _, dir := range allDirections {
		if got := m.LocalDirection(FaceFront, dir); got != dir {
			t.Errorf("after Reset LocalDirection(Front, %s) = %s, want identity", dir, got)
		}
	}
}

func TestOrientedMapperRejectsPartialTurns(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 45 degree rotation")
		}
	}()
	NewOrientedMapper().ApplyRotation(AxisY, 45)
}

func TestRotationMatExactness(t *testing.T) {
	// Quarter-turn matrices must hold only -1, 0 and 1 so repeated
	// multiplication cannot drift.
	for _, axis := range []Axis{AxisX, AxisY} {
		for _, deg := range []int{-270, -180, -90, 0, 90, 180, 270, 360} {
			m := rotationMat(axis, deg)
			for i := range 3 {
				for j := range 3 {
					v := m[i][j]
					if v != -1 && v != 0 && v != 1 {
						t.Errorf("rotationMat(%s, %d)[%d][%d] = %v, want -1, 0 or 1",
							axis, deg, i, j, v)
					}
				}
			}
		}
	}
}
