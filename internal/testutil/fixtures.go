package testutil

// SequenceSource is a dice source that replays fixed die faces. Faces are
// 1-based like the dice they stand in for; the sequence wraps around.
type SequenceSource struct {
	Faces []int
	pos   int
}

// NewSequenceSource creates a source that yields the given faces in order.
func NewSequenceSource(faces ...int) *SequenceSource {
	return &SequenceSource{Faces: faces}
}

// Intn returns the next face minus one, clamped into [0, n).
func (s *SequenceSource) Intn(n int) int {
	face := s.Faces[s.pos%len(s.Faces)]
	s.pos++

	v := face - 1
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Calls reports how many values have been drawn.
func (s *SequenceSource) Calls() int { return s.pos }
