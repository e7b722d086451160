package shape

import (
	"fmt"

	"github.com/example/inkpad/internal/geom"
)

// Border is the bounding box of every point ever drawn. It only grows.
type Border struct {
	Left, Top, Right, Bottom float64
}

// Expand grows b so that it contains p.
func (b *Border) Expand(p geom.Point) {
	if p.X < b.Left {
		b.Left = p.X
	}
	if p.X > b.Right {
		b.Right = p.X
	}
	if p.Y < b.Top {
		b.Top = p.Y
	}
	if p.Y > b.Bottom {
		b.Bottom = p.Y
	}
}

// View is the read side of a Store.
type View interface {
	Len() int
	At(i int) Shape
	Shapes() []Shape
	Border() Border
}

// Store is the ordered shape collection. Index is identity and z-order.
// It is not safe for concurrent use.
type Store struct {
	shapes []Shape
	border Border
}

// NewStore returns an empty store whose border covers the canvas extent.
func NewStore(width, height float64) *Store {
	return &Store{border: Border{Right: width, Bottom: height}}
}

// Len returns the number of shapes.
func (s *Store) Len() int { return len(s.shapes) }

// At returns the shape at index i.
func (s *Store) At(i int) Shape { return s.shapes[i] }

// Shapes returns a copy of the shapes in z-order.
func (s *Store) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Border returns the current bounding box.
func (s *Store) Border() Border { return s.border }

// Append adds sh on top and returns its index.
func (s *Store) Append(sh Shape) int {
	s.shapes = append(s.shapes, sh)
	return len(s.shapes) - 1
}

// Expand grows the border to include every point.
func (s *Store) Expand(pts ...geom.Point) {
	for _, p := range pts {
		s.border.Expand(p)
	}
}

// Delete removes the shape at i. Later shapes move down one index.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.shapes) {
		return fmt.Errorf("delete shape %d: index out of range [0,%d)", i, len(s.shapes))
	}
	last := len(s.shapes) - 1
	copy(s.shapes[i:], s.shapes[i+1:])
	s.shapes[last] = nil
	s.shapes = s.shapes[:last]
	return nil
}

// SetText replaces the content and cached width of the text shape at i,
// leaving its location and style untouched.
func (s *Store) SetText(i int, text string, width float64) error {
	if i < 0 || i >= len(s.shapes) {
		return fmt.Errorf("edit shape %d: index out of range [0,%d)", i, len(s.shapes))
	}
	t, ok := s.shapes[i].(Text)
	if !ok {
		return fmt.Errorf("edit shape %d: %s is not text", i, s.shapes[i].Kind())
	}
	t.Text = text
	t.Width = width
	s.shapes[i] = t
	return nil
}
