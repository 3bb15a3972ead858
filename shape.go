package shape

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

const (
	defaultX = -1
	defaultY = 5
)

// Point is a position snapshot.
type Point struct {
	X int
	Y int
}

type Shape struct {
	X int
	Y int

	// self is the outermost value this Shape was constructed as.
	self Shaper
}

// NewShape returns a Shape at the default position (-1, 5).
func NewShape() *Shape {
	s := &Shape{}
	s.init(s)
	return s
}

func (s *Shape) init(self Shaper) {
	s.X = defaultX
	s.Y = defaultY
	s.self = self

	log().Debug(fmt.Sprintf("%s constructed.", s.Kind()), zap.Int("x", s.X), zap.Int("y", s.Y))
}

func (s *Shape) shape() *Shape {
	return s
}

func (s *Shape) Kind() string {
	if s.self == nil {
		return "Unknown"
	}

	t := reflect.TypeOf(s.self)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}

func (s *Shape) Move(dx, dy int) {
	s.AssertConstructed()

	s.X += dx
	s.Y += dy

	log().Info("Shape moved.", zap.String("kind", s.Kind()), zap.Int("x", s.X), zap.Int("y", s.Y))
}

func (s *Shape) Position() Point {
	return Point{X: s.X, Y: s.Y}
}
