package shape

// Shaper is the capability of being a Shape.
//
// It is satisfied by *Shape and by any pointer to a struct embedding [Shape],
// which is how [Rectangle] gets it. The unexported method keeps other types
// from claiming the capability.
type Shaper interface {
	shape() *Shape

	// Kind returns the name of the concrete type the value was constructed as.
	Kind() string

	// Move shifts the position by dx and dy.
	Move(dx, dy int)

	// Position returns a snapshot of the current position.
	Position() Point
}

// Rectangular is the capability of being a Rectangle.
//
// Everything rectangular is also a [Shaper].
type Rectangular interface {
	Shaper
	rectangle() *Rectangle
}

var (
	_ Shaper      = (*Shape)(nil)
	_ Shaper      = (*Rectangle)(nil)
	_ Rectangular = (*Rectangle)(nil)
)

// IsShape reports whether v is a Shape.
func IsShape(v any) bool {
	_, ok := v.(Shaper)
	return ok
}

// IsRectangle reports whether v is a Rectangle.
func IsRectangle(v any) bool {
	_, ok := v.(Rectangular)
	return ok
}
