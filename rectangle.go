package shape

// Rectangle is a Shape with no state of its own.
type Rectangle struct {
	Shape
}

// NewRectangle returns a Rectangle initialized by Shape's constructor logic.
func NewRectangle() *Rectangle {
	r := &Rectangle{}
	r.Shape.init(r)
	return r
}

func (r *Rectangle) rectangle() *Rectangle {
	return r
}
