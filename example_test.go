package shape_test

import (
	"fmt"

	"go.uber.org/zap"

	shape "github.com/rnkv/shape-go"
)

func Example() {
	rect := shape.NewRectangle()

	fmt.Println(shape.IsRectangle(rect), shape.IsShape(rect))

	rect.Move(3, -4)

	fmt.Println(rect.X, rect.Y)
	// Output:
	// true true
	// 2 1
}

func ExampleSetLogger() {
	s := shape.NewShape()

	shape.SetLogger(zap.NewExample())
	defer shape.SetLogger(nil)

	s.Move(1, 2)
	// Output:
	// {"level":"info","msg":"Shape moved.","kind":"Shape","x":0,"y":7}
}
