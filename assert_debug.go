//go:build debug

package shape

import "fmt"

// AssertConstructed panics if the Shape was not built by a constructor (debug only).
func (s *Shape) AssertConstructed() {
	if s.self == nil {
		panic(
			fmt.Sprintf(
				"shape: contract violation: %T used without construction; "+
					"use NewShape() or NewRectangle()",
				s,
			),
		)
	}
}
