//go:build !debug

package shape

// AssertConstructed panics if the Shape was not built by a constructor (debug only).
func (s *Shape) AssertConstructed() {}
