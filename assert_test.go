//go:build !debug

package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	shape "github.com/rnkv/shape-go"
)

func TestZeroValueMove(t *testing.T) {
	var r shape.Rectangle

	assert.NotPanics(t, func() { r.Move(3, -4) })
	assert.Equal(t, shape.Point{X: 3, Y: -4}, r.Position())
}
