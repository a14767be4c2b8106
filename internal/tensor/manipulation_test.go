package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransposeDefaultReverses(t *testing.T) {
	// [[1 2 3] [4 5 6]] -> [[1 4] [2 5] [3 6]]
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	out := a.Transpose()
	require.True(t, out.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.Data())
}

func TestTransposeExplicitAxes(t *testing.T) {
	a, _ := FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7}, Shape{2, 2, 2})
	out := a.Transpose(1, 0, 2)
	require.True(t, out.Shape().Equal(Shape{2, 2, 2}))
	assert.Equal(t, []float64{0, 1, 4, 5, 2, 3, 6, 7}, out.Data())
}

func TestTransposeRoundTrip(t *testing.T) {
	a := Randn(Shape{3, 4, 5})
	assert.True(t, a.Transpose().Transpose().Equal(a))
}

func TestTransposeScalar(t *testing.T) {
	s := Scalar(5)
	assert.Equal(t, 5.0, s.Transpose().Item())
}

func TestTransposeBadAxesPanics(t *testing.T) {
	a := Zeros(Shape{2, 3})
	assert.Panics(t, func() { a.Transpose(0, 0) })
	assert.Panics(t, func() { a.Transpose(0, 2) })
	assert.Panics(t, func() { a.Transpose(0) })
}

func TestReshape(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	out := a.Reshape(Shape{3, 2})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out.Data())
	assert.Panics(t, func() { a.Reshape(Shape{4, 2}) })
}

func TestExpandDims(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	assert.True(t, a.ExpandDims(0).Shape().Equal(Shape{1, 3}))
	assert.True(t, a.ExpandDims(1).Shape().Equal(Shape{3, 1}))
	assert.True(t, a.ExpandDims(-1).Shape().Equal(Shape{3, 1}))
	assert.True(t, a.ExpandDims(0, 2).Shape().Equal(Shape{1, 3, 1}))

	s := Scalar(4)
	assert.True(t, s.ExpandDims(0, 1).Shape().Equal(Shape{1, 1}))
}

func TestBroadcastTo(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	out := a.BroadcastTo(Shape{2, 3})
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, out.Data())

	col, _ := FromSlice([]float64{1, 2}, Shape{2, 1})
	out = col.BroadcastTo(Shape{2, 3})
	assert.Equal(t, []float64{1, 1, 1, 2, 2, 2}, out.Data())

	assert.Panics(t, func() { a.BroadcastTo(Shape{2, 4}) })
	// Broadcasting never shrinks.
	assert.Panics(t, func() { Zeros(Shape{2, 3}).BroadcastTo(Shape{3}) })
}
