package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreation(t *testing.T) {
	zeros := Zeros(Shape{2, 3})
	assert.Equal(t, 6, zeros.NumElements())
	for _, v := range zeros.Data() {
		assert.Zero(t, v)
	}

	ones := Ones(Shape{2})
	assert.Equal(t, []float64{1, 1}, ones.Data())

	full := Full(Shape{3}, 2.5)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, full.Data())

	s := Scalar(7)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 7.0, s.Item())
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New(Shape{2, -1})
	require.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 4.0, d.At(1, 0))
	assert.Equal(t, 6.0, d.At(1, 2))

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
}

func TestFullNaN(t *testing.T) {
	nan := FullNaN(Shape{2, 2})
	assert.True(t, nan.AllNaN())
	assert.True(t, nan.AnyNaN())

	mixed, err := FromSlice([]float64{1, math.NaN()}, Shape{2})
	require.NoError(t, err)
	assert.False(t, mixed.AllNaN())
	assert.True(t, mixed.AnyNaN())
	assert.Equal(t, []float64{0, 1}, mixed.IsNaN().Data())
}

func TestCloneIsDeep(t *testing.T) {
	orig, err := FromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)
	clone := orig.Clone()
	clone.Data()[0] = 99
	assert.Equal(t, 1.0, orig.Data()[0])
}

func TestFillAndSetAt(t *testing.T) {
	d := Zeros(Shape{2, 2})
	d.Fill(3)
	assert.Equal(t, []float64{3, 3, 3, 3}, d.Data())

	d.SetAt(-1, 1, 1)
	assert.Equal(t, -1.0, d.At(1, 1))
}

func TestAccumulate(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{2})
	b, _ := FromSlice([]float64{10, 20}, Shape{2})
	a.Accumulate(b)
	assert.Equal(t, []float64{11, 22}, a.Data())

	assert.Panics(t, func() { a.Accumulate(Zeros(Shape{3})) })
}

func TestEqualAndAllClose(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{2})
	b, _ := FromSlice([]float64{1, 2}, Shape{2})
	c, _ := FromSlice([]float64{1, 2.0001}, Shape{2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.AllClose(c, 1e-3))
	assert.False(t, a.AllClose(c, 1e-6))
	assert.False(t, a.AllClose(Zeros(Shape{3}), 1))
}
