package tensor

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Dense is a dense, row-major float64 tensor.
//
// The buffer is owned by the Dense that allocated it; Clone performs a deep
// copy. Values are mutated in place by the graph engine, so no copy-on-write
// machinery is carried here.
type Dense struct {
	data  []float64
	shape Shape
}

// New allocates a zero-filled tensor of the given shape.
func New(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// FromSlice builds a tensor from a flat row-major slice.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(t.data, data)
	return t, nil
}

// Zeros creates a tensor filled with zeros. Panics on an invalid shape.
func Zeros(shape Shape) *Dense {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float64) *Dense {
	t := Zeros(shape)
	t.Fill(value)
	return t
}

// FullNaN creates the unbound-sentinel tensor: every element is NaN.
func FullNaN(shape Shape) *Dense {
	return Full(shape, math.NaN())
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar(value float64) *Dense {
	return Full(Shape{}, value)
}

// Randn creates a tensor with samples from the standard normal distribution.
func Randn(shape Shape) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rand.NormFloat64()
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Dense) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// NumElements returns the total element count.
func (t *Dense) NumElements() int {
	return len(t.data)
}

// Data returns the underlying flat buffer. Mutations are visible to every
// holder of this tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// At reads the element at the given multi-index.
func (t *Dense) At(idx ...int) float64 {
	return t.data[t.flatIndex(idx)]
}

// SetAt writes the element at the given multi-index.
func (t *Dense) SetAt(value float64, idx ...int) {
	t.data[t.flatIndex(idx)] = value
}

func (t *Dense) flatIndex(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("index rank %d does not match tensor rank %d", len(idx), len(t.shape)))
	}
	flat := 0
	for i, stride := range t.shape.Strides() {
		if idx[i] < 0 || idx[i] >= t.shape[i] {
			panic(fmt.Sprintf("index %v out of range for shape %v", idx, t.shape))
		}
		flat += idx[i] * stride
	}
	return flat
}

// Item returns the sole element of a one-element tensor.
func (t *Dense) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item on tensor with %d elements", len(t.data)))
	}
	return t.data[0]
}

// Fill overwrites every element with the given value.
func (t *Dense) Fill(value float64) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	clone := Zeros(t.shape)
	copy(clone.data, t.data)
	return clone
}

// Accumulate adds other into t element by element. Both tensors must have
// the same shape.
func (t *Dense) Accumulate(other *Dense) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("accumulate shape %v into %v", other.shape, t.shape))
	}
	for i, v := range other.data {
		t.data[i] += v
	}
}

// Equal reports exact equality of shape and elements. NaN != NaN, as usual.
func (t *Dense) Equal(other *Dense) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether every element pair is within tol of each other.
func (t *Dense) AllClose(other *Dense, tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if math.Abs(t.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// IsNaN returns a 0/1 mask marking NaN elements.
func (t *Dense) IsNaN() *Dense {
	mask := Zeros(t.shape)
	for i, v := range t.data {
		if math.IsNaN(v) {
			mask.data[i] = 1
		}
	}
	return mask
}

// AllNaN reports whether every element is NaN.
func (t *Dense) AllNaN() bool {
	for _, v := range t.data {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// AnyNaN reports whether any element is NaN.
func (t *Dense) AnyNaN() bool {
	for _, v := range t.data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// String renders the shape and flat data, e.g. "Dense(3, 4)[1 2 ...]".
func (t *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%v%v", t.shape, t.data)
	return b.String()
}
