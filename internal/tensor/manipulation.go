package tensor

import (
	"fmt"
	"slices"
)

// Transpose permutes the axes. With no arguments the axis order is
// reversed, matching the numpy default.
func (t *Dense) Transpose(axes ...int) *Dense {
	rank := t.Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panic(fmt.Sprintf("transpose axes %v do not permute rank %d", axes, rank))
	}
	seen := make([]bool, rank)
	outShape := make(Shape, rank)
	for i, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			panic(fmt.Sprintf("transpose axes %v are not a permutation of rank %d", axes, rank))
		}
		seen[ax] = true
		outShape[i] = t.shape[ax]
	}

	out := Zeros(outShape)
	if len(out.data) == 0 {
		return out
	}
	inStrides := t.shape.Strides()
	outStrides := outShape.Strides()
	for i := range out.data {
		flat := i
		src := 0
		for d, stride := range outStrides {
			coord := flat / stride
			flat %= stride
			src += coord * inStrides[axes[d]]
		}
		out.data[i] = t.data[src]
	}
	return out
}

// Reshape returns a tensor with the same elements and a new shape. The
// element count must not change.
func (t *Dense) Reshape(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.NumElements() != len(t.data) {
		panic(fmt.Sprintf("reshape %v to %v changes element count", t.shape, shape))
	}
	out := Zeros(shape)
	copy(out.data, t.data)
	return out
}

// ExpandDims inserts size-1 axes at the given positions of the result,
// numpy expand_dims style. Axes refer to the expanded shape and may be
// given in any order.
func (t *Dense) ExpandDims(axes ...int) *Dense {
	outRank := t.Rank() + len(axes)
	norm := make([]int, len(axes))
	for i, ax := range axes {
		if ax < 0 {
			ax += outRank
		}
		if ax < 0 || ax >= outRank {
			panic(fmt.Sprintf("expand axis %d out of range for rank %d", axes[i], outRank))
		}
		norm[i] = ax
	}
	slices.Sort(norm)

	outShape := make(Shape, 0, outRank)
	src := 0
	for d := 0; d < outRank; d++ {
		if slices.Contains(norm, d) {
			outShape = append(outShape, 1)
		} else {
			outShape = append(outShape, t.shape[src])
			src++
		}
	}
	return t.Reshape(outShape)
}

// BroadcastTo materializes the tensor expanded to the target shape. The
// target must be reachable by the standard broadcasting rules.
func (t *Dense) BroadcastTo(shape Shape) *Dense {
	combined, err := BroadcastShapes(t.shape, shape)
	if err != nil || !combined.Equal(shape) {
		panic(fmt.Sprintf("cannot broadcast %v to %v", t.shape, shape))
	}
	out := Zeros(shape)
	idx := newBroadcastIndexer(t.shape, shape)
	for i := range out.data {
		out.data[i] = t.data[idx.at(i)]
	}
	return out
}
