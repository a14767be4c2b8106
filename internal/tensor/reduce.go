package tensor

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// NormalizeAxes maps negative axis indices onto [0, rank), removes
// duplicates and returns the axes sorted ascending. An empty list selects
// every axis.
func NormalizeAxes(rank int, axes []int) ([]int, error) {
	if len(axes) == 0 {
		all := make([]int, rank)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	norm := lo.Map(axes, func(ax int, _ int) int {
		if ax < 0 {
			return rank + ax
		}
		return ax
	})
	for i, ax := range norm {
		if ax < 0 || ax >= rank {
			return nil, fmt.Errorf("axis %d out of range for rank %d", axes[i], rank)
		}
	}
	norm = lo.Uniq(norm)
	slices.Sort(norm)
	return norm, nil
}

// ReducedShape removes the given (normalized) axes from a shape.
func ReducedShape(shape Shape, axes []int) Shape {
	out := make(Shape, 0, len(shape)-len(axes))
	for d, dim := range shape {
		if !slices.Contains(axes, d) {
			out = append(out, dim)
		}
	}
	return out
}

// Sum reduces over the given axes; with no axes it sums everything to a
// scalar. Reduced axes are removed from the shape, they are not kept as
// size 1.
func Sum(t *Dense, axes ...int) *Dense {
	norm, err := NormalizeAxes(t.Rank(), axes)
	if err != nil {
		panic(err)
	}
	outShape := ReducedShape(t.shape, norm)
	out := Zeros(outShape)
	if len(t.data) == 0 {
		return out
	}

	inStrides := t.shape.Strides()
	outStrides := outShape.Strides()
	// Per input axis: the output stride it contributes, 0 when reduced.
	contrib := make([]int, t.Rank())
	outAxis := 0
	for d := range t.shape {
		if slices.Contains(norm, d) {
			contrib[d] = 0
		} else {
			contrib[d] = outStrides[outAxis]
			outAxis++
		}
	}

	for i, v := range t.data {
		flat := i
		dst := 0
		for d, stride := range inStrides {
			coord := flat / stride
			flat %= stride
			dst += coord * contrib[d]
		}
		out.data[dst] += v
	}
	return out
}
