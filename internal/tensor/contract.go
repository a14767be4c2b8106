package tensor

import "github.com/pkg/errors"

// Contract computes the generalized tensor product of a and b with the
// given contraction depth.
//
// The last depth axes of a pair with the first depth axes of b, innermost
// first: a's axis -1 contracts with b's axis 0, a's axis -2 with b's axis 1,
// and so on. Depth 1 on two matrices is the ordinary matrix product and
// depth 0 is the outer product. The result keeps a's leading axes followed
// by b's trailing axes.
func Contract(a, b *Dense, depth int) (*Dense, error) {
	ra, rb := a.Rank(), b.Rank()
	if depth < 0 {
		return nil, errors.Errorf("contraction depth %d is negative", depth)
	}
	if depth > ra || depth > rb {
		return nil, errors.Errorf("contraction depth %d exceeds operand rank (%d vs %d)", depth, ra, rb)
	}
	for j := 0; j < depth; j++ {
		if a.shape[ra-1-j] != b.shape[j] {
			return nil, errors.Errorf("cannot contract %v with %v at depth %d: axis %d of left (%d) != axis %d of right (%d)",
				a.shape, b.shape, depth, ra-1-j, a.shape[ra-1-j], j, b.shape[j])
		}
	}

	outShape := append(a.shape[:ra-depth].Clone(), b.shape[depth:]...)
	out := Zeros(outShape)

	free := a.shape[:ra-depth].NumElements()  // rows of the flattened product
	cols := Shape(b.shape[depth:]).NumElements()
	pairs := Shape(b.shape[:depth]).NumElements()
	tailA := Shape(a.shape[ra-depth:]).NumElements()
	if free == 0 || cols == 0 {
		return out, nil
	}

	// Per contraction index: offset into a's trailing axes. b's offset is
	// simply the contraction index times cols (row-major layout).
	aStrides := a.shape.Strides()
	pairStrides := Shape(b.shape[:depth]).Strides()
	aOffset := make([]int, pairs)
	for c := 0; c < pairs; c++ {
		rem := c
		off := 0
		for j := 0; j < depth; j++ {
			coord := rem / pairStrides[j]
			rem %= pairStrides[j]
			off += coord * aStrides[ra-1-j]
		}
		aOffset[c] = off
	}

	for i := 0; i < free; i++ {
		outRow := out.data[i*cols : (i+1)*cols]
		for c := 0; c < pairs; c++ {
			av := a.data[i*tailA+aOffset[c]]
			bRow := b.data[c*cols : (c+1)*cols]
			for j, bv := range bRow {
				outRow[j] += av * bv
			}
		}
	}
	return out, nil
}
