package tensor

import "math"

// apply2 runs an elementwise binary function over two tensors with
// broadcasting. Panics when the shapes are not broadcast-compatible; the
// graph layer validates shapes at operator construction time.
func apply2(a, b *Dense, f func(x, y float64) float64) *Dense {
	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(err)
	}
	out := Zeros(outShape)

	aIdx := newBroadcastIndexer(a.shape, outShape)
	bIdx := newBroadcastIndexer(b.shape, outShape)
	for i := range out.data {
		out.data[i] = f(a.data[aIdx.at(i)], b.data[bIdx.at(i)])
	}
	return out
}

// broadcastIndexer maps flat indices in a broadcast output shape back to
// flat indices in a (possibly lower-rank or size-1-expanded) source shape.
type broadcastIndexer struct {
	outStrides []int
	srcStrides []int // aligned with outStrides; 0 where the source broadcasts
}

func newBroadcastIndexer(src, out Shape) *broadcastIndexer {
	outStrides := out.Strides()
	srcStrides := make([]int, len(out))
	real := src.Strides()
	offset := len(out) - len(src)
	for d := range out {
		srcDim := d - offset
		if srcDim < 0 || src[srcDim] == 1 {
			srcStrides[d] = 0
		} else {
			srcStrides[d] = real[srcDim]
		}
	}
	return &broadcastIndexer{outStrides: outStrides, srcStrides: srcStrides}
}

func (ix *broadcastIndexer) at(flat int) int {
	src := 0
	for d, stride := range ix.outStrides {
		coord := flat / stride
		flat %= stride
		src += coord * ix.srcStrides[d]
	}
	return src
}

// Add performs elementwise addition with broadcasting.
func Add(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func Sub(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs elementwise multiplication with broadcasting.
func Mul(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs elementwise division with broadcasting. Division by zero
// follows IEEE 754 (±Inf, NaN), it does not fail.
func Div(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x / y })
}

// Pow raises every element to a fixed real exponent. Invalid combinations
// (negative base with fractional exponent, and so on) yield NaN per math.Pow.
func Pow(t *Dense, exponent float64) *Dense {
	return unary(t, func(x float64) float64 { return math.Pow(x, exponent) })
}

// Scale multiplies every element by s.
func Scale(t *Dense, s float64) *Dense {
	return unary(t, func(x float64) float64 { return x * s })
}

// AddScalar adds s to every element.
func AddScalar(t *Dense, s float64) *Dense {
	return unary(t, func(x float64) float64 { return x + s })
}

// MaximumScalar computes elementwise max(x, s). NaN inputs stay NaN.
func MaximumScalar(t *Dense, s float64) *Dense {
	return unary(t, func(x float64) float64 { return math.Max(x, s) })
}

// Greater returns a 0/1 mask marking elements strictly greater than s.
// NaN compares false.
func (t *Dense) Greater(s float64) *Dense {
	return unary(t, func(x float64) float64 {
		if x > s {
			return 1
		}
		return 0
	})
}

// GreaterEqual returns a 0/1 mask marking elements greater than or equal
// to s. NaN compares false.
func (t *Dense) GreaterEqual(s float64) *Dense {
	return unary(t, func(x float64) float64 {
		if x >= s {
			return 1
		}
		return 0
	})
}

// Within returns a 0/1 mask marking elements in the closed interval
// [lo, hi]. NaN compares false.
func (t *Dense) Within(lo, hi float64) *Dense {
	return unary(t, func(x float64) float64 {
		if x >= lo && x <= hi {
			return 1
		}
		return 0
	})
}

// Where selects elements from x where cond is non-zero and from y elsewhere,
// broadcasting all three operands to a common shape.
func Where(cond, x, y *Dense) *Dense {
	shape, err := BroadcastShapes(cond.shape, x.shape)
	if err != nil {
		panic(err)
	}
	shape, err = BroadcastShapes(shape, y.shape)
	if err != nil {
		panic(err)
	}
	out := Zeros(shape)

	cIdx := newBroadcastIndexer(cond.shape, shape)
	xIdx := newBroadcastIndexer(x.shape, shape)
	yIdx := newBroadcastIndexer(y.shape, shape)
	for i := range out.data {
		if cond.data[cIdx.at(i)] != 0 {
			out.data[i] = x.data[xIdx.at(i)]
		} else {
			out.data[i] = y.data[yIdx.at(i)]
		}
	}
	return out
}
