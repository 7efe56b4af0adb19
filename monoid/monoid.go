package monoid

import (
	"cmp"
	"strings"
)

// Number is the set of numeric types Sum and Affine operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up numeric values.
type Sum[N Number] struct{}

// Zero returns 0.
func (Sum[N]) Zero() N { return 0 }

// FromValue returns v.
func (Sum[N]) FromValue(v N) N { return v }

// Add adds two partial sums.
func (Sum[N]) Add(left, right N) N { return left + right }

// Bound is an optional extremal value. The zero Bound is the identity of
// Min and Max.
type Bound[N cmp.Ordered] struct {
	Value N
	Valid bool
}

// Min tracks the smallest value.
type Min[N cmp.Ordered] struct{}

// Zero returns the invalid Bound.
func (Min[N]) Zero() Bound[N] { return Bound[N]{} }

// FromValue wraps v.
func (Min[N]) FromValue(v N) Bound[N] { return Bound[N]{Value: v, Valid: true} }

// Add returns the smaller of two bounds.
func (Min[N]) Add(left, right Bound[N]) Bound[N] {
	switch {
	case !left.Valid:
		return right
	case !right.Valid:
		return left
	case cmp.Less(right.Value, left.Value):
		return right
	}
	return left
}

// Max tracks the largest value.
type Max[N cmp.Ordered] struct{}

// Zero returns the invalid Bound.
func (Max[N]) Zero() Bound[N] { return Bound[N]{} }

// FromValue wraps v.
func (Max[N]) FromValue(v N) Bound[N] { return Bound[N]{Value: v, Valid: true} }

// Add returns the larger of two bounds.
func (Max[N]) Add(left, right Bound[N]) Bound[N] {
	switch {
	case !left.Valid:
		return right
	case !right.Valid:
		return left
	case cmp.Less(left.Value, right.Value):
		return right
	}
	return left
}

// Concat concatenates string values in key order.
type Concat struct{}

// Zero returns the empty string.
func (Concat) Zero() string { return "" }

// FromValue returns v.
func (Concat) FromValue(v string) string { return v }

// Add appends right to left.
func (Concat) Add(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	var sb strings.Builder
	sb.Grow(len(left) + len(right))
	sb.WriteString(left)
	sb.WriteString(right)
	return sb.String()
}

// Linear is the affine function x ↦ A·x + B.
type Linear[N Number] struct {
	A, B N
}

// Apply evaluates f at x.
func (f Linear[N]) Apply(x N) N {
	return f.A*x + f.B
}

// Affine composes affine functions in key order: the fold over a range is
// the function applying the value with the smallest key first.
type Affine[N Number] struct{}

// Zero returns the identity function.
func (Affine[N]) Zero() Linear[N] { return Linear[N]{A: 1} }

// FromValue returns f.
func (Affine[N]) FromValue(f Linear[N]) Linear[N] { return f }

// Add returns the composition right ∘ left.
func (Affine[N]) Add(left, right Linear[N]) Linear[N] {
	return Linear[N]{
		A: right.A * left.A,
		B: right.A*left.B + right.B,
	}
}
