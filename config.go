package llrb

import (
	"cmp"
	"fmt"
)

// Monoid defines how values are folded up the tree.
//
// For accumulators a, b, c, Add must be associative:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// Add need not be commutative. The tree always combines a left operand
// holding smaller keys with a right operand holding larger keys.
type Monoid[V, A any] interface {
	Zero() A
	FromValue(v V) A
	Add(left, right A) A
}

// NoAcc is the accumulator type of trees without aggregation.
type NoAcc struct{}

// NoFold is a monoid for trees which need no aggregation beyond subtree sizes.
type NoFold[V any] struct{}

func (NoFold[V]) Zero() NoAcc          { return NoAcc{} }
func (NoFold[V]) FromValue(V) NoAcc    { return NoAcc{} }
func (NoFold[V]) Add(_, _ NoAcc) NoAcc { return NoAcc{} }

// DuplicatePolicy tells Insert what to do with a key that is already present.
type DuplicatePolicy uint8

const (
	// ReplaceDuplicates overwrites the value stored for an existing key.
	ReplaceDuplicates DuplicatePolicy = iota
	// RejectDuplicates leaves the tree unchanged and reports ErrDuplicateKey.
	RejectDuplicates
	// AllowDuplicates stores equal keys side by side, in insertion order.
	AllowDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case ReplaceDuplicates:
		return "replace"
	case RejectDuplicates:
		return "reject"
	case AllowDuplicates:
		return "allow"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", uint8(p))
}

// Config configures an augmented LLRB tree.
type Config[K, V, A any] struct {
	// Compare defines a total order on keys. It returns a negative number,
	// zero or a positive number if a < b, a == b or a > b, respectively.
	Compare func(a, b K) int
	// Monoid folds values up the tree.
	Monoid Monoid[V, A]
	// Duplicates selects the handling of equal keys on insert.
	Duplicates DuplicatePolicy
	// EqualAcc compares accumulators during Check. If unset,
	// reflect.DeepEqual is used.
	EqualAcc func(a, b A) bool
}

func (cfg Config[K, V, A]) normalized() Config[K, V, A] {
	if cfg.EqualAcc == nil {
		cfg.EqualAcc = deepEqual[A]
	}
	return cfg
}

func (cfg Config[K, V, A]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparison is required", ErrInvalidConfig)
	}
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Duplicates > AllowDuplicates {
		return fmt.Errorf("%w: unknown duplicate policy %s", ErrInvalidConfig, cfg.Duplicates)
	}
	return nil
}

// Ordered returns a Compare function for naturally ordered key types.
func Ordered[K cmp.Ordered]() func(a, b K) int {
	return cmp.Compare[K]
}
