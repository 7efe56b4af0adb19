/*
Package monoid provides some pre-manufactured fold operators for augmented
LLRB trees.

Every type in this package satisfies llrb.Monoid for a suitable value type:

	tree := llrb.NewOrdered[string](monoid.Sum[int]{})
	tree.Insert("a", 3)
	tree.Insert("b", 4)
	total := tree.Fold() // 7

Sum, Min and Max are commutative. Concat and Affine are not; they
demonstrate that range folds respect key order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoid
