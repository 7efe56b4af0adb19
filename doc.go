/*
Package llrb implements an ordered map on top of a left-leaning red-black tree,
augmented with subtree sizes and a folded accumulator per node.

Left-Leaning Red-Black Trees

A red-black tree is a binary search tree in which every node carries one of two
colors. The colors encode a 2-3-4 tree inside a binary tree: a black node
together with its red children forms one node of the 2-3-4 tree. Left-leaning
red-black trees (Sedgewick, 2008) restrict red links to left children, which
narrows the 2-3-4 correspondence down to 2-3 trees and shrinks the case
analysis of insert and delete to three local checks.

From Robert Sedgewick, Left-leaning Red-Black Trees:

The red-black tree model for implementing balanced search trees, introduced by
Guibas and Sedgewick thirty years ago, is now found throughout our
computational infrastructure. […] In this paper, we describe a new variant of
red-black trees that meets many of the original design goals and leads to
substantially simpler code for insert/delete, less than one-fourth as much
code as in implementations in common use.

_________________________________________________________________________

Augmentation

Every node stores the number of nodes in its subtree and the fold of all values
in its subtree under a client supplied monoid. Both fields are re-derived
bottom-up whenever a subtree changes shape. This gives

	Operation        |  Complexity
	-----------------+------------
	Insert / Delete  |  O(log n)
	Get / Rank       |  O(log n)
	RankSelect       |  O(log n)
	RangeFold        |  O(log n)
	Fold (all)       |  O(1)

The monoid is only required to be associative, not commutative: range folds
combine partial results strictly from left to right in key order.

Trees are single-owner containers. They must not be mutated concurrently, and
child links are never shared between nodes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package llrb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'llrb'
func tracer() tracing.Trace {
	return tracing.Select("llrb")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
