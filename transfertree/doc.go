package transfertree

/*

# Transfer commitment tree

This package maintains a set of transfer leaves and folds them into a single
32 byte root. The root depends only on the set of leaves, never on the order
they were inserted in.

It follows the "functional primitives" style of `go-merklelog/mmr`:

- small, composable functions
- a hash.Hash supplied by the caller (Keccak-256 by default)
- a burden of knowledge on the caller for hot paths

## Core invariants

1. leaves are kept strictly ascending by transfer id
2. a transfer id is present at most once; a duplicate insert fails before
   anything is mutated
3. the scratch buffer used by Root only ever grows

There is no delete. The intended rollback is to discard the tree (or a Clone of
it) and rebuild. Root is deliberately separate from Insert: a caller may
insert, compute a candidate root, propose it, fail and then throw the tree away
without ever paying for another root computation.

## Reduction

Root copies the leaf hashes, in transfer id order, into scratch and reduces
adjacent pairs until one value remains:

	level 0:  h0   h1   h2   h3   h4
	level 1:  c(h0,h1)  c(h2,h3)  h4
	level 2:  c(c01,c23)          h4
	level 3:  c(c0123,h4)

An unpaired value at the end of a level is carried up unchanged. It is never
combined with itself.

Combine orders its two inputs so the byte-wise smaller value is hashed first.
This makes c(a,b) == c(b,a) and is what the published root vectors were
produced with. Changing it changes every root.
*/
