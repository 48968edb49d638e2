package transfertree

import "slices"

// Root returns the root over the current leaves. An empty tree has the zero
// root and a single leaf tree has that leaf's hash as its root.
//
// The root is recomputed on every call. Root never changes the leaves, which
// is why it is safe to call between Insert and a decision to discard the tree.
// It does reuse (and may grow) the tree's scratch buffer.
func (t *Tree) Root() [HashBytes]byte {
	n := len(t.leaves)
	if n == 0 {
		return [HashBytes]byte{}
	}

	// TODO: a depth first reduction only needs 2*log2(n) values, rather than a
	// scratch as large as the leaf set.
	if cap(t.scratch) < n {
		t.scratch = slices.Grow(t.scratch[:0], n)
	}
	scratch := t.scratch[:n]

	for i := range t.leaves {
		scratch[i] = t.leaves[i].Hash
	}

	for len(scratch) > 1 {
		write := 0
		read := 0
		for ; read+1 < len(scratch); read += 2 {
			scratch[write] = Combine(t.hasher, scratch[read], scratch[read+1])
			write++
		}
		// carry the odd one up unchanged
		if read < len(scratch) {
			scratch[write] = scratch[read]
			write++
		}
		scratch = scratch[:write]
	}

	return scratch[0]
}
