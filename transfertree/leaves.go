package transfertree

import (
	"bytes"
	"fmt"
	"slices"
)

func compareTransferID(leaf Leaf, transferID [HashBytes]byte) int {
	return bytes.Compare(leaf.TransferID[:], transferID[:])
}

// findLeaf returns the position of transferID in the sorted leaves, or the
// position it would be inserted at if absent.
func findLeaf(leaves []Leaf, transferID [HashBytes]byte) (int, bool) {
	return slices.BinarySearchFunc(leaves, transferID, compareTransferID)
}

// Insert adds a leaf for (hash, transferID).
//
// Two leaves sharing a transfer id would have no canonical order, so a
// duplicate is rejected with ErrDuplicateTransferID and the tree is left
// exactly as it was.
func (t *Tree) Insert(hash, transferID [HashBytes]byte) error {
	i, found := findLeaf(t.leaves, transferID)
	if found {
		return fmt.Errorf("%w: %x", ErrDuplicateTransferID, transferID)
	}
	t.leaves = slices.Insert(t.leaves, i, Leaf{Hash: hash, TransferID: transferID})
	return nil
}

// Contains reports whether a leaf with transferID is present.
func (t *Tree) Contains(transferID [HashBytes]byte) bool {
	_, found := findLeaf(t.leaves, transferID)
	return found
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.leaves)
}

// Leaves returns a copy of the leaves in ascending transfer id order.
func (t *Tree) Leaves() []Leaf {
	return slices.Clone(t.leaves)
}
