package transfertree

import (
	"fmt"
	"hash"
	"slices"

	"github.com/forestrie/go-transfertree/coretransfer"
)

var _ RecordDecoder = coretransfer.Decoder{}

// Tree commits to a set of transfer leaves. It is not safe for concurrent use.
type Tree struct {
	newHasher func() hash.Hash
	hasher    hash.Hash
	decoder   RecordDecoder

	// scratch is only read by Root, and only up to len(leaves). It is never
	// shrunk.
	scratch [][HashBytes]byte
	leaves  []Leaf
}

// New returns an empty tree. New panics if the configured hasher does not
// produce HashBytes sized digests.
func New(opts ...Option) *Tree {
	o := defaultTreeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree{
		newHasher: o.newHasher,
		hasher:    o.newHasher(),
		decoder:   o.decoder,
	}
	if t.hasher.Size() != HashBytes {
		panic("transfertree: hasher output must be 32 bytes")
	}
	if o.leafCapacity > 0 {
		t.leaves = make([]Leaf, 0, o.leafCapacity)
		t.scratch = make([][HashBytes]byte, 0, o.leafCapacity)
	}
	return t
}

// InsertEncoded decodes a raw record with the tree's RecordDecoder and inserts
// the resulting leaf. A record the decoder rejects fails with an error
// matching ErrInvalidFormat and nothing is inserted.
func (t *Tree) InsertEncoded(raw []byte) error {
	leafHash, transferID, err := t.decoder.DecodeLeaf(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return t.Insert(leafHash, transferID)
}

// InsertHex is InsertEncoded for a hex string, with or without a 0x prefix.
func (t *Tree) InsertHex(encoded string) error {
	raw, err := coretransfer.FromHex(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return t.InsertEncoded(raw)
}

// Clone returns an independent copy of the tree. Inserting into the clone
// does not affect t, so a clone can be used to try a batch and then be
// discarded.
func (t *Tree) Clone() *Tree {
	return &Tree{
		newHasher: t.newHasher,
		hasher:    t.newHasher(),
		decoder:   t.decoder,
		leaves:    slices.Clone(t.leaves),
	}
}
