package transfertree

import (
	"hash"

	"github.com/forestrie/go-transfertree/coretransfer"
)

type treeOptions struct {
	newHasher    func() hash.Hash
	decoder      RecordDecoder
	leafCapacity int
}

func defaultTreeOptions() treeOptions {
	return treeOptions{
		newHasher: NewKeccak256,
		decoder:   coretransfer.Decoder{},
	}
}

// Option configures a Tree at construction.
type Option func(*treeOptions)

// WithHasherFactory sets the hasher used by Root. The hasher must produce
// HashBytes sized digests. Anything other than Keccak-256 produces roots that
// are not compatible with the published vectors.
func WithHasherFactory(newHasher func() hash.Hash) Option {
	return func(o *treeOptions) {
		o.newHasher = newHasher
	}
}

// WithRecordDecoder replaces the decoder used by InsertEncoded and InsertHex.
func WithRecordDecoder(decoder RecordDecoder) Option {
	return func(o *treeOptions) {
		o.decoder = decoder
	}
}

// WithLeafCapacity preallocates room for n leaves and n scratch values.
func WithLeafCapacity(n int) Option {
	return func(o *treeOptions) {
		o.leafCapacity = n
	}
}
