package transfertree

import "errors"

// HashBytes is the fixed width of leaf hashes, transfer ids and roots.
const HashBytes = 32

var (
	ErrInvalidFormat       = errors.New("transfertree: invalid format for encoded core transfer state")
	ErrDuplicateTransferID = errors.New("transfertree: cannot insert duplicate transfer id")
)

// Leaf is a single committed transfer.
type Leaf struct {
	Hash       [HashBytes]byte
	TransferID [HashBytes]byte
}

// RecordDecoder turns one raw encoded record into the pair committed by a
// Leaf. Implementations must not retain raw.
type RecordDecoder interface {
	DecodeLeaf(raw []byte) (hash [HashBytes]byte, transferID [HashBytes]byte, err error)
}
