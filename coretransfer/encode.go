package coretransfer

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

func putAddress(raw []byte, i int, a Address) {
	copy(wordAt(raw, i)[addressPad:], a[:])
}

// Encode returns the EncodedBytes encoding of st.
func (st CoreTransferState) Encode() []byte {
	raw := make([]byte, EncodedBytes)

	putAddress(raw, wordChannelAddress, st.ChannelAddress)
	copy(wordAt(raw, wordTransferID), st.TransferID[:])
	putAddress(raw, wordTransferDefinition, st.TransferDefinition)
	putAddress(raw, wordInitiator, st.Initiator)
	putAddress(raw, wordResponder, st.Responder)
	putAddress(raw, wordAssetID, st.AssetID)
	copy(wordAt(raw, wordAmount0), st.Balance.Amount[0][:])
	copy(wordAt(raw, wordAmount1), st.Balance.Amount[1][:])
	putAddress(raw, wordTo0, st.Balance.To[0])
	putAddress(raw, wordTo1, st.Balance.To[1])
	copy(wordAt(raw, wordTransferTimeout), st.TransferTimeout[:])
	copy(wordAt(raw, wordInitialStateHash), st.InitialStateHash[:])

	return raw
}

// EncodeHex returns the 0x prefixed hex of Encode.
func (st CoreTransferState) EncodeHex() string {
	return "0x" + hex.EncodeToString(st.Encode())
}

// Hash returns the leaf hash of st. See LeafHash.
func (st CoreTransferState) Hash() [WordBytes]byte {
	return LeafHash(st.Encode())
}

// LeafHash computes Keccak-256 over the encoded record bytes.
func LeafHash(raw []byte) [WordBytes]byte {
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(raw)
	var out [WordBytes]byte
	copy(out[:], hasher.Sum(out[:0]))
	return out
}

// Decoder decodes records for a transfer tree: the leaf hash is LeafHash of
// the record and the leaf is keyed by its transfer id.
type Decoder struct{}

func (Decoder) DecodeLeaf(raw []byte) ([WordBytes]byte, [WordBytes]byte, error) {
	st, err := Decode(raw)
	if err != nil {
		return [WordBytes]byte{}, [WordBytes]byte{}, err
	}
	return LeafHash(raw), st.TransferID, nil
}
