// Package coretransfer decodes and encodes the ABI encoding of a core transfer
// state, the raw record committed to by a transfer tree leaf.
//
// The encoding is the static tuple
//
//	(address channelAddress, bytes32 transferId, address transferDefinition,
//	 address initiator, address responder, address assetId,
//	 (uint256[2] amount, address[2] to) balance,
//	 uint256 transferTimeout, bytes32 initialStateHash)
//
// which is 12 words of 32 bytes. Addresses are left padded with zeros.
package coretransfer

import (
	"errors"
	"math/big"
)

const (
	WordBytes    = 32
	AddressBytes = 20
	Words        = 12

	// EncodedBytes is the exact size of an encoded record.
	EncodedBytes = Words * WordBytes // 384

	addressPad = WordBytes - AddressBytes
)

// word offsets
const (
	wordChannelAddress = iota
	wordTransferID
	wordTransferDefinition
	wordInitiator
	wordResponder
	wordAssetID
	wordAmount0
	wordAmount1
	wordTo0
	wordTo1
	wordTransferTimeout
	wordInitialStateHash
)

var (
	ErrBadLength      = errors.New("coretransfer: encoded record must be 384 bytes")
	ErrBadHex         = errors.New("coretransfer: encoded record is not valid hex")
	ErrAddressPadding = errors.New("coretransfer: address word has non zero padding")
)

type Address [AddressBytes]byte

// Word is a big-endian uint256.
type Word [WordBytes]byte

// Big returns w as an unsigned integer.
func (w Word) Big() *big.Int {
	return new(big.Int).SetBytes(w[:])
}

// WordFromUint64 returns v as a big-endian uint256.
func WordFromUint64(v uint64) Word {
	var w Word
	new(big.Int).SetUint64(v).FillBytes(w[:])
	return w
}

type Balance struct {
	Amount [2]Word
	To     [2]Address
}

// CoreTransferState is the decoded record.
type CoreTransferState struct {
	ChannelAddress     Address
	TransferID         [WordBytes]byte
	TransferDefinition Address
	Initiator          Address
	Responder          Address
	AssetID            Address
	Balance            Balance
	TransferTimeout    Word
	InitialStateHash   [WordBytes]byte
}
