package coretransfer

import (
	"encoding/hex"
	"fmt"
)

func wordAt(raw []byte, i int) []byte {
	return raw[i*WordBytes : (i+1)*WordBytes]
}

func readAddress(raw []byte, i int) (Address, error) {
	w := wordAt(raw, i)
	for _, b := range w[:addressPad] {
		if b != 0 {
			return Address{}, fmt.Errorf("%w: word %d", ErrAddressPadding, i)
		}
	}
	var a Address
	copy(a[:], w[addressPad:])
	return a, nil
}

// Decode decodes an encoded record. raw must be exactly EncodedBytes long.
func Decode(raw []byte) (CoreTransferState, error) {
	if len(raw) != EncodedBytes {
		return CoreTransferState{}, fmt.Errorf("%w: got %d", ErrBadLength, len(raw))
	}

	var st CoreTransferState
	var err error

	addresses := []struct {
		word int
		dst  *Address
	}{
		{wordChannelAddress, &st.ChannelAddress},
		{wordTransferDefinition, &st.TransferDefinition},
		{wordInitiator, &st.Initiator},
		{wordResponder, &st.Responder},
		{wordAssetID, &st.AssetID},
		{wordTo0, &st.Balance.To[0]},
		{wordTo1, &st.Balance.To[1]},
	}
	for _, a := range addresses {
		if *a.dst, err = readAddress(raw, a.word); err != nil {
			return CoreTransferState{}, err
		}
	}

	copy(st.TransferID[:], wordAt(raw, wordTransferID))
	copy(st.Balance.Amount[0][:], wordAt(raw, wordAmount0))
	copy(st.Balance.Amount[1][:], wordAt(raw, wordAmount1))
	copy(st.TransferTimeout[:], wordAt(raw, wordTransferTimeout))
	copy(st.InitialStateHash[:], wordAt(raw, wordInitialStateHash))

	return st, nil
}

// FromHex returns the bytes of a hex encoded record. The 0x prefix is optional.
// FromHex does not check the length.
func FromHex(encoded string) ([]byte, error) {
	if len(encoded) >= 2 && encoded[0] == '0' && (encoded[1] == 'x' || encoded[1] == 'X') {
		encoded = encoded[2:]
	}
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHex, err)
	}
	return raw, nil
}

// DecodeHex decodes a hex encoded record.
func DecodeHex(encoded string) (CoreTransferState, error) {
	raw, err := FromHex(encoded)
	if err != nil {
		return CoreTransferState{}, err
	}
	return Decode(raw)
}
