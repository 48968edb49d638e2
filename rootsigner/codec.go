package rootsigner

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec is the deterministic CBOR encoding used for signed tree state. The
// signature is over the encoded bytes, so signer and verifier must agree on
// exactly the same encoding.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) MarshalCBOR(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c Codec) UnmarshalInto(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}
