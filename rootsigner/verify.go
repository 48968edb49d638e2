package rootsigner

import (
	"fmt"

	"github.com/forestrie/go-transfertree/transfertree"
	"github.com/ldclabs/cose/go/cwt"
	"github.com/veraison/go-cose"
)

// DecodeSignedRoot decodes the TreeState from the signed message. The returned
// state has no Root and will not verify until the root is restored, see
// VerifySignedRoot.
func DecodeSignedRoot(codec Codec, msg []byte) (*cose.Sign1Message, TreeState, error) {
	var signed cose.Sign1Message
	if err := signed.UnmarshalCBOR(msg); err != nil {
		return nil, TreeState{}, err
	}

	var unverifiedState TreeState
	if err := codec.UnmarshalInto(signed.Payload, &unverifiedState); err != nil {
		return nil, TreeState{}, err
	}
	return &signed, unverifiedState, nil
}

// VerifySignedRoot applies the provided state to the signed message and
// verifies the result.
//
// Verification of a signed root is a 3 step process:
//  1. Use DecodeSignedRoot to obtain the TreeState from the signed message.
//  2. Recompute the root from a tree holding TreeState.LeafCount leaves.
//  3. Set TreeState.Root and call this function.
//
// VerifyTreeRoot does steps 2 and 3 for a tree the caller already holds.
func VerifySignedRoot(
	codec Codec, verifier cose.Verifier, signed *cose.Sign1Message, unverifiedState TreeState, external []byte,
) error {
	if unverifiedState.Root == nil {
		return ErrStateRootMissing
	}
	payload, err := codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	signed.Payload = payload
	return signed.Verify(external, verifier)
}

// VerifyTreeRoot verifies signed against the current root of tree.
func VerifyTreeRoot(
	codec Codec, verifier cose.Verifier, signed *cose.Sign1Message, unverifiedState TreeState,
	tree *transfertree.Tree, external []byte,
) error {
	if uint64(tree.Len()) != unverifiedState.LeafCount {
		return fmt.Errorf("%w: tree %d, signed %d", ErrLeafCountDiffers, tree.Len(), unverifiedState.LeafCount)
	}
	root := tree.Root()
	unverifiedState.Root = root[:]
	return VerifySignedRoot(codec, verifier, signed, unverifiedState, external)
}

// Claims returns the issuer and subject from the protected header CWT claims.
func Claims(signed *cose.Sign1Message) (issuer string, subject string, err error) {
	raw, ok := signed.Headers.Protected[HeaderLabelCWTClaims]
	if !ok {
		return "", "", ErrNoCWTClaims
	}
	claims, ok := raw.(map[any]any)
	if !ok {
		return "", "", fmt.Errorf("%w: claims are %T", ErrBadCWTClaims, raw)
	}
	if issuer, ok = claimString(claims, int64(cwt.KeyIss)); !ok {
		return "", "", fmt.Errorf("%w: no issuer", ErrBadCWTClaims)
	}
	if subject, ok = claimString(claims, int64(cwt.KeySub)); !ok {
		return "", "", fmt.Errorf("%w: no subject", ErrBadCWTClaims)
	}
	return issuer, subject, nil
}

// claimString looks label up as either of the integer types a CBOR decoder may
// produce for a positive map key.
func claimString(claims map[any]any, label int64) (string, bool) {
	v, ok := claims[label]
	if !ok {
		v, ok = claims[uint64(label)]
	}
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
