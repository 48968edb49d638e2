// Package rootsigner produces and checks COSE Sign1 commitments to the root of
// a transfer tree.
package rootsigner

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/forestrie/go-transfertree/transfertree"
	"github.com/google/uuid"
	"github.com/ldclabs/cose/go/cwt"
	"github.com/veraison/go-cose"
)

// HeaderLabelCWTClaims is the protected header label for CWT claims (RFC 9597).
const HeaderLabelCWTClaims int64 = 15

var (
	ErrNoCWTClaims      = errors.New("rootsigner: protected header has no cwt claims")
	ErrBadCWTClaims     = errors.New("rootsigner: cwt claims are malformed")
	ErrStateRootMissing = errors.New("rootsigner: the root of the state was nil when it should have been provided")
	ErrLeafCountDiffers = errors.New("rootsigner: tree leaf count does not match the signed state")
)

// TreeState is what a signed root commits to.
type TreeState struct {
	// LeafCount is the number of leaves the root was computed over. As a tree
	// only grows, a verifier holding a tree of exactly this size can recompute
	// Root.
	LeafCount uint64 `cbor:"1,keyasint"`
	Root      []byte `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the root was
	// signed. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
	// LogID names the tree instance being committed to.
	LogID uuid.UUID `cbor:"4,keyasint"`
}

// StateFromTree returns the state for the current root of tree.
func StateFromTree(tree *transfertree.Tree, logID uuid.UUID, now time.Time) TreeState {
	root := tree.Root()
	return TreeState{
		LeafCount: uint64(tree.Len()),
		Root:      root[:],
		Timestamp: now.UnixMilli(),
		LogID:     logID,
	}
}

// RootSigner is used to produce a signature over a tree state.
type RootSigner struct {
	issuer string
	codec  Codec
}

func NewRootSigner(issuer string, codec Codec) RootSigner {
	return RootSigner{
		issuer: issuer,
		codec:  codec,
	}
}

// Sign1 signs the provided state and returns the encoded COSE Sign1 message.
//
// The root is signed but is removed from the published payload, so that a
// verifier can only check the signature by recomputing the root from its own
// tree.
func (rs RootSigner) Sign1(
	coseSigner cose.Signer, keyIdentifier string, subject string, state TreeState, external []byte,
) ([]byte, error) {
	if state.Root == nil {
		return nil, ErrStateRootMissing
	}
	payload, err := rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: coseSigner.Algorithm(),
				cose.HeaderLabelKeyID:     []byte(keyIdentifier),
				HeaderLabelCWTClaims: map[any]any{
					int64(cwt.KeyIss): rs.issuer,
					int64(cwt.KeySub): subject,
				},
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	state.Root = nil
	payload, err = rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	msg.Payload = payload

	return msg.MarshalCBOR()
}
