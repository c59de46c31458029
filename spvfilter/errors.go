package spvfilter

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrRootMismatch is returned by VerifyProof when a structurally valid
// proof reconstructs a root that doesn't match the caller's expected block
// header Merkle root.
var ErrRootMismatch = errors.New("spvfilter: reconstructed root does not match expected root")

func newRootMismatchErr(got, want chainhash.Hash) error {
	return fmt.Errorf("%w: got %s, want %s", ErrRootMismatch, got, want)
}
