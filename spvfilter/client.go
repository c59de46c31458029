package spvfilter

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/scala-cash/scashspv/bloom"
	"github.com/scala-cash/scashspv/merkletree"
)

// ScanTransactions filters txs down to those relevant to filter, updating
// the filter as matches are found (mirroring the server side's BuildProof so
// a client applying a merkleblock's transactions sees the same auto-update
// behavior a full node would have seen while building the proof).
func ScanTransactions(txs []*btcutil.Tx, filter *bloom.Filter) []*btcutil.Tx {
	var matched []*btcutil.Tx
	for _, tx := range txs {
		if filter.IsRelevant(tx) {
			matched = append(matched, tx)
			filter.Update(tx)
		}
	}
	return matched
}

// VerifyProof decodes proof and confirms its root matches expectedRoot,
// returning the matched txids in ascending index order. This is the
// client-side counterpart to BuildProof: a client holds expectedRoot from
// the block header it already has, and checks that the merkleblock payload
// it received actually commits to it.
func VerifyProof(proof *merkletree.Proof, expectedRoot chainhash.Hash) ([]chainhash.Hash, error) {
	recon, err := proof.Decode()
	if err != nil {
		return nil, err
	}
	if !merkletree.VerifyRoot(recon, expectedRoot) {
		return nil, newRootMismatchErr(recon.Root, expectedRoot)
	}
	return recon.Matches, nil
}
