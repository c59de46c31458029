// Package spvfilter wires the bloom and merkletree packages together along
// the two call paths spec.md's data-flow paragraph describes: a server role
// that builds a partial-tree proof from a full block by consulting a bloom
// filter, and a client role that scans transactions it receives against its
// own filter.
package spvfilter

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/scala-cash/scashspv/bloom"
	"github.com/scala-cash/scashspv/merkletree"
)

// BuildProof scans every transaction in txs against filter (auto-updating it
// per its Flags as a match is found, exactly as a full node would when
// answering a loaded filterload), then encodes a partial Merkle tree proof
// committing to the matched subset. It returns the proof and the matched
// transactions' indexes within txs, in ascending order.
func BuildProof(txs []*btcutil.Tx, filter *bloom.Filter) (*merkletree.Proof, []uint32, error) {
	txids := make([]chainhash.Hash, len(txs))
	matched := make([]bool, len(txs))
	var matchedIdx []uint32

	for i, tx := range txs {
		txids[i] = *tx.Hash()

		if filter.IsRelevant(tx) {
			matched[i] = true
			matchedIdx = append(matchedIdx, uint32(i))
			filter.Update(tx)
		}
	}

	proof, err := merkletree.Encode(txids, matched)
	if err != nil {
		return nil, nil, err
	}

	log.Debugf("built proof for %d transactions, %d matched",
		len(txs), len(matchedIdx))

	return proof, matchedIdx, nil
}
