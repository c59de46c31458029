package merkletree

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Proof is the wire-shaped result of Encode / input to Decode: the ordered
// bits and hashes a depth-first traversal of the full tree produces, plus
// the transaction count needed to reconstruct the tree's geometry.
type Proof struct {
	TransactionCount uint32
	Hashes           []chainhash.Hash
	Bits             []bool
}

// builder holds the intermediate state of a depth-first encode pass.
type builder struct {
	numTx       uint32
	allHashes   []chainhash.Hash
	matched     []bool
	finalHashes []chainhash.Hash
	bits        []bool
}

// calcHash returns the hash of the sub-tree rooted at (height, pos),
// recursing down to the leaves in allHashes and applying the
// duplicate-last-node rule at every odd-width level.
func (b *builder) calcHash(height, pos uint32) chainhash.Hash {
	if height == 0 {
		return b.allHashes[pos]
	}

	left := b.calcHash(height-1, pos*2)
	right := left
	if pos*2+1 < treeWidth(b.numTx, height-1) {
		right = b.calcHash(height-1, pos*2+1)
	}
	return hashMerkleBranches(&left, &right)
}

// traverseAndBuild performs the depth-first pre-order traversal spec.md
// §4.2 describes: emit one bit per visited node recording whether it is an
// ancestor of a matched leaf, and either stop (emitting the node's summary
// hash) or recurse into both children.
func (b *builder) traverseAndBuild(height, pos uint32) {
	parentOfMatch := false
	lo, hi := pos<<height, (pos+1)<<height
	for i := lo; i < hi && i < b.numTx; i++ {
		if b.matched[i] {
			parentOfMatch = true
			break
		}
	}
	b.bits = append(b.bits, parentOfMatch)

	if height == 0 || !parentOfMatch {
		b.finalHashes = append(b.finalHashes, b.calcHash(height, pos))
		return
	}

	b.traverseAndBuild(height-1, pos*2)
	if pos*2+1 < treeWidth(b.numTx, height-1) {
		b.traverseAndBuild(height-1, pos*2+1)
	}
}

// Encode builds a Proof committing to exactly the txids for which matched is
// true, given the full ordered list of a block's transaction ids. len(txids)
// must equal len(matched) must equal transaction count.
func Encode(txids []chainhash.Hash, matched []bool) (*Proof, error) {
	n := uint32(len(txids))
	if n == 0 {
		return nil, ErrNoTransactions
	}
	if len(matched) != len(txids) {
		return nil, ErrTransactionCountMismatch
	}

	b := &builder{
		numTx:     n,
		allHashes: txids,
		matched:   matched,
	}

	height := maxHeight(n)
	b.traverseAndBuild(height, 0)

	log.Debugf("encoded partial tree: %d transactions, %d hashes, "+
		"%d bits", n, len(b.finalHashes), len(b.bits))

	return &Proof{
		TransactionCount: n,
		Hashes:           b.finalHashes,
		Bits:             b.bits,
	}, nil
}
