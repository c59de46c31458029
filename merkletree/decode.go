package merkletree

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Reconstruction is the result of decoding a Proof: the recomputed root
// hash, the matched txids in ascending index order, and the rebuilt tree
// itself for callers that want to walk its structure.
type Reconstruction struct {
	Root         chainhash.Hash
	Tree         *Node
	Matches      []chainhash.Hash
	MatchIndexes []uint32
}

// decoder holds the intermediate, mutating state of a depth-first decode
// pass: how far into bits and hashes the traversal has consumed.
type decoder struct {
	numTx     uint32
	hashes    []chainhash.Hash
	bits      []bool
	hashUsed  int
	bitsUsed  int
	matches   []chainhash.Hash
	matchIdxs []uint32
}

// nextBit returns the next unconsumed flag bit, or an error if the proof
// has been exhausted.
func (d *decoder) nextBit() (bool, error) {
	if d.bitsUsed >= len(d.bits) {
		return false, newDecodeErr(ReasonBitOverflow,
			errShortBits)
	}
	b := d.bits[d.bitsUsed]
	d.bitsUsed++
	return b, nil
}

// nextHash returns the next unconsumed hash, or an error if the proof has
// been exhausted.
func (d *decoder) nextHash() (chainhash.Hash, error) {
	if d.hashUsed >= len(d.hashes) {
		return chainhash.Hash{}, newDecodeErr(ReasonHashUnderflow,
			errShortHashes)
	}
	h := d.hashes[d.hashUsed]
	d.hashUsed++
	return h, nil
}

// traverseAndExtract mirrors the encode side's traverseAndBuild, consuming
// the same bits/hashes in the same depth-first pre-order and rebuilding the
// tree plus the match list as it goes.
func (d *decoder) traverseAndExtract(height, pos uint32) (*Node, error) {
	bit, err := d.nextBit()
	if err != nil {
		return nil, err
	}

	if height == 0 || !bit {
		hash, err := d.nextHash()
		if err != nil {
			return nil, err
		}
		if height == 0 && bit {
			d.matches = append(d.matches, hash)
			d.matchIdxs = append(d.matchIdxs, pos)
		}
		return &Node{Hash: hash}, nil
	}

	left, err := d.traverseAndExtract(height-1, pos*2)
	if err != nil {
		return nil, err
	}

	right := left
	hasRight := pos*2+1 < treeWidth(d.numTx, height-1)
	if hasRight {
		right, err = d.traverseAndExtract(height-1, pos*2+1)
		if err != nil {
			return nil, err
		}
		if left.Hash == right.Hash {
			return nil, newDecodeErr(ReasonDuplicateSibling, errDuplicateSibling)
		}
	}

	combined := hashMerkleBranches(&left.Hash, &right.Hash)
	return &Node{Hash: combined, Left: left, Right: right}, nil
}

// Decode reconstructs the tree p commits to, verifying every hash and bit is
// consumed exactly once (up to final-byte padding) and that no internal
// node with a genuine right child reconstructs a duplicate hash.
//
// The caller is responsible for comparing Reconstruction.Root against the
// expected block header Merkle root (see VerifyRoot); a structurally valid
// proof that commits to the wrong root is not, by itself, a decode error.
func (p *Proof) Decode() (*Reconstruction, error) {
	if p.TransactionCount == 0 {
		return nil, newDecodeErr(ReasonInvalidTransactionCount, ErrNoTransactions)
	}
	if uint32(len(p.Hashes)) > p.TransactionCount {
		return nil, newDecodeErr(ReasonHashOverflow, errTooManyHashes)
	}
	if len(p.Bits) < len(p.Hashes) {
		return nil, newDecodeErr(ReasonBitOverflow, errShortBits)
	}

	d := &decoder{
		numTx:  p.TransactionCount,
		hashes: p.Hashes,
		bits:   p.Bits,
	}

	height := maxHeight(p.TransactionCount)
	root, err := d.traverseAndExtract(height, 0)
	if err != nil {
		return nil, err
	}

	if d.hashUsed != len(d.hashes) {
		return nil, newDecodeErr(ReasonHashOverflow, errTooManyHashes)
	}
	if len(d.bits)-d.bitsUsed >= 8 {
		return nil, newDecodeErr(ReasonMalformedPadding, errTooManyBits)
	}

	log.Debugf("decoded partial tree: %d transactions, %d matches",
		p.TransactionCount, len(d.matches))

	return &Reconstruction{
		Root:         root.Hash,
		Tree:         root,
		Matches:      d.matches,
		MatchIndexes: d.matchIdxs,
	}, nil
}

// VerifyRoot reports whether r's reconstructed root equals expected. This
// is the caller-side check spec.md §4.2 describes as external to the
// decoder itself.
func VerifyRoot(r *Reconstruction, expected chainhash.Hash) bool {
	return r.Root == expected
}
