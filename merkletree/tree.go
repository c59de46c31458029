// Package merkletree implements the partial Merkle tree codec that lets a
// full node prove, to a filter-holding SPV client, which transactions in a
// block matched the client's bloom filter — transmitting only the matched
// txids plus the minimum set of sibling hashes needed to recompute the
// block's Merkle root. Grounded on btcsuite/ltcsuite's bloom.merkleBlock
// encode/decode pair, generalised to expose the reconstructed tree and a
// typed decode-error taxonomy instead of a bare bool.
package merkletree

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// maxHeight returns ceil(log2(n)), with the BIP37 special case that a
// single-transaction block has height 0.
func maxHeight(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	h := uint32(0)
	for treeWidth(n, h) > 1 {
		h++
	}
	return h
}

// treeWidth returns the number of nodes at height h (counted up from the
// leaves, h == 0 being the leaf level) of the Merkle tree over n
// transactions.
func treeWidth(n, h uint32) uint32 {
	return (n + (1 << h) - 1) >> h
}

// Node is a single node of the reconstructed partial Merkle tree. Leaf nodes
// (Left == nil && Right == nil) correspond to transaction ids; internal
// nodes' Hash is hashutil.DoubleSHA256(Left.Hash ++ right) where right is
// Right.Hash, or Left.Hash again when the node has no right sibling (the
// duplicate-last-node rule).
type Node struct {
	Hash        chainhash.Hash
	Left, Right *Node
}

// IsLeaf reports whether n is a tree leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// hashMerkleBranches combines two child hashes into their parent's hash, per
// the consensus duplicate-last-node rule: when a node has no right sibling,
// its parent is SHA256^2(left ++ left).
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [2 * chainhash.HashSize]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.Hash(doubleSHA256(buf[:]))
}
