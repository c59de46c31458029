// Package hashutil provides the double-SHA-256 primitive shared by the
// bloom and merkletree packages. A single round of SHA-256 is treated as an
// external collaborator (stdlib crypto/sha256); composing the two rounds
// into the digest the protocol actually uses is the one thing owned here.
package hashutil

import "crypto/sha256"

// DoubleSHA256 returns SHA256(SHA256(b)), the digest used throughout the
// protocol for transaction IDs and Merkle tree nodes.
func DoubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// DoubleSHA256B is the byte-slice-returning form of DoubleSHA256, convenient
// for callers that immediately feed the digest into another byte-oriented
// API (e.g. chainhash.NewHash).
func DoubleSHA256B(b []byte) []byte {
	sum := DoubleSHA256(b)
	return sum[:]
}
