package merkletree

import "github.com/scala-cash/scashspv/hashutil"

// doubleSHA256 is a thin local alias so tree.go doesn't need to spell out
// the hashutil import at every call site.
func doubleSHA256(b []byte) [32]byte {
	return hashutil.DoubleSHA256(b)
}
