package merkletree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxHeightSingleTransaction(t *testing.T) {
	require.Equal(t, uint32(0), maxHeight(1))
}

func TestMaxHeightKnownValues(t *testing.T) {
	cases := map[uint32]uint32{
		2: 1,
		3: 2,
		4: 2,
		5: 3,
		8: 3,
		9: 4,
	}
	for n, want := range cases {
		require.Equalf(t, want, maxHeight(n), "n=%d", n)
	}
}

func TestTreeWidthLeafLevelEqualsTransactionCount(t *testing.T) {
	require.Equal(t, uint32(7), treeWidth(7, 0))
}

func TestTreeWidthRootLevelIsOne(t *testing.T) {
	for n := uint32(1); n <= 20; n++ {
		h := maxHeight(n)
		require.Equal(t, uint32(1), treeWidth(n, h), "n=%d", n)
	}
}
