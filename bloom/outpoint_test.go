package bloom

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func TestInsertContainsHash(t *testing.T) {
	f, err := NewFilter(5, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	var h chainhash.Hash
	h[0] = 0x42

	require.False(t, f.ContainsHash(&h))
	f.InsertHash(&h)
	require.True(t, f.ContainsHash(&h))
}

func TestInsertContainsOutPoint(t *testing.T) {
	f, err := NewFilter(5, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	op := wire.OutPoint{Hash: chainhash.Hash{0x07}, Index: 3}

	require.False(t, f.ContainsOutPoint(&op))
	f.InsertOutPoint(&op)
	require.True(t, f.ContainsOutPoint(&op))

	// A different index on the same txid must not appear to match — the
	// vout is part of the serialized key.
	other := wire.OutPoint{Hash: op.Hash, Index: op.Index + 1}
	require.False(t, f.ContainsOutPoint(&other))
}
