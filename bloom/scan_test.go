package bloom

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func p2pkhScript(t *testing.T, pubKeyHash []byte) []byte {
	t.Helper()
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(pubKeyHash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	require.NoError(t, err)
	return script
}

func p2pkScript(t *testing.T, pubKey []byte) []byte {
	t.Helper()
	script, err := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	require.NoError(t, err)
	return script
}

func newTestTx(outScript []byte) *btcutil.Tx {
	msgTx := wire.NewMsgTx(wire.TxVersion)
	msgTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	msgTx.AddTxOut(&wire.TxOut{Value: 1000, PkScript: outScript})
	return btcutil.NewTx(msgTx)
}

func TestIsRelevantMatchesTxID(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	tx := newTestTx(p2pkhScript(t, make([]byte, 20)))
	require.False(t, f.IsRelevant(tx))

	f.InsertHash(tx.Hash())
	require.True(t, f.IsRelevant(tx))
}

func TestIsRelevantMatchesOutputPushData(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	pubKeyHash := make([]byte, 20)
	pubKeyHash[0] = 0xaa
	tx := newTestTx(p2pkhScript(t, pubKeyHash))
	require.False(t, f.IsRelevant(tx))

	f.Insert(pubKeyHash)
	require.True(t, f.IsRelevant(tx))
}

func TestIsRelevantMatchesSpentOutpoint(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	prevOut := wire.OutPoint{Hash: chainhash.Hash{0x01}, Index: 2}
	msgTx := wire.NewMsgTx(wire.TxVersion)
	msgTx.AddTxIn(wire.NewTxIn(&prevOut, nil, nil))
	msgTx.AddTxOut(&wire.TxOut{Value: 1000, PkScript: p2pkhScript(t, make([]byte, 20))})
	tx := btcutil.NewTx(msgTx)

	require.False(t, f.IsRelevant(tx))
	f.InsertOutPoint(&prevOut)
	require.True(t, f.IsRelevant(tx))
}

func TestUpdateNoneIsNoOp(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateNone)
	require.NoError(t, err)

	pubKeyHash := make([]byte, 20)
	pubKeyHash[0] = 0xbb
	f.Insert(pubKeyHash)

	tx := newTestTx(p2pkhScript(t, pubKeyHash))
	f.Update(tx)

	require.False(t, f.ContainsHash(tx.Hash()))
	require.False(t, f.ContainsOutPoint(wire.NewOutPoint(tx.Hash(), 0)))
}

func TestUpdateAllInsertsMatchingOutpoint(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateAll)
	require.NoError(t, err)

	pubKeyHash := make([]byte, 20)
	pubKeyHash[0] = 0xcc
	f.Insert(pubKeyHash)

	tx := newTestTx(p2pkhScript(t, pubKeyHash))
	f.Update(tx)

	require.True(t, f.ContainsOutPoint(wire.NewOutPoint(tx.Hash(), 0)))
	require.True(t, f.ContainsHash(tx.Hash()))
}

func TestUpdateP2PubkeyOnlySkipsOtherScripts(t *testing.T) {
	f, err := NewFilter(10, 0, 0.01, UpdateP2PubkeyOnly)
	require.NoError(t, err)

	pubKeyHash := make([]byte, 20)
	pubKeyHash[0] = 0xdd
	f.Insert(pubKeyHash)

	tx := newTestTx(p2pkhScript(t, pubKeyHash))
	f.Update(tx)
	require.False(t, f.ContainsOutPoint(wire.NewOutPoint(tx.Hash(), 0)))

	pubKey := make([]byte, 33)
	pubKey[0] = 0x02
	pubKey[1] = 0xdd
	f2, err := NewFilter(10, 0, 0.01, UpdateP2PubkeyOnly)
	require.NoError(t, err)
	f2.Insert(pubKey)

	pkTx := newTestTx(p2pkScript(t, pubKey))
	f2.Update(pkTx)
	require.True(t, f2.ContainsOutPoint(wire.NewOutPoint(pkTx.Hash(), 0)))
}
