package bloom

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// IsRelevant reports whether tx matches the filter: its txid, any push-data
// constant in an output script, any previous outpoint spent by an input, or
// any push-data constant in an input's signature script.
//
// This never mutates the filter. A prior version of this logic (the source's
// is_relevant_and_update) interleaved the scan with the auto-update side
// effect and then discarded the updated filter; that is not reproduced here.
// Callers that want both the relevance verdict and the auto-update need to
// call IsRelevant and Update separately. Update does not consult IsRelevant:
// it walks the outputs itself and, unless Flags is UpdateNone, always
// inserts tx's txid.
func (f *Filter) IsRelevant(tx *btcutil.Tx) bool {
	if f.ContainsHash(tx.Hash()) {
		return true
	}

	msgTx := tx.MsgTx()

	for _, txOut := range msgTx.TxOut {
		if f.matchesAnyPushedData(txOut.PkScript) {
			return true
		}
	}

	for _, txIn := range msgTx.TxIn {
		if f.ContainsOutPoint(&txIn.PreviousOutPoint) {
			return true
		}
		if f.matchesAnyPushedData(txIn.SignatureScript) {
			return true
		}
	}

	return false
}

// matchesAnyPushedData reports whether any push-data constant (as opposed
// to an opcode byte) in script is contained in the filter.
func (f *Filter) matchesAnyPushedData(script []byte) bool {
	pushes, err := txscript.PushedData(script)
	if err != nil {
		return false
	}
	for _, data := range pushes {
		if f.Contains(data) {
			return true
		}
	}
	return false
}

// Update scans tx's outputs and, for each whose script contains a push-data
// constant already matched by the filter, inserts that output's outpoint —
// so that a future transaction spending it will also match — then inserts
// tx's own txid. Whether and how this runs is governed by Flags:
//
//	UpdateNone:          Update is a no-op.
//	UpdateAll:            every matching output's outpoint is inserted.
//	UpdateP2PubkeyOnly:   only pay-to-pubkey / bare-multisig outputs qualify.
func (f *Filter) Update(tx *btcutil.Tx) {
	if f.flags == UpdateNone {
		return
	}

	msgTx := tx.MsgTx()
	for i, txOut := range msgTx.TxOut {
		if !f.matchesAnyPushedData(txOut.PkScript) {
			continue
		}

		if f.flags == UpdateP2PubkeyOnly {
			class := txscript.GetScriptClass(txOut.PkScript)
			if class != txscript.PubKeyTy && class != txscript.MultiSigTy {
				continue
			}
		}

		f.InsertOutPoint(wire.NewOutPoint(tx.Hash(), uint32(i)))
	}

	f.InsertHash(tx.Hash())
}
