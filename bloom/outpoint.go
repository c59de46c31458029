package bloom

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// outpointBytes returns the canonical byte serialisation of an outpoint:
// tx_id ++ LE_u32(vout_index).
func outpointBytes(op *wire.OutPoint) []byte {
	var buf [chainhash.HashSize + 4]byte
	copy(buf[:chainhash.HashSize], op.Hash[:])
	binary.LittleEndian.PutUint32(buf[chainhash.HashSize:], op.Index)
	return buf[:]
}

// InsertHash adds a 32-byte digest (e.g. a transaction ID) to the filter.
func (f *Filter) InsertHash(hash *chainhash.Hash) {
	f.Insert(hash[:])
}

// ContainsHash reports whether the filter might contain the given digest.
func (f *Filter) ContainsHash(hash *chainhash.Hash) bool {
	return f.Contains(hash[:])
}

// InsertOutPoint adds an outpoint (tx_id, vout_index) to the filter.
func (f *Filter) InsertOutPoint(op *wire.OutPoint) {
	f.Insert(outpointBytes(op))
}

// ContainsOutPoint reports whether the filter might contain the given
// outpoint.
func (f *Filter) ContainsOutPoint(op *wire.OutPoint) bool {
	return f.Contains(outpointBytes(op))
}
