package merkletree

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const wireProtocolVersion = 0

// packBits packs an ordered bool sequence into bytes, LSB-first within each
// byte, zero-padding the final byte out to a full byte boundary.
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// unpackBits is the inverse of packBits: every bit of every byte becomes one
// bool, LSB-first, so the result's length is always a multiple of 8 and may
// include trailing padding bits that Decode tolerates.
func unpackBits(raw []byte) []bool {
	out := make([]bool, 0, len(raw)*8)
	for _, flagByte := range raw {
		for i := 0; i < 8; i++ {
			out = append(out, flagByte&(1<<uint(i)) != 0)
		}
	}
	return out
}

// Serialize encodes p as a merkleblock partial-tree payload:
//
//	u32_le(transaction_count) ++ varint(hash_count) ++ hashes ++
//	  varint(flag_byte_count) ++ flag_bytes
func (p *Proof) Serialize() ([]byte, error) {
	var buf bytes.Buffer

	var txCountBytes [4]byte
	binary.LittleEndian.PutUint32(txCountBytes[:], p.TransactionCount)
	if _, err := buf.Write(txCountBytes[:]); err != nil {
		return nil, fmt.Errorf("merkletree: encode transaction_count: %w", err)
	}

	if err := wire.WriteVarInt(&buf, wireProtocolVersion, uint64(len(p.Hashes))); err != nil {
		return nil, fmt.Errorf("merkletree: encode hash_count: %w", err)
	}
	for _, h := range p.Hashes {
		if _, err := buf.Write(h[:]); err != nil {
			return nil, fmt.Errorf("merkletree: encode hash: %w", err)
		}
	}

	flagBytes := packBits(p.Bits)
	if err := wire.WriteVarInt(&buf, wireProtocolVersion, uint64(len(flagBytes))); err != nil {
		return nil, fmt.Errorf("merkletree: encode flag_byte_count: %w", err)
	}
	if _, err := buf.Write(flagBytes); err != nil {
		return nil, fmt.Errorf("merkletree: encode flag_bytes: %w", err)
	}

	return buf.Bytes(), nil
}

// Deserialize decodes a merkleblock partial-tree payload produced by
// Serialize. It does not itself validate the proof's internal consistency —
// call Decode on the result for that.
func Deserialize(raw []byte) (*Proof, error) {
	r := bytes.NewReader(raw)

	var txCountBytes [4]byte
	if _, err := io.ReadFull(r, txCountBytes[:]); err != nil {
		return nil, newDecodeErr(ReasonInvalidTransactionCount,
			fmt.Errorf("merkletree: read transaction_count: %w", err))
	}
	txCount := binary.LittleEndian.Uint32(txCountBytes[:])

	hashCount, err := wire.ReadVarInt(r, wireProtocolVersion)
	if err != nil {
		return nil, newDecodeErr(ReasonHashUnderflow,
			fmt.Errorf("merkletree: read hash_count: %w", err))
	}
	if hashCount > uint64(txCount) {
		return nil, newDecodeErr(ReasonHashOverflow, errTooManyHashes)
	}

	hashes := make([]chainhash.Hash, hashCount)
	for i := range hashes {
		if _, err := io.ReadFull(r, hashes[i][:]); err != nil {
			return nil, newDecodeErr(ReasonHashUnderflow,
				fmt.Errorf("merkletree: read hash %d: %w", i, err))
		}
	}

	flagByteCount, err := wire.ReadVarInt(r, wireProtocolVersion)
	if err != nil {
		return nil, newDecodeErr(ReasonBitOverflow,
			fmt.Errorf("merkletree: read flag_byte_count: %w", err))
	}
	flagBytes := make([]byte, flagByteCount)
	if _, err := io.ReadFull(r, flagBytes); err != nil {
		return nil, newDecodeErr(ReasonBitOverflow,
			fmt.Errorf("merkletree: read flag_bytes: %w", err))
	}

	return &Proof{
		TransactionCount: txCount,
		Hashes:           hashes,
		Bits:             unpackBits(flagBytes),
	}, nil
}
