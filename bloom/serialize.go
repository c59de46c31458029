package bloom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// wireProtocolVersion is passed through to wire.ReadVarInt/WriteVarInt, which
// accept it only because compact-size integers are, in general, encoded
// identically across protocol versions; BIP37's filterload payload never
// varies this field.
const wireProtocolVersion = 0

// Serialize encodes f as a filterload payload:
//
//	varint(filter_size) ++ data ++ u32_le(hash_funcs) ++ u32_le(tweak) ++ u8(flags)
func (f *Filter) Serialize() ([]byte, error) {
	var buf bytes.Buffer

	if err := wire.WriteVarInt(&buf, wireProtocolVersion, uint64(len(f.data))); err != nil {
		return nil, fmt.Errorf("bloom: encode filter_size: %w", err)
	}
	if _, err := buf.Write(f.data); err != nil {
		return nil, fmt.Errorf("bloom: encode data: %w", err)
	}

	var tail [9]byte
	binary.LittleEndian.PutUint32(tail[0:4], f.hashFuncs)
	binary.LittleEndian.PutUint32(tail[4:8], f.tweak)
	tail[8] = byte(f.flags)
	if _, err := buf.Write(tail[:]); err != nil {
		return nil, fmt.Errorf("bloom: encode trailer: %w", err)
	}

	return buf.Bytes(), nil
}

// Deserialize decodes a filterload payload produced by Serialize, rejecting
// any filter_size greater than 36000, any hash_funcs greater than 50, and
// any flags byte outside {NONE, ALL, P2PUBKEY_ONLY}.
func Deserialize(raw []byte) (*Filter, error) {
	r := bytes.NewReader(raw)

	filterSize, err := wire.ReadVarInt(r, wireProtocolVersion)
	if err != nil {
		return nil, newDecodeErr(ReasonMalformedVarInt, err)
	}
	if filterSize > MaxFilterSize {
		log.Debugf("rejecting filterload: filter_size %d exceeds %d",
			filterSize, MaxFilterSize)
		return nil, newDecodeErr(ReasonFilterTooLarge, ErrFilterTooLarge)
	}
	if filterSize == 0 {
		return nil, newDecodeErr(ReasonShortRead, ErrEmptyFilter)
	}

	data := make([]byte, filterSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, newDecodeErr(ReasonShortRead,
			fmt.Errorf("bloom: read data: %w: %w", ErrFilterSizeMismatch, err))
	}

	var tail [9]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return nil, newDecodeErr(ReasonShortRead, fmt.Errorf("bloom: read trailer: %w", err))
	}

	hashFuncs := binary.LittleEndian.Uint32(tail[0:4])
	if hashFuncs > MaxHashFuncs {
		return nil, newDecodeErr(ReasonTooManyHashFuncs, ErrTooManyHashFuncs)
	}
	if hashFuncs == 0 {
		return nil, newDecodeErr(ReasonShortRead, ErrNoHashFuncs)
	}
	tweak := binary.LittleEndian.Uint32(tail[4:8])
	flags := UpdateFlag(tail[8])
	if !validUpdateFlag(flags) {
		return nil, newDecodeErr(ReasonUnknownFlagVariant, ErrUnknownFlags)
	}

	return &Filter{
		data:      data,
		hashFuncs: hashFuncs,
		tweak:     tweak,
		flags:     flags,
	}, nil
}
