package bloom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorUnwrap(t *testing.T) {
	err := newDecodeErr(ReasonFilterTooLarge, ErrFilterTooLarge)

	require.ErrorIs(t, err, ErrFilterTooLarge)
	require.Equal(t, ErrFilterTooLarge, errors.Unwrap(err))
	require.Contains(t, err.Error(), "filter_too_large")
}

func TestReasonStringCoversAllVariants(t *testing.T) {
	reasons := []Reason{
		ReasonShortRead,
		ReasonMalformedVarInt,
		ReasonFilterTooLarge,
		ReasonTooManyHashFuncs,
		ReasonUnknownFlagVariant,
	}
	for _, r := range reasons {
		require.NotEqual(t, "unknown", r.String())
	}
	require.Equal(t, "unknown", Reason(99).String())
}
