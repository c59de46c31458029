package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMurmurHash3KnownVectors(t *testing.T) {
	cases := []struct {
		seed uint32
		data string
		want uint32
	}{
		{0, "", 0},
		{0, "test", 0xba6bd213},
		{0, "Hello, world!", 0xc0363e43},
		{1, "Hello, world!", 0xaa5dc85b},
		{0x9747b28c, "Hello, world!", 0x24884cba},
	}

	for _, c := range cases {
		got := MurmurHash3(c.seed, []byte(c.data))
		require.Equalf(t, c.want, got, "seed=%d data=%q", c.seed, c.data)
	}
}

func TestMurmurHash3Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := uint32(rapid.Uint32().Draw(rt, "seed"))
		data := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(rt, "data")

		first := MurmurHash3(seed, data)
		second := MurmurHash3(seed, data)
		require.Equal(rt, first, second)
	})
}

func TestMurmurHash3SeedSensitivity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(rt, "data")
		seedA := uint32(rapid.Uint32().Draw(rt, "seedA"))
		seedB := seedA + 1 + uint32(rapid.IntRange(0, 1<<20).Draw(rt, "delta"))

		// Not a formal guarantee of MurmurHash3, but collisions across
		// distinct seeds on the same data are astronomically unlikely for
		// any fixed small input, so this mostly catches a seed that's
		// silently ignored.
		if MurmurHash3(seedA, data) == MurmurHash3(seedB, data) {
			rt.Skip("seed collision")
		}
	})
}
