package imei

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []int64{
	490154203237518,
	356303489916807,
	356656423384345,
	MinValue,
	MaxValue,
}

func TestIMEI_Conversions(t *testing.T) {
	id := MustParse("490154203237518")

	assert.Equal(t, int64(490154203237518), id.Int64())
	assert.Equal(t, "490154203237518", id.String())
	assert.Equal(t, []byte("490154203237518"), id.Bytes())
	assert.Equal(t, []rune("490154203237518"), id.Runes())

	out, err := id.AppendText([]byte("imei:"))
	require.NoError(t, err)
	assert.Equal(t, "imei:490154203237518", string(out))
}

func TestIMEI_TextIsZeroPadded(t *testing.T) {
	id, err := ParseInt64(MinValue)
	require.NoError(t, err)

	assert.Equal(t, "000000000000018", id.String())
	assert.Len(t, id.Bytes(), Length)
	assert.Len(t, id.Runes(), Length)
	assert.Equal(t, 0, id.TAC())
	assert.Equal(t, 0, id.FAC())
	assert.Equal(t, 1, id.SNR())
}

func TestIMEI_TextOfUncheckedValues(t *testing.T) {
	big, err := New(1234567890123456789, WithoutValidation())
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456789", big.String())

	negative, err := New(-5, WithoutValidation())
	require.NoError(t, err)
	assert.Equal(t, "-5", negative.String())

	assert.Equal(t, "000000000000000", Invalid.String())
}

func TestIMEI_RoundTrip(t *testing.T) {
	for _, n := range samples {
		id, err := ParseInt64(n)
		require.NoError(t, err)

		viaText, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, n, viaText.Int64())

		viaBytes, err := ParseBytes(id.Bytes())
		require.NoError(t, err)
		assert.Equal(t, n, viaBytes.Int64())

		viaRunes, err := ParseRunes(id.Runes())
		require.NoError(t, err)
		assert.Equal(t, n, viaRunes.Int64())
	}
}

func TestIMEI_Fields(t *testing.T) {
	tests := []struct {
		input         string
		tac, fac, snr int
	}{
		{"356303489916807", 35, 630348, 991680},
		{"490154203237518", 49, 15420, 323751},
		{"999999999999994", 99, 999999, 999999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id := MustParse(tt.input)
			assert.Equal(t, tt.tac, id.TAC())
			assert.Equal(t, tt.fac, id.FAC())
			assert.Equal(t, tt.snr, id.SNR())
		})
	}
}

func TestIMEI_Equality(t *testing.T) {
	a := MustParse("490154203237518")
	b, err := ParseInt64(490154203237518)
	require.NoError(t, err)
	c := MustParse("356303489916807")

	assert.True(t, a.Equal(b))
	assert.True(t, a == b)
	assert.False(t, a.Equal(c))
	assert.True(t, a != c)
	assert.Equal(t, Invalid, IMEI{})
}

func TestIMEI_HashConsistency(t *testing.T) {
	seen := make(map[uint64]int64, len(samples))
	for _, n := range samples {
		a, err := ParseInt64(n)
		require.NoError(t, err)
		b, err := Parse(a.String())
		require.NoError(t, err)

		assert.Equal(t, a.Hash(), b.Hash(), "equal values must hash equally")

		if prev, dup := seen[a.Hash()]; dup {
			t.Fatalf("hash collision between %d and %d", prev, n)
		}
		seen[a.Hash()] = n
	}
}

func TestIMEI_UsableAsMapKey(t *testing.T) {
	owners := map[IMEI]string{
		MustParse("490154203237518"): "A",
	}
	key, ok := TryParse("490154203237518")
	require.True(t, ok)
	assert.Equal(t, "A", owners[key])
}
