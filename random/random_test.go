package random

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawN(t *testing.T, p Provider, bound *big.Int, n int) []string {
	out := make([]string, n)
	for i := range out {
		c, err := p.NextCoefficient(bound)
		require.NoError(t, err)
		require.True(t, c.Sign() >= 0 && c.Cmp(bound) < 0, "coefficient %s out of range", c)
		out[i] = c.String()
	}
	return out
}

func TestProviders_RespectBound(t *testing.T) {
	hp, err := NewHKDFProvider(bytes.Repeat([]byte{0x42}, 32), []byte("test"))
	require.NoError(t, err)

	providers := map[string]Provider{
		"crypto": NewCryptoProvider(),
		"math":   NewMathProvider(1),
		"hkdf":   hp,
	}
	bound := big.NewInt(1000)
	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			drawN(t, p, bound, 50)
		})
	}
}

func TestProviders_InvalidBound(t *testing.T) {
	for _, p := range []Provider{NewCryptoProvider(), NewMathProvider(1)} {
		_, err := p.NextCoefficient(big.NewInt(0))
		assert.ErrorIs(t, err, ErrInvalidBound)
		_, err = p.NextCoefficient(nil)
		assert.ErrorIs(t, err, ErrInvalidBound)
	}
}

func TestHKDFProvider_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	bound := new(big.Int).Lsh(big.NewInt(1), 256)

	p1, err := NewHKDFProvider(seed, []byte("shares"))
	require.NoError(t, err)
	p2, err := NewHKDFProvider(seed, []byte("shares"))
	require.NoError(t, err)
	p3, err := NewHKDFProvider(seed, []byte("other"))
	require.NoError(t, err)

	a := drawN(t, p1, bound, 5)
	b := drawN(t, p2, bound, 5)
	c := drawN(t, p3, bound, 5)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestHKDFProvider_ShortSeed(t *testing.T) {
	_, err := NewHKDFProvider([]byte("short"), nil)
	assert.Error(t, err)
}

func TestMathProvider_Deterministic(t *testing.T) {
	bound := big.NewInt(1 << 40)
	a := drawN(t, NewMathProvider(99), bound, 10)
	b := drawN(t, NewMathProvider(99), bound, 10)
	assert.Equal(t, a, b)
}

func TestReaderProvider(t *testing.T) {
	// A stream of 0x01 bytes always yields the same draw below 2^16.
	bound := big.NewInt(1 << 16)
	a := drawN(t, NewReaderProvider(bytes.NewReader(bytes.Repeat([]byte{1}, 64))), bound, 4)
	assert.Equal(t, []string{"257", "257", "257", "257"}, a)

	_, err := NewReaderProvider(bytes.NewReader(nil)).NextCoefficient(bound)
	assert.Error(t, err)
}
