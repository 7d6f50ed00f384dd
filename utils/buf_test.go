package utils

import (
	"bytes"
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_buf(t *testing.T) {
	maxLength := 1000
	var vardata = make([]byte, mathrand.Intn(maxLength))
	var varint = int64(mathrand.Intn(maxLength))
	writeBuf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(writeBuf, varint))
	require.NoError(t, WriteVarBytes(writeBuf, vardata))

	readBuf := bytes.NewBuffer(writeBuf.Bytes())
	varintRead, _, err := ReadVarInt(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, varint, varintRead)
	vardataRead, _, err := ReadVarBytes(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, vardata, vardataRead)
}

func TestBigInt(t *testing.T) {
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890123456789", 10)
	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(-1), big.NewInt(8878244378), huge}

	buf := bytes.NewBuffer(nil)
	for _, v := range values {
		require.NoError(t, WriteBigInt(buf, v))
	}
	for _, v := range values {
		got, err := ReadBigInt(buf)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(got), "want %s got %s", v, got)
	}

	_, err := ReadBigInt(buf)
	assert.Error(t, err)
}

func TestReadBigInt_BadSign(t *testing.T) {
	_, err := ReadBigInt(bytes.NewReader([]byte{2, 0}))
	assert.Error(t, err)
}

func TestReadVarBytes_TooLarge(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(buf, MaxVarBytes+1))
	_, _, err := ReadVarBytes(buf)
	assert.ErrorIs(t, err, ErrFieldTooLarge)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("share"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, Fingerprint([]byte("share")))
	assert.NotEqual(t, a, Fingerprint([]byte("other")))
	assert.Len(t, SeedFromPassphrase("pw"), 32)
}

func TestGenerateSeed(t *testing.T) {
	seed, err := GenerateSeed(32)
	require.NoError(t, err)
	assert.Len(t, seed, 32)

	_, err = GenerateSeed(8)
	assert.Error(t, err)
}
