package keyshare

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/izouxv/goShamir/curve"
	"github.com/izouxv/goShamir/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAndRecoverKey(t *testing.T) {
	curves := []elliptic.Curve{elliptic.P256(), elliptic.P384(), curve.CurveGet("secp256k1")}

	for _, CURVE := range curves {
		t.Run(fmt.Sprintf("Curve_%s", CURVE.Params().Name), func(t *testing.T) {
			key, _, err := curve.GenerateKeys(CURVE)
			require.NoError(t, err)

			ks, err := SplitKey(key, 5, 3, nil)
			require.NoError(t, err)
			require.Len(t, ks.Shares, 5)
			assert.Len(t, ks.KeyID, 16)

			recovered, err := ks.Recover([]*shamir.Share{ks.Shares[4], ks.Shares[0], ks.Shares[2]})
			require.NoError(t, err)
			assert.True(t, key.Equal(recovered))

			_, err = ks.Recover(ks.Shares[:2])
			assert.ErrorIs(t, err, shamir.ErrInsufficientShares)
		})
	}
}

func TestRecover_Mismatch(t *testing.T) {
	c := curve.CurveGet("P-256")
	a, _, err := curve.GenerateKeys(c)
	require.NoError(t, err)
	b, _, err := curve.GenerateKeys(c)
	require.NoError(t, err)

	ksA, err := SplitKey(a, 3, 2, nil)
	require.NoError(t, err)
	ksB, err := SplitKey(b, 3, 2, nil)
	require.NoError(t, err)

	ksA.Shares = ksB.Shares
	_, err = ksA.Recover(ksA.Shares)
	assert.ErrorIs(t, err, ErrKeyMismatch)
}

func TestRecoverKey_Errors(t *testing.T) {
	_, err := RecoverKey("nope", nil, 1)
	assert.Error(t, err)

	// a constant polynomial at zero is not a valid private key
	zero, err := shamir.GenerateShares(big.NewInt(0), 2, 1)
	require.NoError(t, err)
	_, err = RecoverKey("P-256", zero, 1)
	assert.ErrorIs(t, err, ErrKeyOutOfRange)
}

func TestAddress(t *testing.T) {
	key, _, err := curve.GenerateKeys(curve.CurveGet("secp256k1"))
	require.NoError(t, err)
	addr, err := Address(&key.PublicKey)
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, addr)

	ks, err := SplitKey(key, 4, 2, nil)
	require.NoError(t, err)
	recovered, err := RecoverWithAddress(ks.Shares[2:], 2, addr.Hex())
	require.NoError(t, err)
	assert.True(t, key.Equal(recovered))

	_, err = RecoverWithAddress(ks.Shares[2:], 2, common.Address{0x01}.Hex())
	assert.ErrorIs(t, err, ErrKeyMismatch)

	_, err = RecoverWithAddress(ks.Shares, 2, "not-an-address")
	assert.Error(t, err)

	p256, _, err := curve.GenerateKeys(elliptic.P256())
	require.NoError(t, err)
	_, err = Address(&p256.PublicKey)
	assert.ErrorIs(t, err, ErrNotSecp256k1)
}
