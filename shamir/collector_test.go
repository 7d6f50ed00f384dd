package shamir

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	secret := big.NewInt(8878244378)
	n, threshold := 5, 3
	shares, err := GenerateShares(secret, n, threshold)
	require.NoError(t, err)

	c, err := NewCollector(threshold)
	require.NoError(t, err)

	got, err := c.Add("vault", shares[4])
	require.NoError(t, err)
	assert.Nil(t, got, "Should not have a secret after 1 share")

	got, err = c.Add("vault", shares[1])
	require.NoError(t, err)
	assert.Nil(t, got, "Should not have a secret after 2 shares")
	assert.Equal(t, 2, c.Pending("vault"))

	// Add a duplicate share (should fail)
	_, err = c.Add("vault", shares[4])
	assert.ErrorIs(t, err, ErrInvalidShareSet)

	got, err = c.Add("vault", shares[0])
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, secret.Cmp(got))

	// Verify the internal map is cleared
	c.mu.Lock()
	assert.Empty(t, c.collected, "Internal map should be cleared after reconstruction")
	c.mu.Unlock()
}

func TestCollector_SeparateSets(t *testing.T) {
	a, err := GenerateShares(big.NewInt(111), 3, 2)
	require.NoError(t, err)
	b, err := GenerateShares(big.NewInt(222), 3, 2)
	require.NoError(t, err)

	c, err := NewCollector(2)
	require.NoError(t, err)

	_, err = c.Add("a", a[0])
	require.NoError(t, err)
	_, err = c.Add("b", b[0])
	require.NoError(t, err)

	got, err := c.Add("b", b[2])
	require.NoError(t, err)
	assert.Equal(t, int64(222), got.Int64())
	assert.Equal(t, 1, c.Pending("a"))

	c.Discard("a")
	assert.Zero(t, c.Pending("a"))
}

func TestCollector_Concurrent(t *testing.T) {
	secret := big.NewInt(320)
	shares, err := GenerateShares(secret, 10, 6)
	require.NoError(t, err)

	c, err := NewCollector(6)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*big.Int
	)
	for _, s := range shares[:6] {
		wg.Add(1)
		go func(s *Share) {
			defer wg.Done()
			got, err := c.Add("set", s)
			assert.NoError(t, err)
			if got != nil {
				mu.Lock()
				results = append(results, got)
				mu.Unlock()
			}
		}(s)
	}
	wg.Wait()

	require.Len(t, results, 1)
	assert.Equal(t, 0, secret.Cmp(results[0]))
}

func TestNewCollector_InvalidThreshold(t *testing.T) {
	for _, th := range []int{0, -1} {
		_, err := NewCollector(th)
		assert.ErrorIs(t, err, ErrInvalidParameters, fmt.Sprintf("threshold %d", th))
	}

	c, err := NewCollector(2)
	require.NoError(t, err)
	_, err = c.Add("x", nil)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
