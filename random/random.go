// Package random provides the randomness sources used to draw polynomial
// coefficients. Dealers take a Provider so that the secure default can be
// swapped for a reproducible stream in tests and tooling.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	mathrand "math/rand"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// ErrInvalidBound is returned when a non-positive bound is requested.
var ErrInvalidBound = errors.New("random: bound must be positive")

// Provider draws one coefficient per call, uniformly from [0, bound).
// Implementations are not required to be safe for concurrent use.
type Provider interface {
	NextCoefficient(bound *big.Int) (*big.Int, error)
}

// readerProvider draws from an io.Reader through crypto/rand.Int, which
// performs rejection sampling for uniformity.
type readerProvider struct {
	r io.Reader
}

// NewCryptoProvider returns a Provider backed by crypto/rand.
func NewCryptoProvider() Provider {
	return &readerProvider{r: rand.Reader}
}

// NewReaderProvider returns a Provider that draws from r.
func NewReaderProvider(r io.Reader) Provider {
	return &readerProvider{r: r}
}

func (p *readerProvider) NextCoefficient(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	return rand.Int(p.r, bound)
}

// NewHKDFProvider returns a deterministic Provider whose stream is derived from
// seed with HKDF-SHA3-256. The same seed and info always yield the same
// coefficients, which makes share sets reproducible. HKDF output is capped
// at 255 hash blocks, so a single provider yields a few hundred 256-bit draws.
func NewHKDFProvider(seed, info []byte) (Provider, error) {
	if len(seed) < 16 {
		return nil, fmt.Errorf("hkdf seed too short: got %d bytes, need at least 16", len(seed))
	}
	return &readerProvider{r: hkdf.New(sha3.New256, seed, nil, info)}, nil
}

// mathProvider is NOT suitable for protecting real secrets.
type mathProvider struct {
	r *mathrand.Rand
}

// NewMathProvider returns an insecure, seeded pseudo-random Provider.
func NewMathProvider(seed int64) Provider {
	return &mathProvider{r: mathrand.New(mathrand.NewSource(seed))}
}

func (p *mathProvider) NextCoefficient(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	return new(big.Int).Rand(p.r, bound), nil
}
