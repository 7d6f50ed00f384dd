// Package shamir implements Shamir's threshold secret sharing over the
// integers. Shares are points on a random polynomial whose constant term is
// the secret, and reconstruction runs Lagrange interpolation at x=0 in exact
// rational arithmetic, so no prime field or modular inverse is involved.
package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/fraction"
	"github.com/izouxv/goShamir/polynomial"
	"github.com/izouxv/goShamir/random"
)

var (
	// ErrInvalidParameters is returned for thresholds or lengths that cannot describe a share set.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrNegativeSecret is returned when splitting a secret below zero.
	ErrNegativeSecret = errors.New("secret must be non-negative")
	// ErrInsufficientShares is returned when fewer than t shares are supplied.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrInvalidShareSet is returned for duplicate x values or when
	// interpolation does not land on an integer.
	ErrInvalidShareSet = errors.New("invalid share set")
)

// DefaultCoefficientBound is the exclusive upper bound for random coefficients
// drawn by a Dealer created without WithBound. It matches a 256-bit word.
var DefaultCoefficientBound = new(big.Int).Lsh(big.NewInt(1), 256)

// Share represents a share of a secret.
type Share struct {
	X *big.Int
	Y *big.Int
}

// Dealer splits secrets. The zero value is not usable; call NewDealer.
type Dealer struct {
	provider random.Provider
	bound    *big.Int
}

// Option configures a Dealer.
type Option func(*Dealer)

// WithProvider sets the randomness source for coefficients.
func WithProvider(p random.Provider) Option {
	return func(d *Dealer) {
		d.provider = p
	}
}

// WithBound sets the exclusive upper bound for random coefficients.
func WithBound(bound *big.Int) Option {
	return func(d *Dealer) {
		d.bound = new(big.Int).Set(bound)
	}
}

// NewDealer returns a Dealer drawing from crypto/rand below DefaultCoefficientBound
// unless overridden by opts.
func NewDealer(opts ...Option) *Dealer {
	d := &Dealer{
		provider: random.NewCryptoProvider(),
		bound:    new(big.Int).Set(DefaultCoefficientBound),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// GenerateShares splits secret into n shares with threshold t using a default Dealer.
func GenerateShares(secret *big.Int, n, t int) ([]*Share, error) {
	return NewDealer().GenerateShares(secret, n, t)
}

// GenerateShares builds a random polynomial of degree t-1 with secret as its
// constant term and evaluates it at x = 1..n. With t = 1 every share carries
// the secret itself.
func (d *Dealer) GenerateShares(secret *big.Int, n, t int) ([]*Share, error) {
	if secret == nil {
		return nil, fmt.Errorf("%w: nil secret", ErrInvalidParameters)
	}
	if secret.Sign() < 0 {
		return nil, ErrNegativeSecret
	}
	if t < 1 || n < t {
		return nil, fmt.Errorf("%w: need 1 <= t <= n, got n=%d t=%d", ErrInvalidParameters, n, t)
	}

	poly, err := polynomial.NewRandom(secret, t, d.provider, d.bound)
	if err != nil {
		return nil, fmt.Errorf("failed to build polynomial: %w", err)
	}
	defer poly.Wipe()

	shares := make([]*Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		shares[i-1] = &Share{X: x, Y: poly.Evaluate(x)}
	}
	return shares, nil
}

// ReconstructSecret recovers the constant term from the first t of length
// (x, y) points. Each Lagrange term y_i * prod_{j!=i} (0-x_j)/(x_i-x_j) is
// carried as an exact fraction and the running sum is reduced after every
// addition to keep denominators small. The final sum must be an integer.
//
// Points from different polynomials cannot be detected and yield a wrong
// integer or ErrInvalidShareSet.
func ReconstructSecret(xs, ys []*big.Int, length, t int) (*big.Int, error) {
	if t < 1 {
		return nil, fmt.Errorf("%w: threshold %d", ErrInvalidParameters, t)
	}
	if length < 0 || length > len(xs) || length > len(ys) {
		return nil, fmt.Errorf("%w: length %d with %d xs and %d ys", ErrInvalidParameters, length, len(xs), len(ys))
	}
	if length < t {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, t, length)
	}

	xs, ys = xs[:t], ys[:t]
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}

	sum := fraction.New(0, 1)
	for i := 0; i < t; i++ {
		term := fraction.FromInt(ys[i])
		for j := 0; j < t; j++ {
			if i == j {
				continue
			}
			factor := &fraction.Fraction{
				Numerator:   new(big.Int).Neg(xs[j]),
				Denominator: new(big.Int).Sub(xs[i], xs[j]),
			}
			var err error
			if term, err = fraction.Mul(term, factor); err != nil {
				return nil, err
			}
		}

		next, err := fraction.Add(sum, term)
		if err != nil {
			return nil, err
		}
		if sum, err = fraction.Reduce(next); err != nil {
			return nil, err
		}
	}

	secret, err := sum.Int()
	if err != nil {
		if errors.Is(err, fraction.ErrNotInteger) {
			return nil, fmt.Errorf("%w: interpolated value %s", ErrInvalidShareSet, sum)
		}
		return nil, err
	}
	return secret, nil
}

// Combine reconstructs the secret from the first t of shares.
func Combine(shares []*Share, t int) (*big.Int, error) {
	xs := make([]*big.Int, len(shares))
	ys := make([]*big.Int, len(shares))
	for i, s := range shares {
		if s == nil {
			return nil, fmt.Errorf("%w: share %d is nil", ErrInvalidParameters, i)
		}
		xs[i], ys[i] = s.X, s.Y
	}
	return ReconstructSecret(xs, ys, len(shares), t)
}

func checkPoints(xs, ys []*big.Int) error {
	seen := make(map[string]int, len(xs))
	for i := range xs {
		if xs[i] == nil || ys[i] == nil {
			return fmt.Errorf("%w: point %d has a nil coordinate", ErrInvalidParameters, i)
		}
		key := xs[i].String()
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: points %d and %d share x=%s", ErrInvalidShareSet, j, i, key)
		}
		seen[key] = i
	}
	return nil
}
