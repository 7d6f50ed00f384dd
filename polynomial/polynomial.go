// Package polynomial evaluates integer polynomials with arbitrary-precision
// coefficients.
package polynomial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/random"
)

// ErrInvalidDegree is returned when a polynomial would have no coefficients.
var ErrInvalidDegree = errors.New("polynomial: threshold must be at least 1")

// Polynomial holds coefficients in ascending order: p(x) = c[0] + c[1]*x + ... .
type Polynomial []*big.Int

// CalculateY evaluates sum(coefficients[i] * x^i) with Horner's method.
// An empty coefficient list evaluates to 0.
func CalculateY(x *big.Int, coefficients []*big.Int) *big.Int {
	y := new(big.Int)
	for i := len(coefficients) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, coefficients[i])
	}
	return y
}

// NewRandom builds a polynomial of degree t-1 whose constant term is secret and
// whose remaining coefficients are drawn from rnd in [0, bound).
func NewRandom(secret *big.Int, t int, rnd random.Provider, bound *big.Int) (Polynomial, error) {
	if t < 1 {
		return nil, ErrInvalidDegree
	}

	coeffs := make(Polynomial, t)
	coeffs[0] = new(big.Int).Set(secret)
	for i := 1; i < t; i++ {
		c, err := rnd.NextCoefficient(bound)
		if err != nil {
			return nil, fmt.Errorf("failed to draw coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// Evaluate returns p(x).
func (p Polynomial) Evaluate(x *big.Int) *big.Int {
	return CalculateY(x, p)
}

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Secret returns the constant term.
func (p Polynomial) Secret() *big.Int {
	if len(p) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(p[0])
}

// Wipe zeroes every coefficient in place.
func (p Polynomial) Wipe() {
	for _, c := range p {
		if c != nil {
			c.SetInt64(0)
		}
	}
}
