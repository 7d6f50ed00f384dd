// Package fraction implements exact rational arithmetic over arbitrary-precision
// integers. Fractions are not normalized on construction; Reduce brings them to
// lowest terms with a positive denominator.
package fraction

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when a fraction with a zero denominator reaches an operation.
	ErrDivisionByZero = errors.New("fraction: zero denominator")
	// ErrNotInteger is returned by Int when the reduced denominator is not 1.
	ErrNotInteger = errors.New("fraction: value is not an integer")
)

// Fraction is a numerator/denominator pair.
type Fraction struct {
	Numerator   *big.Int
	Denominator *big.Int
}

// New creates a fraction from machine integers.
func New(num, den int64) *Fraction {
	return &Fraction{
		Numerator:   big.NewInt(num),
		Denominator: big.NewInt(den),
	}
}

// NewBig creates a fraction holding copies of num and den.
func NewBig(num, den *big.Int) *Fraction {
	return &Fraction{
		Numerator:   new(big.Int).Set(num),
		Denominator: new(big.Int).Set(den),
	}
}

// FromInt returns n/1.
func FromInt(n *big.Int) *Fraction {
	return NewBig(n, big.NewInt(1))
}

func (f *Fraction) check() error {
	if f == nil || f.Numerator == nil || f.Denominator == nil || f.Denominator.Sign() == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// GCD returns the greatest common divisor of |a| and |b| using the Euclidean
// algorithm. GCD(a, 0) = |a|, GCD(0, b) = |b| and GCD(0, 0) = 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	r := new(big.Int)
	for y.Sign() != 0 {
		r.Rem(x, y)
		x, y, r = y, r, x
	}
	return x
}

// Add returns f1 + f2 by cross-multiplication. The result is not reduced.
func Add(f1, f2 *Fraction) (*Fraction, error) {
	if err := f1.check(); err != nil {
		return nil, err
	}
	if err := f2.check(); err != nil {
		return nil, err
	}

	// num = f1.num*f2.den + f2.num*f1.den
	num := new(big.Int).Mul(f1.Numerator, f2.Denominator)
	num.Add(num, new(big.Int).Mul(f2.Numerator, f1.Denominator))
	den := new(big.Int).Mul(f1.Denominator, f2.Denominator)
	return &Fraction{Numerator: num, Denominator: den}, nil
}

// Mul returns f1 * f2. The result is not reduced.
func Mul(f1, f2 *Fraction) (*Fraction, error) {
	if err := f1.check(); err != nil {
		return nil, err
	}
	if err := f2.check(); err != nil {
		return nil, err
	}
	return &Fraction{
		Numerator:   new(big.Int).Mul(f1.Numerator, f2.Numerator),
		Denominator: new(big.Int).Mul(f1.Denominator, f2.Denominator),
	}, nil
}

// Reduce returns f in lowest terms with a positive denominator. A zero
// numerator reduces to 0/1.
func Reduce(f *Fraction) (*Fraction, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if f.Numerator.Sign() == 0 {
		return New(0, 1), nil
	}

	g := GCD(f.Numerator, f.Denominator)
	num := new(big.Int).Quo(f.Numerator, g)
	den := new(big.Int).Quo(f.Denominator, g)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return &Fraction{Numerator: num, Denominator: den}, nil
}

// IsInteger reports whether f reduces to a whole number.
func (f *Fraction) IsInteger() bool {
	if f.check() != nil {
		return false
	}
	return new(big.Int).Rem(f.Numerator, f.Denominator).Sign() == 0
}

// Int returns the integer value of f, or ErrNotInteger if f has a fractional part.
func (f *Fraction) Int() (*big.Int, error) {
	r, err := Reduce(f)
	if err != nil {
		return nil, err
	}
	if r.Denominator.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotInteger, r)
	}
	return r.Numerator, nil
}

// Equal reports whether f and g are the same rational number.
func (f *Fraction) Equal(g *Fraction) bool {
	if f.check() != nil || g.check() != nil {
		return false
	}
	lhs := new(big.Int).Mul(f.Numerator, g.Denominator)
	rhs := new(big.Int).Mul(g.Numerator, f.Denominator)
	return lhs.Cmp(rhs) == 0
}

func (f *Fraction) String() string {
	if f == nil || f.Numerator == nil || f.Denominator == nil {
		return "<nil>"
	}
	return f.Numerator.String() + "/" + f.Denominator.String()
}
