// Package curve keeps a registry of elliptic curves by name and converts keys
// to and from bytes.
package curve

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve is a map of registered elliptic curves, keyed by their name.
var Curve = make(map[string]elliptic.Curve)

// CurveRegist registers a curve so it can be looked up by name.
func CurveRegist(curve elliptic.Curve) {
	if _, ok := Curve[curve.Params().Name]; ok {
		panic("curve already registered")
	}
	Curve[curve.Params().Name] = curve
}

// CurveGet retrieves a registered curve by its name.
func CurveGet(name string) elliptic.Curve {
	return Curve[name]
}

func init() {
	CurveRegist(elliptic.P256())
	CurveRegist(elliptic.P384())
	CurveRegist(elliptic.P521())
	CurveRegist(secp256k1.S256())
}

// IsSecp256k1 reports whether c is the secp256k1 curve.
func IsSecp256k1(c elliptic.Curve) bool {
	return c.Params().Name == secp256k1.S256().Params().Name
}

// GenerateKeys creates a new ECDSA private and public key pair.
func GenerateKeys(CURVE elliptic.Curve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	privateKey, err := ecdsa.GenerateKey(CURVE, rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return privateKey, &privateKey.PublicKey, nil
}

// PrivateKeyFromScalar builds a private key from d, which must lie in [1, N).
func PrivateKeyFromScalar(CURVE elliptic.Curve, d *big.Int) (*ecdsa.PrivateKey, error) {
	if d.Sign() <= 0 || d.Cmp(CURVE.Params().N) >= 0 {
		return nil, fmt.Errorf("scalar out of range for curve %s", CURVE.Params().Name)
	}
	x, y := CURVE.ScalarBaseMult(d.Bytes())
	return &ecdsa.PrivateKey{
		D:         new(big.Int).Set(d),
		PublicKey: ecdsa.PublicKey{Curve: CURVE, X: x, Y: y},
	}, nil
}

// PointToBytes encodes a public key in compressed form.
func PointToBytes(CURVE elliptic.Curve, point *ecdsa.PublicKey) []byte {
	return elliptic.MarshalCompressed(CURVE, point.X, point.Y)
}

func BytesToPoint(CURVE elliptic.Curve, pubKeyAsBytes []byte) (*ecdsa.PublicKey, error) {
	// elliptic.UnmarshalCompressed assumes a = -3, which does not hold for
	// secp256k1 (y² = x³ + 7), so that curve goes through its own parser.
	if IsSecp256k1(CURVE) {
		pubKey, err := secp256k1.ParsePubKey(pubKeyAsBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse secp256k1 public key: %w", err)
		}
		ecdsaKey := pubKey.ToECDSA()
		return &ecdsa.PublicKey{Curve: CURVE, X: ecdsaKey.X, Y: ecdsaKey.Y}, nil
	}

	x, y := elliptic.UnmarshalCompressed(CURVE, pubKeyAsBytes)
	if x == nil { // y will be nil if x is.
		return nil, fmt.Errorf("invalid public key bytes for curve %s", CURVE.Params().Name)
	}
	return &ecdsa.PublicKey{Curve: CURVE, X: x, Y: y}, nil
}
