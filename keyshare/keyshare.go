// Package keyshare splits ECDSA private keys into integer shares and recovers
// them, checking the result against the public key recorded at split time.
package keyshare

import (
	"bytes"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/izouxv/goShamir/curve"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
)

var (
	// ErrKeyMismatch is returned when the recovered key does not match the recorded public key.
	ErrKeyMismatch = errors.New("recovered key does not match the recorded public key")
	// ErrKeyOutOfRange is returned when the recovered scalar is not a valid private key.
	ErrKeyOutOfRange = errors.New("recovered scalar is not a valid private key")
	// ErrNotSecp256k1 is returned when an Ethereum address is requested for another curve.
	ErrNotSecp256k1 = errors.New("ethereum addresses require a secp256k1 key")
)

// KeyShares is the public description of a split key plus its shares.
type KeyShares struct {
	CurveName string
	Threshold int
	PublicKey []byte // compressed
	KeyID     string // fingerprint of PublicKey
	Shares    []*shamir.Share
}

// SplitKey splits the private scalar of key into n shares with threshold t.
// A nil dealer uses shamir.NewDealer().
func SplitKey(key *ecdsa.PrivateKey, n, t int, dealer *shamir.Dealer) (*KeyShares, error) {
	name := key.Curve.Params().Name
	if curve.CurveGet(name) == nil {
		return nil, fmt.Errorf("unsupported curve: %s", name)
	}
	if dealer == nil {
		dealer = shamir.NewDealer()
	}

	shares, err := dealer.GenerateShares(key.D, n, t)
	if err != nil {
		return nil, fmt.Errorf("failed to split private key: %w", err)
	}
	pub := curve.PointToBytes(key.Curve, &key.PublicKey)
	return &KeyShares{
		CurveName: name,
		Threshold: t,
		PublicKey: pub,
		KeyID:     utils.Fingerprint(pub),
		Shares:    shares,
	}, nil
}

// RecoverKey rebuilds a private key on the named curve from the first t shares.
func RecoverKey(curveName string, shares []*shamir.Share, t int) (*ecdsa.PrivateKey, error) {
	c := curve.CurveGet(curveName)
	if c == nil {
		return nil, fmt.Errorf("unsupported curve: %s", curveName)
	}
	d, err := shamir.Combine(shares, t)
	if err != nil {
		return nil, err
	}
	key, err := curve.PrivateKeyFromScalar(c, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyOutOfRange, err)
	}
	return key, nil
}

// Recover rebuilds the key from shares and verifies it against ks.PublicKey.
func (ks *KeyShares) Recover(shares []*shamir.Share) (*ecdsa.PrivateKey, error) {
	key, err := RecoverKey(ks.CurveName, shares, ks.Threshold)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(curve.PointToBytes(key.Curve, &key.PublicKey), ks.PublicKey) {
		return nil, ErrKeyMismatch
	}
	return key, nil
}

// Address returns the Ethereum address of a secp256k1 public key.
func Address(pub *ecdsa.PublicKey) (common.Address, error) {
	if !curve.IsSecp256k1(pub.Curve) {
		return common.Address{}, ErrNotSecp256k1
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// RecoverWithAddress rebuilds a secp256k1 key and checks that it controls the
// given hex-encoded Ethereum address.
func RecoverWithAddress(shares []*shamir.Share, t int, address string) (*ecdsa.PrivateKey, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid ethereum address: %q", address)
	}
	key, err := RecoverKey("secp256k1", shares, t)
	if err != nil {
		return nil, err
	}
	got, err := Address(&key.PublicKey)
	if err != nil {
		return nil, err
	}
	if got != common.HexToAddress(address) {
		return nil, fmt.Errorf("%w: address %s, want %s", ErrKeyMismatch, got.Hex(), address)
	}
	return key, nil
}
