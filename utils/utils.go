package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) ([]byte, error) {
	sha := sha3.New256()
	_, err := sha.Write(message)
	if err != nil {
		return nil, err
	}
	return sha.Sum(nil), nil
}

// Fingerprint returns the first 8 bytes of the SHA3-256 digest of data, hex encoded.
func Fingerprint(data []byte) string {
	sum, _ := Sha3Hash(data)
	return hex.EncodeToString(sum[:8])
}

// GenerateSeed returns size bytes from crypto/rand; size must be within [16, 64].
func GenerateSeed(size int) ([]byte, error) {
	if size < 16 || size > 64 {
		return nil, fmt.Errorf("seed size must be between 16 and 64 bytes, but got %d", size)
	}
	seed := make([]byte, size)
	_, err := rand.Read(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return seed, nil
}

// SeedFromPassphrase stretches a passphrase into a 32 byte seed.
func SeedFromPassphrase(passphrase string) []byte {
	sum, _ := Sha3Hash([]byte(passphrase))
	return sum
}
