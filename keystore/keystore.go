// Package keystore seals individual shares in password-protected JSON files so
// that each holder can store their share at rest.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
	"golang.org/x/crypto/scrypt"
)

const (
	keyHeaderKDF = "scrypt"
	cipherName   = "aes-256-gcm"
	version      = 1
)

// ScryptN is the N parameter of Scrypt encryption algorithm, using 2^18 per recommendation for standard security.
// For testing, a smaller value can be used to speed up execution.
var ScryptN = 1 << 18

// ScryptP is the P parameter of Scrypt encryption algorithm, using 1 per recommendation.
var ScryptP = 1

var (
	// ErrInvalidPassword is returned when the password for decryption is incorrect.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrIndexMismatch is returned when the decrypted share does not match the file's clear-text index.
	ErrIndexMismatch = errors.New("share index does not match keystore header")
)

// ShareFile is the top-level structure for a sealed share.
type ShareFile struct {
	ID        string     `json:"id"`
	Version   int        `json:"version"`
	SetID     string     `json:"set_id,omitempty"`
	Index     string     `json:"index"`
	Threshold int        `json:"threshold"`
	Crypto    CryptoJSON `json:"crypto"`
}

// CryptoJSON contains the cryptographic parameters.
type CryptoJSON struct {
	Cipher     string           `json:"cipher"`
	CipherText []byte           `json:"ciphertext"`
	KDF        string           `json:"kdf"`
	KDFParams  ScryptParamsJSON `json:"kdfparams"`
}

// ScryptParamsJSON contains the parameters for the scrypt KDF.
type ScryptParamsJSON struct {
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Dklen int    `json:"dklen"`
	Salt  []byte `json:"salt"`
}

// EncryptShare seals share with a password-derived AES-256-GCM key and returns
// the JSON-encoded file. The share's x value is stored in clear as Index and
// bound to the ciphertext as additional data.
func EncryptShare(share *shamir.Share, threshold int, setID, password string) ([]byte, error) {
	plain, err := share.Encode()
	if err != nil {
		return nil, err
	}

	salt, err := utils.GenerateSeed(32)
	if err != nil {
		return nil, err
	}

	const dklen = 32
	derivedKey, err := scrypt.Key([]byte(password), salt, ScryptN, 8, ScryptP, dklen)
	if err != nil {
		return nil, err
	}

	index := share.X.String()
	cipherText, err := gcmEncrypt(plain, derivedKey, []byte(index))
	if err != nil {
		return nil, err
	}

	file := &ShareFile{
		ID:        uuid.New().String(),
		Version:   version,
		SetID:     setID,
		Index:     index,
		Threshold: threshold,
		Crypto: CryptoJSON{
			Cipher:     cipherName,
			CipherText: cipherText,
			KDF:        keyHeaderKDF,
			KDFParams: ScryptParamsJSON{
				N:     ScryptN,
				R:     8,
				P:     ScryptP,
				Dklen: dklen,
				Salt:  salt,
			},
		},
	}
	return json.MarshalIndent(file, "", "  ")
}

// DecryptShare opens a sealed share file.
func DecryptShare(data []byte, password string) (*shamir.Share, *ShareFile, error) {
	var file ShareFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, err
	}

	if file.Version != version {
		return nil, nil, fmt.Errorf("unsupported keystore version: %d", file.Version)
	}
	if file.Crypto.KDF != keyHeaderKDF {
		return nil, nil, fmt.Errorf("unsupported KDF: %s", file.Crypto.KDF)
	}
	if file.Crypto.Cipher != cipherName {
		return nil, nil, fmt.Errorf("unsupported cipher: %s", file.Crypto.Cipher)
	}

	kdfParams := file.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), kdfParams.Salt, kdfParams.N, kdfParams.R, kdfParams.P, kdfParams.Dklen)
	if err != nil {
		return nil, nil, err
	}

	// GCM authentication fails for a wrong password or a tampered index.
	plain, err := gcmDecrypt(file.Crypto.CipherText, derivedKey, []byte(file.Index))
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}

	share, err := shamir.NewShareFromBytes(plain)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode share: %w", err)
	}
	if share.X.String() != file.Index {
		return nil, nil, ErrIndexMismatch
	}
	return share, &file, nil
}
