package vaultcore

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/awnumar/memguard"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

// Envelope wire layouts, newest first:
//
//	new:           [1-byte salt_len][salt][12-byte nonce][ciphertext || tag]
//	legacy sep:    [salt][0x00][12-byte nonce][ciphertext || tag]
//	legacy fixed:  [32-byte salt][12-byte nonce][ciphertext || tag]
//
// Salts in the first two layouts are base64-alphabet ASCII and never contain
// a zero byte. Writes use the new layout only.
const (
	minSaltLen = 16
	maxSaltLen = 50

	legacyFixedSaltSize = 32
)

// SealSecret encrypts plaintext under a user password into a single portable
// envelope. A fresh salt and nonce are generated per call, so two envelopes
// of the same plaintext never match.
func SealSecret(plaintext []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrDerivationFailed)
	}

	salt, err := crypto.NewSaltString()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, err := crypto.DeriveKey([]byte(password), []byte(salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}
	defer memguard.WipeBytes(key)

	nonce := make([]byte, crypto.AESNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err := crypto.SealAESGCM(key, nonce, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	envelope := make([]byte, 0, 1+len(salt)+len(nonce)+len(ciphertext))
	envelope = append(envelope, byte(len(salt)))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)

	return envelope, nil
}

// OpenSecret decrypts an envelope produced by SealSecret or by either legacy
// writer. It requires only the stored envelope and the user's password; no
// session state survives between calls.
//
// Layouts are tried newest first. A structurally plausible parse that fails
// authentication falls through to the older layouts, so a legacy fixed-width
// record whose first salt byte happens to look like a sane length prefix is
// still recovered.
func OpenSecret(envelope []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrDerivationFailed)
	}

	parsed := false
	for _, split := range splitEnvelope(envelope) {
		parsed = true
		plaintext, err := openSplit(split, password)
		if err == nil {
			return plaintext, nil
		}
	}

	if !parsed {
		return nil, ErrMalformedEnvelope
	}
	return nil, ErrAuthenticationFailed
}

type envelopeSplit struct {
	salt, nonce, ciphertext []byte
}

func splitEnvelope(envelope []byte) []envelopeSplit {
	const trailer = crypto.AESNonceSize + crypto.AESTagSize

	var splits []envelopeSplit

	// New layout: length-prefixed salt. The length byte must be in a sane
	// range before it is trusted.
	if len(envelope) > 0 {
		saltLen := int(envelope[0])
		if saltLen >= minSaltLen && saltLen <= maxSaltLen && len(envelope) >= 1+saltLen+trailer {
			rest := envelope[1+saltLen:]
			splits = append(splits, envelopeSplit{
				salt:       envelope[1 : 1+saltLen],
				nonce:      rest[:crypto.AESNonceSize],
				ciphertext: rest[crypto.AESNonceSize:],
			})
		}
	}

	// Legacy separator layout: variable ASCII salt terminated by 0x00.
	if i := bytes.IndexByte(envelope, 0x00); i >= minSaltLen && i <= maxSaltLen && len(envelope) >= i+1+trailer {
		rest := envelope[i+1:]
		splits = append(splits, envelopeSplit{
			salt:       envelope[:i],
			nonce:      rest[:crypto.AESNonceSize],
			ciphertext: rest[crypto.AESNonceSize:],
		})
	}

	// Legacy fixed-width layout: 32 raw salt bytes.
	if len(envelope) >= legacyFixedSaltSize+trailer {
		rest := envelope[legacyFixedSaltSize:]
		splits = append(splits, envelopeSplit{
			salt:       envelope[:legacyFixedSaltSize],
			nonce:      rest[:crypto.AESNonceSize],
			ciphertext: rest[crypto.AESNonceSize:],
		})
	}

	return splits
}

func openSplit(s envelopeSplit, password string) ([]byte, error) {
	key, err := crypto.DeriveKey([]byte(password), s.salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}
	defer memguard.WipeBytes(key)

	plaintext, err := crypto.OpenAESGCM(key, s.nonce, s.ciphertext)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
