package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// SealAESGCM encrypts plaintext with AES-256-GCM and returns
// ciphertext || tag. The nonce is supplied by the caller and is NOT
// prepended; framing is the caller's responsibility.
func SealAESGCM(key, nonce, plaintext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return aesGCM.Seal(nil, nonce, plaintext, nil), nil
}

// OpenAESGCM decrypts ciphertext || tag produced by SealAESGCM.
// It returns ErrDecryptionFailed on any tag mismatch, regardless of whether
// the key was wrong or the data was tampered with.
func OpenAESGCM(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < AESTagSize {
		return nil, ErrDecryptionFailed
	}

	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
