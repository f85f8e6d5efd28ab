package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when key derivation is attempted with an
	// empty password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrInvalidParams is returned when Argon2 cost parameters are below the
	// accepted minimums.
	ErrInvalidParams = errors.New("invalid derivation parameters")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSaltSize is returned when a salt is empty or implausibly long.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidPublicKeySize is returned when the KEM public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSecretKeySize is returned when the KEM secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrDecryptionFailed is returned when AEAD decryption fails. The cause
	// (wrong key or tampered ciphertext) is deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEntropySize is returned when an entropy request is out of range.
	ErrInvalidEntropySize = errors.New("invalid entropy size")
)
