package vaultcore

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrDerivationFailed is returned when password key derivation cannot
	// run: empty password or invalid cost parameters. This is fatal for the
	// calling encrypt/decrypt operation and is never retried internally.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrAuthenticationFailed is returned when an envelope's authentication
	// tag does not verify. A wrong password and corrupted ciphertext are
	// deliberately reported identically.
	ErrAuthenticationFailed = errors.New("incorrect password or corrupted data")

	// ErrDecryptionFailed is returned when a container's payload cannot be
	// decrypted. A wrong password and corrupted ciphertext are deliberately
	// reported identically.
	ErrDecryptionFailed = errors.New("incorrect password or corrupted data")

	// ErrSignatureInvalid is returned when a container signature does not
	// verify: tampering, or the wrong container for the held keys.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrMalformedEnvelope is returned when an envelope buffer matches none
	// of the known wire layouts.
	ErrMalformedEnvelope = errors.New("invalid or corrupted key data")

	// ErrMalformedContainer is returned when a container is structurally
	// invalid.
	ErrMalformedContainer = errors.New("invalid or corrupted backup data")

	// ErrEncapsulationFailed is returned when a KEM operation fails. With
	// valid keys this should not occur; it is treated as fatal.
	ErrEncapsulationFailed = errors.New("key encapsulation failed")

	// ErrNoKeypairs is returned when a Manager operation needs keypairs that
	// have not been generated yet.
	ErrNoKeypairs = errors.New("keypairs not generated")
)
