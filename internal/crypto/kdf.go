package crypto

import (
	"io"

	"golang.org/x/crypto/argon2"
)

// Params holds Argon2id cost parameters. They are recorded in exported drive
// headers so that recovery tooling can reproduce the derivation.
type Params struct {
	// Memory is the memory cost in KiB.
	Memory uint32 `json:"memory"`
	// Iterations is the time cost.
	Iterations uint32 `json:"iterations"`
	// Parallelism is the number of lanes.
	Parallelism uint8 `json:"parallelism"`
}

// DefaultParams is the production Argon2id profile: 64 MiB memory,
// 3 iterations, parallelism 4.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
}

// Validate rejects cost parameters below the accepted minimums.
func (p Params) Validate() error {
	if p.Memory < 64*1024 || p.Iterations < 3 || p.Parallelism < 4 {
		return ErrInvalidParams
	}
	return nil
}

// DeriveKey derives a 32-byte symmetric key from a password and salt using
// Argon2id with DefaultParams. Deterministic for a fixed (password, salt)
// pair; different salts yield unlinkable keys.
func DeriveKey(password, salt []byte) ([]byte, error) {
	return DeriveKeyWithParams(password, salt, DefaultParams)
}

// DeriveKeyWithParams is DeriveKey with explicit cost parameters.
// The returned key is ephemeral; callers must wipe it after use.
func DeriveKeyWithParams(password, salt []byte, p Params) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) == 0 || len(salt) > 64 {
		return nil, ErrInvalidSaltSize
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return argon2.IDKey(password, salt, p.Iterations, p.Memory, p.Parallelism, AESKeySize), nil
}

// NewSaltString returns a fresh salt as a base64-alphabet ASCII string.
// The string bytes are what feeds the derivation, so a stored salt never
// contains a zero byte and survives the legacy separator-scanned layout.
func NewSaltString() (string, error) {
	raw := make([]byte, SaltEntropySize)
	if _, err := io.ReadFull(randReader, raw); err != nil {
		return "", err
	}
	return ToBase64URL(raw), nil
}
