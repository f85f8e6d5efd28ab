package vaultcore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

// b64Bytes serializes raw bytes as URL-safe base64 strings in JSON.
type b64Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b b64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(crypto.ToBase64URL(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *b64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := crypto.FromBase64URL(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// base64 returns the standard-base64 form used for exported public keys.
func (b b64Bytes) base64() string {
	return crypto.ToBase64(b)
}

// Signature is a detached post-quantum signature over a container's
// ciphertext || nonce || KEM ciphertext, tagged with its algorithm and
// creation time.
type Signature struct {
	Signature b64Bytes  `json:"signature"`
	Algorithm string    `json:"algorithm"`
	Timestamp time.Time `json:"timestamp"`
}

// Container is the hybrid-encrypted record written for whole-vault backups.
// It is immutable once created; tampering with any field causes Open to
// fail closed.
type Container struct {
	Ciphertext    b64Bytes `json:"ciphertext"`
	Nonce         b64Bytes `json:"nonce"`
	KEMCiphertext b64Bytes `json:"kem_ciphertext"`

	// PrimarySignature covers exactly ciphertext || nonce || kem_ciphertext,
	// binding the three together so ciphertexts cannot be swapped between
	// containers.
	PrimarySignature Signature `json:"primary_signature"`

	// BackupSignature is a second signature over the same input from an
	// independent algorithm family. Optional in the wire format; verified
	// whenever present and a verify key is held.
	BackupSignature *Signature `json:"backup_signature,omitempty"`

	Algorithm     string `json:"algorithm"`
	KeyDerivation string `json:"key_derivation"`
}

// signatureInput returns the byte string both signatures cover.
func (c *Container) signatureInput() []byte {
	input := make([]byte, 0, len(c.Ciphertext)+len(c.Nonce)+len(c.KEMCiphertext))
	input = append(input, c.Ciphertext...)
	input = append(input, c.Nonce...)
	input = append(input, c.KEMCiphertext...)
	return input
}

// validate checks the container's structure before any cryptographic work.
func (c *Container) validate() error {
	switch {
	case c == nil:
		return ErrMalformedContainer
	case len(c.Ciphertext) < crypto.AESTagSize:
		return fmt.Errorf("%w: ciphertext too short", ErrMalformedContainer)
	case len(c.Nonce) != crypto.AESNonceSize:
		return fmt.Errorf("%w: bad nonce length %d", ErrMalformedContainer, len(c.Nonce))
	case len(c.KEMCiphertext) != crypto.MLKEMCiphertextSize:
		return fmt.Errorf("%w: bad kem ciphertext length %d", ErrMalformedContainer, len(c.KEMCiphertext))
	case len(c.PrimarySignature.Signature) == 0:
		return fmt.Errorf("%w: missing primary signature", ErrMalformedContainer)
	case c.BackupSignature != nil && len(c.BackupSignature.Signature) == 0:
		return fmt.Errorf("%w: empty backup signature", ErrMalformedContainer)
	}
	return nil
}

// EncodeContainer serializes a container for export. The encoding
// round-trips exactly through DecodeContainer.
func EncodeContainer(c *Container) ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(c)
}

// DecodeContainer parses and structurally validates an exported container.
func DecodeContainer(data []byte) (*Container, error) {
	var c Container
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
