package keygen

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/awnumar/memguard"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/google/uuid"
	"lukechampine.com/blake3"

	"github.com/quantumvault/vaultcore"
	"github.com/quantumvault/vaultcore/internal/crypto"
)

// Supported chains.
const (
	ChainBitcoin  = "bitcoin"
	ChainEthereum = "ethereum"
	ChainCosmos   = "cosmos"
	ChainZapChain = "zapchain"
)

// EntropySourceMixer tags keys seeded by the post-quantum entropy mixer.
const EntropySourceMixer = "pq_entropy_mixer"

var (
	// ErrInvalidNetwork is returned when a network name is not recognized.
	ErrInvalidNetwork = errors.New("unsupported network")
	// ErrInvalidKeyType is returned when a key type is not recognized.
	ErrInvalidKeyType = errors.New("unsupported key type")
)

// Key is a generated chain key: public identifiers in the clear, the private
// key only as a password-protected envelope. Records are safe to persist
// as-is; decrypting the envelope requires the original password.
type Key struct {
	ID                  string    `json:"id"`
	VaultID             string    `json:"vault_id"`
	Chain               string    `json:"chain"`
	Network             string    `json:"network,omitempty"`
	KeyType             string    `json:"key_type,omitempty"`
	AccountIndex        uint32    `json:"account_index,omitempty"`
	PublicKey           []byte    `json:"public_key"`
	Fingerprint         string    `json:"fingerprint"`
	EncryptedPrivateKey []byte    `json:"encrypted_private_key"`
	EntropySource       string    `json:"entropy_source"`
	QuantumEnhanced     bool      `json:"quantum_enhanced"`
	CreatedAt           time.Time `json:"created_at"`
	Active              bool      `json:"active"`
}

// DecryptPrivateKey recovers the raw private-key bytes from a Key record.
// The caller owns the returned slice and should wipe it after use.
func DecryptPrivateKey(key *Key, password string) ([]byte, error) {
	return vaultcore.OpenSecret(key.EncryptedPrivateKey, password)
}

// derivationLabel is the fixed domain-separation label used to remap
// degenerate scalars for a chain.
func derivationLabel(chain string) string {
	return chain + "_key_derivation"
}

// newScalar draws 32 mixer bytes and interprets them as a secp256k1 private
// key for the given chain.
func newScalar(chain string) (*secp256k1.PrivateKey, error) {
	seed, err := vaultcore.GenerateEntropy(32)
	if err != nil {
		return nil, fmt.Errorf("generate seed: %w", err)
	}
	defer memguard.WipeBytes(seed)

	return scalarFromSeed(seed, derivationLabel(chain)), nil
}

// scalarFromSeed interprets seed as a secp256k1 scalar. A seed that is zero
// or not below the group order is remapped deterministically with the chain
// label rather than re-sampled, so the degenerate path stays reproducible.
func scalarFromSeed(seed []byte, label string) *secp256k1.PrivateKey {
	seed = crypto.NonZeroScalar(seed, label)

	var s secp256k1.ModNScalar
	for s.SetByteSlice(seed) || s.IsZero() {
		seed = crypto.Relabel(seed, label)
	}

	priv := secp256k1.NewPrivateKey(&s)
	s.Zero()
	return priv
}

// newKey seals the private key and assembles the common record fields.
// privBytes is wiped before returning.
func newKey(vaultID, chain string, pub, privBytes []byte, password string) (*Key, error) {
	defer memguard.WipeBytes(privBytes)

	envelope, err := vaultcore.SealSecret(privBytes, password)
	if err != nil {
		return nil, fmt.Errorf("encrypt private key: %w", err)
	}

	return &Key{
		ID:                  uuid.NewString(),
		VaultID:             vaultID,
		Chain:               chain,
		PublicKey:           pub,
		Fingerprint:         blakeFingerprint(pub),
		EncryptedPrivateKey: envelope,
		EntropySource:       EntropySourceMixer,
		CreatedAt:           time.Now().UTC(),
		Active:              true,
	}, nil
}

func blakeFingerprint(pub []byte) string {
	sum := blake3.Sum256(pub)
	return hex.EncodeToString(sum[:])
}
