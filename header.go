package vaultcore

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lukechampine.com/blake3"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

// DriveHeaderVersion identifies the current cold-storage header layout.
const DriveHeaderVersion = "QVLT-PQC-1"

// driveStructureLabel seeds the header's structure hash.
const driveStructureLabel = "quantumvault_cold_storage"

// DriveHeader is the public recovery artifact written once when a
// cold-storage medium is initialized: the session's verify/encapsulation
// public keys, a fresh salt, and the Argon2id cost parameters needed to
// reproduce key derivation. It contains no secret material and is read-only
// after creation.
type DriveHeader struct {
	Version     string    `json:"version"`
	Ciphersuite string    `json:"ciphersuite"`
	CreatedAt   time.Time `json:"created_at"`

	KEMPublicKey     b64Bytes `json:"kem_public_key"`
	PrimaryPublicKey b64Bytes `json:"primary_public_key"`
	BackupPublicKey  b64Bytes `json:"backup_public_key,omitempty"`

	Salt        b64Bytes      `json:"salt"`
	ArgonParams crypto.Params `json:"argon2_params"`

	StructureHash b64Bytes `json:"structure_hash"`
}

// DriveHeader builds a fresh cold-storage header from the held public keys.
func (m *Manager) DriveHeader() (*DriveHeader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.kem == nil || m.primaryPub == nil {
		return nil, ErrNoKeypairs
	}

	salt := make([]byte, 32)
	if _, err := io.ReadFull(m.cfg.rand, salt); err != nil {
		return nil, fmt.Errorf("generate header salt: %w", err)
	}

	createdAt := time.Now().UTC()

	h := blake3.New(32, nil)
	h.Write([]byte(driveStructureLabel))
	h.Write([]byte(createdAt.Format(time.RFC3339Nano)))
	structureHash := h.Sum(nil)

	// MarshalBinary never fails for valid keys from GenerateKey
	primaryPub, _ := m.primaryPub.MarshalBinary()

	header := &DriveHeader{
		Version:          DriveHeaderVersion,
		Ciphersuite:      crypto.AlgsCiphersuite,
		CreatedAt:        createdAt,
		KEMPublicKey:     m.kem.PublicKey,
		PrimaryPublicKey: primaryPub,
		Salt:             salt,
		ArgonParams:      m.cfg.argonParams,
		StructureHash:    structureHash,
	}

	if m.hasBackup {
		backupPub, err := m.backupPub.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal backup public key: %w", err)
		}
		header.BackupPublicKey = backupPub
	}

	return header, nil
}

// Encode serializes the header for writing to the medium.
func (h *DriveHeader) Encode() ([]byte, error) {
	return json.Marshal(h)
}

// DecodeDriveHeader parses a header read back from a medium.
func DecodeDriveHeader(data []byte) (*DriveHeader, error) {
	var h DriveHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if h.Version == "" || len(h.KEMPublicKey) == 0 || len(h.PrimaryPublicKey) == 0 {
		return nil, ErrMalformedContainer
	}
	return &h, nil
}
