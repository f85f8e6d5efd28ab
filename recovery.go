package vaultcore

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	bip39 "github.com/tyler-smith/go-bip39"
	"lukechampine.com/blake3"
)

// RecoveryPhrase derives a fresh 24-word mnemonic recovery phrase. The
// underlying 256 bits of entropy come from the OS RNG folded with the
// session master key (when one has been derived) and a timestamp, so the
// phrase is bound to this session without exposing the master key.
func (m *Manager) RecoveryPhrase() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seed := make([]byte, 32)
	if _, err := io.ReadFull(m.cfg.rand, seed); err != nil {
		return "", fmt.Errorf("generate recovery entropy: %w", err)
	}

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(time.Now().UnixNano()))

	h := blake3.New(32, nil)
	h.Write(seed)
	h.Write(m.masterKey)
	h.Write(ts[:])
	entropy := h.Sum(nil)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return phrase, nil
}

// ExportPublicKeys returns the held public keys as a name-to-base64 mapping
// for out-of-band recovery-tool verification. Only public material is ever
// exported.
func (m *Manager) ExportPublicKeys() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.kem == nil || m.primaryPub == nil {
		return nil, ErrNoKeypairs
	}

	// MarshalBinary never fails for valid keys from GenerateKey
	primaryPub, _ := m.primaryPub.MarshalBinary()

	keys := map[string]string{
		"kem_public_key":     b64Bytes(m.kem.PublicKey).base64(),
		"primary_public_key": b64Bytes(primaryPub).base64(),
	}

	if m.hasBackup {
		backupPub, err := m.backupPub.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal backup public key: %w", err)
		}
		keys["backup_public_key"] = b64Bytes(backupPub).base64()
	}

	return keys, nil
}
