package vaultcore

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/slhdsa"
	"golang.org/x/crypto/sha3"

	"github.com/quantumvault/vaultcore/audit"
	"github.com/quantumvault/vaultcore/internal/crypto"
)

// backupParamID selects the SLH-DSA parameter set for backup signatures.
// The fast-signing SHAKE-128f profile keeps per-backup signing in the
// tens-of-milliseconds range; the small-signature profiles cost seconds.
const backupParamID = slhdsa.SHAKE_128f

const (
	containerAlgorithm     = crypto.AlgAEAD + " + " + crypto.AlgKEM + " + " + crypto.AlgPrimarySig
	containerKeyDerivation = "SHA3-512"
)

// Manager owns the long-lived keypairs of one vault session: an ML-KEM-768
// keypair for container encapsulation, an ML-DSA-65 keypair for primary
// signatures, and an SLH-DSA keypair for backup signatures. Secret key
// material is held in memory only and is never serialized except into
// password-protected exports.
//
// A Manager is safe for concurrent use. Seal and Open take read access to
// the held keys; GenerateKeypairs and DeriveMasterKey are the only writers.
type Manager struct {
	mu  sync.RWMutex
	cfg managerConfig

	kem         *crypto.KEMKeypair
	primaryPub  *mldsa65.PublicKey
	primaryPriv *mldsa65.PrivateKey
	backupPub   slhdsa.PublicKey
	backupPriv  slhdsa.PrivateKey
	hasBackup   bool

	masterKey []byte
}

// NewManager creates a Manager with no keypairs. Call GenerateKeypairs
// before sealing or opening containers.
func NewManager(opts ...Option) *Manager {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Manager{cfg: cfg}
}

// GenerateKeypairs creates fresh ML-KEM-768, ML-DSA-65 and (unless disabled
// via WithBackupSignatures) SLH-DSA keypairs, replacing any previously held
// keys.
func (m *Manager) GenerateKeypairs() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kem, err := crypto.GenerateKEMKeypair()
	if err != nil {
		return fmt.Errorf("generate kem keypair: %w", err)
	}

	primaryPub, primaryPriv, err := mldsa65.GenerateKey(m.cfg.rand)
	if err != nil {
		return fmt.Errorf("generate primary signature keypair: %w", err)
	}

	if m.cfg.backupSignatures {
		backupPub, backupPriv, err := slhdsa.GenerateKey(m.cfg.rand, backupParamID)
		if err != nil {
			return fmt.Errorf("generate backup signature keypair: %w", err)
		}
		m.backupPub = backupPub
		m.backupPriv = backupPriv
		m.hasBackup = true
	} else {
		m.hasBackup = false
	}

	m.kem = kem
	m.primaryPub = primaryPub
	m.primaryPriv = primaryPriv

	return nil
}

// DeriveMasterKey derives and retains the session master key from a password
// and salt using Argon2id. The returned slice is the caller's copy; the
// retained copy is wiped on Close.
func (m *Manager) DeriveMasterKey(password string, salt []byte) ([]byte, error) {
	key, err := crypto.DeriveKeyWithParams([]byte(password), salt, m.cfg.argonParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}

	m.mu.Lock()
	memguard.WipeBytes(m.masterKey)
	m.masterKey = key
	m.mu.Unlock()

	out := make([]byte, len(key))
	copy(out, key)
	return out, nil
}

// Seal protects payload for export to untrusted media. The AEAD key binds
// the user password to a fresh ML-KEM-768 encapsulation; the resulting
// ciphertext, nonce and KEM ciphertext are jointly signed with ML-DSA-65
// and, when enabled, SLH-DSA.
func (m *Manager) Seal(payload []byte, password string) (*Container, error) {
	c, err := m.seal(payload, password)
	m.auditEvent("seal", err)
	return c, err
}

func (m *Manager) seal(payload []byte, password string) (*Container, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrDerivationFailed)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.kem == nil || m.primaryPriv == nil {
		return nil, ErrNoKeypairs
	}

	kemCiphertext, sharedSecret, err := crypto.Encapsulate(m.kem.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncapsulationFailed, err)
	}
	defer memguard.WipeBytes(sharedSecret)

	key := containerKey(password, sharedSecret)
	defer memguard.WipeBytes(key)

	nonce := make([]byte, crypto.AESNonceSize)
	if _, err := io.ReadFull(m.cfg.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err := crypto.SealAESGCM(key, nonce, payload)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}

	sigInput := make([]byte, 0, len(ciphertext)+len(nonce)+len(kemCiphertext))
	sigInput = append(sigInput, ciphertext...)
	sigInput = append(sigInput, nonce...)
	sigInput = append(sigInput, kemCiphertext...)

	primarySig := make([]byte, crypto.MLDSASignatureSize)
	if err := mldsa65.SignTo(m.primaryPriv, sigInput, nil, true, primarySig); err != nil {
		return nil, fmt.Errorf("primary signature: %w", err)
	}

	container := &Container{
		Ciphertext:    ciphertext,
		Nonce:         nonce,
		KEMCiphertext: kemCiphertext,
		PrimarySignature: Signature{
			Signature: primarySig,
			Algorithm: crypto.AlgPrimarySig,
			Timestamp: time.Now().UTC(),
		},
		Algorithm:     containerAlgorithm,
		KeyDerivation: containerKeyDerivation,
	}

	if m.hasBackup {
		msg := slhdsa.NewMessage(sigInput)
		backupSig, err := slhdsa.SignRandomized(&m.backupPriv, m.cfg.rand, msg, nil)
		if err != nil {
			return nil, fmt.Errorf("backup signature: %w", err)
		}
		container.BackupSignature = &Signature{
			Signature: backupSig,
			Algorithm: crypto.AlgBackupSig,
			Timestamp: time.Now().UTC(),
		}
	}

	return container, nil
}

// Open verifies and decrypts a sealed container. Verification happens
// strictly before decapsulation and decryption: a forged container is
// rejected before any decryption work is attempted. The backup signature,
// when present and a backup key is held, is mandatory; a bad backup
// signature fails the open even if the primary signature verifies.
//
// No partial state is retained across a failed open.
func (m *Manager) Open(c *Container, password string) ([]byte, error) {
	payload, err := m.open(c, password)
	m.auditEvent("open", err)
	return payload, err
}

func (m *Manager) open(c *Container, password string) ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrDerivationFailed)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.kem == nil || m.primaryPub == nil {
		return nil, ErrNoKeypairs
	}

	sigInput := c.signatureInput()

	if !mldsa65.Verify(m.primaryPub, sigInput, nil, c.PrimarySignature.Signature) {
		return nil, fmt.Errorf("%w: primary", ErrSignatureInvalid)
	}

	if c.BackupSignature != nil && m.hasBackup {
		msg := slhdsa.NewMessage(sigInput)
		if !slhdsa.Verify(&m.backupPub, msg, c.BackupSignature.Signature, nil) {
			return nil, fmt.Errorf("%w: backup", ErrSignatureInvalid)
		}
	}

	sharedSecret, err := crypto.Decapsulate(m.kem.SecretKey, c.KEMCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncapsulationFailed, err)
	}
	defer memguard.WipeBytes(sharedSecret)

	key := containerKey(password, sharedSecret)
	defer memguard.WipeBytes(key)

	payload, err := crypto.OpenAESGCM(key, c.Nonce, c.Ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return payload, nil
}

// VerifySignatures checks detached signatures over data against the held
// verify keys. It reports false on the first failing signature and errors
// on an unknown algorithm identifier.
func (m *Manager) VerifySignatures(data []byte, sigs []Signature) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sig := range sigs {
		switch sig.Algorithm {
		case crypto.AlgPrimarySig:
			if m.primaryPub == nil {
				return false, ErrNoKeypairs
			}
			if !mldsa65.Verify(m.primaryPub, data, nil, sig.Signature) {
				return false, nil
			}
		case crypto.AlgBackupSig:
			if !m.hasBackup {
				return false, ErrNoKeypairs
			}
			msg := slhdsa.NewMessage(data)
			if !slhdsa.Verify(&m.backupPub, msg, sig.Signature, nil) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unknown signature algorithm %q", sig.Algorithm)
		}
	}
	return true, nil
}

// Close wipes the retained master key and KEM secret key. The Manager is
// unusable afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	memguard.WipeBytes(m.masterKey)
	m.masterKey = nil
	if m.kem != nil {
		memguard.WipeBytes(m.kem.SecretKey)
		m.kem = nil
	}
	m.primaryPriv = nil
	m.primaryPub = nil
	m.hasBackup = false
}

// containerKey binds the user password and the KEM shared secret into one
// AEAD key: SHA3-512(password || sharedSecret) truncated to 256 bits. The
// same derivation runs on both the seal and open paths, so a container
// round-trips with only the password and the held KEM secret key.
func containerKey(password string, sharedSecret []byte) []byte {
	h := sha3.New512()
	h.Write([]byte(password))
	h.Write(sharedSecret)
	sum := h.Sum(nil)

	key := make([]byte, crypto.AESKeySize)
	copy(key, sum)
	memguard.WipeBytes(sum)
	return key
}

func (m *Manager) auditEvent(op string, err error) {
	e := audit.Event{Time: time.Now().UTC(), Operation: op, Outcome: "ok"}
	if err != nil {
		e.Outcome = "error"
		e.Detail = err.Error()
	}
	m.cfg.auditLogger.Log(e)
}
