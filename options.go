package vaultcore

import (
	"crypto/rand"
	"io"

	"github.com/quantumvault/vaultcore/audit"
	"github.com/quantumvault/vaultcore/internal/crypto"
)

// managerConfig holds configuration for a Manager.
type managerConfig struct {
	argonParams      crypto.Params
	backupSignatures bool
	auditLogger      audit.Logger
	rand             io.Reader
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		argonParams:      crypto.DefaultParams,
		backupSignatures: true,
		auditLogger:      audit.NoOp{},
		rand:             rand.Reader,
	}
}

// Option configures a Manager.
type Option func(*managerConfig)

// WithArgonParams overrides the Argon2id cost parameters used for the master
// key and drive headers. Parameters below the production minimums are
// rejected when the derivation runs.
func WithArgonParams(p crypto.Params) Option {
	return func(cfg *managerConfig) {
		cfg.argonParams = p
	}
}

// WithBackupSignatures controls whether containers carry a second SLH-DSA
// signature from an independent algorithm family. Enabled by default.
func WithBackupSignatures(enabled bool) Option {
	return func(cfg *managerConfig) {
		cfg.backupSignatures = enabled
	}
}

// WithAuditLogger installs an audit event sink. The default discards events.
func WithAuditLogger(logger audit.Logger) Option {
	return func(cfg *managerConfig) {
		if logger != nil {
			cfg.auditLogger = logger
		}
	}
}

// WithRand overrides the random source the Manager reads: container nonces,
// header salts, recovery entropy and keypair generation. Envelope salts and
// low-level primitives keep their own sources. Intended for tests.
func WithRand(r io.Reader) Option {
	return func(cfg *managerConfig) {
		if r != nil {
			cfg.rand = r
		}
	}
}
