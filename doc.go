// Package vaultcore implements the secret-at-rest protection layer of a
// local, offline-capable credentials vault: password-based envelope
// encryption for private keys, quantum-enhanced entropy mixing, and a
// hybrid classical/post-quantum container for whole-vault backups.
//
// # Envelope Encryption
//
// [SealSecret] and [OpenSecret] protect individual secrets (typically
// 32-byte chain private keys) under a user password. Keys are derived with
// Argon2id and payloads sealed with AES-256-GCM into a single
// self-describing byte buffer. Three wire layouts are understood on open
// for compatibility with older records; writes always use the current
// length-prefixed layout.
//
// # Hybrid Quantum Container
//
// [Manager] holds long-lived ML-KEM-768, ML-DSA-65 and SLH-DSA keypairs for
// a vault session. [Manager.Seal] protects a backup payload with AES-256-GCM
// under a key bound to both the user password and an ML-KEM-768
// encapsulation, then signs ciphertext || nonce || KEM ciphertext with
// ML-DSA-65 and, by default, a second hash-based SLH-DSA signature from an
// independent algorithm family.
//
// # Critical Security Notes
//
// Signature verification is performed BEFORE decapsulation and decryption.
// A forged container is rejected before any decryption work is attempted.
// [Manager.Open] enforces this ordering internally; do not bypass it by
// decrypting container fields directly.
//
// Password failures and data corruption are deliberately indistinguishable
// in the error surface: both report [ErrAuthenticationFailed] (envelopes) or
// [ErrDecryptionFailed] (containers) with no further detail.
//
// # Concurrency
//
// All operations allocate their own salts, nonces and ephemeral keypairs;
// there is no shared mutable cryptographic state between calls. A Manager
// may be shared across goroutines: sealing and opening take read access to
// the held keys, and keypair generation is the only writer.
package vaultcore
