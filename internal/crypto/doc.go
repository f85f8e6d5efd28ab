// Package crypto provides the cryptographic primitives for the vault core.
// It implements post-quantum key encapsulation, memory-hard password key
// derivation, authenticated encryption, and multi-source entropy mixing.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation mechanism
//     for establishing shared secrets. Provides 192-bit classical and quantum
//     security levels.
//
//   - ML-DSA-65 (NIST FIPS 204): Post-quantum digital signature algorithm,
//     used both for container authentication and as an entropy source.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for all secret-at-rest payloads. Provides confidentiality and integrity.
//
//   - Argon2id (RFC 9106): Memory-hard password key derivation, tuned to
//     64 MiB memory, 3 iterations, parallelism 4.
//
//   - BLAKE3: Extendable-output hash used to fold independent entropy
//     sources and to deterministically rescue degenerate scalar material.
//
// # Entropy Mixing
//
// [GenerateEntropy] combines three independent sources: a throwaway
// ML-KEM-768 self-encapsulation, a throwaway ML-DSA-65 signature over a
// timestamped message, and the operating system CSPRNG. The keypairs
// generated here exist only to produce bytes and are discarded immediately;
// they are never used for actual encryption or signing. The combined output
// remains unpredictable even if one source is compromised.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages.
//
// Derived keys are ephemeral. Callers are expected to wipe them as soon as
// the enclosing operation completes.
package crypto
