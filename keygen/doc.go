// Package keygen derives per-chain signing keys from the post-quantum
// entropy mixer and stores them as password-protected envelopes.
//
// Every generator follows the same pipeline: request seed bytes from the
// mixer, interpret them as a secp256k1 scalar (deterministically remapping
// the rare out-of-range value), then encrypt the serialized private key with
// the caller's password. The resulting Key record carries only public
// identifiers and the opaque envelope; plaintext key material never leaves
// the generating function.
//
// Address derivation (base58, bech32, EIP-55 and friends) is a consumer
// concern. Records expose raw public-key bytes and a hash fingerprint.
package keygen
