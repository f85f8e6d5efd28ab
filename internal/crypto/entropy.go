package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"lukechampine.com/blake3"
)

// randReader is the random source used for salts, nonces and key generation.
// It can be overridden for testing.
var randReader io.Reader = rand.Reader

// entropyRescueLabel re-keys a degenerate mixer output deterministically.
const entropyRescueLabel = "entropy_mixer_rescue"

// mixEntropy folds the concatenated source pool into the final buffer.
// It can be overridden for testing the degenerate-output rescue.
var mixEntropy = fold

// GenerateEntropy produces n bytes (n <= MaxEntropyRequest) by mixing three
// independent sources:
//
//  1. A throwaway ML-KEM-768 keypair: the public key, the shared secret and
//     the ciphertext of a self-encapsulation are all folded in, so the output
//     does not rest on one algorithm's secrecy assumption alone.
//  2. A throwaway ML-DSA-65 keypair: a detached signature over a
//     nanosecond-timestamped message, with public key, signature and message
//     folded in.
//  3. Operating-system CSPRNG bytes.
//
// The keypairs generated here exist only to produce bytes. They are never
// retained and never used for actual encryption or signing.
//
// The concatenated sources are folded through BLAKE3's extendable output
// into exactly n bytes.
func GenerateEntropy(n int) ([]byte, error) {
	if n <= 0 || n > MaxEntropyRequest {
		return nil, ErrInvalidEntropySize
	}

	share := n / 3
	if share == 0 {
		share = 1
	}

	pool := make([]byte, 0, 3*share)

	kemPart, err := kemEntropy(share)
	if err != nil {
		return nil, fmt.Errorf("kem entropy: %w", err)
	}
	pool = append(pool, kemPart...)

	sigPart, err := signEntropy(share)
	if err != nil {
		return nil, fmt.Errorf("signature entropy: %w", err)
	}
	pool = append(pool, sigPart...)

	sysPart := make([]byte, share)
	if _, err := io.ReadFull(randReader, sysPart); err != nil {
		return nil, fmt.Errorf("system entropy: %w", err)
	}
	pool = append(pool, sysPart...)

	out := mixEntropy(n, pool)
	if allZero(out) {
		// Practically unreachable, but downstream scalar construction must
		// never see a degenerate buffer.
		out = fold(n, pool, []byte(entropyRescueLabel))
	}

	return out, nil
}

// NonZeroScalar returns buf unless it is all zero, in which case it derives a
// deterministic replacement by folding buf with the given domain label.
// Deterministic remapping keeps degenerate-case behavior reproducible.
func NonZeroScalar(buf []byte, label string) []byte {
	if !allZero(buf) {
		return buf
	}
	return fold(len(buf), buf, []byte(label))
}

// Relabel folds buf with a domain label into an equally sized buffer.
// Used to deterministically remap scalars that fall outside a curve's
// valid range.
func Relabel(buf []byte, label string) []byte {
	return fold(len(buf), buf, []byte(label))
}

func kemEntropy(n int) ([]byte, error) {
	kp, err := GenerateKEMKeypair()
	if err != nil {
		return nil, err
	}

	ciphertext, sharedSecret, err := Encapsulate(kp.PublicKey)
	if err != nil {
		return nil, err
	}

	return fold(n, kp.PublicKey, sharedSecret, ciphertext), nil
}

func signEntropy(n int) ([]byte, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}

	message := fmt.Appendf(nil, "entropy_mldsa_%d", time.Now().UnixNano())
	signature := make([]byte, MLDSASignatureSize)
	if err := mldsa65.SignTo(priv, message, nil, true, signature); err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKey
	pubBytes, _ := pub.MarshalBinary()

	return fold(n, pubBytes, signature, message), nil
}

func fold(n int, chunks ...[]byte) []byte {
	h := blake3.New(n, nil)
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0 && len(b) > 0
}
