package vaultcore

import (
	"fmt"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

// MaxEntropyRequest is the largest buffer GenerateEntropy will produce.
const MaxEntropyRequest = crypto.MaxEntropyRequest

// GenerateEntropy mixes three independent sources into n bytes of seed
// material: a throwaway ML-KEM-768 self-encapsulation, a throwaway ML-DSA-65
// signature over a timestamped message, and the OS CSPRNG. The post-quantum
// keypairs are generated solely to contribute bytes and are discarded; they
// are never used for actual encryption or signing.
//
// The result seeds classical private keys and is guaranteed non-zero.
func GenerateEntropy(n int) ([]byte, error) {
	buf, err := crypto.GenerateEntropy(n)
	if err != nil {
		return nil, fmt.Errorf("mix entropy: %w", err)
	}
	return buf, nil
}
