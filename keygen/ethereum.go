package keygen

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// NewEthereumKey generates a secp256k1 Ethereum key from mixer entropy. The
// public key is stored uncompressed (65 bytes) and the fingerprint is the
// Keccak-256 digest of the 64-byte curve point, from which consumers can
// take the last 20 bytes as the account address.
func NewEthereumKey(vaultID, password string) (*Key, error) {
	priv, err := newScalar(ChainEthereum)
	if err != nil {
		return nil, err
	}

	pub := priv.PubKey().SerializeUncompressed()

	key, err := newKey(vaultID, ChainEthereum, pub, priv.Serialize(), password)
	if err != nil {
		return nil, err
	}

	// Ethereum hashes the raw point without the 0x04 prefix byte.
	key.Fingerprint = keccakFingerprint(pub[1:])
	return key, nil
}

func keccakFingerprint(b []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}
