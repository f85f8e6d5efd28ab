package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// KEMKeypair holds a raw ML-KEM-768 keypair.
type KEMKeypair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
}

// GenerateKEMKeypair creates a new ML-KEM-768 keypair.
func GenerateKEMKeypair() (*KEMKeypair, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &KEMKeypair{
		PublicKey: pubBytes,
		SecretKey: privBytes,
	}, nil
}

// Encapsulate establishes a fresh shared secret against the given public key
// and returns the KEM ciphertext alongside it.
func Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}

	// Public key Unpack never fails for correctly-sized bytes
	var pub mlkem768.PublicKey
	pub.Unpack(publicKey)

	ciphertext = make([]byte, MLKEMCiphertextSize)
	sharedSecret = make([]byte, MLKEMSharedKeySize)
	pub.EncapsulateTo(ciphertext, sharedSecret, nil)

	return ciphertext, sharedSecret, nil
}

// Decapsulate recovers the shared secret from a KEM ciphertext.
func Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if len(secretKey) != MLKEMSecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}
	if len(ciphertext) != MLKEMCiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(secretKey); err != nil {
		return nil, fmt.Errorf("unpack secret key: %w", err)
	}

	sharedSecret := make([]byte, MLKEMSharedKeySize)
	priv.DecapsulateTo(sharedSecret, ciphertext)

	return sharedSecret, nil
}
