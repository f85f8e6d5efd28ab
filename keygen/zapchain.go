package keygen

import (
	"fmt"

	"github.com/awnumar/memguard"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/quantumvault/vaultcore"
)

// NewZapChainKey generates a ZapChain key from mixer entropy plus a recovery
// mnemonic drawn from an independent mixer request. ZapChain records always
// carry the quantum-enhanced tag.
//
// The mnemonic is a recovery artifact for the user; like the Cosmos one it
// is returned once and never stored.
func NewZapChainKey(vaultID, password string) (*Key, string, error) {
	priv, err := newScalar(ChainZapChain)
	if err != nil {
		return nil, "", err
	}

	recovery, err := vaultcore.GenerateEntropy(32)
	if err != nil {
		return nil, "", fmt.Errorf("generate recovery entropy: %w", err)
	}
	defer memguard.WipeBytes(recovery)

	mnemonic, err := bip39.NewMnemonic(recovery)
	if err != nil {
		return nil, "", fmt.Errorf("encode mnemonic: %w", err)
	}

	key, err := newKey(vaultID, ChainZapChain, priv.PubKey().SerializeCompressed(), priv.Serialize(), password)
	if err != nil {
		return nil, "", err
	}

	key.QuantumEnhanced = true
	return key, mnemonic, nil
}
