package keygen

import (
	"fmt"

	"github.com/awnumar/memguard"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/quantumvault/vaultcore"
)

// NewCosmosKey generates a Cosmos key from a BIP-39 mnemonic whose entropy
// comes from the mixer. The secret scalar is the first 32 bytes of the
// BIP-39 seed.
//
// The mnemonic is returned once for the user to write down and is not stored
// in the record; it alone reproduces the key.
func NewCosmosKey(vaultID, password string, accountIndex uint32) (*Key, string, error) {
	entropy, err := vaultcore.GenerateEntropy(32)
	if err != nil {
		return nil, "", fmt.Errorf("generate seed: %w", err)
	}
	defer memguard.WipeBytes(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", fmt.Errorf("encode mnemonic: %w", err)
	}

	seed := bip39.NewSeed(mnemonic, "")
	defer memguard.WipeBytes(seed)

	priv := scalarFromSeed(seed[:32], derivationLabel(ChainCosmos))

	key, err := newKey(vaultID, ChainCosmos, priv.PubKey().SerializeCompressed(), priv.Serialize(), password)
	if err != nil {
		return nil, "", err
	}

	key.AccountIndex = accountIndex
	return key, mnemonic, nil
}
