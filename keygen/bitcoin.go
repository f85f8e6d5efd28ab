package keygen

import "fmt"

// Network selects which Bitcoin network a key is intended for. It is record
// metadata only; the key material is network-independent.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkRegtest Network = "regtest"
)

// KeyType records the intended address scheme for a Bitcoin key.
type KeyType string

const (
	KeyTypeLegacy       KeyType = "legacy"
	KeyTypeSegwit       KeyType = "segwit"
	KeyTypeNativeSegwit KeyType = "native_segwit"
	KeyTypeMultisig     KeyType = "multisig"
	KeyTypeTaproot      KeyType = "taproot"
)

var bitcoinNetworks = map[Network]bool{
	NetworkMainnet: true,
	NetworkTestnet: true,
	NetworkRegtest: true,
}

var bitcoinKeyTypes = map[KeyType]bool{
	KeyTypeLegacy:       true,
	KeyTypeSegwit:       true,
	KeyTypeNativeSegwit: true,
	KeyTypeMultisig:     true,
	KeyTypeTaproot:      true,
}

// NewBitcoinKey generates a secp256k1 Bitcoin key from mixer entropy. The
// public key is stored compressed (33 bytes).
func NewBitcoinKey(vaultID, password string, network Network, keyType KeyType) (*Key, error) {
	if !bitcoinNetworks[network] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, network)
	}
	if !bitcoinKeyTypes[keyType] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKeyType, keyType)
	}

	priv, err := newScalar(ChainBitcoin)
	if err != nil {
		return nil, err
	}

	key, err := newKey(vaultID, ChainBitcoin, priv.PubKey().SerializeCompressed(), priv.Serialize(), password)
	if err != nil {
		return nil, err
	}

	key.Network = string(network)
	key.KeyType = string(keyType)
	return key, nil
}
