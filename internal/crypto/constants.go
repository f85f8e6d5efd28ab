package crypto

const (
	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = 1952
	// MLDSASecretKeySize is the size of an ML-DSA-65 secret key in bytes.
	MLDSASecretKeySize = 4032
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = 3309

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// SaltEntropySize is the number of random bytes behind a salt string.
	SaltEntropySize = 16
	// SaltStringSize is the length of an encoded salt string
	// (RawStdEncoding of SaltEntropySize bytes).
	SaltStringSize = 22

	// MaxEntropyRequest is the largest buffer GenerateEntropy will produce.
	MaxEntropyRequest = 64
)

// Algorithm identifiers as they appear in serialized containers and headers.
const (
	AlgKEM        = "ML-KEM-768"
	AlgPrimarySig = "ML-DSA-65"
	AlgBackupSig  = "SLH-DSA-SHAKE-128f"
	AlgAEAD       = "AES-256-GCM"
	AlgKDF        = "Argon2id"
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = AlgKEM + ":" + AlgPrimarySig + ":" + AlgBackupSig + ":" + AlgAEAD + ":" + AlgKDF
