package vaultcore

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

func TestSealOpenSecret(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short", []byte("hello vault")},
		{"empty", []byte{}},
		{"binary", bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 100)},
		{"key sized", bytes.Repeat([]byte{0xab}, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := SealSecret(tt.plaintext, "Str0ng!Pass")
			require.NoError(t, err)

			got, err := OpenSecret(envelope, "Str0ng!Pass")
			require.NoError(t, err)
			require.True(t, bytes.Equal(tt.plaintext, got))
		})
	}
}

func TestSealSecretLayout(t *testing.T) {
	envelope, err := SealSecret([]byte("payload"), "pw")
	require.NoError(t, err)

	// New layout only: [salt_len][salt][nonce][ct || tag].
	saltLen := int(envelope[0])
	require.GreaterOrEqual(t, saltLen, minSaltLen)
	require.LessOrEqual(t, saltLen, maxSaltLen)
	require.NotContains(t, envelope[1:1+saltLen], byte(0x00))

	wantLen := 1 + saltLen + crypto.AESNonceSize + len("payload") + crypto.AESTagSize
	require.Len(t, envelope, wantLen)
}

func TestSealSecretNotDeterministic(t *testing.T) {
	a, err := SealSecret([]byte("same plaintext"), "same password")
	require.NoError(t, err)
	b, err := SealSecret([]byte("same plaintext"), "same password")
	require.NoError(t, err)

	require.NotEqual(t, a, b, "fresh salt and nonce must make envelopes differ")
}

func TestOpenSecretWrongPassword(t *testing.T) {
	envelope, err := SealSecret([]byte("secret"), "right password")
	require.NoError(t, err)

	_, err = OpenSecret(envelope, "wrong password")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenSecretTampered(t *testing.T) {
	envelope, err := SealSecret([]byte("secret"), "pw")
	require.NoError(t, err)

	// Flip one bit in the ciphertext body.
	tampered := append([]byte(nil), envelope...)
	tampered[len(tampered)-1] ^= 0x01

	_, err = OpenSecret(tampered, "pw")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenSecretEmptyPassword(t *testing.T) {
	_, err := SealSecret([]byte("x"), "")
	require.ErrorIs(t, err, ErrDerivationFailed)

	_, err = OpenSecret([]byte("whatever"), "")
	require.ErrorIs(t, err, ErrDerivationFailed)
}

func TestOpenSecretMalformed(t *testing.T) {
	tests := []struct {
		name     string
		envelope []byte
	}{
		{"empty", nil},
		{"too short for any layout", []byte{22, 'a', 'b'}},
		{"length byte out of range, no separator, under fixed width", append([]byte{0xff}, bytes.Repeat([]byte{0x41}, 20)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenSecret(tt.envelope, "pw")
			require.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}

// buildLegacyEnvelope encrypts plaintext the way the two retired writers
// laid out their records.
func buildLegacyEnvelope(t *testing.T, plaintext []byte, password string, salt []byte, separator bool) []byte {
	t.Helper()

	key, err := crypto.DeriveKey([]byte(password), salt)
	require.NoError(t, err)

	nonce := make([]byte, crypto.AESNonceSize)
	_, err = io.ReadFull(rand.Reader, nonce)
	require.NoError(t, err)

	ciphertext, err := crypto.SealAESGCM(key, nonce, plaintext)
	require.NoError(t, err)

	var envelope []byte
	envelope = append(envelope, salt...)
	if separator {
		envelope = append(envelope, 0x00)
	}
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)
	return envelope
}

func TestOpenSecretLegacySeparatorLayout(t *testing.T) {
	salt, err := crypto.NewSaltString()
	require.NoError(t, err)

	envelope := buildLegacyEnvelope(t, []byte("old record"), "pw", []byte(salt), true)

	got, err := OpenSecret(envelope, "pw")
	require.NoError(t, err)
	require.Equal(t, []byte("old record"), got)
}

func TestOpenSecretLegacyFixedWidthLayout(t *testing.T) {
	salt := make([]byte, legacyFixedSaltSize)
	_, err := io.ReadFull(rand.Reader, salt)
	require.NoError(t, err)

	envelope := buildLegacyEnvelope(t, []byte("older record"), "pw", salt, false)

	got, err := OpenSecret(envelope, "pw")
	require.NoError(t, err)
	require.Equal(t, []byte("older record"), got)
}

func TestOpenSecretLegacyFixedWidthAmbiguousFirstByte(t *testing.T) {
	// A raw salt whose first byte lands in the sane length-prefix range
	// parses as a plausible new-layout record. The failed authentication
	// must fall through to the fixed-width layout.
	salt := make([]byte, legacyFixedSaltSize)
	_, err := io.ReadFull(rand.Reader, salt)
	require.NoError(t, err)
	salt[0] = 22

	envelope := buildLegacyEnvelope(t, []byte("ambiguous record"), "pw", salt, false)

	got, err := OpenSecret(envelope, "pw")
	require.NoError(t, err)
	require.Equal(t, []byte("ambiguous record"), got)
}
