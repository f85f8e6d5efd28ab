package vaultcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantumvault/vaultcore/internal/crypto"
)

func TestDriveHeader(t *testing.T) {
	m := newTestManager(t)

	header, err := m.DriveHeader()
	require.NoError(t, err)

	require.Equal(t, DriveHeaderVersion, header.Version)
	require.Equal(t, crypto.AlgsCiphersuite, header.Ciphersuite)
	require.Len(t, header.KEMPublicKey, crypto.MLKEMPublicKeySize)
	require.Len(t, header.PrimaryPublicKey, crypto.MLDSAPublicKeySize)
	require.NotEmpty(t, header.BackupPublicKey)
	require.Len(t, header.Salt, 32)
	require.Len(t, header.StructureHash, 32)
	require.Equal(t, crypto.DefaultParams, header.ArgonParams)
	require.False(t, header.CreatedAt.IsZero())
}

func TestDriveHeaderWithoutBackup(t *testing.T) {
	m := newTestManager(t, WithBackupSignatures(false))

	header, err := m.DriveHeader()
	require.NoError(t, err)
	require.Empty(t, header.BackupPublicKey)
}

func TestDriveHeaderWithoutKeypairs(t *testing.T) {
	m := NewManager()

	_, err := m.DriveHeader()
	require.ErrorIs(t, err, ErrNoKeypairs)
}

func TestDriveHeaderEncodeDecode(t *testing.T) {
	m := newTestManager(t)

	header, err := m.DriveHeader()
	require.NoError(t, err)

	encoded, err := header.Encode()
	require.NoError(t, err)

	decoded, err := DecodeDriveHeader(encoded)
	require.NoError(t, err)

	require.Equal(t, header.Version, decoded.Version)
	require.Equal(t, header.Ciphersuite, decoded.Ciphersuite)
	require.Equal(t, header.KEMPublicKey, decoded.KEMPublicKey)
	require.Equal(t, header.PrimaryPublicKey, decoded.PrimaryPublicKey)
	require.Equal(t, header.BackupPublicKey, decoded.BackupPublicKey)
	require.Equal(t, header.Salt, decoded.Salt)
	require.Equal(t, header.ArgonParams, decoded.ArgonParams)
}

func TestDecodeDriveHeaderMalformed(t *testing.T) {
	_, err := DecodeDriveHeader([]byte("not a header"))
	require.ErrorIs(t, err, ErrMalformedContainer)

	_, err = DecodeDriveHeader([]byte(`{"version":""}`))
	require.ErrorIs(t, err, ErrMalformedContainer)
}

func TestDriveHeadersUseFreshSalts(t *testing.T) {
	m := newTestManager(t)

	a, err := m.DriveHeader()
	require.NoError(t, err)
	b, err := m.DriveHeader()
	require.NoError(t, err)

	require.NotEqual(t, a.Salt, b.Salt)
	require.Equal(t, a.KEMPublicKey, b.KEMPublicKey)
}
