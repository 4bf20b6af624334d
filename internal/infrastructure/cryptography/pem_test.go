//go:build unit
// +build unit

package cryptography

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPEMRoundTrip(t *testing.T) {
	engine := setupRSAEngine(t)
	tmpDir := t.TempDir()

	publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize512)
	require.NoError(t, err)

	privFile := filepath.Join(tmpDir, "private.pem")
	pubFile := filepath.Join(tmpDir, "public.pem")

	require.NoError(t, SavePrivateKeyMaterial(privateMaterial, privFile))
	require.NoError(t, SavePublicKeyMaterial(publicMaterial, pubFile))

	readPriv, err := ReadPrivateKeyMaterial(privFile)
	require.NoError(t, err)
	assert.Equal(t, privateMaterial, readPriv)

	readPub, err := ReadPublicKeyMaterial(pubFile)
	require.NoError(t, err)
	assert.Equal(t, publicMaterial, readPub)
}

func TestPEMErrors(t *testing.T) {
	t.Run("SaveToInvalidPath", func(t *testing.T) {
		err := SavePrivateKeyMaterial([]byte("material"), "/invalid/path/private.pem")
		assert.Error(t, err)
	})

	t.Run("ReadMissingFile", func(t *testing.T) {
		_, err := ReadPublicKeyMaterial(filepath.Join(t.TempDir(), "missing.pem"))
		assert.Error(t, err)
	})

	t.Run("ReadNonPEMFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-pem.txt")
		require.NoError(t, os.WriteFile(file, []byte("plain text"), 0600))

		_, err := ReadPrivateKeyMaterial(file)
		assert.Error(t, err)
	})
}
