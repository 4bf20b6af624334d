//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/pkg/testutil"
)

const (
	testKeySize512  = 512
	testKeySize2048 = 2048
)

func setupRSAEngine(t *testing.T) keypair.CryptoEngine {
	t.Helper()
	engine, err := NewRSAEngine(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return engine
}

func TestRSAEngine(t *testing.T) {
	engine := setupRSAEngine(t)

	t.Run("GenerateKeyPair", func(t *testing.T) {
		publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize2048)
		require.NoError(t, err)
		assert.NotEmpty(t, publicMaterial)
		assert.NotEmpty(t, privateMaterial)

		bits, err := engine.MatchKeyPair(publicMaterial, privateMaterial)
		require.NoError(t, err)
		assert.Equal(t, testKeySize2048, bits)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize2048)
		require.NoError(t, err)

		plaintext := []byte("This is a secret message")
		ciphertext, err := engine.Encrypt(publicMaterial, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := engine.Decrypt(privateMaterial, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("EncryptOversizedPlaintext", func(t *testing.T) {
		publicMaterial, _, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		// 512-bit modulus holds at most 64-11 = 53 bytes
		oversized := make([]byte, 64)
		_, err = engine.Encrypt(publicMaterial, oversized)
		assert.Error(t, err)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		publicMaterial, _, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)
		_, otherPrivate, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		ciphertext, err := engine.Encrypt(publicMaterial, []byte("secret"))
		require.NoError(t, err)

		_, err = engine.Decrypt(otherPrivate, ciphertext)
		assert.Error(t, err)
	})

	t.Run("SignAndVerify", func(t *testing.T) {
		publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize2048)
		require.NoError(t, err)

		data := []byte("This is a test message")
		signature, err := engine.SignSHA256PKCS1(privateMaterial, data)
		require.NoError(t, err)
		assert.NotEmpty(t, signature)

		valid, err := engine.VerifySHA256PKCS1(publicMaterial, signature, data)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("SigningIsDeterministic", func(t *testing.T) {
		_, privateMaterial, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		data := []byte("hello")
		first, err := engine.SignSHA256PKCS1(privateMaterial, data)
		require.NoError(t, err)
		second, err := engine.SignSHA256PKCS1(privateMaterial, data)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("VerifyTamperedDataIsFalseNotError", func(t *testing.T) {
		publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		signature, err := engine.SignSHA256PKCS1(privateMaterial, []byte("hello"))
		require.NoError(t, err)

		valid, err := engine.VerifySHA256PKCS1(publicMaterial, signature, []byte("hellp"))
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("VerifyBitFlippedSignatureIsFalse", func(t *testing.T) {
		publicMaterial, privateMaterial, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		data := []byte("hello")
		signature, err := engine.SignSHA256PKCS1(privateMaterial, data)
		require.NoError(t, err)

		for _, i := range []int{0, len(signature) / 2, len(signature) - 1} {
			mutated := make([]byte, len(signature))
			copy(mutated, signature)
			mutated[i] ^= 0x01

			valid, err := engine.VerifySHA256PKCS1(publicMaterial, mutated, data)
			require.NoError(t, err)
			assert.False(t, valid)
		}
	})

	t.Run("VerifyWithGarbageKeyMaterialIsError", func(t *testing.T) {
		valid, opErr := engine.VerifySHA256PKCS1([]byte("not a key"), []byte("sig"), []byte("data"))
		assert.Error(t, opErr)
		assert.False(t, valid)
	})

	t.Run("MatchKeyPairRejectsForeignPublicKey", func(t *testing.T) {
		publicMaterial, _, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)
		_, otherPrivate, err := engine.GenerateKeyPair(testKeySize512)
		require.NoError(t, err)

		_, err = engine.MatchKeyPair(publicMaterial, otherPrivate)
		assert.Error(t, err)
	})
}

func TestRSAEngine_ParseFallbacks(t *testing.T) {
	engine := setupRSAEngine(t)

	privateKey, err := rsa.GenerateKey(rand.Reader, testKeySize512)
	require.NoError(t, err)

	t.Run("PKCS8PrivateKeyMaterial", func(t *testing.T) {
		pkcs8, err := x509.MarshalPKCS8PrivateKey(privateKey)
		require.NoError(t, err)
		pkix, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
		require.NoError(t, err)

		bits, err := engine.MatchKeyPair(pkix, pkcs8)
		require.NoError(t, err)
		assert.Equal(t, testKeySize512, bits)
	})

	t.Run("PKCS1PublicKeyMaterial", func(t *testing.T) {
		pkcs1Pub := x509.MarshalPKCS1PublicKey(&privateKey.PublicKey)
		pkcs1Priv := x509.MarshalPKCS1PrivateKey(privateKey)

		bits, err := engine.MatchKeyPair(pkcs1Pub, pkcs1Priv)
		require.NoError(t, err)
		assert.Equal(t, testKeySize512, bits)
	})
}
