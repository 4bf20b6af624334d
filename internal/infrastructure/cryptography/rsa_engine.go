package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/pkg/logger"
)

// pkcs1v15Overhead is the PKCS#1 v1.5 encryption padding overhead in bytes.
const pkcs1v15Overhead = 11

// rsaEngine implements the keypair.CryptoEngine interface over crypto/rsa.
// Public key material is PKIX DER, private key material PKCS#1 DER.
type rsaEngine struct {
	logger logger.Logger
}

// NewRSAEngine creates and returns a new instance of rsaEngine.
func NewRSAEngine(logger logger.Logger) (keypair.CryptoEngine, error) {
	return &rsaEngine{
		logger: logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair with the specified modulus size
// in bits and returns the encoded public and private key material.
func (e *rsaEngine) GenerateKeyPair(bits int) ([]byte, []byte, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	publicMaterial, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	privateMaterial := x509.MarshalPKCS1PrivateKey(privateKey)

	e.logger.Info("Generated ", bits, "-bit RSA key pair")
	return publicMaterial, privateMaterial, nil
}

// Encrypt encrypts plaintext using RSA PKCS#1 v1.5 with the public key.
// Plaintext longer than the modulus size minus the padding overhead is
// rejected; chunking is the caller's responsibility.
func (e *rsaEngine) Encrypt(publicMaterial, plaintext []byte) ([]byte, error) {
	publicKey, err := parsePublicKey(publicMaterial)
	if err != nil {
		return nil, err
	}

	maxSize := publicKey.Size() - pkcs1v15Overhead
	if len(plaintext) > maxSize {
		return nil, fmt.Errorf("plaintext is %d bytes, maximum payload for a %d-bit key is %d bytes", len(plaintext), publicKey.N.BitLen(), maxSize)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	return ciphertext, nil
}

// Decrypt decrypts a single RSA PKCS#1 v1.5 ciphertext block using the
// private key.
func (e *rsaEngine) Decrypt(privateMaterial, ciphertext []byte) ([]byte, error) {
	privateKey, err := parsePrivateKey(privateMaterial)
	if err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	return plaintext, nil
}

// SignSHA256PKCS1 computes a SHA-256 digest over data and signs it with the
// private key using PKCS#1 v1.5 padding.
func (e *rsaEngine) SignSHA256PKCS1(privateMaterial, data []byte) ([]byte, error) {
	privateKey, err := parsePrivateKey(privateMaterial)
	if err != nil {
		return nil, err
	}

	hashed := sha256.Sum256(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}
	return signature, nil
}

// VerifySHA256PKCS1 validates a PKCS#1 v1.5 signature over the SHA-256
// digest of data. A cryptographic mismatch yields (false, nil); an error is
// returned only when the key material cannot be used at all.
func (e *rsaEngine) VerifySHA256PKCS1(publicMaterial, signature, data []byte) (bool, error) {
	publicKey, err := parsePublicKey(publicMaterial)
	if err != nil {
		return false, err
	}

	hashed := sha256.Sum256(data)
	err = rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature)
	if err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}
	return true, nil
}

// MatchKeyPair parses both key materials, confirms the public key is the one
// derived from the private key, and returns the modulus size in bits.
func (e *rsaEngine) MatchKeyPair(publicMaterial, privateMaterial []byte) (int, error) {
	publicKey, err := parsePublicKey(publicMaterial)
	if err != nil {
		return 0, err
	}
	privateKey, err := parsePrivateKey(privateMaterial)
	if err != nil {
		return 0, err
	}

	if publicKey.N.Cmp(privateKey.N) != 0 || publicKey.E != privateKey.E {
		return 0, fmt.Errorf("public and private key are not a matched pair")
	}
	return privateKey.N.BitLen(), nil
}

// parsePrivateKey parses PKCS#1 DER private key material, falling back to
// PKCS#8 for material produced by other tooling.
func parsePrivateKey(material []byte) (*rsa.PrivateKey, error) {
	privateKey, err := x509.ParsePKCS1PrivateKey(material)
	if err == nil {
		return privateKey, nil
	}

	keyInterface, err := x509.ParsePKCS8PrivateKey(material)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}

	privateKey, ok := keyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not of type RSA")
	}
	return privateKey, nil
}

// parsePublicKey parses PKIX DER public key material, falling back to PKCS#1.
func parsePublicKey(material []byte) (*rsa.PublicKey, error) {
	keyInterface, err := x509.ParsePKIXPublicKey(material)
	if err == nil {
		publicKey, ok := keyInterface.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("public key is not of type RSA")
		}
		return publicKey, nil
	}

	publicKey, pkcs1Err := x509.ParsePKCS1PublicKey(material)
	if pkcs1Err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKIX or PKCS#1 format: %w", err)
	}
	return publicKey, nil
}
