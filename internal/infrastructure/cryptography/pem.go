package cryptography

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// PEM block types for RSA key material.
const (
	pemTypePrivateKey = "RSA PRIVATE KEY"
	pemTypePublicKey  = "PUBLIC KEY"
)

// SavePrivateKeyMaterial writes PKCS#1 DER private key material to a
// PEM-encoded file.
func SavePrivateKeyMaterial(material []byte, filename string) error {
	return savePEM(material, pemTypePrivateKey, filename)
}

// SavePublicKeyMaterial writes PKIX DER public key material to a
// PEM-encoded file.
func SavePublicKeyMaterial(material []byte, filename string) error {
	return savePEM(material, pemTypePublicKey, filename)
}

// ReadPrivateKeyMaterial reads private key material from a PEM-encoded file
// and returns the DER bytes.
func ReadPrivateKeyMaterial(filename string) ([]byte, error) {
	return readPEM(filename, "private")
}

// ReadPublicKeyMaterial reads public key material from a PEM-encoded file
// and returns the DER bytes.
func ReadPublicKeyMaterial(filename string) ([]byte, error) {
	return readPEM(filename, "public")
}

func savePEM(material []byte, blockType, filename string) error {
	block := &pem.Block{
		Type:  blockType,
		Bytes: material,
	}

	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := pem.Encode(file, block); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}
	return nil
}

func readPEM(filename, kind string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s key file: %w", kind, err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the %s key", kind)
	}
	return block.Bytes, nil
}
