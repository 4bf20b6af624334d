package keypair

import (
	"context"
	"fmt"
)

// MinKeySizeBits is the smallest RSA modulus size the factory accepts.
// 2048 is recommended for new key pairs.
const MinKeySizeBits = 512

// KeyPair binds an identifier, a key size and a matched pair of encoded RSA
// keys. It is immutable after construction; concurrent use from multiple
// goroutines is safe. Instances are built exclusively through a Factory,
// which guarantees the material is a matched pair of the declared size.
type KeyPair struct {
	identifier      string
	keySizeBits     int
	publicMaterial  []byte
	privateMaterial []byte

	engine CryptoEngine
	store  SecureStore
}

// Identifier returns the store identifier. An empty identifier means the
// instance has not been, and may never be, persisted.
func (kp *KeyPair) Identifier() string {
	return kp.identifier
}

// KeySizeBits returns the RSA modulus size in bits.
func (kp *KeyPair) KeySizeBits() int {
	return kp.keySizeBits
}

// PublicKeyMaterial returns a copy of the PKIX DER encoding of the public key.
func (kp *KeyPair) PublicKeyMaterial() []byte {
	return cloneBytes(kp.publicMaterial)
}

// PrivateKeyMaterial returns a copy of the PKCS#1 DER encoding of the
// private key.
func (kp *KeyPair) PrivateKeyMaterial() []byte {
	return cloneBytes(kp.privateMaterial)
}

// Encrypt encrypts plaintext under the public key. Plaintext must fit within
// the modulus size minus the PKCS#1 v1.5 padding overhead; larger inputs are
// an error and the caller is responsible for chunking.
func (kp *KeyPair) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext, err := kp.engine.Encrypt(kp.publicMaterial, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with the private key. On any failure no
// partial plaintext is returned.
func (kp *KeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, err := kp.engine.Decrypt(kp.privateMaterial, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

// Sign computes a SHA-256 digest over data and produces a PKCS#1 v1.5
// signature with the private key. The result is deterministic for the same
// key and data.
func (kp *KeyPair) Sign(data []byte) ([]byte, error) {
	signature, err := kp.engine.SignSHA256PKCS1(kp.privateMaterial, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signature, nil
}

// Verify validates signature against the SHA-256 digest of data using the
// public key. A signature that does not match yields (false, nil); an error
// wrapping ErrVerification is returned only when verification could not run.
func (kp *KeyPair) Verify(signature, data []byte) (bool, error) {
	ok, err := kp.engine.VerifySHA256PKCS1(kp.publicMaterial, signature, data)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return ok, nil
}

// Persist writes the key pair to the secure store under its identifier.
// It fails without contacting the store when the identifier is empty, and
// fails rather than overwrite when the identifier is already present.
func (kp *KeyPair) Persist(ctx context.Context) error {
	if kp.identifier == "" {
		return fmt.Errorf("%w: cannot persist a key pair without an identifier", ErrInvalidArgument)
	}

	exists, err := kp.store.Exists(ctx, kp.identifier)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if exists {
		return fmt.Errorf("%w: identifier %q already present", ErrPersistence, kp.identifier)
	}

	record := &StoredKeyPair{
		Identifier:      kp.identifier,
		PublicMaterial:  kp.publicMaterial,
		PrivateMaterial: kp.privateMaterial,
		KeySizeBits:     kp.keySizeBits,
	}
	if err := kp.store.Save(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ExistsInStore reports whether a key pair is stored under this instance's
// identifier. An empty identifier is never stored and reports false.
func (kp *KeyPair) ExistsInStore(ctx context.Context) (bool, error) {
	if kp.identifier == "" {
		return false, nil
	}
	return kp.store.Exists(ctx, kp.identifier)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
