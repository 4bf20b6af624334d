package keypair

import "context"

// CryptoEngine performs the raw RSA primitive operations on encoded key
// material. Public key material is a PKIX (X.509 SubjectPublicKeyInfo) DER
// encoding, private key material a PKCS#1 DER encoding. Implementations are
// stateless; every call is a pure function of its inputs.
type CryptoEngine interface {
	// GenerateKeyPair generates a fresh RSA key pair with the given modulus
	// size in bits and returns the encoded public and private key material.
	GenerateKeyPair(bits int) (publicMaterial, privateMaterial []byte, err error)

	// Encrypt encrypts plaintext under the public key with PKCS#1 v1.5
	// padding. Plaintext longer than the modulus size minus the padding
	// overhead is rejected, never truncated or chunked.
	Encrypt(publicMaterial, plaintext []byte) ([]byte, error)

	// Decrypt decrypts a single PKCS#1 v1.5 ciphertext block with the
	// private key.
	Decrypt(privateMaterial, ciphertext []byte) ([]byte, error)

	// SignSHA256PKCS1 computes a SHA-256 digest over data and signs it with
	// the private key using PKCS#1 v1.5 padding.
	SignSHA256PKCS1(privateMaterial, data []byte) ([]byte, error)

	// VerifySHA256PKCS1 validates a PKCS#1 v1.5 signature over the SHA-256
	// digest of data. A cryptographic mismatch is (false, nil); an error is
	// returned only when verification could not run at all.
	VerifySHA256PKCS1(publicMaterial, signature, data []byte) (bool, error)

	// MatchKeyPair parses both key materials, confirms they form a matched
	// mathematical pair, and returns the modulus size in bits.
	MatchKeyPair(publicMaterial, privateMaterial []byte) (int, error)
}

// StoredKeyPair is the record shape a SecureStore holds per identifier.
type StoredKeyPair struct {
	Identifier      string
	PublicMaterial  []byte
	PrivateMaterial []byte
	KeySizeBits     int
}

// SecureStore is durable, identifier-keyed storage for key material.
// Save must fail, not overwrite, when the identifier is already present.
type SecureStore interface {
	// Exists reports whether a key pair is stored under identifier.
	Exists(ctx context.Context, identifier string) (bool, error)

	// Save writes a key pair record. It returns an error wrapping
	// ErrPersistence when the identifier is already present.
	Save(ctx context.Context, record *StoredKeyPair) error

	// Load fetches the record stored under identifier. It returns an error
	// wrapping ErrNotFound when no record exists.
	Load(ctx context.Context, identifier string) (*StoredKeyPair, error)
}

// ProvisioningService orchestrates key-pair construction and persistence for
// transport layers, so handlers never touch the Factory directly.
type ProvisioningService interface {
	// Provision generates a fresh key pair and persists it under identifier.
	Provision(ctx context.Context, identifier string, keySizeBits int) (*KeyPair, error)

	// Import wraps externally supplied key material (e.g. received over a
	// provisioning channel) and persists it under identifier.
	Import(ctx context.Context, identifier string, privateMaterial, publicMaterial []byte, keySizeBits int) (*KeyPair, error)

	// Open loads a previously persisted key pair.
	Open(ctx context.Context, identifier string) (*KeyPair, error)
}

// MessageSecurityService exposes the four cryptographic operations keyed by
// the identifier of a persisted key pair.
type MessageSecurityService interface {
	Encrypt(ctx context.Context, identifier string, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, identifier string, ciphertext []byte) ([]byte, error)
	Sign(ctx context.Context, identifier string, data []byte) ([]byte, error)
	Verify(ctx context.Context, identifier string, signature, data []byte) (bool, error)
}
