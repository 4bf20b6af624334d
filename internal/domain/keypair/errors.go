package keypair

import "errors"

// Sentinel errors for every failure kind the key-pair core can surface.
// Callers branch with errors.Is; operations wrap these with context.
var (
	// ErrInvalidArgument indicates a bad key size or an empty identifier
	// where one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyGeneration indicates the crypto engine failed to generate a key pair.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrEncryption indicates the engine rejected an encrypt operation,
	// e.g. oversized plaintext or unusable key material.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption indicates malformed ciphertext, a wrong key, or an
	// engine-level decrypt failure. No partial plaintext accompanies it.
	ErrDecryption = errors.New("decryption failed")

	// ErrSigning indicates the private key was unusable for signing.
	ErrSigning = errors.New("signing failed")

	// ErrVerification indicates verification could not run (unparsable key
	// material, engine unavailable). A signature that simply does not match
	// is reported as a boolean false, never as this error.
	ErrVerification = errors.New("verification failed")

	// ErrNotFound indicates no key pair exists in the store under the
	// requested identifier.
	ErrNotFound = errors.New("key pair not found")

	// ErrInvalidKeyMaterial indicates malformed key bytes, a public/private
	// pair that do not mathematically correspond, or a declared key size
	// that disagrees with the parsed material.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrPersistence indicates a store write failure or an attempt to save
	// under an identifier that is already present.
	ErrPersistence = errors.New("persistence failed")
)
