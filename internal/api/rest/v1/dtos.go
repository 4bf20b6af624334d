package v1

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"keypair_vault_service/internal/pkg/validators"
)

// ErrorResponse is the error payload returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ProvisionKeyPairRequest asks the service to generate and persist a fresh
// key pair. An empty identifier lets the service assign one.
type ProvisionKeyPairRequest struct {
	Identifier  string `json:"identifier" validate:"omitempty,max=255"`
	KeySizeBits int    `json:"keySizeBits" validate:"required,rsa_keysize"`
}

// Validate checks the provision request fields.
func (r *ProvisionKeyPairRequest) Validate() error {
	return validateStruct(r)
}

// ImportKeyPairRequest wraps externally held key material and persists it.
// Key material travels base64-encoded in JSON.
type ImportKeyPairRequest struct {
	Identifier         string `json:"identifier" validate:"required,max=255"`
	PrivateKeyMaterial []byte `json:"privateKeyMaterial" validate:"required"`
	PublicKeyMaterial  []byte `json:"publicKeyMaterial" validate:"required"`
	KeySizeBits        int    `json:"keySizeBits" validate:"required,rsa_keysize"`
}

// Validate checks the import request fields.
func (r *ImportKeyPairRequest) Validate() error {
	return validateStruct(r)
}

// KeyPairResponse describes a key pair. Private key material is never
// returned over the API.
type KeyPairResponse struct {
	Identifier        string `json:"identifier"`
	KeySizeBits       int    `json:"keySizeBits"`
	PublicKeyMaterial []byte `json:"publicKeyMaterial"`
}

// EncryptRequest carries the plaintext to encrypt.
type EncryptRequest struct {
	Plaintext []byte `json:"plaintext" validate:"required"`
}

// Validate checks the encrypt request fields.
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// EncryptResponse carries the resulting ciphertext.
type EncryptResponse struct {
	Ciphertext []byte `json:"ciphertext"`
}

// DecryptRequest carries the ciphertext to decrypt.
type DecryptRequest struct {
	Ciphertext []byte `json:"ciphertext" validate:"required"`
}

// Validate checks the decrypt request fields.
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptResponse carries the recovered plaintext.
type DecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
}

// SignRequest carries the data to sign.
type SignRequest struct {
	Data []byte `json:"data" validate:"required"`
}

// Validate checks the sign request fields.
func (r *SignRequest) Validate() error {
	return validateStruct(r)
}

// SignResponse carries the resulting signature.
type SignResponse struct {
	Signature []byte `json:"signature"`
}

// VerifyRequest carries a signature and the data it is evaluated against.
type VerifyRequest struct {
	Signature []byte `json:"signature" validate:"required"`
	Data      []byte `json:"data" validate:"required"`
}

// Validate checks the verify request fields.
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

// VerifyResponse reports the verification outcome. Valid is false for a
// cryptographic mismatch; operational failures are an ErrorResponse instead.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validate.RegisterValidation("rsa_keysize", validators.RSAKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
