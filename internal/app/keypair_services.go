package app

import (
	"context"
	"fmt"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/pkg/logger"
)

// provisioningService implements the ProvisioningService interface by
// combining factory construction with explicit persistence.
type provisioningService struct {
	factory *keypair.Factory
	logger  logger.Logger
}

// NewProvisioningService creates a new provisioningService instance.
func NewProvisioningService(factory *keypair.Factory, logger logger.Logger) (keypair.ProvisioningService, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: factory cannot be nil", keypair.ErrInvalidArgument)
	}
	return &provisioningService{
		factory: factory,
		logger:  logger,
	}, nil
}

// Provision generates a fresh key pair and persists it under identifier.
func (s *provisioningService) Provision(ctx context.Context, identifier string, keySizeBits int) (*keypair.KeyPair, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", keypair.ErrInvalidArgument)
	}

	kp, err := s.factory.Generate(identifier, keySizeBits)
	if err != nil {
		return nil, err
	}
	if err := kp.Persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Provisioned key pair ", identifier)
	return kp, nil
}

// Import wraps externally supplied key material and persists it.
func (s *provisioningService) Import(ctx context.Context, identifier string, privateMaterial, publicMaterial []byte, keySizeBits int) (*keypair.KeyPair, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", keypair.ErrInvalidArgument)
	}

	kp, err := s.factory.FromRawMaterial(identifier, privateMaterial, publicMaterial, keySizeBits)
	if err != nil {
		return nil, err
	}
	if err := kp.Persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Imported key pair ", identifier)
	return kp, nil
}

// Open loads a previously persisted key pair.
func (s *provisioningService) Open(ctx context.Context, identifier string) (*keypair.KeyPair, error) {
	return s.factory.Load(ctx, identifier)
}

// messageSecurityService implements the MessageSecurityService interface by
// loading the named key pair and delegating to its operations.
type messageSecurityService struct {
	factory *keypair.Factory
	logger  logger.Logger
}

// NewMessageSecurityService creates a new messageSecurityService instance.
func NewMessageSecurityService(factory *keypair.Factory, logger logger.Logger) (keypair.MessageSecurityService, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: factory cannot be nil", keypair.ErrInvalidArgument)
	}
	return &messageSecurityService{
		factory: factory,
		logger:  logger,
	}, nil
}

// Encrypt encrypts plaintext under the public key stored for identifier.
func (s *messageSecurityService) Encrypt(ctx context.Context, identifier string, plaintext []byte) ([]byte, error) {
	kp, err := s.factory.Load(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return kp.Encrypt(plaintext)
}

// Decrypt decrypts ciphertext with the private key stored for identifier.
func (s *messageSecurityService) Decrypt(ctx context.Context, identifier string, ciphertext []byte) ([]byte, error) {
	kp, err := s.factory.Load(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return kp.Decrypt(ciphertext)
}

// Sign signs data with the private key stored for identifier.
func (s *messageSecurityService) Sign(ctx context.Context, identifier string, data []byte) ([]byte, error) {
	kp, err := s.factory.Load(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return kp.Sign(data)
}

// Verify validates signature against data with the public key stored for
// identifier. A mismatch is (false, nil), not an error.
func (s *messageSecurityService) Verify(ctx context.Context, identifier string, signature, data []byte) (bool, error) {
	kp, err := s.factory.Load(ctx, identifier)
	if err != nil {
		return false, err
	}
	return kp.Verify(signature, data)
}
