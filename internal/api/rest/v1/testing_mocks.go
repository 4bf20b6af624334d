//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"keypair_vault_service/internal/domain/keypair"
)

// MockProvisioningService is a mock implementation of ProvisioningService.
type MockProvisioningService struct {
	mock.Mock
}

func (m *MockProvisioningService) Provision(ctx context.Context, identifier string, keySizeBits int) (*keypair.KeyPair, error) {
	args := m.Called(ctx, identifier, keySizeBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keypair.KeyPair), args.Error(1)
}

func (m *MockProvisioningService) Import(ctx context.Context, identifier string, privateMaterial, publicMaterial []byte, keySizeBits int) (*keypair.KeyPair, error) {
	args := m.Called(ctx, identifier, privateMaterial, publicMaterial, keySizeBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keypair.KeyPair), args.Error(1)
}

func (m *MockProvisioningService) Open(ctx context.Context, identifier string) (*keypair.KeyPair, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keypair.KeyPair), args.Error(1)
}

// MockMessageSecurityService is a mock implementation of MessageSecurityService.
type MockMessageSecurityService struct {
	mock.Mock
}

func (m *MockMessageSecurityService) Encrypt(ctx context.Context, identifier string, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, identifier, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMessageSecurityService) Decrypt(ctx context.Context, identifier string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, identifier, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMessageSecurityService) Sign(ctx context.Context, identifier string, data []byte) ([]byte, error) {
	args := m.Called(ctx, identifier, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMessageSecurityService) Verify(ctx context.Context, identifier string, signature, data []byte) (bool, error) {
	args := m.Called(ctx, identifier, signature, data)
	return args.Bool(0), args.Error(1)
}
