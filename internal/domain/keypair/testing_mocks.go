//go:build unit
// +build unit

package keypair

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCryptoEngine is a mock implementation of CryptoEngine.
type MockCryptoEngine struct {
	mock.Mock
}

func (m *MockCryptoEngine) GenerateKeyPair(bits int) ([]byte, []byte, error) {
	args := m.Called(bits)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).([]byte), args.Error(2)
}

func (m *MockCryptoEngine) Encrypt(publicMaterial, plaintext []byte) ([]byte, error) {
	args := m.Called(publicMaterial, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoEngine) Decrypt(privateMaterial, ciphertext []byte) ([]byte, error) {
	args := m.Called(privateMaterial, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoEngine) SignSHA256PKCS1(privateMaterial, data []byte) ([]byte, error) {
	args := m.Called(privateMaterial, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoEngine) VerifySHA256PKCS1(publicMaterial, signature, data []byte) (bool, error) {
	args := m.Called(publicMaterial, signature, data)
	return args.Bool(0), args.Error(1)
}

func (m *MockCryptoEngine) MatchKeyPair(publicMaterial, privateMaterial []byte) (int, error) {
	args := m.Called(publicMaterial, privateMaterial)
	return args.Int(0), args.Error(1)
}

// MockSecureStore is a mock implementation of SecureStore.
type MockSecureStore struct {
	mock.Mock
}

func (m *MockSecureStore) Exists(ctx context.Context, identifier string) (bool, error) {
	args := m.Called(ctx, identifier)
	return args.Bool(0), args.Error(1)
}

func (m *MockSecureStore) Save(ctx context.Context, record *StoredKeyPair) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSecureStore) Load(ctx context.Context, identifier string) (*StoredKeyPair, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredKeyPair), args.Error(1)
}
