package keypair

import (
	"context"
	"fmt"

	"keypair_vault_service/internal/pkg/logger"
)

// Factory constructs KeyPair instances. Each construction path is total: it
// returns a fully validated key pair or a typed failure, never a partially
// initialized instance.
type Factory struct {
	engine CryptoEngine
	store  SecureStore
	logger logger.Logger
}

// NewFactory creates a Factory bound to a crypto engine and a secure store.
func NewFactory(engine CryptoEngine, store SecureStore, logger logger.Logger) (*Factory, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: crypto engine cannot be nil", ErrInvalidArgument)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: secure store cannot be nil", ErrInvalidArgument)
	}
	return &Factory{
		engine: engine,
		store:  store,
		logger: logger,
	}, nil
}

// Generate asks the engine for a fresh RSA key pair of the requested size
// and wraps it. The result is not persisted; Persist is a separate,
// explicit step.
func (f *Factory) Generate(identifier string, keySizeBits int) (*KeyPair, error) {
	if keySizeBits < MinKeySizeBits {
		return nil, fmt.Errorf("%w: key size %d below minimum %d bits", ErrInvalidArgument, keySizeBits, MinKeySizeBits)
	}

	publicMaterial, privateMaterial, err := f.engine.GenerateKeyPair(keySizeBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	f.logger.Info("Generated ", keySizeBits, "-bit key pair")
	return f.newKeyPair(identifier, publicMaterial, privateMaterial, keySizeBits), nil
}

// Load fetches the key material stored under identifier and wraps it. The
// stored bytes are re-validated as a matched pair of the recorded size
// before a KeyPair is returned.
func (f *Factory) Load(ctx context.Context, identifier string) (*KeyPair, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", ErrInvalidArgument)
	}

	record, err := f.store.Load(ctx, identifier)
	if err != nil {
		return nil, err
	}

	bits, err := f.engine.MatchKeyPair(record.PublicMaterial, record.PrivateMaterial)
	if err != nil {
		return nil, fmt.Errorf("%w: stored material for %q: %v", ErrInvalidKeyMaterial, identifier, err)
	}
	if bits != record.KeySizeBits {
		return nil, fmt.Errorf("%w: stored material for %q is %d bits, record says %d", ErrInvalidKeyMaterial, identifier, bits, record.KeySizeBits)
	}

	f.logger.Info("Loaded key pair ", identifier)
	return f.newKeyPair(identifier, record.PublicMaterial, record.PrivateMaterial, record.KeySizeBits), nil
}

// FromRawMaterial wraps key material the caller already holds, without
// touching the store. The two materials must form a matched mathematical
// pair and their modulus size must equal keySizeBits.
func (f *Factory) FromRawMaterial(identifier string, privateMaterial, publicMaterial []byte, keySizeBits int) (*KeyPair, error) {
	bits, err := f.engine.MatchKeyPair(publicMaterial, privateMaterial)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	if bits != keySizeBits {
		return nil, fmt.Errorf("%w: material is %d bits, declared size is %d", ErrInvalidKeyMaterial, bits, keySizeBits)
	}

	return f.newKeyPair(identifier, publicMaterial, privateMaterial, keySizeBits), nil
}

func (f *Factory) newKeyPair(identifier string, publicMaterial, privateMaterial []byte, keySizeBits int) *KeyPair {
	return &KeyPair{
		identifier:      identifier,
		keySizeBits:     keySizeBits,
		publicMaterial:  cloneBytes(publicMaterial),
		privateMaterial: cloneBytes(privateMaterial),
		engine:          f.engine,
		store:           f.store,
	}
}
