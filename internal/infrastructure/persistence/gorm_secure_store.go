package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/infrastructure/persistence/models"
	"keypair_vault_service/internal/pkg/logger"
)

type gormSecureStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSecureStore creates a new GORM-based SecureStore implementation.
func NewGormSecureStore(db *gorm.DB, logger logger.Logger) (keypair.SecureStore, error) {
	return &gormSecureStore{
		db:     db,
		logger: logger,
	}, nil
}

// Exists reports whether a key pair is stored under identifier.
func (s *gormSecureStore) Exists(ctx context.Context, identifier string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.KeyPairModel{}).
		Where("identifier = ?", identifier).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query key pair: %w", err)
	}
	return count > 0, nil
}

// Save writes a key pair record. The existence check and the insert run in
// one transaction so a concurrent save under the same identifier cannot
// slip through; the primary key constraint backs the same rule.
func (s *gormSecureStore) Save(ctx context.Context, record *keypair.StoredKeyPair) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.KeyPairModel{}).
			Where("identifier = ?", record.Identifier).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to query key pair: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: identifier %q already present", keypair.ErrPersistence, record.Identifier)
		}

		model := &models.KeyPairModel{}
		model.FromDomain(record)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save key pair: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Saved key pair ", record.Identifier)
	return nil
}

// Load fetches the record stored under identifier.
func (s *gormSecureStore) Load(ctx context.Context, identifier string) (*keypair.StoredKeyPair, error) {
	var model models.KeyPairModel
	if err := s.db.WithContext(ctx).Where("identifier = ?", identifier).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: identifier %q", keypair.ErrNotFound, identifier)
		}
		return nil, fmt.Errorf("failed to fetch key pair: %w", err)
	}
	return model.ToDomain(), nil
}
