//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/infrastructure/persistence/models"
	"keypair_vault_service/internal/pkg/config"
	"keypair_vault_service/internal/pkg/testutil"
)

// TestContext holds the test database and the store under test.
type TestContext struct {
	DB    *gorm.DB
	Store keypair.SecureStore
}

// SetupTestDB initializes an in-memory sqlite database with automatic cleanup.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	db, err := NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	})
	require.NoError(t, err, "Failed to create database connection")

	require.NoError(t, db.AutoMigrate(&models.KeyPairModel{}), "Failed to migrate schema")

	store, err := NewGormSecureStore(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	return &TestContext{
		DB:    db,
		Store: store,
	}
}
