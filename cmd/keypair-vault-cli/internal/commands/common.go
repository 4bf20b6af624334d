package commands

import (
	"fmt"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/infrastructure/cryptography"
	"keypair_vault_service/internal/infrastructure/persistence"
	"keypair_vault_service/internal/infrastructure/persistence/models"
	"keypair_vault_service/internal/pkg/config"
	"keypair_vault_service/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupFactory opens the sqlite-backed secure store at storePath and builds
// a key-pair factory over it.
func setupFactory(storePath string, log logger.Logger) (*keypair.Factory, error) {
	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  storePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	store, err := persistence.NewGormSecureStore(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure store: %w", err)
	}

	engine, err := cryptography.NewRSAEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA engine: %w", err)
	}

	factory, err := keypair.NewFactory(engine, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair factory: %w", err)
	}

	return factory, nil
}
