package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the connection settings for the secure-store
// database. Type selects the driver (postgres or sqlite), DSN the data
// source; Name is the database to create and connect to for postgres.
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `yaml:"dsn" validate:"required"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid.
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
