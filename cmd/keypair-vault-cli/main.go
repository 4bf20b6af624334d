// Package main is the entry point for the keypair-vault-cli application.
// It registers the key-pair commands on the root command and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	commands "keypair_vault_service/cmd/keypair-vault-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "keypair-vault-cli",
		Short: "RSA key-pair provisioning and usage CLI tool",
		Long: `keypair-vault-cli manages RSA key pairs in a local secure store.
It generates and imports key pairs, persists them to a sqlite-backed store,
and uses them to encrypt, decrypt, sign and verify data. Signatures use
SHA-256 digests with PKCS#1 v1.5 padding.`,
	}

	if err := commands.InitKeyPairCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
