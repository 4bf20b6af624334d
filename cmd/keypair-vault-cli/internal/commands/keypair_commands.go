package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/infrastructure/cryptography"
	"keypair_vault_service/internal/pkg/logger"
)

const defaultStorePath = "keypair-store.db"

// KeyPairCommandHandler encapsulates logic for handling key-pair operations
// via CLI.
type KeyPairCommandHandler struct {
	logger logger.Logger
}

// NewKeyPairCommandHandler initializes a new KeyPairCommandHandler with logging.
func NewKeyPairCommandHandler() (*KeyPairCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &KeyPairCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *KeyPairCommandHandler) factoryFromFlags(cmd *cobra.Command) (*keypair.Factory, error) {
	storePath, err := cmd.Flags().GetString("store")
	if err != nil {
		return nil, fmt.Errorf("invalid store flag: %w", err)
	}
	return setupFactory(storePath, commandHandler.logger)
}

// GenerateKeyPairCmd generates an RSA key pair, persists it in the store and
// optionally exports the material as PEM files.
func (commandHandler *KeyPairCommandHandler) GenerateKeyPairCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	identifier, err := cmd.Flags().GetString("identifier")
	if err != nil {
		commandHandler.logger.Error("invalid identifier flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	if identifier == "" {
		identifier = uuid.New().String()
	}

	factory, err := commandHandler.factoryFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	kp, err := factory.Generate(identifier, keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := kp.Persist(cmd.Context()); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Persisted key pair ", identifier)

	if keyDir != "" {
		privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", identifier))
		if err := cryptography.SavePrivateKeyMaterial(kp.PrivateKeyMaterial(), privateKeyFilePath); err != nil {
			commandHandler.logger.Error(err)
			return
		}

		publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", identifier))
		if err := cryptography.SavePublicKeyMaterial(kp.PublicKeyMaterial(), publicKeyFilePath); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Exported key material to ", keyDir)
	}
}

// ImportKeyPairCmd imports a key pair from PEM files and persists it in the
// store.
func (commandHandler *KeyPairCommandHandler) ImportKeyPairCmd(cmd *cobra.Command, _ []string) {
	identifier, err := cmd.Flags().GetString("identifier")
	if err != nil || identifier == "" {
		commandHandler.logger.Error("identifier flag is required")
		return
	}
	privateKeyFile, err := cmd.Flags().GetString("private-key-file")
	if err != nil {
		commandHandler.logger.Error("invalid private-key-file flag: ", err)
		return
	}
	publicKeyFile, err := cmd.Flags().GetString("public-key-file")
	if err != nil {
		commandHandler.logger.Error("invalid public-key-file flag: ", err)
		return
	}
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}

	privateMaterial, err := cryptography.ReadPrivateKeyMaterial(privateKeyFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	publicMaterial, err := cryptography.ReadPublicKeyMaterial(publicKeyFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	factory, err := commandHandler.factoryFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	kp, err := factory.FromRawMaterial(identifier, privateMaterial, publicMaterial, keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := kp.Persist(cmd.Context()); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Imported key pair ", identifier)
}

// EncryptCmd encrypts a file under a stored key pair's public key.
func (commandHandler *KeyPairCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFileOperation(cmd, "output-file", func(kp *keypair.KeyPair, input []byte) ([]byte, error) {
		return kp.Encrypt(input)
	})
}

// DecryptCmd decrypts a file with a stored key pair's private key.
func (commandHandler *KeyPairCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFileOperation(cmd, "output-file", func(kp *keypair.KeyPair, input []byte) ([]byte, error) {
		return kp.Decrypt(input)
	})
}

// SignCmd signs a file with a stored key pair's private key.
func (commandHandler *KeyPairCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFileOperation(cmd, "signature-file", func(kp *keypair.KeyPair, input []byte) ([]byte, error) {
		return kp.Sign(input)
	})
}

// VerifyCmd validates a signature file against an input file with a stored
// key pair's public key.
func (commandHandler *KeyPairCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	kp, input, ok := commandHandler.loadKeyPairAndInput(cmd)
	if !ok {
		return
	}

	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	signature, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		commandHandler.logger.Error("failed to read signature file: ", err)
		return
	}

	valid, err := kp.Verify(signature, input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Warn("Signature is NOT valid")
	}
}

// runFileOperation reads the input file, applies op with the stored key pair
// and writes the result to the file named by outputFlag.
func (commandHandler *KeyPairCommandHandler) runFileOperation(cmd *cobra.Command, outputFlag string, op func(*keypair.KeyPair, []byte) ([]byte, error)) {
	kp, input, ok := commandHandler.loadKeyPairAndInput(cmd)
	if !ok {
		return
	}

	outputFile, err := cmd.Flags().GetString(outputFlag)
	if err != nil {
		commandHandler.logger.Error("invalid ", outputFlag, " flag: ", err)
		return
	}

	output, err := op(kp, input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(filepath.Clean(outputFile), output, 0600); err != nil {
		commandHandler.logger.Error("failed to write output file: ", err)
		return
	}
	commandHandler.logger.Info("Wrote ", outputFile)
}

func (commandHandler *KeyPairCommandHandler) loadKeyPairAndInput(cmd *cobra.Command) (*keypair.KeyPair, []byte, bool) {
	identifier, err := cmd.Flags().GetString("identifier")
	if err != nil || identifier == "" {
		commandHandler.logger.Error("identifier flag is required")
		return nil, nil, false
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return nil, nil, false
	}

	factory, err := commandHandler.factoryFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return nil, nil, false
	}

	kp, err := factory.Load(cmd.Context(), identifier)
	if err != nil {
		commandHandler.logger.Error(err)
		return nil, nil, false
	}

	input, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("failed to read input file: ", err)
		return nil, nil, false
	}

	return kp, input, true
}

// InitKeyPairCommands registers the key-pair commands with the root command.
func InitKeyPairCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyPairCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key pair command handler: %w", err)
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA key pair and persist it in the store",
		Run:   handler.GenerateKeyPairCmd,
	}
	generateCmd.Flags().String("identifier", "", "Identifier for the key pair (default: random UUID)")
	generateCmd.Flags().Int("key-size", 2048, "RSA key size in bits")
	generateCmd.Flags().String("key-dir", "", "Directory to export PEM-encoded key material to")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a key pair from PEM files and persist it in the store",
		Run:   handler.ImportKeyPairCmd,
	}
	importCmd.Flags().String("identifier", "", "Identifier for the key pair")
	importCmd.Flags().String("private-key-file", "", "Path to the PEM-encoded private key")
	importCmd.Flags().String("public-key-file", "", "Path to the PEM-encoded public key")
	importCmd.Flags().Int("key-size", 2048, "Declared RSA key size in bits")

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file under a stored key pair's public key",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().String("identifier", "", "Identifier of the stored key pair")
	encryptCmd.Flags().String("input-file", "", "File to encrypt")
	encryptCmd.Flags().String("output-file", "", "File to write the ciphertext to")

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a stored key pair's private key",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().String("identifier", "", "Identifier of the stored key pair")
	decryptCmd.Flags().String("input-file", "", "File to decrypt")
	decryptCmd.Flags().String("output-file", "", "File to write the plaintext to")

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with a stored key pair's private key",
		Run:   handler.SignCmd,
	}
	signCmd.Flags().String("identifier", "", "Identifier of the stored key pair")
	signCmd.Flags().String("input-file", "", "File to sign")
	signCmd.Flags().String("signature-file", "", "File to write the signature to")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a file with a stored key pair's public key",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().String("identifier", "", "Identifier of the stored key pair")
	verifyCmd.Flags().String("input-file", "", "File the signature is evaluated against")
	verifyCmd.Flags().String("signature-file", "", "File holding the signature")

	for _, cmd := range []*cobra.Command{generateCmd, importCmd, encryptCmd, decryptCmd, signCmd, verifyCmd} {
		cmd.Flags().String("store", defaultStorePath, "Path to the sqlite secure store")
		rootCmd.AddCommand(cmd)
	}

	return nil
}
