package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"keypair_vault_service/internal/domain/keypair"
)

// KeyPairHandler defines the interface for handling key-pair operations.
type KeyPairHandler interface {
	Provision(ctx *gin.Context)
	Import(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type keyPairHandler struct {
	provisioningService    keypair.ProvisioningService
	messageSecurityService keypair.MessageSecurityService
}

// NewKeyPairHandler creates a new KeyPairHandler.
func NewKeyPairHandler(provisioningService keypair.ProvisioningService, messageSecurityService keypair.MessageSecurityService) KeyPairHandler {
	return &keyPairHandler{
		provisioningService:    provisioningService,
		messageSecurityService: messageSecurityService,
	}
}

// Provision handles the POST request to generate and persist a key pair.
func (handler *keyPairHandler) Provision(ctx *gin.Context) {
	var request ProvisionKeyPairRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	identifier := request.Identifier
	if identifier == "" {
		identifier = uuid.New().String()
	}

	kp, err := handler.provisioningService.Provision(ctx, identifier, request.KeySizeBits)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toKeyPairResponse(kp))
}

// Import handles the POST request to persist externally supplied key material.
func (handler *keyPairHandler) Import(ctx *gin.Context) {
	var request ImportKeyPairRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	kp, err := handler.provisioningService.Import(ctx, request.Identifier, request.PrivateKeyMaterial, request.PublicKeyMaterial, request.KeySizeBits)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toKeyPairResponse(kp))
}

// GetByID handles the GET request for a persisted key pair's public half.
func (handler *keyPairHandler) GetByID(ctx *gin.Context) {
	kp, err := handler.provisioningService.Open(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toKeyPairResponse(kp))
}

// Encrypt handles the POST request to encrypt plaintext under a key pair's
// public key.
func (handler *keyPairHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	ciphertext, err := handler.messageSecurityService.Encrypt(ctx, ctx.Param("id"), request.Plaintext)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt ciphertext with a key pair's
// private key.
func (handler *keyPairHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	plaintext, err := handler.messageSecurityService.Decrypt(ctx, ctx.Param("id"), request.Ciphertext)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}

// Sign handles the POST request to sign data with a key pair's private key.
func (handler *keyPairHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	signature, err := handler.messageSecurityService.Sign(ctx, ctx.Param("id"), request.Data)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: signature})
}

// Verify handles the POST request to validate a signature. A cryptographic
// mismatch is a 200 with valid=false, not an error status.
func (handler *keyPairHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindAndValidate(ctx, &request, &request) {
		return
	}

	valid, err := handler.messageSecurityService.Verify(ctx, ctx.Param("id"), request.Signature, request.Data)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

type validatable interface {
	Validate() error
}

// bindAndValidate binds the JSON body into request and runs its validation,
// writing a 400 response on failure.
func bindAndValidate(ctx *gin.Context, request interface{}, v validatable) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	if err := v.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return false
	}
	return true
}

// writeError maps domain sentinel errors to HTTP status codes.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, keypair.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, keypair.ErrInvalidArgument), errors.Is(err, keypair.ErrInvalidKeyMaterial):
		status = http.StatusBadRequest
	case errors.Is(err, keypair.ErrPersistence):
		status = http.StatusConflict
	case errors.Is(err, keypair.ErrEncryption), errors.Is(err, keypair.ErrDecryption):
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, ErrorResponse{Message: err.Error()})
}

func toKeyPairResponse(kp *keypair.KeyPair) KeyPairResponse {
	return KeyPairResponse{
		Identifier:        kp.Identifier(),
		KeySizeBits:       kp.KeySizeBits(),
		PublicKeyMaterial: kp.PublicKeyMaterial(),
	}
}
