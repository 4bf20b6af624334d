package v1

import (
	"github.com/gin-gonic/gin"

	"keypair_vault_service/internal/domain/keypair"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	provisioningService keypair.ProvisioningService,
	messageSecurityService keypair.MessageSecurityService) {

	v1 := r.Group(BasePath)

	keyPairHandler := NewKeyPairHandler(provisioningService, messageSecurityService)
	v1.POST("/keypairs", keyPairHandler.Provision)
	v1.POST("/keypairs/import", keyPairHandler.Import)
	v1.GET("/keypairs/:id", keyPairHandler.GetByID)
	v1.POST("/keypairs/:id/encrypt", keyPairHandler.Encrypt)
	v1.POST("/keypairs/:id/decrypt", keyPairHandler.Decrypt)
	v1.POST("/keypairs/:id/sign", keyPairHandler.Sign)
	v1.POST("/keypairs/:id/verify", keyPairHandler.Verify)
}
