package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeValidation validates that a field holds a supported RSA modulus
// size in bits.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	switch keySize {
	case 512, 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
