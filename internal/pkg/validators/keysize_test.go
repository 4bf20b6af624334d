//go:build unit
// +build unit

package validators

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSAKeySizeValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("rsa_keysize", RSAKeySizeValidation))

	type payload struct {
		KeySizeBits int `validate:"rsa_keysize"`
	}

	tests := []struct {
		keySize int
		valid   bool
	}{
		{512, true},
		{1024, true},
		{2048, true},
		{3072, true},
		{4096, true},
		{0, false},
		{768, false},
		{2047, false},
		{8192, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.keySize), func(t *testing.T) {
			err := validate.Struct(payload{KeySizeBits: tt.keySize})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
