//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvisionKeyPairRequestValidation(t *testing.T) {
	tests := []struct {
		name          string
		request       ProvisionKeyPairRequest
		expectedError bool
	}{
		{
			name:          "valid with identifier",
			request:       ProvisionKeyPairRequest{Identifier: "alice-device-1", KeySizeBits: 2048},
			expectedError: false,
		},
		{
			name:          "valid without identifier",
			request:       ProvisionKeyPairRequest{KeySizeBits: 2048},
			expectedError: false,
		},
		{
			name:          "missing key size",
			request:       ProvisionKeyPairRequest{Identifier: "alice-device-1"},
			expectedError: true,
		},
		{
			name:          "unsupported key size",
			request:       ProvisionKeyPairRequest{Identifier: "alice-device-1", KeySizeBits: 999},
			expectedError: true,
		},
		{
			name:          "identifier too long",
			request:       ProvisionKeyPairRequest{Identifier: strings.Repeat("a", 256), KeySizeBits: 2048},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImportKeyPairRequestValidation(t *testing.T) {
	valid := ImportKeyPairRequest{
		Identifier:         "imported-device",
		PrivateKeyMaterial: []byte("private-der-bytes"),
		PublicKeyMaterial:  []byte("public-der-bytes"),
		KeySizeBits:        2048,
	}

	tests := []struct {
		name          string
		mutate        func(r *ImportKeyPairRequest)
		expectedError bool
	}{
		{
			name:          "valid",
			mutate:        func(r *ImportKeyPairRequest) {},
			expectedError: false,
		},
		{
			name:          "missing identifier",
			mutate:        func(r *ImportKeyPairRequest) { r.Identifier = "" },
			expectedError: true,
		},
		{
			name:          "missing private material",
			mutate:        func(r *ImportKeyPairRequest) { r.PrivateKeyMaterial = nil },
			expectedError: true,
		},
		{
			name:          "missing public material",
			mutate:        func(r *ImportKeyPairRequest) { r.PublicKeyMaterial = nil },
			expectedError: true,
		},
		{
			name:          "unsupported key size",
			mutate:        func(r *ImportKeyPairRequest) { r.KeySizeBits = 768 },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
