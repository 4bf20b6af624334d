//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keypair_vault_service/internal/domain/keypair"
)

func TestKeyPairModel_TableName(t *testing.T) {
	assert.Equal(t, "key_pairs", KeyPairModel{}.TableName())
}

func TestKeyPairModel_RoundTrip(t *testing.T) {
	record := &keypair.StoredKeyPair{
		Identifier:      "alice-device-1",
		PublicMaterial:  []byte("public-der-bytes"),
		PrivateMaterial: []byte("private-der-bytes"),
		KeySizeBits:     2048,
	}

	model := &KeyPairModel{}
	model.FromDomain(record)
	assert.False(t, model.DateTimeCreated.IsZero())

	back := model.ToDomain()
	assert.Equal(t, record, back)
}
