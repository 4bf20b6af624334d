package models

import (
	"time"

	"keypair_vault_service/internal/domain/keypair"
)

// KeyPairModel is the GORM database model for persisted key pairs
// (infrastructure concern). The identifier is the primary key, so the
// store's no-overwrite rule is also enforced by the schema.
type KeyPairModel struct {
	Identifier      string    `gorm:"primaryKey;type:varchar(255)"`
	PublicMaterial  []byte    `gorm:"not null"`
	PrivateMaterial []byte    `gorm:"not null"`
	KeySizeBits     int       `gorm:"not null;type:integer"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts the GORM model to the domain record.
func (m *KeyPairModel) ToDomain() *keypair.StoredKeyPair {
	return &keypair.StoredKeyPair{
		Identifier:      m.Identifier,
		PublicMaterial:  m.PublicMaterial,
		PrivateMaterial: m.PrivateMaterial,
		KeySizeBits:     m.KeySizeBits,
	}
}

// FromDomain converts the domain record to the GORM model.
func (m *KeyPairModel) FromDomain(r *keypair.StoredKeyPair) {
	m.Identifier = r.Identifier
	m.PublicMaterial = r.PublicMaterial
	m.PrivateMaterial = r.PrivateMaterial
	m.KeySizeBits = r.KeySizeBits
	m.DateTimeCreated = time.Now().UTC()
}
