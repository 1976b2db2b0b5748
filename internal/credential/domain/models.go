package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Credential is a named API key / secret key pair issued to an external
// integration. The gateway authenticates callers by exact pair equality,
// so both values are stored as configured by the administrator.
type Credential struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Key       string       `gorm:"column:api_key;type:text;not null;uniqueIndex:ux_api_credentials_pair,priority:1" json:"-"`
	Secret    string       `gorm:"column:secret_key;type:text;not null;uniqueIndex:ux_api_credentials_pair,priority:2" json:"-"`
	Active    bool         `gorm:"not null;default:true" json:"active"`
	Notes     string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Credential) TableName() string { return "api_credentials" }
