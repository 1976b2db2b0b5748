package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// UnspscCode is one row of the UNSPSC product classification reference
// table. SAT codes sent by SAP resolve against Code after zero-padding.
type UnspscCode struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Code      string       `gorm:"type:text;not null;uniqueIndex:ux_unspsc_codes_code" json:"code"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (UnspscCode) TableName() string { return "unspsc_codes" }
