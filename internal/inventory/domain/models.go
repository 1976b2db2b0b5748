package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// StockLocation is the warehouse location stock adjustments post against.
// The integration expects the default location to exist before any
// quantity is received.
type StockLocation struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	CompleteName string       `gorm:"column:complete_name;type:text;not null;uniqueIndex:ux_stock_locations_complete_name" json:"complete_name"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (StockLocation) TableName() string { return "stock_locations" }

// StockAdjustment is the header of an inventory adjustment document.
type StockAdjustment struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"type:text;not null" json:"name"`
	LocationID snowflake.ID `gorm:"column:location_id;not null" json:"location_id"`
	ProductID  snowflake.ID `gorm:"column:product_id;not null" json:"product_id"`
	State      string       `gorm:"type:text;not null" json:"state"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (StockAdjustment) TableName() string { return "stock_adjustments" }

// StockAdjustmentLine records the counted quantity for one product.
type StockAdjustmentLine struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	AdjustmentID   snowflake.ID    `gorm:"column:adjustment_id;not null;index" json:"adjustment_id"`
	ProductID      snowflake.ID    `gorm:"column:product_id;not null" json:"product_id"`
	LocationID     snowflake.ID    `gorm:"column:location_id;not null" json:"location_id"`
	TheoreticalQty decimal.Decimal `gorm:"column:theoretical_qty;type:numeric(18,6);not null" json:"theoretical_qty"`
	ProductQty     decimal.Decimal `gorm:"column:product_qty;type:numeric(18,6);not null" json:"product_qty"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (StockAdjustmentLine) TableName() string { return "stock_adjustment_lines" }

const (
	AdjustmentStateDraft     = "draft"
	AdjustmentStateValidated = "validated"
)
