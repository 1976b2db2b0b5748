package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product mirrors the product template record maintained from SAP.
// IDSecundarioSAP is SAP's durable key for the product.
type Product struct {
	ID              snowflake.ID      `gorm:"primaryKey" json:"id"`
	IDSecundarioSAP string            `gorm:"column:id_secundario_sap;type:text;not null;uniqueIndex:ux_products_id_secundario_sap" json:"id_secundario_sap"`
	Name            string            `gorm:"type:text;not null" json:"name"`
	SaleOK          bool              `gorm:"column:sale_ok;not null;default:true" json:"sale_ok"`
	PurchaseOK      bool              `gorm:"column:purchase_ok;not null;default:true" json:"purchase_ok"`
	Type            string            `gorm:"type:text;not null;default:'consu'" json:"type"`
	InvoicePolicy   string            `gorm:"column:invoice_policy;type:text;not null;default:'order'" json:"invoice_policy"`
	ListPrice       decimal.Decimal   `gorm:"column:list_price;type:numeric(18,6);not null" json:"list_price"`
	StandardPrice   decimal.Decimal   `gorm:"column:standard_price;type:numeric(18,6);not null" json:"standard_price"`
	UomID           *int64            `gorm:"column:uom_id" json:"uom_id,omitempty"`
	CategID         *int64            `gorm:"column:categ_id" json:"categ_id,omitempty"`
	DefaultCode     *string           `gorm:"column:default_code;type:text" json:"default_code,omitempty"`
	UnspscCodeID    *snowflake.ID     `gorm:"column:unspsc_code_id" json:"unspsc_code_id,omitempty"`
	IsStorable      *bool             `gorm:"column:is_storable" json:"is_storable,omitempty"`
	QtyAvailable    decimal.Decimal   `gorm:"column:qty_available;type:numeric(18,6);not null" json:"qty_available"`
	PronosticadoSAP decimal.Decimal   `gorm:"column:pronosticado_sap;type:numeric(18,6);not null" json:"pronosticado_sap"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// ProductTax associates a product with one sale tax. The set is replaced
// wholesale on every write, never merged.
type ProductTax struct {
	ProductID snowflake.ID `gorm:"column:product_id;primaryKey" json:"product_id"`
	TaxID     int64        `gorm:"column:tax_id;primaryKey" json:"tax_id"`
}

// TableName sets the database table name.
func (ProductTax) TableName() string { return "product_taxes" }
