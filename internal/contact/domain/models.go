package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Contact mirrors the partner record the SAP integration maintains.
// IDSecondary is SAP's durable key for the record and is immutable once set;
// the remaining optional columns carry Mexican fiscal and address data
// through unchanged.
type Contact struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	IDSecondary int64        `gorm:"column:id_secondary;not null;uniqueIndex:ux_contacts_id_secondary" json:"id_secondary"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Email       string       `gorm:"type:text;not null" json:"email"`
	Phone       string       `gorm:"type:text;not null" json:"phone"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CompanyType *string      `gorm:"type:text" json:"company_type,omitempty"`
	ParentID    *int64       `gorm:"column:parent_id" json:"parent_id,omitempty"`
	Street      *string      `gorm:"type:text" json:"street,omitempty"`
	Street2     *string      `gorm:"type:text" json:"street2,omitempty"`
	CityID      *int64       `gorm:"column:city_id" json:"city_id,omitempty"`
	City        *string      `gorm:"type:text" json:"city,omitempty"`
	StateID     *int64       `gorm:"column:state_id" json:"state_id,omitempty"`
	Zip         *string      `gorm:"type:text" json:"zip,omitempty"`
	CountryID   *int64       `gorm:"column:country_id" json:"country_id,omitempty"`
	VAT         *string      `gorm:"column:vat;type:text" json:"vat,omitempty"`
	EdiUsage    *string      `gorm:"column:l10n_mx_edi_usage;type:text" json:"l10n_mx_edi_usage,omitempty"`
	// FiscalRegime is the SAT fiscal regime code carried for CFDI invoicing.
	FiscalRegime    *string           `gorm:"column:l10n_mx_edi_fiscal_regime;type:text" json:"l10n_mx_edi_fiscal_regime,omitempty"`
	PaymentMethodID *int64            `gorm:"column:l10n_mx_edi_payment_method_id" json:"l10n_mx_edi_payment_method_id,omitempty"`
	PaymentTermID   *int64            `gorm:"column:property_payment_term_id" json:"property_payment_term_id,omitempty"`
	PricelistID     *int64            `gorm:"column:property_product_pricelist" json:"property_product_pricelist,omitempty"`
	SalespersonID   *int64            `gorm:"column:user_id" json:"user_id,omitempty"`
	Lang            string            `gorm:"type:text;not null;default:'es_MX'" json:"lang"`
	Ref             *string           `gorm:"type:text" json:"ref,omitempty"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Contact) TableName() string { return "contacts" }
