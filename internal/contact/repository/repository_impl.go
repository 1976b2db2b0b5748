package repository

import (
	"context"

	"github.com/smallbiznis/sapbridge/internal/contact/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO contacts (
			id, id_secondary, name, email, phone, active, company_type, parent_id,
			street, street2, city_id, city, state_id, zip, country_id, vat,
			l10n_mx_edi_usage, l10n_mx_edi_fiscal_regime, l10n_mx_edi_payment_method_id,
			property_payment_term_id, property_product_pricelist, user_id, lang, ref,
			metadata, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contact.ID,
		contact.IDSecondary,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Active,
		contact.CompanyType,
		contact.ParentID,
		contact.Street,
		contact.Street2,
		contact.CityID,
		contact.City,
		contact.StateID,
		contact.Zip,
		contact.CountryID,
		contact.VAT,
		contact.EdiUsage,
		contact.FiscalRegime,
		contact.PaymentMethodID,
		contact.PaymentTermID,
		contact.PricelistID,
		contact.SalespersonID,
		contact.Lang,
		contact.Ref,
		contact.Metadata,
		contact.CreatedAt,
		contact.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).Exec(
		`UPDATE contacts
		 SET name = ?, email = ?, phone = ?, active = ?, company_type = ?, parent_id = ?,
		     street = ?, street2 = ?, city_id = ?, city = ?, state_id = ?, zip = ?,
		     country_id = ?, vat = ?, l10n_mx_edi_usage = ?, l10n_mx_edi_fiscal_regime = ?,
		     l10n_mx_edi_payment_method_id = ?, property_payment_term_id = ?,
		     property_product_pricelist = ?, user_id = ?, lang = ?, ref = ?,
		     metadata = ?, updated_at = ?
		 WHERE id_secondary = ?`,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Active,
		contact.CompanyType,
		contact.ParentID,
		contact.Street,
		contact.Street2,
		contact.CityID,
		contact.City,
		contact.StateID,
		contact.Zip,
		contact.CountryID,
		contact.VAT,
		contact.EdiUsage,
		contact.FiscalRegime,
		contact.PaymentMethodID,
		contact.PaymentTermID,
		contact.PricelistID,
		contact.SalespersonID,
		contact.Lang,
		contact.Ref,
		contact.Metadata,
		contact.UpdatedAt,
		contact.IDSecondary,
	).Error
}

func (r *repo) FindByIDSecondary(ctx context.Context, db *gorm.DB, idSecondary int64) (*domain.Contact, error) {
	var contact domain.Contact
	err := db.WithContext(ctx).Raw(
		`SELECT id, id_secondary, name, email, phone, active, company_type, parent_id,
		        street, street2, city_id, city, state_id, zip, country_id, vat,
		        l10n_mx_edi_usage, l10n_mx_edi_fiscal_regime, l10n_mx_edi_payment_method_id,
		        property_payment_term_id, property_product_pricelist, user_id, lang, ref,
		        metadata, created_at, updated_at
		 FROM contacts WHERE id_secondary = ? LIMIT 1`,
		idSecondary,
	).Scan(&contact).Error
	if err != nil {
		return nil, err
	}
	if contact.ID == 0 {
		return nil, nil
	}
	return &contact, nil
}
