package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sapbridge/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (
			id, id_secundario_sap, name, sale_ok, purchase_ok, type, invoice_policy,
			list_price, standard_price, uom_id, categ_id, default_code, unspsc_code_id,
			is_storable, qty_available, pronosticado_sap, metadata, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.IDSecundarioSAP,
		product.Name,
		product.SaleOK,
		product.PurchaseOK,
		product.Type,
		product.InvoicePolicy,
		product.ListPrice,
		product.StandardPrice,
		product.UomID,
		product.CategID,
		product.DefaultCode,
		product.UnspscCodeID,
		product.IsStorable,
		product.QtyAvailable,
		product.PronosticadoSAP,
		product.Metadata,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindByIDSecundarioSAP(ctx context.Context, db *gorm.DB, idSecundarioSAP string) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, id_secundario_sap, name, sale_ok, purchase_ok, type, invoice_policy,
		        list_price, standard_price, uom_id, categ_id, default_code, unspsc_code_id,
		        is_storable, qty_available, pronosticado_sap, metadata, created_at, updated_at
		 FROM products WHERE id_secundario_sap = ? LIMIT 1`,
		idSecundarioSAP,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

func (r *repo) ReplaceTaxes(ctx context.Context, db *gorm.DB, productID snowflake.ID, taxIDs []int64) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM product_taxes WHERE product_id = ?`,
		productID,
	).Error; err != nil {
		return err
	}

	for _, taxID := range taxIDs {
		if err := db.WithContext(ctx).Exec(
			`INSERT INTO product_taxes (product_id, tax_id) VALUES (?, ?)`,
			productID,
			taxID,
		).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *repo) ListTaxes(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]int64, error) {
	var taxIDs []int64
	err := db.WithContext(ctx).Raw(
		`SELECT tax_id FROM product_taxes WHERE product_id = ? ORDER BY tax_id ASC`,
		productID,
	).Scan(&taxIDs).Error
	if err != nil {
		return nil, err
	}
	return taxIDs, nil
}
