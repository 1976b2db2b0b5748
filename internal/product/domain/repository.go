package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByIDSecundarioSAP(ctx context.Context, db *gorm.DB, idSecundarioSAP string) (*Product, error)
	// ReplaceTaxes overwrites the full tax association set for a product.
	ReplaceTaxes(ctx context.Context, db *gorm.DB, productID snowflake.ID, taxIDs []int64) error
	ListTaxes(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]int64, error)
}
