package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindLocationByName(ctx context.Context, db *gorm.DB, completeName string) (*StockLocation, error)
	InsertAdjustment(ctx context.Context, db *gorm.DB, adjustment *StockAdjustment) error
	InsertAdjustmentLine(ctx context.Context, db *gorm.DB, line *StockAdjustmentLine) error
}
