package repository

import (
	"context"

	"github.com/smallbiznis/sapbridge/internal/inventory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindLocationByName(ctx context.Context, db *gorm.DB, completeName string) (*domain.StockLocation, error) {
	var location domain.StockLocation
	err := db.WithContext(ctx).Raw(
		`SELECT id, complete_name, created_at
		 FROM stock_locations WHERE complete_name = ? LIMIT 1`,
		completeName,
	).Scan(&location).Error
	if err != nil {
		return nil, err
	}
	if location.ID == 0 {
		return nil, nil
	}
	return &location, nil
}

func (r *repo) InsertAdjustment(ctx context.Context, db *gorm.DB, adjustment *domain.StockAdjustment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO stock_adjustments (id, name, location_id, product_id, state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		adjustment.ID,
		adjustment.Name,
		adjustment.LocationID,
		adjustment.ProductID,
		adjustment.State,
		adjustment.CreatedAt,
	).Error
}

func (r *repo) InsertAdjustmentLine(ctx context.Context, db *gorm.DB, line *domain.StockAdjustmentLine) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO stock_adjustment_lines (id, adjustment_id, product_id, location_id, theoretical_qty, product_qty, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		line.ID,
		line.AdjustmentID,
		line.ProductID,
		line.LocationID,
		line.TheoreticalQty,
		line.ProductQty,
		line.CreatedAt,
	).Error
}
