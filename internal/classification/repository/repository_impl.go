package repository

import (
	"context"

	"github.com/smallbiznis/sapbridge/internal/classification/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.UnspscCode, error) {
	var row domain.UnspscCode
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, created_at
		 FROM unspsc_codes WHERE code = ? LIMIT 1`,
		code,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}
