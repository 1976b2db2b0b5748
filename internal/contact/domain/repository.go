package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, contact *Contact) error
	Update(ctx context.Context, db *gorm.DB, contact *Contact) error
	FindByIDSecondary(ctx context.Context, db *gorm.DB, idSecondary int64) (*Contact, error)
}
