package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, credential *Credential) error
	Update(ctx context.Context, db *gorm.DB, credential *Credential) error
	FindActiveByPair(ctx context.Context, db *gorm.DB, key, secret string) (*Credential, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Credential, error)
	List(ctx context.Context, db *gorm.DB) ([]Credential, error)
}
