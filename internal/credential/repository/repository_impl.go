package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sapbridge/internal/credential/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, credential *domain.Credential) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO api_credentials (id, name, api_key, secret_key, active, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		credential.ID,
		credential.Name,
		credential.Key,
		credential.Secret,
		credential.Active,
		credential.Notes,
		credential.CreatedAt,
		credential.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, credential *domain.Credential) error {
	return db.WithContext(ctx).Exec(
		`UPDATE api_credentials
		 SET name = ?, active = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		credential.Name,
		credential.Active,
		credential.Notes,
		credential.UpdatedAt,
		credential.ID,
	).Error
}

func (r *repo) FindActiveByPair(ctx context.Context, db *gorm.DB, key, secret string) (*domain.Credential, error) {
	var credential domain.Credential
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, api_key, secret_key, active, notes, created_at, updated_at
		 FROM api_credentials WHERE api_key = ? AND secret_key = ? AND active = ? LIMIT 1`,
		key,
		secret,
		true,
	).Scan(&credential).Error
	if err != nil {
		return nil, err
	}
	if credential.ID == 0 {
		return nil, nil
	}
	return &credential, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Credential, error) {
	var credential domain.Credential
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, api_key, secret_key, active, notes, created_at, updated_at
		 FROM api_credentials WHERE id = ?`,
		id,
	).Scan(&credential).Error
	if err != nil {
		return nil, err
	}
	if credential.ID == 0 {
		return nil, nil
	}
	return &credential, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Credential, error) {
	var credentials []domain.Credential
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, api_key, secret_key, active, notes, created_at, updated_at
		 FROM api_credentials ORDER BY created_at DESC`,
	).Scan(&credentials).Error
	if err != nil {
		return nil, err
	}
	return credentials, nil
}
