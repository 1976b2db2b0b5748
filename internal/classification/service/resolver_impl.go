package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// unspscCodeWidth is the fixed width of internal classification codes.
// SAT codes arrive without leading zeros and are padded before lookup.
const unspscCodeWidth = 8

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo classificationdomain.Repository
}

type Resolver struct {
	db   *gorm.DB
	log  *zap.Logger
	repo classificationdomain.Repository
}

func New(p Params) classificationdomain.Resolver {
	return &Resolver{
		db:   p.DB,
		log:  p.Log.Named("classification.resolver"),
		repo: p.Repo,
	}
}

func (r *Resolver) Resolve(ctx context.Context, satCode string) (snowflake.ID, error) {
	code := NormalizeSATCode(satCode)
	if code == "" {
		return 0, nil
	}

	row, err := r.repo.FindByCode(ctx, r.db, code)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, &classificationdomain.CodeNotFoundError{Code: code}
	}

	return row.ID, nil
}

// NormalizeSATCode left-pads a SAT code with zeros to the internal width.
// Codes already at or beyond the width pass through unchanged.
func NormalizeSATCode(raw string) string {
	code := strings.TrimSpace(raw)
	if code == "" {
		return ""
	}
	for len(code) < unspscCodeWidth {
		code = "0" + code
	}
	return code
}
