package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  inventorydomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  inventorydomain.Repository
}

func New(p Params) inventorydomain.Service {
	return &Service{
		log:   p.Log.Named("inventory.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) AdjustInitial(ctx context.Context, tx *gorm.DB, productID snowflake.ID, qty decimal.Decimal) (snowflake.ID, error) {
	location, err := s.repo.FindLocationByName(ctx, tx, inventorydomain.DefaultLocationName)
	if err != nil {
		return 0, err
	}
	if location == nil {
		return 0, &inventorydomain.LocationNotFoundError{Name: inventorydomain.DefaultLocationName}
	}

	now := time.Now().UTC()
	adjustment := &inventorydomain.StockAdjustment{
		ID:         s.genID.Generate(),
		Name:       fmt.Sprintf("Ajuste API producto %d", productID),
		LocationID: location.ID,
		ProductID:  productID,
		State:      inventorydomain.AdjustmentStateValidated,
		CreatedAt:  now,
	}

	if err := s.repo.InsertAdjustment(ctx, tx, adjustment); err != nil {
		return 0, err
	}

	line := &inventorydomain.StockAdjustmentLine{
		ID:             s.genID.Generate(),
		AdjustmentID:   adjustment.ID,
		ProductID:      productID,
		LocationID:     location.ID,
		TheoreticalQty: decimal.Zero,
		ProductQty:     qty,
		CreatedAt:      now,
	}

	if err := s.repo.InsertAdjustmentLine(ctx, tx, line); err != nil {
		return 0, err
	}

	s.log.Info("initial stock adjusted",
		zap.String("adjustment_id", adjustment.ID.String()),
		zap.String("product_id", productID.String()),
		zap.String("qty", qty.String()),
	)

	return adjustment.ID, nil
}
