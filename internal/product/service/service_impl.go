package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultProductType   = "consu"
	defaultInvoicePolicy = "order"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         productdomain.Repository
	Classifier   classificationdomain.Resolver
	InventorySvc inventorydomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         productdomain.Repository
	classifier   classificationdomain.Resolver
	inventorySvc inventorydomain.Service
}

func New(p Params) productdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("product.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		classifier:   p.Classifier,
		inventorySvc: p.InventorySvc,
	}
}

func (s *Service) Create(ctx context.Context, req productdomain.CreateProductRequest) (productdomain.CreateProductResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return productdomain.CreateProductResult{}, productdomain.ErrInvalidName
	}

	idSecundario := strings.TrimSpace(req.IDSecundarioSAP)
	if idSecundario == "" {
		return productdomain.CreateProductResult{}, productdomain.ErrInvalidIDSecundarioSAP
	}

	// Resolve the classification code before touching the products table so
	// a bad code never reads as a persistence failure.
	var unspscCodeID *snowflake.ID
	if strings.TrimSpace(req.UnspscCodeSAT) != "" {
		resolved, err := s.classifier.Resolve(ctx, req.UnspscCodeSAT)
		if err != nil {
			return productdomain.CreateProductResult{}, err
		}
		unspscCodeID = &resolved
	}

	now := time.Now().UTC()
	product := productdomain.Product{
		ID:              s.genID.Generate(),
		IDSecundarioSAP: idSecundario,
		Name:            name,
		SaleOK:          true,
		PurchaseOK:      true,
		Type:            defaultProductType,
		InvoicePolicy:   defaultInvoicePolicy,
		ListPrice:       decimal.Zero,
		StandardPrice:   decimal.Zero,
		UomID:           req.UomID,
		CategID:         req.CategID,
		DefaultCode:     req.DefaultCode,
		UnspscCodeID:    unspscCodeID,
		IsStorable:      req.IsStorable,
		QtyAvailable:    decimal.Zero,
		PronosticadoSAP: decimal.Zero,
		Metadata:        datatypes.JSONMap{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.SaleOK != nil {
		product.SaleOK = *req.SaleOK
	}
	if req.PurchaseOK != nil {
		product.PurchaseOK = *req.PurchaseOK
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) != "" {
		product.Type = strings.TrimSpace(*req.Type)
	}
	if req.InvoicePolicy != nil && strings.TrimSpace(*req.InvoicePolicy) != "" {
		product.InvoicePolicy = strings.TrimSpace(*req.InvoicePolicy)
	}
	if req.ListPrice != nil {
		product.ListPrice = *req.ListPrice
	}
	if req.StandardPrice != nil {
		product.StandardPrice = *req.StandardPrice
	}
	if req.QtyAvailable != nil {
		product.QtyAvailable = *req.QtyAvailable
	}
	if req.PronosticadoSAP != nil {
		product.PronosticadoSAP = *req.PronosticadoSAP
	}
	if len(req.Metadata) > 0 {
		product.Metadata = datatypes.JSONMap(req.Metadata)
	}

	var adjustmentID snowflake.ID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &product); err != nil {
			return err
		}

		if err := s.repo.ReplaceTaxes(ctx, tx, product.ID, req.TaxIDs); err != nil {
			return err
		}

		if req.QtyAvailable != nil && req.QtyAvailable.IsPositive() {
			id, err := s.inventorySvc.AdjustInitial(ctx, tx, product.ID, *req.QtyAvailable)
			if err != nil {
				return err
			}
			adjustmentID = id
		}

		return nil
	})
	if err != nil {
		return productdomain.CreateProductResult{}, err
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("id_secundario_sap", product.IDSecundarioSAP),
	)

	result := productdomain.CreateProductResult{Product: product}
	if adjustmentID != 0 {
		result.AdjustmentID = adjustmentID.String()
	}
	return result, nil
}

func (s *Service) GetByIDSecundarioSAP(ctx context.Context, idSecundarioSAP string) (productdomain.Product, []int64, error) {
	idSecundario := strings.TrimSpace(idSecundarioSAP)
	if idSecundario == "" {
		return productdomain.Product{}, nil, productdomain.ErrInvalidIDSecundarioSAP
	}

	product, err := s.repo.FindByIDSecundarioSAP(ctx, s.db, idSecundario)
	if err != nil {
		return productdomain.Product{}, nil, err
	}
	if product == nil {
		return productdomain.Product{}, nil, &productdomain.NotFoundError{IDSecundarioSAP: idSecundario}
	}

	taxIDs, err := s.repo.ListTaxes(ctx, s.db, product.ID)
	if err != nil {
		return productdomain.Product{}, nil, err
	}

	return *product, taxIDs, nil
}
