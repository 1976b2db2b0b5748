package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	classificationrepository "github.com/smallbiznis/sapbridge/internal/classification/repository"
	classificationservice "github.com/smallbiznis/sapbridge/internal/classification/service"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	inventoryrepository "github.com/smallbiznis/sapbridge/internal/inventory/repository"
	inventoryservice "github.com/smallbiznis/sapbridge/internal/inventory/service"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
	productrepository "github.com/smallbiznis/sapbridge/internal/product/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productFixture struct {
	svc  productdomain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func setupProductService(t *testing.T) productFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&classificationdomain.UnspscCode{},
		&productdomain.Product{},
		&productdomain.ProductTax{},
		&inventorydomain.StockLocation{},
		&inventorydomain.StockAdjustment{},
		&inventorydomain.StockAdjustmentLine{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	classifier := classificationservice.New(classificationservice.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: classificationrepository.Provide(),
	})
	inventorySvc := inventoryservice.New(inventoryservice.Params{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  inventoryrepository.Provide(),
	})
	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		GenID:        node,
		Repo:         productrepository.Provide(),
		Classifier:   classifier,
		InventorySvc: inventorySvc,
	})

	return productFixture{svc: svc, db: db, node: node}
}

func (f productFixture) seedLocation(t *testing.T) {
	t.Helper()
	location := inventorydomain.StockLocation{
		ID:           f.node.Generate(),
		CompleteName: inventorydomain.DefaultLocationName,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(&location).Error)
}

func (f productFixture) seedUnspsc(t *testing.T, code string) snowflake.ID {
	t.Helper()
	row := classificationdomain.UnspscCode{
		ID:        f.node.Generate(),
		Code:      code,
		Name:      "seeded " + code,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(&row).Error)
	return row.ID
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	f := setupProductService(t)

	result, err := f.svc.Create(context.Background(), productdomain.CreateProductRequest{
		Name:            "Tornillo 3/8",
		IDSecundarioSAP: "SAP-0001",
	})
	require.NoError(t, err)

	product := result.Product
	assert.True(t, product.SaleOK)
	assert.True(t, product.PurchaseOK)
	assert.Equal(t, "consu", product.Type)
	assert.Equal(t, "order", product.InvoicePolicy)
	assert.True(t, product.ListPrice.IsZero())
	assert.Empty(t, result.AdjustmentID)
}

func TestCreateProductResolvesSATCode(t *testing.T) {
	f := setupProductService(t)
	want := f.seedUnspsc(t, "00000085")

	result, err := f.svc.Create(context.Background(), productdomain.CreateProductRequest{
		Name:            "Clasificado",
		IDSecundarioSAP: "SAP-0002",
		UnspscCodeSAT:   "85",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Product.UnspscCodeID)
	assert.Equal(t, want, *result.Product.UnspscCodeID)
}

func TestCreateProductUnknownSATCodeWritesNothing(t *testing.T) {
	f := setupProductService(t)

	_, err := f.svc.Create(context.Background(), productdomain.CreateProductRequest{
		Name:            "Sin clasificar",
		IDSecundarioSAP: "SAP-0003",
		UnspscCodeSAT:   "77",
	})
	require.Error(t, err)

	var notFound *classificationdomain.CodeNotFoundError
	require.True(t, errors.As(err, &notFound))

	var count int64
	require.NoError(t, f.db.Model(&productdomain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductReplacesTaxSet(t *testing.T) {
	f := setupProductService(t)
	ctx := context.Background()

	result, err := f.svc.Create(ctx, productdomain.CreateProductRequest{
		Name:            "Gravado",
		IDSecundarioSAP: "SAP-0004",
		TaxIDs:          []int64{7, 3},
	})
	require.NoError(t, err)

	_, taxIDs, err := f.svc.GetByIDSecundarioSAP(ctx, "SAP-0004")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, taxIDs)
	assert.NotZero(t, result.Product.ID)
}

func TestCreateProductPositiveQtyPostsAdjustment(t *testing.T) {
	f := setupProductService(t)
	f.seedLocation(t)

	qty := decimal.NewFromInt(12)
	result, err := f.svc.Create(context.Background(), productdomain.CreateProductRequest{
		Name:            "Con stock",
		IDSecundarioSAP: "SAP-0005",
		QtyAvailable:    &qty,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.AdjustmentID)

	var adjustment inventorydomain.StockAdjustment
	require.NoError(t, f.db.First(&adjustment).Error)
	assert.Equal(t, inventorydomain.AdjustmentStateValidated, adjustment.State)
	assert.Equal(t, result.Product.ID, adjustment.ProductID)
	assert.Equal(t, fmt.Sprintf("Ajuste API producto %d", result.Product.ID), adjustment.Name)

	var line inventorydomain.StockAdjustmentLine
	require.NoError(t, f.db.First(&line).Error)
	assert.True(t, line.TheoreticalQty.IsZero())
	assert.True(t, line.ProductQty.Equal(qty))
}

func TestCreateProductMissingLocationRollsBack(t *testing.T) {
	f := setupProductService(t)

	qty := decimal.NewFromInt(5)
	_, err := f.svc.Create(context.Background(), productdomain.CreateProductRequest{
		Name:            "Sin bodega",
		IDSecundarioSAP: "SAP-0006",
		QtyAvailable:    &qty,
	})
	require.Error(t, err)

	var locErr *inventorydomain.LocationNotFoundError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, "Stock location WH/Stock not found", err.Error())

	// The product insert must roll back with the failed adjustment.
	var count int64
	require.NoError(t, f.db.Model(&productdomain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductRequiredValues(t *testing.T) {
	f := setupProductService(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, productdomain.CreateProductRequest{IDSecundarioSAP: "SAP-1"})
	assert.ErrorIs(t, err, productdomain.ErrInvalidName)

	_, err = f.svc.Create(ctx, productdomain.CreateProductRequest{Name: "x"})
	assert.ErrorIs(t, err, productdomain.ErrInvalidIDSecundarioSAP)
}

func TestGetByIDSecundarioSAPMissing(t *testing.T) {
	f := setupProductService(t)

	_, _, err := f.svc.GetByIDSecundarioSAP(context.Background(), "NOPE")
	var notFound *productdomain.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
