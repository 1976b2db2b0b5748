package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
	contactrepository "github.com/smallbiznis/sapbridge/internal/contact/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupContactService(t *testing.T) contactdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&contactdomain.Contact{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  contactrepository.Provide(),
	})
}

func strPtr(s string) *string { return &s }

func TestCreateContactAppliesDefaults(t *testing.T) {
	svc := setupContactService(t)

	contact, err := svc.Create(context.Background(), contactdomain.CreateContactRequest{
		IDSecondary: 1001,
		Name:        "Comercial del Norte",
		Email:       "compras@delnorte.mx",
		Phone:       "+52 81 1234 5678",
	})
	require.NoError(t, err)

	assert.True(t, contact.Active)
	assert.Equal(t, "es_MX", contact.Lang)
	assert.Equal(t, int64(1001), contact.IDSecondary)
	assert.NotZero(t, contact.ID)
}

func TestCreateContactRejectsEmailWithoutAt(t *testing.T) {
	svc := setupContactService(t)

	_, err := svc.Create(context.Background(), contactdomain.CreateContactRequest{
		IDSecondary: 1002,
		Name:        "Bad Email",
		Email:       "not-an-email",
		Phone:       "555",
	})
	assert.ErrorIs(t, err, contactdomain.ErrInvalidEmail)
}

func TestCreateContactRequiredValues(t *testing.T) {
	svc := setupContactService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, contactdomain.CreateContactRequest{
		IDSecondary: 1, Email: "a@b.mx", Phone: "1",
	})
	assert.ErrorIs(t, err, contactdomain.ErrInvalidName)

	_, err = svc.Create(ctx, contactdomain.CreateContactRequest{
		IDSecondary: 1, Name: "x", Email: "a@b.mx",
	})
	assert.ErrorIs(t, err, contactdomain.ErrInvalidPhone)

	_, err = svc.Create(ctx, contactdomain.CreateContactRequest{
		Name: "x", Email: "a@b.mx", Phone: "1",
	})
	assert.ErrorIs(t, err, contactdomain.ErrInvalidIDSecondary)
}

func TestUpdateContactPatchesOnlySuppliedFields(t *testing.T) {
	svc := setupContactService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, contactdomain.CreateContactRequest{
		IDSecondary: 2001,
		Name:        "Original",
		Email:       "original@corp.mx",
		Phone:       "111",
		Street:      strPtr("Av. Reforma 1"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, contactdomain.UpdateContactRequest{
		IDSecondary: 2001,
		Name:        "Renombrado",
		Phone:       strPtr("222"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", updated.Name)
	assert.Equal(t, "222", updated.Phone)
	// Fields absent from the request keep their stored values.
	assert.Equal(t, "original@corp.mx", updated.Email)
	require.NotNil(t, updated.Street)
	assert.Equal(t, "Av. Reforma 1", *updated.Street)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateContactKeepsIDSecondary(t *testing.T) {
	svc := setupContactService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, contactdomain.CreateContactRequest{
		IDSecondary: 2002,
		Name:        "Fixed Key",
		Email:       "fixed@corp.mx",
		Phone:       "333",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, contactdomain.UpdateContactRequest{
		IDSecondary: 2002,
		Name:        "Still Fixed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2002), updated.IDSecondary)

	found, err := svc.GetByIDSecondary(ctx, 2002)
	require.NoError(t, err)
	assert.Equal(t, "Still Fixed", found.Name)
}

func TestUpdateContactUnknownIDSecondary(t *testing.T) {
	svc := setupContactService(t)

	_, err := svc.Update(context.Background(), contactdomain.UpdateContactRequest{
		IDSecondary: 9999,
		Name:        "Ghost",
	})
	require.Error(t, err)

	var notFound *contactdomain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Contact with id_secondary 9999 not found", err.Error())
}

func TestUpdateContactRevalidatesEmail(t *testing.T) {
	svc := setupContactService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, contactdomain.CreateContactRequest{
		IDSecondary: 2003,
		Name:        "Mail Check",
		Email:       "ok@corp.mx",
		Phone:       "444",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, contactdomain.UpdateContactRequest{
		IDSecondary: 2003,
		Name:        "Mail Check",
		Email:       strPtr("broken"),
	})
	assert.ErrorIs(t, err, contactdomain.ErrInvalidEmail)
}

func TestGetByIDSecondaryMissing(t *testing.T) {
	svc := setupContactService(t)

	_, err := svc.GetByIDSecondary(context.Background(), 404404)
	var notFound *contactdomain.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
