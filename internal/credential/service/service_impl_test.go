package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	credentialrepository "github.com/smallbiznis/sapbridge/internal/credential/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCredentialService(t *testing.T) credentialdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&credentialdomain.Credential{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  credentialrepository.Provide(),
	})
}

func TestAuthenticateValidPair(t *testing.T) {
	svc := setupCredentialService(t)
	ctx := context.Background()

	issued, err := svc.Create(ctx, credentialdomain.CreateRequest{Name: "sap-prod"})
	require.NoError(t, err)

	require.NoError(t, svc.Authenticate(ctx, issued.Key, issued.Secret))
}

func TestAuthenticateRejectsMixedPairs(t *testing.T) {
	svc := setupCredentialService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, credentialdomain.CreateRequest{Name: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, credentialdomain.CreateRequest{Name: "second"})
	require.NoError(t, err)

	// Key from one credential with the secret of another must not match.
	err = svc.Authenticate(ctx, first.Key, second.Secret)
	assert.ErrorIs(t, err, credentialdomain.ErrInvalidCredentials)
}

func TestAuthenticateMissingValues(t *testing.T) {
	svc := setupCredentialService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Authenticate(ctx, "", ""), credentialdomain.ErrMissingCredentials)
	assert.ErrorIs(t, svc.Authenticate(ctx, "key-only", ""), credentialdomain.ErrMissingCredentials)
	assert.ErrorIs(t, svc.Authenticate(ctx, "  ", "  "), credentialdomain.ErrMissingCredentials)
}

func TestAuthenticateUnknownPair(t *testing.T) {
	svc := setupCredentialService(t)

	err := svc.Authenticate(context.Background(), "nope", "nada")
	assert.ErrorIs(t, err, credentialdomain.ErrInvalidCredentials)
}

func TestDeactivateRevokesAccess(t *testing.T) {
	svc := setupCredentialService(t)
	ctx := context.Background()

	issued, err := svc.Create(ctx, credentialdomain.CreateRequest{Name: "rotating"})
	require.NoError(t, err)
	require.NoError(t, svc.Authenticate(ctx, issued.Key, issued.Secret))

	require.NoError(t, svc.Deactivate(ctx, issued.ID))

	err = svc.Authenticate(ctx, issued.Key, issued.Secret)
	assert.ErrorIs(t, err, credentialdomain.ErrInvalidCredentials)
}

func TestCreateGeneratesPrefixedTokens(t *testing.T) {
	svc := setupCredentialService(t)

	issued, err := svc.Create(context.Background(), credentialdomain.CreateRequest{Name: "sap"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(issued.Key, "sap_live_key_"))
	assert.True(t, strings.HasPrefix(issued.Secret, "sap_live_secret_"))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sap", list[0].Name)
	assert.True(t, list[0].Active)
}

func TestCreateHonorsSuppliedPair(t *testing.T) {
	svc := setupCredentialService(t)
	ctx := context.Background()

	issued, err := svc.Create(ctx, credentialdomain.CreateRequest{
		Name:   "configured",
		Key:    "K1",
		Secret: "S1",
	})
	require.NoError(t, err)
	assert.Equal(t, "K1", issued.Key)
	assert.Equal(t, "S1", issued.Secret)

	require.NoError(t, svc.Authenticate(ctx, "K1", "S1"))
}

func TestCreateRequiresName(t *testing.T) {
	svc := setupCredentialService(t)

	_, err := svc.Create(context.Background(), credentialdomain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, credentialdomain.ErrInvalidName)
}
