package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	classificationrepository "github.com/smallbiznis/sapbridge/internal/classification/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupResolver(t *testing.T) (classificationdomain.Resolver, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&classificationdomain.UnspscCode{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	resolver := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: classificationrepository.Provide(),
	})
	return resolver, db, node
}

func seedCode(t *testing.T, db *gorm.DB, node *snowflake.Node, code string) snowflake.ID {
	t.Helper()
	row := classificationdomain.UnspscCode{
		ID:        node.Generate(),
		Code:      code,
		Name:      "seeded " + code,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&row).Error)
	return row.ID
}

func TestResolvePadsShortCodes(t *testing.T) {
	resolver, db, node := setupResolver(t)
	want := seedCode(t, db, node, "00000085")

	got, err := resolver.Resolve(context.Background(), "85")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveFullWidthCode(t *testing.T) {
	resolver, db, node := setupResolver(t)
	want := seedCode(t, db, node, "43211500")

	got, err := resolver.Resolve(context.Background(), "43211500")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveUnknownCode(t *testing.T) {
	resolver, _, _ := setupResolver(t)

	_, err := resolver.Resolve(context.Background(), "99")
	require.Error(t, err)

	var notFound *classificationdomain.CodeNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "00000099", notFound.Code)
	assert.Equal(t, "UNSPSC code 00000099 not found in unspsc_codes table", err.Error())
}

func TestResolveEmptyCodeSkipsLookup(t *testing.T) {
	resolver, _, _ := setupResolver(t)

	got, err := resolver.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(0), got)
}

func TestNormalizeSATCode(t *testing.T) {
	cases := map[string]string{
		"85":        "00000085",
		"4321150":   "04321150",
		"43211500":  "43211500",
		"432115001": "432115001",
		" 85 ":      "00000085",
		"":          "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeSATCode(raw), "raw=%q", raw)
	}
}
