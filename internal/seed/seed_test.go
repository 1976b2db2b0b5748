package seed

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&credentialdomain.Credential{},
		&classificationdomain.UnspscCode{},
		&inventorydomain.StockLocation{},
	))
	return db
}

func TestEnsureDefaultStockLocationIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, EnsureDefaultStockLocation(db))
	require.NoError(t, EnsureDefaultStockLocation(db))

	var count int64
	require.NoError(t, db.Model(&inventorydomain.StockLocation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var location inventorydomain.StockLocation
	require.NoError(t, db.First(&location).Error)
	assert.Equal(t, "WH/Stock", location.CompleteName)
}

func TestEnsureUnspscCodesKeepsExistingRows(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, EnsureUnspscCodes(db))

	var before []classificationdomain.UnspscCode
	require.NoError(t, db.Order("code").Find(&before).Error)
	require.NotEmpty(t, before)

	require.NoError(t, EnsureUnspscCodes(db))

	var after []classificationdomain.UnspscCode
	require.NoError(t, db.Order("code").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestEnsureBootstrapCredentialOnlyOnEmptyTable(t *testing.T) {
	db := setupSeedDB(t)
	log := zap.NewNop()

	require.NoError(t, EnsureBootstrapCredential(db, log))

	var count int64
	require.NoError(t, db.Model(&credentialdomain.Credential{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	var credential credentialdomain.Credential
	require.NoError(t, db.First(&credential).Error)
	assert.True(t, credential.Active)
	assert.Contains(t, credential.Key, "sap_live_key_")
	assert.Contains(t, credential.Secret, "sap_live_secret_")

	// A populated table means the operator manages credentials already.
	require.NoError(t, EnsureBootstrapCredential(db, log))
	require.NoError(t, db.Model(&credentialdomain.Credential{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
