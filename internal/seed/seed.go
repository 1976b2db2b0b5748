package seed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	pkgdb "github.com/smallbiznis/sapbridge/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bootstrapCredentialName = "bootstrap"

// referenceCodes is a minimal UNSPSC slice so a fresh install can
// classify the common SAT codes without loading the full catalog.
var referenceCodes = []classificationdomain.UnspscCode{
	{Code: "01010101", Name: "Live animals"},
	{Code: "14111500", Name: "Printing and writing paper"},
	{Code: "43211500", Name: "Computers"},
	{Code: "50202306", Name: "Bottled water"},
	{Code: "78101800", Name: "Road cargo transport"},
}

// EnsureDefaultStockLocation creates the warehouse location inventory
// adjustments post against if it is not present yet.
func EnsureDefaultStockLocation(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location inventorydomain.StockLocation
		err := tx.WithContext(ctx).
			Where("complete_name = ?", inventorydomain.DefaultLocationName).
			First(&location).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		location = inventorydomain.StockLocation{
			ID:           node.Generate(),
			CompleteName: inventorydomain.DefaultLocationName,
			CreatedAt:    time.Now().UTC(),
		}
		// Another instance may have seeded the row between the read and
		// the write.
		if err := tx.WithContext(ctx).Create(&location).Error; err != nil && !pkgdb.IsDuplicateKeyErr(err) {
			return err
		}
		return nil
	})
}

// EnsureUnspscCodes loads the built-in classification reference rows.
// Existing codes are left untouched.
func EnsureUnspscCodes(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range referenceCodes {
			var existing classificationdomain.UnspscCode
			err := tx.WithContext(ctx).
				Where("code = ?", ref.Code).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			row := classificationdomain.UnspscCode{
				ID:        node.Generate(),
				Code:      ref.Code,
				Name:      ref.Name,
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.WithContext(ctx).Create(&row).Error; err != nil && !pkgdb.IsDuplicateKeyErr(err) {
				return err
			}
		}
		return nil
	})
}

// EnsureBootstrapCredential issues an initial API key pair when the
// credential table is empty, and logs it exactly once so the operator
// can reach the admin endpoints. Every route requires a valid pair, so
// without this a fresh install would be locked out.
func EnsureBootstrapCredential(db *gorm.DB, log *zap.Logger) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var count int64
	if err := db.WithContext(ctx).Model(&credentialdomain.Credential{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	key, err := randomToken("sap_live_key_")
	if err != nil {
		return err
	}
	secret, err := randomToken("sap_live_secret_")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	credential := credentialdomain.Credential{
		ID:        node.Generate(),
		Name:      bootstrapCredentialName,
		Key:       key,
		Secret:    secret,
		Active:    true,
		Notes:     "issued automatically on first startup",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(&credential).Error; err != nil {
		return err
	}

	log.Info("bootstrap credential issued",
		zap.String("name", bootstrapCredentialName),
		zap.String("api_key", key),
		zap.String("secret_key", secret),
	)
	return nil
}

func randomToken(prefix string) (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(raw), nil
}
