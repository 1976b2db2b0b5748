package migration

import (
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	"github.com/smallbiznis/sapbridge/internal/config"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
	"github.com/smallbiznis/sapbridge/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		// Versioned migrations run against postgres only; sqlite and mysql
		// deployments build their schema from the gorm models instead.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			err := conn.AutoMigrate(
				&credentialdomain.Credential{},
				&contactdomain.Contact{},
				&classificationdomain.UnspscCode{},
				&productdomain.Product{},
				&productdomain.ProductTax{},
				&inventorydomain.StockLocation{},
				&inventorydomain.StockAdjustment{},
				&inventorydomain.StockAdjustmentLine{},
			)
			if err != nil {
				return err
			}
		}

		if err := seed.EnsureDefaultStockLocation(conn); err != nil {
			return err
		}
		if err := seed.EnsureUnspscCodes(conn); err != nil {
			return err
		}
		return seed.EnsureBootstrapCredential(conn, log)
	}),
)
