package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sapbridge/internal/classification"
	"github.com/smallbiznis/sapbridge/internal/config"
	"github.com/smallbiznis/sapbridge/internal/contact"
	"github.com/smallbiznis/sapbridge/internal/credential"
	"github.com/smallbiznis/sapbridge/internal/inventory"
	"github.com/smallbiznis/sapbridge/internal/logger"
	"github.com/smallbiznis/sapbridge/internal/migration"
	"github.com/smallbiznis/sapbridge/internal/product"
	"github.com/smallbiznis/sapbridge/internal/server"
	"github.com/smallbiznis/sapbridge/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// Domain services behind the integration endpoints
		credential.Module,
		classification.Module,
		inventory.Module,
		contact.Module,
		product.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
