package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/clock"
	"github.com/salesavor/salesavor/internal/config"
	"github.com/salesavor/salesavor/internal/migration"
	"github.com/salesavor/salesavor/internal/observability"
	"github.com/salesavor/salesavor/internal/server"
	"github.com/salesavor/salesavor/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
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
