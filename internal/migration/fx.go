package migration

import (
	"github.com/salesavor/salesavor/internal/config"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		return conn.AutoMigrate(&profiledomain.UserProfile{})
	}),
)
