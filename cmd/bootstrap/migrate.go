package bootstrap

import (
	"errors"
	"fmt"

	"medical-appointment-api/config"
	"medical-appointment-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// Migrate connects to postgres and applies or rolls back migrations.
func Migrate(cfg *config.Config, direction MigrateDirection) error {
	if cfg.DB.Driver != config.StoreDriverPostgres {
		return errors.New("migrations require STORE_DRIVER=postgres")
	}

	log := NewLogger(cfg.Log)
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	return RunMigrations(db, log, direction)
}

func RunMigrations(db *gorm.DB, log *logrus.Logger, direction MigrateDirection) error {
	migrator, err := database.NewMigrator(db, log)
	if err != nil {
		return err
	}

	switch direction {
	case MigrateUp:
		return migrator.Up()
	case MigrateDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}
