package main

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a starter config file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlainln("✓ Fichier de configuration créé: %s", path)
}

// SetupDatabase creates the local database and applies pending migrations,
// or rolls the latest one back with --rollback.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open local database: %w", err)
		}
		r.db = db
	}

	if cmd.Bool("rollback") {
		if err := shared.RollbackMigration(r.db); err != nil {
			return err
		}
		return r.writePlainln("✓ Dernière migration annulée")
	}

	if err := shared.RunMigrations(r.db); err != nil {
		return err
	}
	return r.writePlainln("✓ Base de données locale prête: %s", r.config.Database.Path)
}
