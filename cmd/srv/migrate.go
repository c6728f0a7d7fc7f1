package main

import (
	"context"

	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	server.loadConfig(ct)
	server.loadLogger()
	server.loadDatabase()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.cfg)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	if err := repository.MigrateTable(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
