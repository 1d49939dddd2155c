package main

import (
	"context"

	"github.com/kurochkinivan/finsight/internal/app"
	"github.com/kurochkinivan/finsight/internal/config"
	"github.com/urfave/cli/v3"
)

func serveCommand(configFile *string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Watch the inbox directory and serve the HTTP API",
		Flags: append(serveFlags(configFile), postgresFlags(configFile)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			return app.New(log, config.Load(cmd)).Run(ctx)
		},
	}
}
