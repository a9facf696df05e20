package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"mosql_gen/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the MoSQL collection map over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides server.addr)",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Close()

	addr := a.cfg.Server.Addr
	if cmd.String("addr") != "" {
		addr = cmd.String("addr")
	}

	handler := server.NewHandler(a.source, a.generator, a.schemaName, a.log)
	srv := server.New(addr, a.cfg.Server.Path, handler, a.cfg.Server.ShutdownTimeout, a.log)

	a.log.Info("Application started successfully")
	return srv.Run(ctx)
}
