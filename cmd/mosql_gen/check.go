package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"mosql_gen/internal/connectors"
	"mosql_gen/internal/services/schema_check"
)

var ErrSchemaDrift = errors.New("target schema differs from the mapping")

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Compare the mapping with tables that already exist in the target database",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict-types",
				Usage: "also compare column types",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Close()

	dbCfg, err := a.cfg.FindDatabaseConfig(a.cfg.Check.TargetType, a.cfg.Check.TargetDB)
	if err != nil {
		return err
	}
	conn, err := connectors.NewConnector(a.cfg.Check.TargetType, *dbCfg)
	if err != nil {
		return err
	}
	if err := conn.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", dbCfg.Name, err)
	}
	defer conn.Disconnect()
	a.log.Infof("%s connection %s successful", a.cfg.Check.TargetType, dbCfg.Name)

	m, err := a.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load content model: %w", err)
	}

	opts := []schema_check.CheckerOption{schema_check.WithIgnoreColumns(a.cfg.Check.IgnoreColumns...)}
	if cmd.Bool("strict-types") {
		opts = append(opts, schema_check.WithStrictTypes())
	}
	report, err := schema_check.NewCheckService(conn, a.log, opts...).Run(a.generator.Plan(m))
	if err != nil {
		return err
	}

	fmt.Println(report.String())
	if !report.OK() {
		return ErrSchemaDrift
	}
	return nil
}
