package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"mosql_gen/internal/config"
	"mosql_gen/internal/domain"
	"mosql_gen/internal/generator"
	"mosql_gen/internal/logger"
	"mosql_gen/internal/model"
)

func main() {
	// Канал для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "mosql_gen",
		Usage: "Generate MoSQL collection maps from a content model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Value:   "config.yml",
				Sources: cli.EnvVars("MOSQL_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			serveCommand(),
			checkCommand(),
		},
	}
}

// app собирает все, что нужно командам, из конфига
type app struct {
	cfg       *config.Config
	log       *logger.Log
	source    model.Source
	generator *generator.Generator
}

// schemaName имя корневого ключа для загруженной модели
func (a *app) schemaName(m *domain.SchemaModel) (string, error) {
	name, err := a.cfg.ResolveSchemaName(m.Name)
	if err != nil {
		return "", fmt.Errorf("resolve schema name: %w", err)
	}
	return name, nil
}

func setup(cmd *cli.Command) (*app, error) {
	cfg, err := config.GetConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	l, err := logger.NewLogger(cfg.Logger.Target, cfg.Logger.Level, cfg.Logger.Filename)
	if err != nil {
		return nil, err
	}

	table, err := cfg.TypeTable()
	if err != nil {
		return nil, err
	}

	var source model.Source
	switch cfg.Model.Source {
	case config.ModelSourceMongo:
		source, err = model.NewMongoSource(cfg.MongoURI, cfg.Model.SampleSize, l)
		if err != nil {
			return nil, err
		}
	default:
		source = model.NewFileSource(cfg.Model.File)
	}

	l.Debugf("mapper variant %s, model source %s", table.Name, cfg.Model.Source)
	return &app{
		cfg:    cfg,
		log:    l,
		source: source,
		generator: generator.New(
			generator.WithTypeTable(table),
			generator.WithTableNamer(cfg.TableNamer()),
		),
	}, nil
}
