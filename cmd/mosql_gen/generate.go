package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Write the MoSQL collection map to stdout or a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Close()

	m, err := a.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load content model: %w", err)
	}
	name, err := a.schemaName(m)
	if err != nil {
		return err
	}
	doc := a.generator.Generate(name, m) + "\n"

	out := cmd.String("out")
	if out == "" {
		_, err = os.Stdout.WriteString(doc)
		return err
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	a.log.Infof("wrote %d lists to %s", len(m.Lists), out)
	return nil
}
