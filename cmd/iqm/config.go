package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hqsquantum/iqm-go/fixtures"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Value: "config.yaml",
						Usage: "Where to write the config file",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("path")
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("config file %s already exists", path)
					}
					return os.WriteFile(path, fixtures.ConfigTemplate, 0o644)
				},
			},
		},
	}
}
