package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Query the status of a submitted job",
		ArgsUsage: "<job-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one job ID argument")
			}
			id := c.Args().First()

			b, err := newBackend(c)
			if err != nil {
				return err
			}

			result, err := b.Result(c.Context, id)
			if err != nil {
				return err
			}

			log := appLogger(c)
			log.Info("job status",
				zap.String("job_id", id),
				zap.String("status", string(result.Status)))
			if result.Message != "" {
				log.Info("job message", zap.String("message", result.Message))
			}
			return nil
		},
	}
}

func abortCommand() *cli.Command {
	return &cli.Command{
		Name:      "abort",
		Usage:     "Abort a submitted job",
		ArgsUsage: "<job-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one job ID argument")
			}
			id := c.Args().First()

			b, err := newBackend(c)
			if err != nil {
				return err
			}

			if err := b.Abort(c.Context, id); err != nil {
				return err
			}
			appLogger(c).Info("job aborted", zap.String("job_id", id))
			return nil
		},
	}
}

func architectureCommand() *cli.Command {
	return &cli.Command{
		Name:  "architecture",
		Usage: "Fetch the quantum architecture of the selected device",
		Action: func(c *cli.Context) error {
			b, err := newBackend(c)
			if err != nil {
				return err
			}

			architecture, err := b.QuantumArchitecture(c.Context)
			if err != nil {
				return err
			}
			fmt.Println(architecture)
			return nil
		},
	}
}
