package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hqsquantum/iqm-go/internal/config"
	"github.com/hqsquantum/iqm-go/internal/logger"
	"github.com/hqsquantum/iqm-go/pkg/backend"
	"github.com/hqsquantum/iqm-go/pkg/devices"
)

func main() {
	var rootLogger *zap.Logger

	app := &cli.App{
		Name:  "iqm",
		Usage: "A CLI for submitting circuits to the IQM testbed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the config file",
			},
			&cli.StringFlag{
				Name:  "device",
				Value: "demo",
				Usage: "Target device (demo, deneb, adonis)",
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "IQM access token",
				EnvVars: []string{"IQM_TOKEN"},
			},
		},
		Metadata: map[string]interface{}{},
		Before: func(c *cli.Context) error {
			cfg := config.Default()
			if path := c.String("config"); path != "" {
				var err error
				cfg, err = config.LoadConfig(path)
				if err != nil {
					return err
				}
			}
			zapLogger, err := logger.New(cfg.Logger.Verbosity)
			if err != nil {
				return err
			}
			rootLogger = zapLogger.Named("cli")
			c.App.Metadata["config"] = cfg
			c.App.Metadata["logger"] = rootLogger
			return nil
		},
		Commands: []*cli.Command{
			verifyCommand(),
			runCommand(),
			statusCommand(),
			abortCommand(),
			architectureCommand(),
			configCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if rootLogger != nil {
			rootLogger.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func appConfig(c *cli.Context) *config.Config {
	return c.App.Metadata["config"].(*config.Config)
}

func appLogger(c *cli.Context) *zap.Logger {
	return c.App.Metadata["logger"].(*zap.Logger)
}

// newDevice builds the device selected on the command line, applying the
// endpoint override from the config.
func newDevice(c *cli.Context) (devices.Device, error) {
	var device devices.Device
	switch name := c.String("device"); name {
	case "demo":
		device = devices.NewDemo()
	case "deneb":
		device = devices.NewDeneb()
	case "adonis":
		device = devices.NewAdonis()
	default:
		return nil, fmt.Errorf("unknown device: %s", name)
	}

	if url := appConfig(c).Endpoint.URL; url != "" {
		if settable, ok := device.(interface{ SetEndpointURL(string) }); ok {
			settable.SetEndpointURL(url)
		}
	}
	return device, nil
}

// newBackend builds a backend for the selected device with the settings from
// the config file and command line.
func newBackend(c *cli.Context) (*backend.Backend, error) {
	device, err := newDevice(c)
	if err != nil {
		return nil, err
	}

	cfg := appConfig(c)
	return backend.New(device, c.String("token"),
		backend.WithLogger(appLogger(c)),
		backend.WithHTTPClient(&http.Client{Timeout: cfg.Endpoint.RequestTimeout.Std()}),
		backend.WithPollInterval(cfg.Job.PollInterval.Std()),
		backend.WithResultTimeout(cfg.Job.ResultTimeout.Std()),
		backend.WithTokensFile(cfg.Auth.TokensFile),
	)
}
