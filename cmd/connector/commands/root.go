package commands

import (
	"context"
	"fmt"

	"connector/cmd/connector/output"
	"connector/version"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "connector",
		Usage:   "Connector CLI - build a client and check it",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Service endpoint",
			},
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "API key used as the client credential",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Client timeout (default 10s)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to config file (default ~/.connector/config.yml)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format (text, json, yaml)",
				Value: "text",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			PingCommand(),
			ConfigCommand(),
		},
	}
}

// setup applies the global flags before any subcommand runs
func setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	if w := c.Root().ErrWriter; w != nil {
		log.SetOutput(w)
	}

	// Overload so the named file wins over ./.env, which main autoloads.
	if c.IsSet("env-file") {
		if err := godotenv.Overload(c.String("env-file")); err != nil {
			return ctx, fmt.Errorf("failed to load env file: %w", err)
		}
		log.Debugf("loaded environment from %s", c.String("env-file"))
	}

	if _, err := output.NewFormatter(c.String("output")); err != nil {
		return ctx, err
	}

	return ctx, nil
}

// render writes data to the root writer in the selected output format
func render(c *cli.Command, data any) error {
	formatter, err := output.NewFormatter(c.String("output"))
	if err != nil {
		return err
	}

	out, err := formatter.Format(data)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, out)
	return nil
}
