package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"connector/client"
	"connector/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// buildClient resolves settings with priority: flag > env var > config file > default
func buildClient(c *cli.Command) (*client.Client, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	b := client.NewBuilder()
	if err := cfg.Apply(b); err != nil {
		return nil, fmt.Errorf("failed to apply config: %w", err)
	}

	if c.IsSet("endpoint") {
		if err := b.SetEndpoint(c.String("endpoint")); err != nil {
			return nil, fmt.Errorf("--endpoint: %w", err)
		}
	}
	if c.IsSet("api-key") {
		if err := b.SetCredential(c.String("api-key")); err != nil {
			return nil, fmt.Errorf("--api-key: %w", err)
		}
	}
	if c.IsSet("timeout") {
		if err := b.SetTimeout(c.Duration("timeout")); err != nil {
			return nil, fmt.Errorf("--timeout: %w", err)
		}
	}

	cl, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build client: %w", err)
	}

	log.WithFields(log.Fields{
		"client_id": cl.ID(),
		"endpoint":  cl.Endpoint(),
		"timeout":   cl.Timeout(),
	}).Debug("client built")

	return cl, nil
}

// loadConfig reads --config when given, which must exist, else the default location
func loadConfig(c *cli.Command) (*config.Config, error) {
	if c.IsSet("config") {
		path := c.String("config")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return config.LoadFile(path)
	}
	return config.Load()
}
