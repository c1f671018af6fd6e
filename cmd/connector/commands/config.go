package commands

import (
	"context"
	"fmt"

	"connector/internal/config"

	"github.com/urfave/cli/v3"
)

// ConfigView is the resolved configuration with the credential masked
type ConfigView struct {
	ClientID   string `json:"client_id" yaml:"client_id"`
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	Credential string `json:"credential" yaml:"credential"`
	Timeout    string `json:"timeout" yaml:"timeout"`
}

func (v ConfigView) String() string {
	return fmt.Sprintf("endpoint:   %s\ncredential: %s\ntimeout:    %s", v.Endpoint, v.Credential, v.Timeout)
}

// ConfigCommand returns the config command with subcommands
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect client configuration",
		Commands: []*cli.Command{
			showConfigCommand(),
			pathConfigCommand(),
		},
	}
}

func showConfigCommand() *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "Print the resolved configuration",
		Action: showConfigAction,
	}
}

// showConfigAction handles the config show command
func showConfigAction(ctx context.Context, c *cli.Command) error {
	cl, err := buildClient(c)
	if err != nil {
		return err
	}

	return render(c, ConfigView{
		ClientID:   cl.ID(),
		Endpoint:   cl.Endpoint(),
		Credential: cl.MaskedCredential(),
		Timeout:    cl.Timeout().String(),
	})
}

func pathConfigCommand() *cli.Command {
	return &cli.Command{
		Name:   "path",
		Usage:  "Print the config file location",
		Action: pathConfigAction,
	}
}

func pathConfigAction(ctx context.Context, c *cli.Command) error {
	path := c.String("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	fmt.Fprintln(c.Root().Writer, path)
	return nil
}
