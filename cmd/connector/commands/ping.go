package commands

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// PingResult is the output of the ping command
type PingResult struct {
	ClientID string `json:"client_id" yaml:"client_id"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Result   string `json:"result" yaml:"result"`
}

func (r PingResult) String() string {
	return r.Result
}

// PingCommand returns the ping command
func PingCommand() *cli.Command {
	return &cli.Command{
		Name:   "ping",
		Usage:  "Build a client and ping it (no network access)",
		Action: pingAction,
	}
}

// pingAction handles the ping command
func pingAction(ctx context.Context, c *cli.Command) error {
	cl, err := buildClient(c)
	if err != nil {
		return err
	}

	result := PingResult{
		ClientID: cl.ID(),
		Endpoint: cl.Endpoint(),
		Result:   cl.Ping(),
	}
	log.WithField("client_id", cl.ID()).Infof("ping: %s", result.Result)

	return render(c, result)
}
