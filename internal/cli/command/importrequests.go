package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// ImportRequestsCommand returns the import-requests subcommand group.
func ImportRequestsCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-requests",
		Usage: "Trigger request imports",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Import requests by id",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "request-id",
						Usage:    "Comma-separated request ids",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "redelivery",
						Usage: "Re-import requests that were previously delivered",
					},
				},
				Action: importRequestsNew,
			},
		},
	}
}

func importRequestsNew(c *cli.Context) error {
	env := envFrom(c)

	body := map[string]any{
		"request_ids": splitCSV(c.String("request-id")),
		"redelivery":  c.Bool("redelivery"),
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathImportRequests, body))
}
