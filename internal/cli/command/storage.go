package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// StorageCommand returns the storage subcommand group.
func StorageCommand() *cli.Command {
	return &cli.Command{
		Name:  "storage",
		Usage: "Manage storage backends",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List storage backends",
				Flags:  []cli.Flag{pageSizeFlag()},
				Action: storageList,
			},
			{
				Name:      "create",
				Usage:     "Register a storage backend",
				ArgsUsage: "NAME",
				Action:    storageCreate,
			},
		},
	}
}

func storageList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	addPageSize(c, query)
	return env.List(c.Context, beagle.PathStorage, query)
}

func storageCreate(c *cli.Context) error {
	env := envFrom(c)
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("storage name required")
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathStorage, map[string]any{"name": name}))
}
