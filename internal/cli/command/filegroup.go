package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// FileGroupCommand returns the file-group subcommand group.
func FileGroupCommand() *cli.Command {
	return &cli.Command{
		Name:  "file-group",
		Usage: "Manage file groups",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List file groups",
				Flags:  []cli.Flag{pageSizeFlag()},
				Action: fileGroupList,
			},
			{
				Name:      "create",
				Usage:     "Create a file group on a storage backend",
				ArgsUsage: "NAME STORAGE_ID",
				Action:    fileGroupCreate,
			},
		},
	}
}

func fileGroupList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	addPageSize(c, query)
	return env.List(c.Context, beagle.PathFileGroups, query)
}

func fileGroupCreate(c *cli.Context) error {
	env := envFrom(c)
	args := c.Args()
	if args.Len() < 2 {
		return fmt.Errorf("usage: file-group create NAME STORAGE_ID")
	}

	body := map[string]any{
		"name":    args.Get(0),
		"storage": args.Get(1),
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathFileGroups, body))
}
