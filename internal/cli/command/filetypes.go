package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// FileTypesCommand returns the file-types subcommand group.
func FileTypesCommand() *cli.Command {
	return &cli.Command{
		Name:  "file-types",
		Usage: "Manage file types",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List file types",
				Flags:  []cli.Flag{pageSizeFlag()},
				Action: fileTypesList,
			},
			{
				Name:      "create",
				Usage:     "Register a file type",
				ArgsUsage: "NAME",
				Action:    fileTypesCreate,
			},
		},
	}
}

func fileTypesList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	addPageSize(c, query)
	return env.List(c.Context, beagle.PathFileTypes, query)
}

func fileTypesCreate(c *cli.Context) error {
	env := envFrom(c)
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("file type name required")
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathFileTypes, map[string]any{"name": name}))
}
