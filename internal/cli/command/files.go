package command

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// FilesCommand returns the files subcommand group.
func FilesCommand() *cli.Command {
	return &cli.Command{
		Name:  "files",
		Usage: "Manage registered files",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List files",
				Flags:  append(fileFilterFlags(), pageSizeFlag()),
				Action: filesList,
			},
			{
				Name:      "create",
				Usage:     "Register a file",
				ArgsUsage: "FILE_PATH FILE_TYPE FILE_GROUP",
				Flags:     fileBodyFlags(),
				Action:    filesCreate,
			},
			{
				Name:      "update",
				Usage:     "Replace a file record",
				ArgsUsage: "FILE_ID FILE_PATH FILE_TYPE FILE_GROUP",
				Flags:     fileBodyFlags(),
				Action:    filesUpdate,
			},
			{
				Name:      "patch",
				Usage:     "Partially update a file record",
				ArgsUsage: "FILE_ID",
				Flags:     fileBodyFlags(),
				Action:    filesPatch,
			},
			{
				Name:  "delete",
				Usage: "Delete files by id",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "file-id",
						Usage:    "File id to delete (repeatable)",
						Required: true,
					},
				},
				Action: filesDelete,
			},
		},
	}
}

func fileFilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "metadata",
			Usage: "Metadata filter as key:value (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "file-group",
			Usage: "File group id filter (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "file-name",
			Usage: "File name filter (repeatable)",
		},
		&cli.StringFlag{
			Name:  "filename-regex",
			Usage: "File name regular expression filter",
		},
	}
}

func fileBodyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "metadata",
			Usage: "Metadata entry as key:value (repeatable)",
		},
		&cli.Int64Flag{
			Name:  "size",
			Usage: "File size in bytes",
		},
	}
}

func pageSizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "page-size",
		Usage: "Results per page",
	}
}

func addPageSize(c *cli.Context, query url.Values) {
	if c.IsSet("page-size") {
		query.Set("page_size", strconv.Itoa(c.Int("page-size")))
	}
}

func filesList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	for _, m := range c.StringSlice("metadata") {
		query.Add("metadata", m)
	}
	for _, g := range c.StringSlice("file-group") {
		query.Add("file_group", g)
	}
	for _, n := range c.StringSlice("file-name") {
		query.Add("file_name", n)
	}
	if v := c.String("filename-regex"); v != "" {
		query.Set("filename_regex", v)
	}
	addPageSize(c, query)

	return env.List(c.Context, beagle.PathFiles, query)
}

// fileBody assembles the JSON body shared by create/update/patch.
func fileBody(c *cli.Context, path, fileType, fileGroup string) (map[string]any, error) {
	body := map[string]any{}
	if path != "" {
		body["path"] = path
	}
	if fileType != "" {
		body["file_type"] = fileType
	}
	if fileGroup != "" {
		body["file_group"] = fileGroup
	}
	if metadata := c.StringSlice("metadata"); len(metadata) > 0 {
		merged, err := beagle.MergePairs(metadata)
		if err != nil {
			return nil, err
		}
		body["metadata"] = merged
	}
	if c.IsSet("size") {
		body["size"] = c.Int64("size")
	}
	return body, nil
}

func filesCreate(c *cli.Context) error {
	env := envFrom(c)
	args := c.Args()
	if args.Len() < 3 {
		return fmt.Errorf("usage: files create FILE_PATH FILE_TYPE FILE_GROUP")
	}

	body, err := fileBody(c, args.Get(0), args.Get(1), args.Get(2))
	if err != nil {
		return err
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathFiles, body))
}

func filesUpdate(c *cli.Context) error {
	env := envFrom(c)
	args := c.Args()
	if args.Len() < 4 {
		return fmt.Errorf("usage: files update FILE_ID FILE_PATH FILE_TYPE FILE_GROUP")
	}

	body, err := fileBody(c, args.Get(1), args.Get(2), args.Get(3))
	if err != nil {
		return err
	}
	return env.Write(env.Client.Put(c.Context, beagle.Item(beagle.PathFiles, args.Get(0)), body))
}

func filesPatch(c *cli.Context) error {
	env := envFrom(c)
	fileID := c.Args().First()
	if fileID == "" {
		return fmt.Errorf("file id required")
	}

	body, err := fileBody(c, "", "", "")
	if err != nil {
		return err
	}
	return env.Write(env.Client.Patch(c.Context, beagle.Item(beagle.PathFiles, fileID), body))
}

func filesDelete(c *cli.Context) error {
	env := envFrom(c)
	report := env.Client.BulkDelete(c.Context, beagle.PathFiles, c.StringSlice("file-id"))
	return env.Report(report)
}
