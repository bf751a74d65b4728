package command

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// RunCommand returns the run subcommand group.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Inspect and submit pipeline runs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List runs",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "request-id",
						Usage: "Request id filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "tags",
						Usage: "Tag filter as key:value (repeatable)",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Run status filter",
					},
					&cli.StringSliceFlag{
						Name:  "apps",
						Usage: "Pipeline id filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "job-groups",
						Usage: "Job group id filter (repeatable)",
					},
					pageSizeFlag(),
				},
				Action: runList,
			},
			{
				Name:      "get",
				Usage:     "Show one run",
				ArgsUsage: "RUN_ID",
				Action:    runGet,
			},
			{
				Name:  "submit-request",
				Usage: "Submit an operator request for a set of request ids",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pipeline",
						Usage:    "Pipeline name to run",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "request-ids",
						Usage:    "Comma-separated request ids",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "job-group-id",
						Usage: "Existing job group to attach the runs to",
					},
					&cli.StringFlag{
						Name:  "for-each",
						Usage: "Submit one run per request id (true/false)",
					},
				},
				Action: runSubmitRequest,
			},
		},
	}
}

func runList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	for _, id := range c.StringSlice("request-id") {
		query.Add("request_ids", id)
	}
	for _, tag := range c.StringSlice("tags") {
		query.Add("tags", tag)
	}
	if v := c.String("status"); v != "" {
		query.Set("status", v)
	}
	for _, app := range c.StringSlice("apps") {
		query.Add("apps", app)
	}
	for _, g := range c.StringSlice("job-groups") {
		query.Add("job_groups", g)
	}
	addPageSize(c, query)

	return env.List(c.Context, beagle.PathRun, query)
}

func runGet(c *cli.Context) error {
	env := envFrom(c)
	runID := c.Args().First()
	if runID == "" {
		return fmt.Errorf("run id required")
	}
	return env.Show(c.Context, beagle.Item(beagle.PathRun, runID))
}

func runSubmitRequest(c *cli.Context) error {
	env := envFrom(c)

	body := map[string]any{
		"pipeline":    c.String("pipeline"),
		"request_ids": splitCSV(c.String("request-ids")),
	}
	if v := c.String("job-group-id"); v != "" {
		body["job_group_id"] = v
	}
	// for_each defaults to true; an explicit flag must parse as a boolean.
	forEach := true
	if v := c.String("for-each"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid --for-each value %q: %w", v, err)
		}
		forEach = parsed
	}
	body["for_each"] = forEach

	return env.Write(env.Client.Post(c.Context, beagle.PathOperatorRequest, body))
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
