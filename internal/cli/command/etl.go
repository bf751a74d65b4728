package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// ETLCommand returns the etl subcommand group.
func ETLCommand() *cli.Command {
	return &cli.Command{
		Name:  "etl",
		Usage: "Inspect ingest jobs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List ETL jobs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "job-type",
						Usage: "Job type filter",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Job status filter",
					},
					&cli.StringSliceFlag{
						Name:  "request-id",
						Usage: "Request id filter (repeatable)",
					},
					pageSizeFlag(),
				},
				Action: etlList,
			},
			{
				Name:      "get",
				Usage:     "Show one ETL job",
				ArgsUsage: "JOB_ID",
				Action:    etlGet,
			},
			{
				Name:  "delete",
				Usage: "Delete ETL jobs by id",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "job-id",
						Usage:    "Job id to delete (repeatable)",
						Required: true,
					},
				},
				Action: etlDelete,
			},
		},
	}
}

func etlList(c *cli.Context) error {
	env := envFrom(c)

	query := url.Values{}
	if v := c.String("job-type"); v != "" {
		query.Set("job_type", v)
	}
	if v := c.String("status"); v != "" {
		query.Set("status", v)
	}
	for _, id := range c.StringSlice("request-id") {
		query.Add("request_id", id)
	}
	addPageSize(c, query)

	return env.List(c.Context, beagle.PathETLJobs, query)
}

func etlGet(c *cli.Context) error {
	env := envFrom(c)
	jobID := c.Args().First()
	if jobID == "" {
		return fmt.Errorf("job id required")
	}
	return env.Show(c.Context, beagle.Item(beagle.PathETLJobs, jobID))
}

func etlDelete(c *cli.Context) error {
	env := envFrom(c)
	report := env.Client.BulkDelete(c.Context, beagle.PathETLJobs, c.StringSlice("job-id"))
	return env.Report(report)
}
