package command

import (
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
)

// TempoMPGenCommand returns the tempo-mpgen subcommand group.
func TempoMPGenCommand() *cli.Command {
	return &cli.Command{
		Name:  "tempo-mpgen",
		Usage: "Trigger tempo sample pairing",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the tempo operator",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "normals-override",
						Usage: "Comma-separated normal sample overrides",
					},
					&cli.StringFlag{
						Name:  "tumors-override",
						Usage: "Comma-separated tumor sample overrides",
					},
				},
				Action: tempoMPGenRun,
			},
			{
				Name:  "pairing",
				Usage: "Submit explicit tumor/normal pairs",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "pair",
						Usage:    "Pair as tumor:normal (repeatable)",
						Required: true,
					},
				},
				Action: tempoMPGenPairing,
			},
		},
	}
}

func tempoMPGenRun(c *cli.Context) error {
	env := envFrom(c)

	body := map[string]any{
		"pipeline": "tempo_mpgen",
	}
	if v := c.String("normals-override"); v != "" {
		body["normals_override"] = splitCSV(v)
	}
	if v := c.String("tumors-override"); v != "" {
		body["tumors_override"] = splitCSV(v)
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathOperatorRequest, body))
}

func tempoMPGenPairing(c *cli.Context) error {
	env := envFrom(c)

	merged, err := beagle.MergePairs(c.StringSlice("pair"))
	if err != nil {
		return err
	}
	tumors := make([]string, 0, len(merged))
	for tumor := range merged {
		tumors = append(tumors, tumor)
	}
	sort.Strings(tumors)

	pairs := make([]map[string]string, 0, len(merged))
	for _, tumor := range tumors {
		pairs = append(pairs, map[string]string{
			"tumor":  tumor,
			"normal": merged[tumor],
		})
	}
	return env.Write(env.Client.Post(c.Context, beagle.PathPairing, map[string]any{"pairs": pairs}))
}
