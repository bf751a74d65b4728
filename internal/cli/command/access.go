package command

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/beagle"
	"github.com/yndnr/beagle-go/internal/cli/output"
)

// accessPipeline is the pipeline whose runs the access commands operate on.
const accessPipeline = "access legacy"

// AccessCommand returns the access subcommand group.
func AccessCommand() *cli.Command {
	return &cli.Command{
		Name:  "access",
		Usage: "Link ACCESS pipeline outputs into a local directory tree",
		Subcommands: []*cli.Command{
			{
				Name:   "link",
				Usage:  "Symlink run output directories under Project_<request>/bam_qc/<version>",
				Flags:  accessFlags(),
				Action: accessLink,
			},
			{
				Name:   "link-bams",
				Usage:  "Symlink bam/bai outputs into per-patient sample directories",
				Flags:  accessFlags(),
				Action: accessLinkBams,
			},
		},
	}
}

func accessFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "request-id",
			Usage: "Request id whose runs to link",
		},
		&cli.StringFlag{
			Name:  "sample-id",
			Usage: "Link a single sample instead of a whole request",
		},
		&cli.StringFlag{
			Name:  "dir-version",
			Usage: "Directory version (defaults to the pipeline version)",
		},
	}
}

// accessRuns resolves the pipeline, version and completed run set shared by
// both access commands. ok is false when the lookup came up empty and the
// reason was already reported.
func accessRuns(ctx context.Context, c *cli.Context, env *Env) (runs []beagle.Run, version string, ok bool, err error) {
	pipeline, err := findPipeline(ctx, env, accessPipeline)
	if err != nil {
		return nil, "", false, err
	}
	if pipeline == nil {
		fmt.Fprintf(env.Out, "Pipeline '%s' does not exist\n", accessPipeline)
		return nil, "", false, nil
	}

	version = c.String("dir-version")
	if version == "" {
		version = pipeline.Version
	}

	tags := "requestId:" + c.String("request-id")
	if sampleID := c.String("sample-id"); sampleID != "" {
		tags = "cmoSampleIds:" + sampleID
	}

	runs, found, err := completedRuns(ctx, env, tags, pipeline.ID)
	if err != nil {
		return nil, "", false, err
	}
	if !found {
		fmt.Fprintln(env.Out, "There are no runs for this id")
		return nil, "", false, nil
	}
	return runs, version, true, nil
}

func findPipeline(ctx context.Context, env *Env, name string) (*beagle.Pipeline, error) {
	res, err := env.Client.Get(ctx, beagle.PathPipelines, url.Values{"name": {name}})
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	var envelope beagle.Envelope
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return nil, fmt.Errorf("decode pipeline list: %w", err)
	}
	var pipelines []beagle.Pipeline
	if err := json.Unmarshal(envelope.Results, &pipelines); err != nil {
		return nil, fmt.Errorf("decode pipeline list: %w", err)
	}
	if len(pipelines) == 0 {
		return nil, nil
	}
	return &pipelines[0], nil
}

// completedRuns finds the newest completed job group for the tag and lists
// every completed run in it. found is false when no run matches the tag.
func completedRuns(ctx context.Context, env *Env, tags, app string) (runs []beagle.Run, found bool, err error) {
	latest, err := listRuns(ctx, env, url.Values{
		"tags":      {tags},
		"status":    {"COMPLETED"},
		"page_size": {"1"},
		"apps":      {app},
	})
	if err != nil {
		return nil, false, err
	}
	if len(latest) == 0 {
		return nil, false, nil
	}

	runs, err = listRuns(ctx, env, url.Values{
		"tags":       {tags},
		"status":     {"COMPLETED"},
		"page_size":  {"1000"},
		"job_groups": {latest[0].JobGroup},
		"apps":       {app},
	})
	return runs, err == nil, err
}

func listRuns(ctx context.Context, env *Env, query url.Values) ([]beagle.Run, error) {
	res, err := env.Client.Get(ctx, beagle.PathRun, query)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	var envelope beagle.Envelope
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return nil, fmt.Errorf("decode run list: %w", err)
	}
	var runs []beagle.Run
	if err := json.Unmarshal(envelope.Results, &runs); err != nil {
		return nil, fmt.Errorf("decode run list: %w", err)
	}
	return runs, nil
}

func getRun(ctx context.Context, env *Env, id string) (*beagle.Run, error) {
	res, err := env.Client.Get(ctx, beagle.Item(beagle.PathRun, id), nil)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	var run beagle.Run
	if err := json.Unmarshal(res.Body, &run); err != nil {
		return nil, fmt.Errorf("decode run %s: %w", id, err)
	}
	return &run, nil
}

func accessLink(c *cli.Context) error {
	env := envFrom(c)

	runs, version, ok, err := accessRuns(c.Context, c, env)
	if err != nil || !ok {
		return err
	}

	base := filepath.Join("Project_"+c.String("request-id"), "bam_qc")
	versioned := filepath.Join(base, version)
	if err := os.MkdirAll(versioned, 0o755); err != nil {
		return err
	}

	summary := &output.Table{Headers: []string{"RUN", "STATUS"}}
	for i := range runs {
		run, err := getRun(c.Context, env, runs[i].ID)
		if err != nil {
			PrintError("could not fetch run '%s': %v", runs[i].ID, err)
			summary.AddRow(runs[i].ID, "failed")
			continue
		}
		link := filepath.Join(versioned, run.ID)
		if err := os.Symlink(run.OutputDirectory, link); err != nil {
			PrintError("could not create symlink from '%s' to '%s'", run.OutputDirectory, link)
			summary.AddRow(run.ID, "failed")
			continue
		}
		summary.AddRow(run.ID, "linked")
	}

	if abs, err := filepath.Abs(versioned); err == nil {
		if err := os.Symlink(abs, filepath.Join(base, "current")); err != nil {
			PrintError("could not create symlink from '%s' to '%s'", abs, filepath.Join(base, "current"))
		}
	}

	summary.Render(env.Out)
	fmt.Fprintln(env.Out, "Completed")
	return nil
}

func accessLinkBams(c *cli.Context) error {
	env := envFrom(c)

	runs, version, ok, err := accessRuns(c.Context, c, env)
	if err != nil || !ok {
		return err
	}

	sampleID := c.String("sample-id")
	var files []beagle.SampleFile
	for i := range runs {
		run, err := getRun(c.Context, env, runs[i].ID)
		if err != nil {
			PrintError("could not fetch run '%s': %v", runs[i].ID, err)
			continue
		}
		for _, port := range run.Outputs {
			var tree any
			if err := json.Unmarshal(port.Value, &tree); err != nil {
				continue
			}
			files = append(files, beagle.FindFilesBySample(tree, sampleID)...)
		}
	}

	for _, file := range files {
		if err := linkBam(file, version); err != nil {
			PrintError("%v", err)
		}
	}

	fmt.Fprintln(env.Out, "Completed")
	return nil
}

// linkBam places one bam/bai output under <patient>/<sample>/<version>/ and
// refreshes the sample's current symlink. Non-bam files are skipped silently.
func linkBam(file beagle.SampleFile, version string) error {
	path := beagle.LocalPath(file.Location)
	if ext := filepath.Ext(path); ext != ".bam" && ext != ".bai" {
		return nil
	}

	name := filepath.Base(path)
	sample := beagle.SampleFromFilename(name)
	patient, err := beagle.PatientID(sample)
	if err != nil {
		return err
	}

	samplePath := filepath.Join(patient, sample)
	versionPath := filepath.Join(samplePath, version)
	if err := os.MkdirAll(versionPath, 0o755); err != nil {
		return err
	}

	link := filepath.Join(versionPath, name)
	if err := os.Symlink(path, link); err != nil {
		return fmt.Errorf("could not create symlink from '%s' to '%s'", link, path)
	}

	// A current link from an earlier version may already exist; failure
	// to replace it leaves the old link in place.
	if abs, err := filepath.Abs(versionPath); err == nil {
		_ = os.Symlink(abs, filepath.Join(samplePath, "current"))
	}
	return nil
}
