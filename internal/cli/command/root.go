package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/cli/auth"
	"github.com/yndnr/beagle-go/internal/cli/config"
	"github.com/yndnr/beagle-go/internal/cli/connection"
	"github.com/yndnr/beagle-go/internal/cli/output"
	"github.com/yndnr/beagle-go/internal/cli/pager"
	"github.com/yndnr/beagle-go/internal/cli/prompt"
	"github.com/yndnr/beagle-go/internal/cli/session"
	"github.com/yndnr/beagle-go/internal/infra/buildinfo"
	"github.com/yndnr/beagle-go/internal/infra/tlsroots"
	"github.com/yndnr/beagle-go/internal/telemetry/logger"
	"github.com/yndnr/beagle-go/internal/telemetry/metric"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "beagle",
		Usage:   "command-line client for the Beagle workflow and file-management service",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			FilesCommand(),
			StorageCommand(),
			FileTypesCommand(),
			FileGroupCommand(),
			RunCommand(),
			ETLCommand(),
			ImportRequestsCommand(),
			TempoMPGenCommand(),
			AccessCommand(),
		},
		Before: setupEnv,
		After:  teardownEnv,
	}
	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path (default ~/.beagle/config.yaml)",
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Aliases: []string{"e"},
			Usage:   "Backend base URL",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Debug logging plus a metrics dump on exit",
		},
	}
}

// Env is the per-invocation environment: configuration, session state and
// the collaborators every action shares. It is built once in the Before
// hook and carried in the app metadata.
type Env struct {
	Config    *config.Config
	Store     *session.Store
	Client    *connection.Client
	Formatter output.Formatter
	Pager     *pager.Pager
	Prompt    *prompt.Reader
	Logger    logger.Logger
	Metrics   *metric.Registry
	Out       io.Writer
}

// setupEnv builds the environment and runs the authentication gate. It
// runs once per invocation; --version and --help never reach it.
func setupEnv(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if v := c.String("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}

	logCfg := logger.DefaultConfig()
	if c.Bool("verbose") || c.Bool("debug") {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	tlsCfg, err := tlsroots.ClientConfig(cfg.CABundle, cfg.Insecure)
	if err != nil {
		return err
	}

	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}
	log.Debug("session store opened", "path", store.Path())

	metrics := metric.NewRegistry()
	client := connection.New(connection.Options{
		BaseURL:   cfg.Endpoint,
		Token:     func() string { return store.Record().AccessToken },
		TLS:       tlsCfg,
		UserAgent: "beagle-cli/" + buildinfo.Version,
		Logger:    log,
		Metrics:   metrics,
	})

	stdio := prompt.Stdio()
	authenticator := auth.New(auth.Options{
		Client:  client,
		Store:   store,
		Config:  cfg,
		Prompt:  stdio,
		Logger:  log,
		Metrics: metrics,
	})
	if err := authenticator.Ensure(c.Context); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return cli.Exit("Invalid username or password", 1)
		}
		return err
	}

	formatter := output.NewFormatter(output.Format(cfg.Output))
	env := &Env{
		Config:    cfg,
		Store:     store,
		Client:    client,
		Formatter: formatter,
		Prompt:    stdio,
		Logger:    log,
		Metrics:   metrics,
		Out:       os.Stdout,
	}
	// Pagination prompts belong to the command output stream, unlike the
	// credential prompts, which stay on stderr.
	env.Pager = &pager.Pager{
		Client:    client,
		Store:     store,
		Prompt:    prompt.New(os.Stdin, env.Out),
		Formatter: formatter,
		Out:       env.Out,
	}

	c.App.Metadata["env"] = env
	return nil
}

// teardownEnv dumps collected metrics when --debug is set.
func teardownEnv(c *cli.Context) error {
	if !c.Bool("debug") {
		return nil
	}
	env := envFrom(c)
	if env == nil {
		return nil
	}
	return env.Metrics.Dump(os.Stderr)
}

// envFrom retrieves the environment from the app metadata.
func envFrom(c *cli.Context) *Env {
	if env, ok := c.App.Metadata["env"].(*Env); ok {
		return env
	}
	return nil
}

// List issues a GET against a collection path, renders the first page and
// hands control to the pagination loop.
func (e *Env) List(ctx context.Context, path string, query url.Values) error {
	res, err := e.Client.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if !res.OK() {
		PrintError("%v", res.Err())
		return nil
	}
	if err := e.Formatter.Format(e.Out, res.Body); err != nil {
		return err
	}
	return e.Pager.Browse(ctx, res)
}

// Show renders a single-resource GET without pagination.
func (e *Env) Show(ctx context.Context, path string) error {
	res, err := e.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}
	if !res.OK() {
		PrintError("%v", res.Err())
		return nil
	}
	return e.Formatter.Format(e.Out, res.Body)
}

// Write renders the outcome of a write-style dispatch. Non-success
// statuses are reported with their diagnostic context and the command
// finishes without a payload; only transport-level failures propagate.
func (e *Env) Write(res *connection.Result, err error) error {
	if err != nil {
		return err
	}
	if !res.OK() {
		PrintError("%v", res.Err())
		return nil
	}
	return e.Formatter.Format(e.Out, res.Body)
}

// Report renders a per-identifier bulk operation report.
func (e *Env) Report(report map[string]string) error {
	return e.Formatter.Format(e.Out, report)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
