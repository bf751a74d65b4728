package command

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/beagle-go/internal/cli/config"
	"github.com/yndnr/beagle-go/internal/cli/connection"
	"github.com/yndnr/beagle-go/internal/cli/output"
	"github.com/yndnr/beagle-go/internal/cli/pager"
	"github.com/yndnr/beagle-go/internal/cli/prompt"
	"github.com/yndnr/beagle-go/internal/cli/session"
	"github.com/yndnr/beagle-go/internal/telemetry/logger"
	"github.com/yndnr/beagle-go/internal/telemetry/metric"
)

// recordedRequest is one request the test backend saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// testBackend records every request and delegates to a scripted handler.
type testBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func (b *testBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.requests = append(b.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
	})
	b.mu.Unlock()
	if b.handler != nil {
		b.handler(w, r)
		return
	}
	fmt.Fprint(w, `{}`)
}

func (b *testBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *testBackend) request(i int) recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[i]
}

// listBody wraps results in a cursor-less list envelope.
func listBody(results string) string {
	return fmt.Sprintf(`{"count":1,"next":null,"previous":null,"results":%s}`, results)
}

// newTestEnv wires an Env against the backend, with prompt input fed from
// stdin and command output captured in the returned buffer.
func newTestEnv(t *testing.T, backend *testBackend, stdin string) (*Env, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}

	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}

	metrics := metric.NewRegistry()
	client := connection.New(connection.Options{
		BaseURL: srv.URL,
		Token:   func() string { return "test-token" },
		Logger:  log,
		Metrics: metrics,
	})

	out := &bytes.Buffer{}
	reader := prompt.New(strings.NewReader(stdin), io.Discard)
	formatter := output.NewFormatter(output.FormatJSON)

	env := &Env{
		Config:    config.Default(),
		Store:     store,
		Client:    client,
		Formatter: formatter,
		Prompt:    reader,
		Logger:    log,
		Metrics:   metrics,
		Out:       out,
	}
	env.Pager = &pager.Pager{
		Client:    client,
		Store:     store,
		Prompt:    reader,
		Formatter: formatter,
		Out:       out,
	}
	return env, out
}

// runApp runs one command against a prebuilt environment, bypassing the
// setup hook.
func runApp(t *testing.T, env *Env, args ...string) error {
	t.Helper()

	app := App()
	app.Before = nil
	app.After = nil
	app.Metadata = map[string]any{"env": env}
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app.Run(append([]string{"beagle"}, args...))
}
