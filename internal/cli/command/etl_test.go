package command

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/yndnr/beagle-go/internal/cli/connection"
)

func TestETLList_BuildsQuery(t *testing.T) {
	backend := &testBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listBody(`[]`)))
	}}
	env, _ := newTestEnv(t, backend, "")

	err := runApp(t, env, "etl", "list",
		"--job-type", "METADATA_UPDATE",
		"--status", "FAILED",
		"--request-id", "10075",
	)
	if err != nil {
		t.Fatalf("etl list: %v", err)
	}

	req := backend.request(0)
	if req.Path != "/v0/etl/jobs/" {
		t.Fatalf("path = %q", req.Path)
	}
	if got := req.Query.Get("job_type"); got != "METADATA_UPDATE" {
		t.Errorf("job_type = %q", got)
	}
	if got := req.Query.Get("status"); got != "FAILED" {
		t.Errorf("status = %q", got)
	}
	if got := req.Query.Get("request_id"); got != "10075" {
		t.Errorf("request_id = %q", got)
	}
}

func TestETLDelete_BulkReport(t *testing.T) {
	backend := &testBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "j2") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}}
	env, out := newTestEnv(t, backend, "")

	if err := runApp(t, env, "etl", "delete", "--job-id", "j1", "--job-id", "j2", "--job-id", "j3"); err != nil {
		t.Fatalf("etl delete: %v", err)
	}

	if backend.count() != 3 {
		t.Fatalf("requests = %d, want 3", backend.count())
	}
	var report map[string]string
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	want := map[string]string{
		"j1": connection.DeletedOK,
		"j2": connection.DeletedFailed,
		"j3": connection.DeletedOK,
	}
	for id, status := range want {
		if report[id] != status {
			t.Errorf("%s = %q, want %q", id, report[id], status)
		}
	}
}
