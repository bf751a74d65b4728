package command

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
)

func TestTempoMPGenRun_Body(t *testing.T) {
	backend := &testBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}}
	env, _ := newTestEnv(t, backend, "")

	err := runApp(t, env, "tempo-mpgen", "run",
		"--normals-override", "n1,n2", "--tumors-override", "t1")
	if err != nil {
		t.Fatalf("tempo-mpgen run: %v", err)
	}

	req := backend.request(0)
	if req.Method != http.MethodPost || req.Path != "/v0/run/operator/request/" {
		t.Fatalf("%s %s", req.Method, req.Path)
	}

	var body struct {
		Pipeline        string   `json:"pipeline"`
		NormalsOverride []string `json:"normals_override"`
		TumorsOverride  []string `json:"tumors_override"`
	}
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Pipeline != "tempo_mpgen" {
		t.Errorf("pipeline = %q", body.Pipeline)
	}
	if want := []string{"n1", "n2"}; !reflect.DeepEqual(body.NormalsOverride, want) {
		t.Errorf("normals_override = %v", body.NormalsOverride)
	}
	if want := []string{"t1"}; !reflect.DeepEqual(body.TumorsOverride, want) {
		t.Errorf("tumors_override = %v", body.TumorsOverride)
	}
}

func TestTempoMPGenPairing_Body(t *testing.T) {
	backend := &testBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}}
	env, _ := newTestEnv(t, backend, "")

	err := runApp(t, env, "tempo-mpgen", "pairing",
		"--pair", "t2:n2", "--pair", "t1:n1")
	if err != nil {
		t.Fatalf("tempo-mpgen pairing: %v", err)
	}

	req := backend.request(0)
	if req.Path != "/v0/run/api/pairing/" {
		t.Fatalf("path = %q", req.Path)
	}

	var body struct {
		Pairs []map[string]string `json:"pairs"`
	}
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := []map[string]string{
		{"tumor": "t1", "normal": "n1"},
		{"tumor": "t2", "normal": "n2"},
	}
	if !reflect.DeepEqual(body.Pairs, want) {
		t.Errorf("pairs = %v", body.Pairs)
	}
}

func TestTempoMPGenPairing_RejectsMalformedPair(t *testing.T) {
	backend := &testBackend{}
	env, _ := newTestEnv(t, backend, "")

	err := runApp(t, env, "tempo-mpgen", "pairing", "--pair", "lonely")
	if err == nil {
		t.Fatal("expected error for malformed pair")
	}
	if backend.count() != 0 {
		t.Errorf("no request should have been sent, saw %d", backend.count())
	}
}
