package command

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
)

func TestImportRequestsNew_Body(t *testing.T) {
	backend := &testBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}}
	env, _ := newTestEnv(t, backend, "")

	err := runApp(t, env, "import-requests", "new",
		"--request-id", "10075,10076", "--redelivery")
	if err != nil {
		t.Fatalf("import-requests new: %v", err)
	}

	req := backend.request(0)
	if req.Method != http.MethodPost || req.Path != "/v0/etl/import-requests/" {
		t.Fatalf("%s %s", req.Method, req.Path)
	}

	var body struct {
		RequestIDs []string `json:"request_ids"`
		Redelivery bool     `json:"redelivery"`
	}
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if want := []string{"10075", "10076"}; !reflect.DeepEqual(body.RequestIDs, want) {
		t.Errorf("request_ids = %v", body.RequestIDs)
	}
	if !body.Redelivery {
		t.Error("redelivery should be true")
	}
}
