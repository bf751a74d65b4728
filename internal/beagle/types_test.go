package beagle

import (
	"encoding/json"
	"testing"
)

func TestEnvelope_Cursors(t *testing.T) {
	next := "http://host/page2"

	tests := []struct {
		name     string
		body     string
		wantNext string
		wantPrev string
	}{
		{
			name:     "next only",
			body:     `{"count": 12, "next": "` + next + `", "results": []}`,
			wantNext: next,
			wantPrev: "",
		},
		{
			name:     "explicit nulls",
			body:     `{"count": 1, "next": null, "previous": null, "results": []}`,
			wantNext: "",
			wantPrev: "",
		},
		{
			name:     "both present",
			body:     `{"next": "http://host/p3", "previous": "http://host/p1", "results": []}`,
			wantNext: "http://host/p3",
			wantPrev: "http://host/p1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope
			if err := json.Unmarshal([]byte(tt.body), &env); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			gotNext, gotPrev := env.Cursors()
			if gotNext != tt.wantNext {
				t.Errorf("next = %q, want %q", gotNext, tt.wantNext)
			}
			if gotPrev != tt.wantPrev {
				t.Errorf("prev = %q, want %q", gotPrev, tt.wantPrev)
			}
		})
	}
}

func TestMergePairs(t *testing.T) {
	got, err := MergePairs([]string{"requestId:09324_C", "owner:alice"})
	if err != nil {
		t.Fatalf("MergePairs: %v", err)
	}
	if got["requestId"] != "09324_C" || got["owner"] != "alice" {
		t.Errorf("merged = %v", got)
	}
}

func TestMergePairs_ValueWithColon(t *testing.T) {
	got, err := MergePairs([]string{"uri:file://host:8080/x"})
	if err != nil {
		t.Fatalf("MergePairs: %v", err)
	}
	if got["uri"] != "file://host:8080/x" {
		t.Errorf("uri = %q, want %q", got["uri"], "file://host:8080/x")
	}
}

func TestMergePairs_LastKeyWins(t *testing.T) {
	got, err := MergePairs([]string{"k:one", "k:two"})
	if err != nil {
		t.Fatalf("MergePairs: %v", err)
	}
	if got["k"] != "two" {
		t.Errorf("k = %q, want %q", got["k"], "two")
	}
}

func TestMergePairs_Malformed(t *testing.T) {
	if _, err := MergePairs([]string{"no-colon"}); err == nil {
		t.Error("expected error for pair without colon")
	}
	if _, err := MergePairs([]string{":value"}); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestItem(t *testing.T) {
	if got := Item(PathFiles, "abc-123"); got != "v0/fs/files/abc-123/" {
		t.Errorf("Item = %q", got)
	}
}
