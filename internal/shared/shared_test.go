package shared

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("expected log output to be written")
	}

	if NewLogger(nil) == nil {
		t.Error("expected logger with default writer")
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected distinct IDs")
	}
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	if err != nil {
		t.Fatalf("failed to generate state: %v", err)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(a))
	}

	b, err := GenerateState()
	if err != nil {
		t.Fatalf("failed to generate state: %v", err)
	}
	if a == b {
		t.Error("expected distinct state tokens")
	}
}

func TestMarshalJSON(t *testing.T) {
	v := map[string]int{"n": 1}

	compact, err := MarshalJSON(v, false)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	pretty, err := MarshalJSON(v, true)
	if err != nil {
		t.Fatalf("failed to marshal pretty: %v", err)
	}

	if !bytes.Contains(pretty, []byte("\n")) {
		t.Error("pretty output should be indented")
	}

	var roundTrip map[string]int
	if err := json.Unmarshal(compact, &roundTrip); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if roundTrip["n"] != 1 {
		t.Errorf("round trip mismatch: %v", roundTrip)
	}
}
