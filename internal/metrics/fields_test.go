package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrProvider == "" || AttrOperation == "" || AttrKind == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
}
