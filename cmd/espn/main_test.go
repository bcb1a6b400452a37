package main

import (
	"bytes"
	"strings"
	"testing"
)

// Smoke test to ensure main honors SKIP_ESPN_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_ESPN_RUN", "1")
	main()
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"--bogus"}, &stderr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "--every-season") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
}
