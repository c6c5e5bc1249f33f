package main

import (
	"encoding/json"
	"testing"
)

func TestLogsCommandFiltersByRun(t *testing.T) {
	env := setupCLITestEnv(t)
	pack := demoPack(t)

	out, _, err := runCLI(t, []string{"port", pack.Dir, "--target", "4", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	var view portView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode port json: %v", err)
	}

	out, _, err = runCLI(t, []string{"logs", "--run", view.RunID, "--lines", "100"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "run_id="+view.RunID)
	requireContains(t, out, "Creating 1.13 - 1.13.1 version...")
	requireContains(t, out, "The resource pack has successfully been ported.")

	out, _, err = runCLI(t, []string{"logs", "--run", "no-such-run"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no lines for an unknown run, got %q", out)
	}
}
