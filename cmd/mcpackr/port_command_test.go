package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mcpackr/internal/porter"
	"mcpackr/internal/revision"
	"mcpackr/internal/testsupport"
)

const textures = "assets/minecraft/textures/"

func demoPack(t *testing.T) *testsupport.Pack {
	t.Helper()
	return testsupport.NewPack(t, "Demo", 4, "Demo for %mcversions%").
		Text(textures+"block/grass_block_top.png", "grass")
}

func TestPortCommandWritesArchives(t *testing.T) {
	env := setupCLITestEnv(t)
	pack := demoPack(t)

	out, _, err := runCLI(t, []string{"port", pack.Dir, "--target", "1", "--target", "1.13 - 1.13.1"}, env.configPath)
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	requireContains(t, out, "Demo (1.6.1 - 1.8.9).zip")
	requireContains(t, out, "Demo (1.13 - 1.13.1).zip")
	requireNotContains(t, out, "1.9 - 1.10.2")
	requireContains(t, out, "ported without complaints")

	entries := testsupport.ReadZip(t, filepath.Join(env.cfg.Paths.OutputDir, "Demo (1.6.1 - 1.8.9).zip"))
	if string(entries[textures+"blocks/grass_top.png"]) != "grass" {
		t.Fatalf("expected renamed texture in legacy archive, got %v", entries)
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "4 -> 1")
	requireContains(t, out, "4 -> 4")
}

func TestPortCommandJSONAndHistoryByRun(t *testing.T) {
	env := setupCLITestEnv(t)
	pack := demoPack(t)
	output := filepath.Join(t.TempDir(), "archives")
	if err := os.MkdirAll(output, 0o755); err != nil {
		t.Fatalf("mkdir output: %v", err)
	}

	out, _, err := runCLI(t, []string{"port", pack.Dir, "--target", "2,3", "--output", output, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("port --json: %v", err)
	}
	var view portView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode port json: %v\n%s", err, out)
	}
	if view.Pack != "Demo" || view.Source != 4 || len(view.Archives) != 2 {
		t.Fatalf("unexpected port view: %+v", view)
	}
	if view.Archives[0].Revision != 2 || filepath.Dir(view.Archives[0].Path) != output {
		t.Fatalf("unexpected first archive: %+v", view.Archives[0])
	}

	out, _, err = runCLI(t, []string{"history", "--run", view.RunID, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history --run: %v", err)
	}
	var history []historyView
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("decode history json: %v\n%s", err, out)
	}
	if len(history) != 2 || history[0].Revision != 2 || history[1].Revision != 3 {
		t.Fatalf("unexpected history: %+v", history)
	}
	if history[0].SHA256 != view.Archives[0].SHA256 {
		t.Fatalf("history digest %s, port digest %s", history[0].SHA256, view.Archives[0].SHA256)
	}
}

func TestPortCommandRejectsInvalidInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"port", t.TempDir()}, env.configPath)
	if !errors.Is(err, porter.ErrInvalidPack) {
		t.Fatalf("expected ErrInvalidPack, got %v", err)
	}
	requireContains(t, err.Error(), "pack.mcmeta")

	pack := demoPack(t)
	_, _, err = runCLI(t, []string{"port", pack.Dir, "--target", "1.99"}, env.configPath)
	if err == nil {
		t.Fatal("expected unknown target error")
	}
	requireContains(t, err.Error(), "--target")
}

func TestParseTargets(t *testing.T) {
	ids, err := parseTargets([]string{"4", "1.6.1 - 1.8.9, 2", "4"})
	if err != nil {
		t.Fatalf("parseTargets: %v", err)
	}
	want := []revision.ID{revision.V1, revision.V2, revision.V4}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
	if _, err := parseTargets([]string{"0"}); err == nil {
		t.Fatal("expected error for unknown pack format")
	}
}

func TestHistoryRequiresLedger(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutLedger())
	_, _, err := runCLI(t, []string{"history"}, env.configPath)
	if !errors.Is(err, errLedgerDisabled) {
		t.Fatalf("expected errLedgerDisabled, got %v", err)
	}
}

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No archives recorded")
}
