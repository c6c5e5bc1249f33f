package resolver

import (
	"slices"
	"testing"

	"mcpackr/internal/assetindex"
	"mcpackr/internal/complaint"
	"mcpackr/internal/revision"
)

func TestOverrideExcludesBaseForOneRevision(t *testing.T) {
	paths := []assetindex.Path{
		"assets/minecraft/textures/block/stone.png",
		"assets/minecraft/textures/block/stone.png@2",
		"pack.mcmeta",
	}
	ws := Resolve(paths, revision.IDs(), nil)

	for _, rev := range revision.IDs() {
		set := ws.Set(rev)
		hasBase := slices.Contains(set, paths[0])
		hasOverride := slices.Contains(set, paths[1])
		if rev == revision.V2 {
			if hasBase || !hasOverride {
				t.Fatalf("revision 2 should use only the override, got %v", set)
			}
			continue
		}
		if !hasBase || hasOverride {
			t.Fatalf("revision %d should use only the base file, got %v", rev, set)
		}
		if !slices.Contains(set, assetindex.Path("pack.mcmeta")) {
			t.Fatalf("revision %d lost the manifest", rev)
		}
	}
}

func TestOverrideMatchesCaseInsensitively(t *testing.T) {
	paths := []assetindex.Path{
		"assets/minecraft/textures/Block/Stone.png",
		"assets/minecraft/textures/block/stone.png@4",
	}
	ws := Resolve(paths, revision.IDs(), nil)
	if got := ws.Set(revision.V4); len(got) != 1 || got[0] != paths[1] {
		t.Fatalf("unexpected set for 4: %v", got)
	}
	if got := ws.Set(revision.V1); len(got) != 1 || got[0] != paths[0] {
		t.Fatalf("unexpected set for 1: %v", got)
	}
}

func TestUnknownOverrideIsReported(t *testing.T) {
	complaints := complaint.NewSet()
	paths := []assetindex.Path{"assets/minecraft/sounds.json@9"}
	ws := Resolve(paths, revision.IDs(), complaints)
	for _, rev := range revision.IDs() {
		if len(ws.Set(rev)) != 0 {
			t.Fatalf("revision %d should be empty", rev)
		}
	}
	want := "assets/minecraft/sounds.json@9: unknown revision override @9"
	if got := complaints.List(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected complaints: %v", got)
	}
}

func TestLookup(t *testing.T) {
	paths := []assetindex.Path{
		"assets/minecraft/textures/items/compass_00.png",
		"assets/minecraft/textures/items/compass_01.png",
		"assets/minecraft/textures/items/compass_01.png@1",
	}
	ws := Resolve(paths, revision.IDs(), nil)

	got, ok := ws.Lookup(revision.V1, "assets/minecraft/textures/items/COMPASS_01.png")
	if !ok || got != paths[2] {
		t.Fatalf("Lookup(1) = %q, %v", got, ok)
	}
	got, ok = ws.Lookup(revision.V3, "assets/minecraft/textures/items/compass_01.png")
	if !ok || got != paths[1] {
		t.Fatalf("Lookup(3) = %q, %v", got, ok)
	}
	if _, ok := ws.Lookup(revision.V3, "assets/minecraft/textures/items/compass_02.png"); ok {
		t.Fatal("expected missing frame")
	}
}

func TestShortPathsAreNeverOverrides(t *testing.T) {
	ws := Resolve([]assetindex.Path{"@"}, []revision.ID{revision.V1}, nil)
	if got := ws.Set(revision.V1); len(got) != 1 {
		t.Fatalf("expected short path in set, got %v", got)
	}
}
