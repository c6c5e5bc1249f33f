package descriptor

import (
	"encoding/json"
	"errors"
	"testing"

	"mcpackr/internal/complaint"
	"mcpackr/internal/revision"
)

func TestBlockStateSingleObjectMatchesList(t *testing.T) {
	r := New(revision.V4, revision.V1, nil)
	single, err := r.BlockState("door.json", []byte(`{"variants":{"facing=east":{"model":"block/oak_door_top_hinge","y":90}}}`))
	if err != nil {
		t.Fatalf("BlockState single: %v", err)
	}
	list, err := r.BlockState("door.json", []byte(`{"variants":{"facing=east":[{"model":"block/oak_door_top_hinge","y":90}]}}`))
	if err != nil {
		t.Fatalf("BlockState list: %v", err)
	}
	if string(single) != string(list) {
		t.Fatalf("outputs differ:\n%s\n%s", single, list)
	}
	want := `{"variants":{"facing=east":[{"model":"wooden_door_top_rh","y":90}]}}`
	if string(single) != want {
		t.Fatalf("got %s, want %s", single, want)
	}
}

func TestBlockStateLegacyToModern(t *testing.T) {
	r := New(revision.V2, revision.V4, nil)
	out, err := r.BlockState("stone.json", []byte(`{"variants":{"normal":{"model":"wooden_door_bottom_rh"},"other":{"model":"stone"}}}`))
	if err != nil {
		t.Fatalf("BlockState: %v", err)
	}
	want := `{"variants":{"normal":[{"model":"block/oak_door_bottom_hinge"}],"other":[{"model":"block/stone"}]}}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestBlockStateInvalidVariantComplains(t *testing.T) {
	complaints := complaint.NewSet()
	r := New(revision.V4, revision.V1, complaints)
	out, err := r.BlockState("assets/minecraft/blockstates/x.json", []byte(`{"variants":{"bad":"nope","ok":{"model":"block/stone"}}}`))
	if err != nil {
		t.Fatalf("BlockState: %v", err)
	}
	want := `{"variants":{"bad":"nope","ok":[{"model":"stone"}]}}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
	msgs := complaints.List()
	if len(msgs) != 1 || msgs[0] != `assets/minecraft/blockstates/x.json: Variant "bad" is of an invalid type.` {
		t.Fatalf("unexpected complaints %v", msgs)
	}
}

func TestBlockStateMultipart(t *testing.T) {
	r := New(revision.V4, revision.V3, nil)
	out, err := r.BlockState("fence.json", []byte(`{"multipart":[{"apply":{"model":"block/powered_rail"}},{"when":{"north":"true"},"apply":[{"model":"minecraft:block/stone"}]}]}`))
	if err != nil {
		t.Fatalf("BlockState: %v", err)
	}
	want := `{"multipart":[{"apply":{"model":"golden_rail_flat"}},{"apply":[{"model":"stone"}],"when":{"north":"true"}}]}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestBlockStateNoEquivalent(t *testing.T) {
	r := New(revision.V4, revision.V1, nil)
	_, err := r.BlockState("trapdoor.json", []byte(`{"variants":{"half=top":{"model":"block/birch_trapdoor_top"}}}`))
	if !errors.Is(err, ErrNoEquivalent) {
		t.Fatalf("expected ErrNoEquivalent, got %v", err)
	}
}

func TestModelTextures(t *testing.T) {
	r := New(revision.V4, revision.V2, nil)
	out, err := r.Model("grass.json", []byte(`{"parent":"block/cube","textures":{"top":"block/grass_block_top","side":"minecraft:block/dirt","particle":"#side","item":"item/golden_apple","other":"entity/pig"}}`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	want := `{"parent":"block/cube","textures":{"item":"items/apple_golden","other":"entity/pig","particle":"#side","side":"minecraft:blocks/dirt","top":"blocks/grass_top"}}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestModelItemPrefixRoundTrip(t *testing.T) {
	r := New(revision.V3, revision.V4, nil)
	out, err := r.Model("apple.json", []byte(`{"textures":{"layer0":"items/apple_golden"}}`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if want := `{"textures":{"layer0":"item/golden_apple"}}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestModelNoEquivalent(t *testing.T) {
	r := New(revision.V4, revision.V3, nil)
	_, err := r.Model("log.json", []byte(`{"textures":{"end":"block/stripped_oak_log_top"}}`))
	if !errors.Is(err, ErrNoEquivalent) {
		t.Fatalf("expected ErrNoEquivalent, got %v", err)
	}
}

func TestModelParentDroppedForOldest(t *testing.T) {
	src := []byte(`{"parent":"block/block","elements":[{"from":[0,0,0],"to":[16,16,16]}],"display":{"gui":{"rotation":[1,2,3]}}}`)

	r := New(revision.V4, revision.V1, nil)
	out, err := r.Model("custom.json", src)
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := doc["parent"]; ok {
		t.Fatalf("parent survived: %s", out)
	}
	display, ok := doc["display"].(map[string]any)
	if !ok {
		t.Fatalf("missing display: %s", out)
	}
	for _, view := range []string{"gui", "ground", "fixed", "thirdperson", "firstperson"} {
		if _, ok := display[view]; !ok {
			t.Fatalf("view %s missing: %s", view, out)
		}
	}
	gui := display["gui"].(map[string]any)
	if _, ok := gui["scale"]; ok {
		t.Fatalf("existing gui view was overridden: %s", out)
	}
	third := display["thirdperson"].(map[string]any)
	scale := third["scale"].([]any)
	if scale[0].(float64) != 0.375 {
		t.Fatalf("unexpected thirdperson scale %v", scale)
	}

	r = New(revision.V4, revision.V2, nil)
	out, err = r.Model("custom.json", src)
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["parent"] != "block/block" {
		t.Fatalf("parent should be kept above the oldest revision: %s", out)
	}
}

func TestModelParentDroppedWithoutInline(t *testing.T) {
	r := New(revision.V3, revision.V1, nil)
	r.InlineParentDisplay = false
	out, err := r.Model("custom.json", []byte(`{"parent":"item/generated","elements":[]}`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if want := `{"elements":[]}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestModelUnknownParentStillDropped(t *testing.T) {
	r := New(revision.V3, revision.V1, nil)
	out, err := r.Model("custom.json", []byte(`{"parent":"block/cube_all","elements":[]}`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if want := `{"elements":[]}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestNumbersPreserved(t *testing.T) {
	r := New(revision.V1, revision.V2, nil)
	out, err := r.Model("n.json", []byte(`{"elements":[{"from":[0.50,1e2,3]}]}`))
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if want := `{"elements":[{"from":[0.50,1e2,3]}]}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestInvalidJSON(t *testing.T) {
	r := New(revision.V1, revision.V2, nil)
	if _, err := r.Model("bad.json", []byte(`{`)); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := r.BlockState("bad.json", []byte(`[]`)); err == nil {
		t.Fatal("expected error for non-object document")
	}
}
