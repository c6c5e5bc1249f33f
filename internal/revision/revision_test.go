package revision

import "testing"

func TestClassThreshold(t *testing.T) {
	cases := []struct {
		id   ID
		want Class
	}{
		{V1, Legacy},
		{V2, Legacy},
		{V3, Legacy},
		{V4, Modern},
		{ID(7), Modern},
	}
	for _, tc := range cases {
		if got := tc.id.Class(); got != tc.want {
			t.Fatalf("Class(%d) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if got := V2.Label(); got != "1.9 - 1.10.2" {
		t.Fatalf("unexpected label for V2: %q", got)
	}
	if got := ID(9).Label(); got != "" {
		t.Fatalf("expected empty label for unknown id, got %q", got)
	}
	if Latest != V4 || Oldest != V1 {
		t.Fatalf("unexpected latest/oldest: %d/%d", Latest, Oldest)
	}
}

func TestParse(t *testing.T) {
	id, err := Parse("3")
	if err != nil || id != V3 {
		t.Fatalf("Parse(3) = %v, %v", id, err)
	}
	id, err = Parse(" 1.13 - 1.13.1 ")
	if err != nil || id != V4 {
		t.Fatalf("Parse(label) = %v, %v", id, err)
	}
	if _, err := Parse("5"); err == nil {
		t.Fatal("expected error for unknown id")
	}
	if _, err := Parse("nope"); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]ID{V4, V2, V4, ID(12)})
	if len(got) != 2 || got[0] != V2 || got[1] != V4 {
		t.Fatalf("unexpected normalized ids: %v", got)
	}
	if all := Normalize(nil); len(all) != 4 {
		t.Fatalf("expected whole catalog, got %v", all)
	}
}

func TestCrosses(t *testing.T) {
	if !Crosses(V4, V1) || !Crosses(V3, V4) {
		t.Fatal("expected class crossing")
	}
	if Crosses(V1, V3) {
		t.Fatal("legacy revisions share a class")
	}
}
