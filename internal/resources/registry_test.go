package resources

import "testing"

func TestReleaseRunsEachOnceInReverse(t *testing.T) {
	r := NewRegistry()
	var order []string
	calls := map[string]int{}

	for _, name := range []string{"cube", "plane", "lit"} {
		name := name
		kind := KindMesh
		if name == "lit" {
			kind = KindProgram
		}
		if err := r.Track(kind, name, func() {
			order = append(order, name)
			calls[name]++
		}); err != nil {
			t.Fatalf("Track(%s): %v", name, err)
		}
	}

	live := r.Live()
	if live[KindMesh] != 2 || live[KindProgram] != 1 {
		t.Errorf("Unexpected live counts: %v", live)
	}

	r.Release()
	r.Release()

	if len(order) != 3 || order[0] != "lit" || order[2] != "cube" {
		t.Errorf("Expected reverse order [lit plane cube], got %v", order)
	}
	for name, n := range calls {
		if n != 1 {
			t.Errorf("%s released %d times", name, n)
		}
	}
	if len(r.Live()) != 0 {
		t.Errorf("Expected nothing live after release, got %v", r.Live())
	}
}

func TestTrackDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Track(KindTexture, "leather", func() {}); err != nil {
		t.Fatal(err)
	}
	if err := r.Track(KindTexture, "leather", func() {}); err == nil {
		t.Error("Expected duplicate error")
	}
	// Same name under another kind is distinct
	if err := r.Track(KindMesh, "leather", func() {}); err != nil {
		t.Errorf("Unexpected error for distinct kind: %v", err)
	}
}

func TestTrackAfterRelease(t *testing.T) {
	r := NewRegistry()
	r.Release()
	if err := r.Track(KindMesh, "cube", func() {}); err == nil {
		t.Error("Expected error tracking into a released registry")
	}
}
