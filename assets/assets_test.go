package assets

import "testing"

func TestEmbeddedLevels(t *testing.T) {
	levels, err := Levels()
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("got %d levels, want at least 2", len(levels))
	}

	ids := map[string]bool{}
	for _, l := range levels {
		ids[l.ID] = true
	}
	for i, l := range levels {
		t.Run(l.ID, func(t *testing.T) {
			if len(l.Terrain) == 0 {
				t.Error("no terrain")
			}
			if len(l.FinishLines) == 0 {
				t.Error("no finish line")
			}
			if len(l.GrapplePoints) == 0 {
				t.Error("no grapple points")
			}
			if top, ok := l.TopAt(l.Spawn.X(), l.Spawn.Z()); !ok || l.Spawn.Y() < top {
				t.Errorf("spawn %v is not standing on terrain", l.Spawn)
			}
			last := i == len(levels)-1
			if !last && !ids[l.Next] {
				t.Errorf("next level %q is not embedded", l.Next)
			}
			if last && l.Next != "" {
				t.Errorf("last level points at %q", l.Next)
			}
		})
	}
}
