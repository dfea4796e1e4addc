package utils

import "testing"

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestRandomColorFromPalette(t *testing.T) {
	valid := make(map[string]bool, len(palette))
	for _, c := range palette {
		valid[c] = true
	}

	for i := 0; i < 100; i++ {
		if c := RandomColor(); !valid[c] {
			t.Fatalf("color %q is not in the palette", c)
		}
	}
}
