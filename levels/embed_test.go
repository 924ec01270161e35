package levels

import (
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{"lazy", "lazy.map", "levels/lazy.map"} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got := len(strings.Fields(string(data))); got != 192 {
				t.Fatalf("expected 192 tokens, got %d", got)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Fatalf("expected error for missing map")
	}
	if _, err := Load(" "); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	found := false
	for _, n := range names {
		if n == "lazy.map" {
			found = true
		}
	}
	if !found {
		t.Fatalf("lazy.map not embedded: %v", names)
	}
}
