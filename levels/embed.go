package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.map
var LevelsFS embed.FS

// Dir is the on-disk directory checked before the embedded maps.
const Dir = "levels"

// Load returns the tile map named name. A copy under Dir takes precedence
// over the embedded one so maps can be edited while the game runs.
func Load(name string) ([]byte, error) {
	clean := cleanMapName(name)
	if clean == "" {
		return nil, fmt.Errorf("levels: empty map name")
	}
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return data, nil
}

// DiskPath is where the editable copy of a map lives.
func DiskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(cleanMapName(name)))
}

// Names lists the embedded maps.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func cleanMapName(name string) string {
	s := strings.TrimSpace(filepath.ToSlash(name))
	if s == "" {
		return ""
	}
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".map") {
		s += ".map"
	}
	return s
}
