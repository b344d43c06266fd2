package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/fps01/shared/leveldata"
)

const arenaDir = "arenas"

var (
	//go:embed arenas/*.tmx
	arenaFS embed.FS
)

// ArenaNames lists the embedded arenas, sorted.
func ArenaNames() ([]string, error) {
	matches, err := fs.Glob(arenaFS, arenaDir+"/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob arenas: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadArena loads an embedded arena by name. An empty name returns the
// built-in default.
func LoadArena(name string) (*leveldata.Arena, error) {
	if name == "" {
		return leveldata.Default(), nil
	}
	return leveldata.Load(arenaFS, arenaDir+"/"+name+".tmx")
}
