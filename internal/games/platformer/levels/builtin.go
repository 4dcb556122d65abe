package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded campaign ordered by level ID.
func Builtin() (platformer.LevelTable, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	var levels []platformer.LevelTemplate
	for _, entry := range entries {
		name := path.Join("builtin", entry.Name())
		if entry.IsDir() || !IsLevelFile(name) {
			continue
		}
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		lvl, err := parseByExtension(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		levels = append(levels, lvl)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return platformer.LevelTable(levels), nil
}

// MustBuiltin is Builtin for callers that cannot recover from a broken binary.
func MustBuiltin() platformer.LevelTable {
	table, err := Builtin()
	if err != nil {
		panic(err)
	}
	return table
}
