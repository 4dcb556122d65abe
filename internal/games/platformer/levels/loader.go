// Package levels provides level loading for the platformer.
// This package depends on platformer but platformer does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/games/platformer/levels/formats"
)

// ErrNoLevels is returned when a directory holds no loadable level.
var ErrNoLevels = errors.New("levels: no level files found")

// Level is a parsed level together with where it came from.
type Level struct {
	platformer.LevelTemplate
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Files returns every supported level file under the root, sorted by path.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	sort.Strings(files)
	return files, nil
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, path := range files {
		level, err := l.LoadFile(path)
		if err != nil {
			continue
		}
		levels = append(levels, level)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{LevelTemplate: parsed, FilePath: path}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %d", id)
}

// Table loads every level into a table ordered by ID.
// Duplicate IDs are rejected since the table is indexed by level number.
func (l *Loader) Table() (platformer.LevelTable, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}

	table := make(platformer.LevelTable, 0, len(levels))
	for i, lvl := range levels {
		if i > 0 && levels[i-1].ID == lvl.ID {
			return nil, fmt.Errorf("duplicate level id %d in %s and %s", lvl.ID, levels[i-1].FilePath, lvl.FilePath)
		}
		table = append(table, lvl.LevelTemplate)
	}
	return table, nil
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (platformer.LevelTemplate, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return platformer.LevelTemplate{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
