package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/levels/formats"
)

// Loader handles loading level overrides from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll scans the root directory (not recursively) and loads every
// supported file. Returns levels sorted by index. Files that fail to parse
// are reported in the returned error slice and skipped.
func (l *Loader) LoadAll() ([]Descriptor, []error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, []error{fmt.Errorf("levels: reading directory %s: %w", l.Root, err)}
	}

	fsys := os.DirFS(l.Root)
	var (
		levels []Descriptor
		errs   []error
		seen   = make(map[int]string)
	)
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		d, err := LoadFile(fsys, e.Name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, dup := seen[d.Index]; dup {
			errs = append(errs, fmt.Errorf("levels: %s: level %d already defined by %s", e.Name(), d.Index, prev))
			continue
		}
		seen[d.Index] = e.Name()
		d.FilePath = filepath.Join(l.Root, e.Name())
		levels = append(levels, d)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Index < levels[j].Index
	})
	return levels, errs
}

// LoadFile loads and validates a single level file from fsys.
func LoadFile(fsys fs.FS, path string) (Descriptor, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		parsed formats.Level
		err    error
	)
	switch ext {
	case ".yaml", ".yml":
		data, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			return Descriptor{}, fmt.Errorf("levels: reading file %s: %w", path, readErr)
		}
		parsed, err = formats.ParseYAML(data)
		if err == nil && parsed.Index == 0 {
			parsed.Index = formats.IndexFromFilename(path)
		}
	case ".tmx":
		parsed, err = formats.ParseTMX(fsys, path)
	default:
		return Descriptor{}, fmt.Errorf("levels: unsupported extension: %s", ext)
	}
	if err != nil {
		return Descriptor{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	d, err := fromFormat(parsed)
	if err != nil {
		return Descriptor{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	return d, nil
}

// fromFormat resolves kind names into a descriptor.
func fromFormat(l formats.Level) (Descriptor, error) {
	if l.Index < 1 {
		return Descriptor{}, ValidationError{Code: "NO_INDEX", Message: "level index missing (set index: or put a number in the file name)"}
	}
	d := Descriptor{
		Index:  l.Index,
		Name:   l.Name,
		Source: SourceFile,
	}
	if d.Name == "" {
		d.Name = fmt.Sprintf("Custom %d", l.Index)
	}
	for _, p := range l.Platforms {
		d.Platforms = append(d.Platforms, core.R(p.X, p.Y, p.W, p.H))
	}
	for _, s := range l.Enemies {
		k, err := core.ParseEnemyKind(s.Kind)
		if err != nil {
			return Descriptor{}, ValidationError{Code: "UNKNOWN_ENEMY", Message: err.Error(), Err: err}
		}
		d.Enemies = append(d.Enemies, EnemySpec{Kind: k, X: s.X, Y: s.Y})
	}
	for _, s := range l.PowerUps {
		k, err := core.ParsePowerUpKind(s.Kind)
		if err != nil {
			return Descriptor{}, ValidationError{Code: "UNKNOWN_POWERUP", Message: err.Error(), Err: err}
		}
		d.PowerUps = append(d.PowerUps, PowerUpSpec{Kind: k, X: s.X, Y: s.Y})
	}
	return d, nil
}

// ToFormat converts a descriptor into its file representation.
func ToFormat(d Descriptor) formats.Level {
	l := formats.Level{Index: d.Index, Name: d.Name}
	for _, p := range d.Platforms {
		l.Platforms = append(l.Platforms, formats.Box{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, e := range d.Enemies {
		l.Enemies = append(l.Enemies, formats.Spawn{Kind: e.Kind.String(), X: e.X, Y: e.Y})
	}
	for _, p := range d.PowerUps {
		l.PowerUps = append(l.PowerUps, formats.Spawn{Kind: p.Kind.String(), X: p.X, Y: p.Y})
	}
	return l
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
