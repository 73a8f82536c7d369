// Package formats provides pluggable level file format parsers.
// Parsers produce a format-neutral Level with kinds as strings; the levels
// package resolves kinds and validates geometry.
package formats

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Box is a rectangle as written in a level file.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Spawn places an entity of a named kind.
type Spawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Level represents a parsed level file.
type Level struct {
	Index     int
	Name      string
	Platforms []Box
	Enemies   []Spawn
	PowerUps  []Spawn
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".tmx"}
}

// IndexFromFilename extracts the last run of digits in the file stem,
// so "level_012.tmx" and "12-canopy.yaml" both map to 12.
// Returns 0 when the name has no digits.
func IndexFromFilename(path string) int {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	end := -1
	for i := len(stem) - 1; i >= 0; i-- {
		if unicode.IsDigit(rune(stem[i])) {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return 0
	}
	start := end
	for start > 0 && unicode.IsDigit(rune(stem[start-1])) {
		start--
	}
	n, err := strconv.Atoi(stem[start:end])
	if err != nil {
		return 0
	}
	return n
}
