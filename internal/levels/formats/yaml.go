package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Index     int     `yaml:"index,omitempty"`
	Name      string  `yaml:"name"`
	Platforms []Box   `yaml:"platforms"`
	Enemies   []Spawn `yaml:"enemies,omitempty"`
	PowerUps  []Spawn `yaml:"powerups,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Level{
		Index:     yl.Index,
		Name:      yl.Name,
		Platforms: yl.Platforms,
		Enemies:   yl.Enemies,
		PowerUps:  yl.PowerUps,
	}, nil
}

// MarshalYAML renders a level in the same layout ParseYAML reads.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		Index:     l.Index,
		Name:      l.Name,
		Platforms: l.Platforms,
		Enemies:   l.Enemies,
		PowerUps:  l.PowerUps,
	})
}
