package levels

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/junglerun/internal/config"
)

// Catalog serves levels 1..Count: file overrides first, then the authored
// table, then the generator. Every returned descriptor is validated and
// passed through the reachability repair.
type Catalog struct {
	mu        sync.RWMutex
	count     int
	repair    RepairParams
	generator *Generator
	overrides map[int]Descriptor
}

// NewCatalog creates a catalog for the given configuration and run seed.
func NewCatalog(cfg config.GameConfig, seed int64) *Catalog {
	return &Catalog{
		count: cfg.Levels.Count,
		repair: RepairParams{
			GroundY:      cfg.World.GroundY,
			WorldWidth:   cfg.World.Width,
			MaxJumpStep:  cfg.Levels.MaxJumpStep,
			HelperWidth:  cfg.Levels.HelperWidth,
			HelperHeight: cfg.Levels.HelperHeight,
		},
		generator: NewGenerator(cfg.World, cfg.Levels.Generator, seed),
		overrides: make(map[int]Descriptor),
	}
}

// Count returns the number of the last level.
func (c *Catalog) Count() int {
	return c.count
}

// RepairParams returns the parameters used by the reachability pass.
func (c *Catalog) RepairParams() RepairParams {
	return c.repair
}

// Level returns the descriptor for a 1-based index, or ErrNoLevel.
func (c *Catalog) Level(index int) (Descriptor, error) {
	if index < 1 || index > c.count {
		return Descriptor{}, fmt.Errorf("%w: %d (have 1..%d)", ErrNoLevel, index, c.count)
	}

	d, err := c.raw(index)
	if err != nil {
		return Descriptor{}, err
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("levels: level %d: %w", index, err)
	}
	return Repair(d, c.repair), nil
}

// raw returns the unrepaired descriptor.
func (c *Catalog) raw(index int) (Descriptor, error) {
	c.mu.RLock()
	o, ok := c.overrides[index]
	c.mu.RUnlock()
	if ok {
		d := o.Clone()
		d.Index = index
		return d, nil
	}
	if d, ok := authoredLevel(index); ok {
		return d, nil
	}
	return c.generator.Generate(index), nil
}

// SetOverrides replaces all file overrides.
func (c *Catalog) SetOverrides(levels []Descriptor) {
	m := make(map[int]Descriptor, len(levels))
	for _, d := range levels {
		m[d.Index] = d.Clone()
	}
	c.mu.Lock()
	c.overrides = m
	c.mu.Unlock()
}

// Overrides returns the overridden level indices in ascending order.
func (c *Catalog) Overrides() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := make([]int, 0, len(c.overrides))
	for i := range c.overrides {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}
