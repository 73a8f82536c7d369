package levels

import (
	"math"
	"sort"

	"github.com/vovakirdan/junglerun/internal/core"
)

// reachEpsilon absorbs float error when helper spacing equals the step.
const reachEpsilon = 1e-9

// RepairParams controls the reachability pass.
type RepairParams struct {
	GroundY      float64 // Top of the ground surface
	WorldWidth   float64
	MaxJumpStep  float64 // Largest vertical gap a single jump covers
	HelperWidth  float64
	HelperHeight float64
}

// Repair inserts helper platforms so every elevated platform can be reached
// from the ground by a chain of jumps no taller than MaxJumpStep.
// Platforms are processed from the lowest up; a platform is reachable when
// the nearest reachable surface strictly below it is within one step.
// Helpers are appended after the existing platforms. Repair is idempotent.
func Repair(d Descriptor, p RepairParams) Descriptor {
	out := d.Clone()
	reachable := []float64{p.GroundY}

	for _, idx := range elevatedOrder(out.Platforms, p.GroundY) {
		plat := out.Platforms[idx]
		below, ok := nearestBelow(reachable, plat.Y)
		if !ok {
			continue
		}
		gap := below - plat.Y
		if gap > p.MaxJumpStep+reachEpsilon {
			steps := int(math.Ceil(gap/p.MaxJumpStep - reachEpsilon))
			spacing := gap / float64(steps)
			x := core.ClampF(plat.X+plat.W/2-p.HelperWidth/2, 0, math.Max(0, p.WorldWidth-p.HelperWidth))
			for k := 1; k < steps; k++ {
				y := below - float64(k)*spacing
				out.Platforms = append(out.Platforms, core.R(x, y, p.HelperWidth, p.HelperHeight))
				reachable = append(reachable, y)
				out.Helpers++
			}
		}
		reachable = append(reachable, plat.Y)
	}
	return out
}

// Unreachable returns indices of elevated platforms that violate the step
// rule without any repair.
func Unreachable(d Descriptor, p RepairParams) []int {
	reachable := []float64{p.GroundY}
	var bad []int
	for _, idx := range elevatedOrder(d.Platforms, p.GroundY) {
		plat := d.Platforms[idx]
		below, ok := nearestBelow(reachable, plat.Y)
		if !ok || below-plat.Y > p.MaxJumpStep+reachEpsilon {
			bad = append(bad, idx)
			continue
		}
		reachable = append(reachable, plat.Y)
	}
	sort.Ints(bad)
	return bad
}

// elevatedOrder returns indices of platforms above the ground, lowest first.
func elevatedOrder(platforms []core.Rect, groundY float64) []int {
	var idx []int
	for i, p := range platforms {
		if p.Y < groundY {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return platforms[idx[a]].Y > platforms[idx[b]].Y
	})
	return idx
}

// nearestBelow returns the smallest reachable y strictly greater than y.
func nearestBelow(reachable []float64, y float64) (float64, bool) {
	best, found := 0.0, false
	for _, r := range reachable {
		if r > y && (!found || r < best) {
			best, found = r, true
		}
	}
	return best, found
}
