// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package ratio

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Resolve sizes the edges of a layout along one axis. Edges with a fixed size
// keep it. The remaining space is split in portions by ratio, carrying the
// fractional part of each edge over to the next, and an edge whose share would
// be no more than its minimum size is given its minimum and the rest is
// resolved again. All arithmetic is exact, so when no edge is pinned the
// sizes sum to total. When there is no space left, unresolved edges get their
// minimum size, or one if they have none. The result may therefore exceed total.
func Resolve(total int, edges []SizeRequest) []int {
	sizes := make([]int, len(edges))
	resolved := make([]bool, len(edges))
	used := 0
	for i, e := range edges {
		if e.is_fixed() {
			sizes[i], resolved[i] = e.Size, true
			used += e.Size
		}
	}
	for {
		var flexible []int
		total_ratio := 0
		for i, e := range edges {
			if !resolved[i] {
				flexible = append(flexible, i)
				total_ratio += max(1, e.Ratio)
			}
		}
		if len(flexible) == 0 {
			break
		}
		remaining := total - used
		if remaining <= 0 {
			for _, i := range flexible {
				sizes[i] = edges[i].MinimumSize
				if sizes[i] == 0 {
					sizes[i] = 1
				}
			}
			break
		}
		// each edge gets remaining*ratio/total_ratio cells, the fractional
		// part of which is carried over to the next edge as acc/total_ratio
		pinned := false
		for _, i := range flexible {
			if remaining*edges[i].Ratio <= edges[i].MinimumSize*total_ratio {
				sizes[i], resolved[i] = edges[i].MinimumSize, true
				used += sizes[i]
				pinned = true
				break
			}
		}
		if !pinned {
			acc := 0
			for _, i := range flexible {
				acc += remaining * edges[i].Ratio
				sizes[i] = acc / total_ratio
				acc %= total_ratio
			}
			break
		}
	}
	return sizes
}

// Reduce subtracts from values a total divided between them by ratio, taking
// no more than maximums[i] from values[i]. Slots with a zero maximum are left
// untouched. Shares are rounded to the nearest integer, halves to even.
func Reduce(total int, ratios, maximums, values []int) []int {
	ratios = append([]int(nil), ratios...)
	total_ratio := 0
	for i := range ratios {
		if maximums[i] == 0 {
			ratios[i] = 0
		}
		total_ratio += ratios[i]
	}
	ans := append([]int(nil), values...)
	if total_ratio == 0 {
		return ans
	}
	remaining := total
	for i, r := range ratios {
		if r > 0 && total_ratio > 0 {
			distributed := min(maximums[i], int(math.RoundToEven(float64(r)*float64(remaining)/float64(total_ratio))))
			ans[i] -= distributed
			remaining -= distributed
			total_ratio -= r
		}
	}
	return ans
}
