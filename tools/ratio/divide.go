// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package ratio

import (
	"cmp"
	"fmt"
	"slices"
)

var _ = fmt.Print

// SizeRequest describes how much of some space a region wants. A positive
// Size is a fixed allocation that overrides Ratio. Otherwise the region gets
// a share of the space left over by fixed regions proportional to Ratio, but
// never less than MinimumSize.
type SizeRequest struct {
	MinimumSize int
	Ratio       int
	Size        int
}

func (self SizeRequest) String() string {
	if self.Size > 0 {
		return fmt.Sprintf("size=%d", self.Size)
	}
	return fmt.Sprintf("ratio=%d,min=%d", self.Ratio, self.MinimumSize)
}

func (self SizeRequest) is_fixed() bool { return self.Size > 0 }
func (self SizeRequest) minimum() int   { return max(0, self.MinimumSize) }

type share struct {
	idx, ratio, size, remainder int
}

// proportional splits space among the shares in proportion to their ratios.
// The floor of each exact share is allocated first, then the units left over
// go one each to the shares with the largest fractional remainder, the earlier
// share winning ties.
func proportional(space int, shares []share) {
	total_ratio := 0
	for _, s := range shares {
		total_ratio += s.ratio
	}
	leftover := space
	for i := range shares {
		s := &shares[i]
		s.size = space * s.ratio / total_ratio
		s.remainder = space * s.ratio % total_ratio
		leftover -= s.size
	}
	if leftover > 0 {
		order := make([]int, len(shares))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(shares[b].remainder, shares[a].remainder)
		})
		for _, i := range order[:leftover] {
			shares[i].size++
		}
	}
}

// Divide allocates total among requests, returning one size per request in
// the same order. Fixed sizes are allocated first. Requests with no ratio get
// their minimum size, and if there are no requests with a ratio, the first of
// them gets everything that is left. The rest is split between requests with
// a ratio using largest remainder rounding, and any request whose share would
// fall below its minimum size is pinned at that minimum with the space left
// re-divided among the others.
//
// When total is at least the sum of fixed and minimum sizes, the result sums
// to exactly total. Otherwise minimum sizes are still honored and the result
// sums to more than total.
func Divide(total int, requests []SizeRequest) []int {
	ans := make([]int, len(requests))
	remaining := total
	var flexible []share
	first_idle := -1
	for i, r := range requests {
		switch {
		case r.is_fixed():
			ans[i] = r.Size
		case r.Ratio > 0:
			flexible = append(flexible, share{idx: i, ratio: r.Ratio})
			continue
		default:
			ans[i] = r.minimum()
			if first_idle < 0 {
				first_idle = i
			}
		}
		remaining -= ans[i]
	}
	if len(flexible) == 0 {
		if first_idle > -1 && remaining > 0 {
			ans[first_idle] += remaining
		}
		return ans
	}
	for len(flexible) > 0 {
		if remaining <= 0 {
			for _, s := range flexible {
				ans[s.idx] = requests[s.idx].minimum()
			}
			break
		}
		proportional(remaining, flexible)
		unpinned := flexible[:0]
		for _, s := range flexible {
			if m := requests[s.idx].minimum(); s.size < m {
				ans[s.idx] = m
				remaining -= m
			} else {
				unpinned = append(unpinned, s)
			}
		}
		if len(unpinned) == len(flexible) {
			for _, s := range flexible {
				ans[s.idx] = s.size
			}
			break
		}
		flexible = unpinned
	}
	return ans
}

// Distribute divides total in proportion to ratios, with optional per slot
// minimums, see Divide.
func Distribute(total int, ratios []int, minimums []int) []int {
	requests := make([]SizeRequest, len(ratios))
	for i, r := range ratios {
		requests[i].Ratio = r
		if i < len(minimums) {
			requests[i].MinimumSize = minimums[i]
		}
	}
	return Divide(total, requests)
}
