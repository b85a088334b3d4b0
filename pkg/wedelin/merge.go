package wedelin

import (
	"math"
	"sort"

	"github.com/gitrdm/baryonyx/pkg/lp"
)

// MergedConstraint is the canonical (elements, min, max) triple the
// merged-constraint builder (C2) produces: an equality is represented
// as min == max, an open bound is the tightest interval derivable from
// the row's own coefficients (specification §4.2).
type MergedConstraint struct {
	Elements []lp.Element
	Min, Max int
}

// elementKey canonically orders a constraint's elements so that two
// constraints over the same variables (in any order) compare equal.
func elementKey(elems []lp.Element) string {
	sorted := append([]lp.Element(nil), elems...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Var < sorted[j].Var })

	// A short, collision-resistant-enough textual key: this is a
	// canonicalization helper, not a security boundary.
	buf := make([]byte, 0, len(sorted)*12)
	for _, e := range sorted {
		buf = appendInt(buf, e.Var)
		buf = append(buf, ':')
		buf = appendInt(buf, e.Coeff)
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	end := len(buf) - 1
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// MergeConstraints canonicalizes a raw constraint list into merged
// (min, max) rows, coalescing duplicate element-lists by intersecting
// their bounds (specification §4.2):
//   - an equality contributes (v, v);
//   - a <= v constraint tightens max;
//   - a >= v constraint tightens min.
//
// Constraints whose bound stays at ±infinity after merging are closed
// using the tightest bound derivable from the row's own coefficients:
// the sum of positive coefficients as max, the sum of negative
// coefficients as min. MergeConstraints also reports how many input
// rows were removed by merging, and is idempotent: merging an
// already-merged list through this function again yields the same
// list (each row has a unique element-key, so no two rows merge
// further).
func MergeConstraints(constraints []lp.RawConstraint) ([]MergedConstraint, int) {
	index := make(map[string]int)
	var merged []MergedConstraint

	for _, c := range constraints {
		key := elementKey(c.Elements)
		idx, seen := index[key]

		min, max := math.MinInt32, math.MaxInt32
		switch c.Op {
		case lp.OpEQ:
			min, max = c.RHS, c.RHS
		case lp.OpLE:
			min, max = math.MinInt32, c.RHS
		case lp.OpGE:
			min, max = c.RHS, math.MaxInt32
		}

		if !seen {
			index[key] = len(merged)
			merged = append(merged, MergedConstraint{Elements: c.Elements, Min: min, Max: max})
			continue
		}

		if min > math.MinInt32 && min > merged[idx].Min {
			merged[idx].Min = min
		}
		if max < math.MaxInt32 && max < merged[idx].Max {
			merged[idx].Max = max
		}
	}

	removed := len(constraints) - len(merged)

	for i := range merged {
		closeOpenBound(&merged[i])
	}

	return merged, removed
}

// closeOpenBound replaces a still-infinite bound with the tightest
// value the row's own coefficients admit: the sum of positive
// coefficients bounds the max achievable row value, the sum of
// negative coefficients bounds the min.
func closeOpenBound(m *MergedConstraint) {
	if m.Min > math.MinInt32 && m.Max < math.MaxInt32 {
		return
	}

	lower, upper := 0, 0
	for _, e := range m.Elements {
		if e.Coeff > 0 {
			upper += e.Coeff
		} else if e.Coeff < 0 {
			lower += e.Coeff
		}
	}

	if m.Min == math.MinInt32 {
		m.Min = lower
	}
	if m.Max == math.MaxInt32 {
		m.Max = upper
	}
}
