package table

import "github.com/cockroachdb/errors"

// State records the history of a table that governs which transforms are
// still legal.
//
//	Raw ──SumClades──▶ Summed ──NormalizeByAncestor──▶ SummedNormalized
//	 │
//	 └──NormalizeColumnsBySum──▶ Normalized
//
// Both normalized states are terminal for normalization.
type State uint8

const (
	// StateRaw: flat counts, never summed nor normalized.
	StateRaw State = iota
	// StateSummed: ancestor rows aggregated, redundant ancestors pruned.
	StateSummed
	// StateNormalized: columns divided by their totals.
	StateNormalized
	// StateSummedNormalized: summed, then divided by root references.
	StateSummedNormalized
)

// IsSummed reports whether clades have been aggregated.
func (s State) IsSummed() bool { return s == StateSummed || s == StateSummedNormalized }

// IsNormalized reports whether values are proportions rather than counts.
func (s State) IsNormalized() bool { return s == StateNormalized || s == StateSummedNormalized }

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRaw:
		return "raw"
	case StateSummed:
		return "summed"
	case StateNormalized:
		return "normalized"
	case StateSummedNormalized:
		return "summed+normalized"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the declared states.
func (s State) valid() bool { return s <= StateSummedNormalized }

// transition names a state-changing (or state-guarded) operation.
type transition uint8

const (
	toSummed transition = iota
	toColumnNormalized
	toAncestorNormalized
	countFilter
)

// next returns the state after t, or an invalid-transition sentinel.
// Operations that do not change the state return s unchanged.
func (s State) next(t transition) (State, error) {
	switch t {
	case toSummed:
		if s == StateNormalized {
			return StateSummedNormalized, nil
		}
		if s == StateRaw {
			return StateSummed, nil
		}
		return s, nil

	case toColumnNormalized:
		if s.IsNormalized() {
			return s, ErrAlreadyNormalized
		}
		if s.IsSummed() {
			return s, ErrSummedTable
		}
		return StateNormalized, nil

	case toAncestorNormalized:
		if s.IsNormalized() {
			return s, ErrAlreadyNormalized
		}
		return StateSummedNormalized, nil

	case countFilter:
		if s.IsNormalized() {
			return s, ErrNormalizedCounts
		}
		return s, nil
	}

	return s, errors.AssertionFailedf("table: unknown transition %d", t)
}
