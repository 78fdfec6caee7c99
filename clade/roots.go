package clade

// RootReferences picks, for every path, the index of its reference row: the
// row sharing the same first segment whose path is shortest. Ties keep the
// first one seen in input order.
//
// The result is aligned with paths. Paths with no segments form their own
// group and reference the first such path.
func RootReferences(paths [][]string) []int {
	type ref struct {
		idx   int
		depth int
	}
	best := make(map[string]ref, len(paths))
	for i, p := range paths {
		head := firstSegment(p)
		cur, ok := best[head]
		if !ok || len(p) < cur.depth {
			best[head] = ref{idx: i, depth: len(p)}
		}
	}

	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = best[firstSegment(p)].idx
	}

	return out
}

func firstSegment(p []string) string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}
