package clade

// TerminalNodes returns the identifiers whose lineage is not a strict prefix
// of any other identifier's lineage, in input order. Identifiers that
// canonicalize to the same lineage are ambiguous and are never terminal.
//
// Prefixes are compared on segments, so "A|B" is a prefix of "A|B|C" but
// not of "A|BC".
func TerminalNodes(ids []string, delim string) []string {
	prefixes := make(map[string]struct{}, len(ids))
	seen := make(map[string]int, len(ids))
	keys := make([]string, len(ids))
	for i, id := range ids {
		path := Split(id, delim)
		keys[i] = Join(path, delim)
		seen[keys[i]]++
		for _, anc := range Ancestors(path) {
			prefixes[Join(anc, delim)] = struct{}{}
		}
	}

	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if seen[keys[i]] > 1 {
			continue
		}
		if _, isPrefix := prefixes[keys[i]]; isPrefix {
			continue
		}
		out = append(out, id)
	}

	return out
}
