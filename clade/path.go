package clade

import "strings"

// Split breaks an identifier into its ordered, non-empty lineage segments.
// An identifier without the delimiter yields a single segment; an empty
// delimiter yields the whole identifier (if non-empty).
func Split(id, delim string) []string {
	if delim == "" {
		if id == "" {
			return nil
		}
		return []string{id}
	}

	raw := strings.Split(id, delim)
	path := raw[:0]
	for _, seg := range raw {
		if seg != "" {
			path = append(path, seg)
		}
	}
	if len(path) == 0 {
		return nil
	}

	return path
}

// Join is the inverse of Split for already-clean paths.
func Join(path []string, delim string) string {
	return strings.Join(path, delim)
}

// Depth returns the number of non-empty segments in id.
func Depth(id, delim string) int {
	return len(Split(id, delim))
}

// Parent returns path without its last segment, or nil for paths of length ≤ 1.
// The result shares storage with path.
func Parent(path []string) []string {
	if len(path) <= 1 {
		return nil
	}

	return path[:len(path)-1]
}

// Ancestors returns every proper prefix of path, nearest first.
// "A|B|C" yields [A B], [A].
func Ancestors(path []string) [][]string {
	if len(path) <= 1 {
		return nil
	}
	out := make([][]string, 0, len(path)-1)
	for n := len(path) - 1; n >= 1; n-- {
		out = append(out, path[:n])
	}

	return out
}
