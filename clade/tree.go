package clade

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// AllLevels asks Flatten for nodes at every depth.
const AllLevels = -1

// Sentinel errors for tree construction.
var (
	// ErrEmptyPath indicates GetOrCreate was asked for the (implicit) root.
	ErrEmptyPath = errors.New("clade: empty path")

	// ErrNilNode indicates SetVector received a nil node.
	ErrNilNode = errors.New("clade: nil node")

	// ErrVectorLength indicates a vector whose length differs from the
	// vectors already attached to the tree.
	ErrVectorLength = errors.New("clade: vector length mismatch")
)

// Node is one clade in a Tree.
//
// A node is identified by its canonical key (the lineage joined with the
// tree delimiter). It references children by key only.
type Node struct {
	key      string
	depth    int
	vector   []float64
	children map[string]string // next segment -> child key
}

// Key returns the canonical lineage string of the node.
func (n *Node) Key() string { return n.key }

// Depth returns the number of segments in the node's lineage (root = 0).
func (n *Node) Depth() int { return n.depth }

// HasVector reports whether a vector was attached or imputed.
func (n *Node) HasVector() bool { return n.vector != nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Vector returns a copy of the node's vector, or nil if it has none.
func (n *Node) Vector() []float64 {
	if n.vector == nil {
		return nil
	}
	out := make([]float64, len(n.vector))
	copy(out, n.vector)

	return out
}

// Tree is the implicit lineage tree of a set of feature identifiers,
// stored as a node table keyed by canonical path string.
type Tree struct {
	delim string
	width int              // vector length shared by every node; -1 until first SetVector
	nodes map[string]*Node // canonical key -> node; "" is the root
}

// NewTree returns an empty tree whose keys are joined with delim.
func NewTree(delim string) *Tree {
	return &Tree{
		delim: delim,
		width: -1,
		nodes: map[string]*Node{"": {key: "", children: map[string]string{}}},
	}
}

// Len returns the number of materialized nodes, root excluded.
func (t *Tree) Len() int { return len(t.nodes) - 1 }

// Lookup returns the node for path, if it exists.
func (t *Tree) Lookup(path []string) (*Node, bool) {
	n, ok := t.nodes[Join(path, t.delim)]
	if !ok || len(path) == 0 {
		return nil, false
	}

	return n, true
}

// GetOrCreate walks path from the root, creating missing nodes, and returns
// the terminal node. Each step is a single hash lookup.
func (t *Tree) GetOrCreate(path []string) (*Node, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	cur := t.nodes[""]
	for i, seg := range path {
		childKey, ok := cur.children[seg]
		if !ok {
			childKey = Join(path[:i+1], t.delim)
			cur.children[seg] = childKey
			if _, exists := t.nodes[childKey]; !exists {
				t.nodes[childKey] = &Node{key: childKey, depth: i + 1, children: map[string]string{}}
			}
		}
		cur = t.nodes[childKey]
	}

	return cur, nil
}

// SetVector attaches a copy of v to n. All vectors in one tree share a length.
func (t *Tree) SetVector(n *Node, v []float64) error {
	if n == nil {
		return ErrNilNode
	}
	if t.width >= 0 && len(v) != t.width {
		return errors.Wrapf(ErrVectorLength, "node %q: got %d, want %d", n.key, len(v), t.width)
	}
	t.width = len(v)
	n.vector = make([]float64, len(v))
	copy(n.vector, v)

	return nil
}

// Impute fills every vector-less internal node with the element-wise sum
// of its children, bottom-up. Nodes that already hold a vector keep it.
func (t *Tree) Impute() {
	root := t.nodes[""]
	for _, childKey := range sortedChildren(root) {
		t.impute(t.nodes[childKey])
	}
}

// impute is the post-order worker; it returns the node's final vector.
func (t *Tree) impute(n *Node) []float64 {
	var sum []float64
	for _, childKey := range sortedChildren(n) {
		cv := t.impute(t.nodes[childKey])
		if cv == nil {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(cv))
		}
		floats.Add(sum, cv)
	}
	if n.vector == nil {
		n.vector = sum
	}

	return n.vector
}

// Flatten exports node vectors by canonical name.
//
// level < 0 (AllLevels) keeps every depth; level > 0 keeps only nodes at
// exactly that depth. leavesOnly keeps only nodes without children. Nodes
// without a vector and the root are never exported. Vectors are copies.
func (t *Tree) Flatten(level int, leavesOnly bool) map[string][]float64 {
	out := make(map[string][]float64, len(t.nodes))
	for key, n := range t.nodes {
		if key == "" || n.vector == nil {
			continue
		}
		if level >= 0 && n.depth != level {
			continue
		}
		if leavesOnly && !n.IsLeaf() {
			continue
		}
		out[key] = n.Vector()
	}

	return out
}

// sortedChildren returns child keys in lexical order so traversal (and the
// floating-point summation order) does not depend on map iteration.
func sortedChildren(n *Node) []string {
	keys := make([]string, 0, len(n.children))
	for _, k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
