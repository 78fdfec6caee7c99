// Package clade reconstructs the taxonomy tree implied by delimited lineage
// identifiers such as "Bacteria|Firmicutes|Bacilli" and aggregates per-sample
// measurement vectors up that tree.
//
// 🚀 What lives here?
//
//	• Path helpers: Split, Join, Parent, Ancestors, Depth - pure string work,
//	  empty segments (leading/trailing/double delimiters) are discarded.
//	• Tree: an explicit node table keyed by canonical path string. Each node
//	  owns its vector and the keys of its children; there are no parent
//	  pointers and no owning cycles.
//	• Impute: post-order fill of missing internal vectors with the
//	  element-wise sum of their children. Observed vectors are never
//	  overwritten.
//	• Flatten: name→vector export filtered by depth and leaf policy.
//	• RootReferences / TerminalNodes: pure selection helpers over paths.
//
// ⚙️ Usage:
//
//	tree := clade.NewTree("|")
//	node, _ := tree.GetOrCreate(clade.Split("A|B", "|"))
//	_ = tree.SetVector(node, []float64{4, 6})
//	tree.Impute()
//	rows := tree.Flatten(clade.AllLevels, false) // {"A":[4 6], "A|B":[4 6]}
//
// A Tree lives for one aggregation call and is not safe for concurrent use.
package clade
