// Package edgelist reads and writes weighted edge lists as JSON, TOML or YAML.
//
// A [Document] is the hand-off format between a spanning tree computation and
// whatever renders it: the full edge set, the mode that was used, and a
// "selected" flag on every edge that made it into the tree.
//
//	{
//	  "mode": "minimum",
//	  "edges": [
//	    {"weight": 2, "from": "R", "to": "E", "selected": true},
//	    {"weight": 4, "from": "R", "to": "C"}
//	  ]
//	}
//
// The same structure maps to TOML as an array of [[edges]] tables and to YAML
// as a list of mappings. Decoding is strict in every format: unknown keys are
// errors, and so is an edge without a weight.
//
// # Import and export
//
// [Read] and [Write] work on streams; [Import] and [Export] pick the format
// from the file extension (.json, .toml, .yaml, .yml).
//
// # Pipeline
//
// [Annotate] decodes the edges of a document, runs Kruskal in the document's
// mode, and returns a copy with the selected flags set.
package edgelist
