package edgelist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ErrMissingWeight indicates a record without a weight key.
var ErrMissingWeight = errors.New("edgelist: edge has no weight")

// Document is an edge list plus the spanning tree drawn over it.
type Document struct {
	Mode  string   `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`
	Edges []Record `json:"edges" toml:"edges" yaml:"edges"`
}

// Record is one undirected weighted edge. Weight is a pointer so that a
// missing key can be told apart from an explicit zero.
type Record struct {
	Weight   *float64 `json:"weight" toml:"weight" yaml:"weight"`
	From     string   `json:"from" toml:"from" yaml:"from"`
	To       string   `json:"to" toml:"to" yaml:"to"`
	Selected bool     `json:"selected,omitempty" toml:"selected,omitempty" yaml:"selected,omitempty"`
}

// NewDocument records all edges and marks those in selected. Matching is by
// value and counts multiplicity, so of two identical parallel edges only as
// many are marked as appear in selected.
func NewDocument(all, selected []core.Edge[string, float64], mode prim_kruskal.Mode) Document {
	pending := make(map[core.Edge[string, float64]]int, len(selected))
	for _, e := range selected {
		pending[e]++
	}

	doc := Document{Mode: mode.String(), Edges: make([]Record, len(all))}
	for i, e := range all {
		w := e.Weight
		rec := Record{Weight: &w, From: e.From, To: e.To}
		if pending[e] > 0 {
			pending[e]--
			rec.Selected = true
		}
		doc.Edges[i] = rec
	}

	return doc
}

// CoreEdges returns every record as a core edge, in document order.
func (d Document) CoreEdges() ([]core.Edge[string, float64], error) {
	out := make([]core.Edge[string, float64], len(d.Edges))
	for i, r := range d.Edges {
		if r.Weight == nil {
			return nil, fmt.Errorf("edge #%d %s-%s: %w", i, r.From, r.To, ErrMissingWeight)
		}
		out[i] = core.NewEdge(*r.Weight, r.From, r.To)
	}

	return out, nil
}

// Selected returns the records flagged as tree edges, in document order.
func (d Document) Selected() ([]core.Edge[string, float64], error) {
	all, err := d.CoreEdges()
	if err != nil {
		return nil, err
	}
	out := make([]core.Edge[string, float64], 0, len(all))
	for i, r := range d.Edges {
		if r.Selected {
			out = append(out, all[i])
		}
	}

	return out, nil
}

// ParsedMode interprets the mode field; an empty mode means minimum.
func (d Document) ParsedMode() (prim_kruskal.Mode, error) {
	return prim_kruskal.ParseMode(d.Mode)
}

// Annotate runs Kruskal over the edges of doc in the document's mode and
// returns a new document with the accepted edges selected. Any selection
// already present in doc is discarded. observer may be nil.
func Annotate(doc Document, observer prim_kruskal.Observer[string, float64]) (Document, error) {
	mode, err := doc.ParsedMode()
	if err != nil {
		return Document{}, err
	}
	edges, err := doc.CoreEdges()
	if err != nil {
		return Document{}, err
	}
	forest, err := prim_kruskal.NewBuilder[string, float64](observer, prim_kruskal.WithMode(mode)).Build(edges)
	if err != nil {
		return Document{}, fmt.Errorf("annotate: %w", err)
	}

	return NewDocument(edges, forest.Edges, mode), nil
}
