// Package narrate turns spanning tree decisions into structured log records.
//
// The algorithms in prim_kruskal never write output themselves; they report
// each considered edge to an Observer. This package provides an Observer that
// logs accepted edges at info level and rejected edges at debug level through
// charmbracelet/log, so a verbose logger shows the full walk and a quiet one
// shows only the tree.
//
//	logger := narrate.NewLogger(os.Stderr, log.DebugLevel)
//	obs := narrate.New[string, float64](logger)
//	forest, err := prim_kruskal.NewBuilder[string, float64](obs).Build(edges)
//	narrate.Summary(logger, forest)
package narrate

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

var (
	styleNode   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleWeight = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	styleReject = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewLogger creates a logger with timestamp formatting and node/weight
// highlighting. It writes to w and filters messages at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	styles := log.DefaultStyles()
	styles.Values["from"] = styleNode
	styles.Values["to"] = styleNode
	styles.Values["weight"] = styleWeight
	styles.Levels[log.DebugLevel] = styleReject.SetString("DEBU")
	l.SetStyles(styles)

	return l
}

// Observer logs every decision of a spanning tree run. It counts steps
// across runs; use a fresh Observer per run for per-run numbering.
// Not safe for concurrent use.
type Observer[N comparable, W core.Weight] struct {
	logger   *log.Logger
	step     int
	accepted int
	rejected int
}

// New returns an Observer writing to logger, or to log.Default() when logger
// is nil.
func New[N comparable, W core.Weight](logger *log.Logger) *Observer[N, W] {
	if logger == nil {
		logger = log.Default()
	}
	return &Observer[N, W]{logger: logger}
}

// Considered implements prim_kruskal.Observer.
func (o *Observer[N, W]) Considered(e core.Edge[N, W], accepted bool) {
	o.step++
	if accepted {
		o.accepted++
		o.logger.Info("accept", "step", o.step, "from", e.From, "to", e.To, "weight", e.Weight)
		return
	}
	o.rejected++
	o.logger.Debug("reject", "step", o.step, "from", e.From, "to", e.To, "weight", e.Weight)
}

// Accepted returns the number of edges that joined the forest so far.
func (o *Observer[N, W]) Accepted() int { return o.accepted }

// Rejected returns the number of edges that would have closed a cycle.
func (o *Observer[N, W]) Rejected() int { return o.rejected }

// Summary logs the outcome of a run: total weight, edge count and trees.
// A forest of more than one tree is logged as a warning.
func Summary[N comparable, W core.Weight](logger *log.Logger, f prim_kruskal.Forest[N, W]) {
	if logger == nil {
		logger = log.Default()
	}
	kv := []any{"total", f.Total, "edges", len(f.Edges), "nodes", f.Nodes, "trees", f.Trees}
	if !f.Spanning() {
		logger.Warn("spanning forest", kv...)
		return
	}
	logger.Info("spanning tree", kv...)
}

var _ prim_kruskal.Observer[string, float64] = (*Observer[string, float64])(nil)
