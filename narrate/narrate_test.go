package narrate_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/narrate"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

func routeEdges() []core.Edge[string, float64] {
	return []core.Edge[string, float64]{
		core.NewEdge(2.0, "R", "E"), core.NewEdge(4.0, "R", "C"), core.NewEdge(7.0, "E", "G"),
		core.NewEdge(3.0, "E", "F"), core.NewEdge(1.0, "C", "F"), core.NewEdge(5.0, "C", "D"),
		core.NewEdge(2.0, "G", "D"), core.NewEdge(8.0, "F", "B"), core.NewEdge(6.0, "D", "B"),
	}
}

// records decodes one JSON log record per line.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), sc.Text())
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestObserver_LogsEveryDecision(t *testing.T) {
	var buf bytes.Buffer
	logger := narrate.NewLogger(&buf, log.DebugLevel)
	logger.SetFormatter(log.JSONFormatter)
	logger.SetReportTimestamp(false)

	obs := narrate.New[string, float64](logger)
	forest, err := prim_kruskal.NewBuilder[string, float64](obs).Build(routeEdges())
	require.NoError(t, err)

	recs := records(t, &buf)
	require.Len(t, recs, 9)
	assert.Equal(t, 6, obs.Accepted())
	assert.Equal(t, 3, obs.Rejected())

	first := recs[0]
	assert.Equal(t, "accept", first["msg"])
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "C", first["from"])
	assert.Equal(t, "F", first["to"])
	assert.EqualValues(t, 1, first["weight"])
	assert.EqualValues(t, 1, first["step"])

	fifth := recs[4]
	assert.Equal(t, "reject", fifth["msg"])
	assert.Equal(t, "debug", fifth["level"])
	assert.Equal(t, "R", fifth["from"])

	var accepted int
	for _, r := range recs {
		if r["msg"] == "accept" {
			accepted++
		}
	}
	assert.Equal(t, len(forest.Edges), accepted)
}

func TestObserver_InfoLevelHidesRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := narrate.NewLogger(&buf, log.InfoLevel)
	logger.SetFormatter(log.JSONFormatter)

	obs := narrate.New[string, float64](logger)
	_, err := prim_kruskal.NewBuilder[string, float64](obs, prim_kruskal.WithMaximize()).Build(routeEdges())
	require.NoError(t, err)

	recs := records(t, &buf)
	assert.Len(t, recs, 6)
	for _, r := range recs {
		assert.Equal(t, "accept", r["msg"])
		assert.Contains(t, r, "time")
	}
	assert.Equal(t, 3, obs.Rejected(), "rejections are counted even when not logged")
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := narrate.NewLogger(&buf, log.DebugLevel)
	logger.SetReportTimestamp(false)

	narrate.New[string, int](logger).Considered(core.NewEdge(5, "X", "Y"), false)
	out := buf.String()
	assert.Contains(t, out, "reject")
	assert.Contains(t, out, "from=X")
	assert.Contains(t, out, "to=Y")
	assert.Contains(t, out, "weight=5")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := narrate.NewLogger(&buf, log.InfoLevel)
	logger.SetFormatter(log.JSONFormatter)

	narrate.Summary(logger, prim_kruskal.Forest[string, float64]{Total: 19, Edges: make([]core.Edge[string, float64], 6), Nodes: 7, Trees: 1})
	narrate.Summary(logger, prim_kruskal.Forest[string, float64]{Total: 7, Edges: make([]core.Edge[string, float64], 3), Nodes: 5, Trees: 2})

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "spanning tree", recs[0]["msg"])
	assert.EqualValues(t, 19, recs[0]["total"])
	assert.Equal(t, "warn", recs[1]["level"])
	assert.EqualValues(t, 2, recs[1]["trees"])
}

func TestNew_NilLogger(t *testing.T) {
	obs := narrate.New[string, float64](nil)
	assert.NotPanics(t, func() { obs.Considered(core.NewEdge(1.0, "A", "B"), true) })
	assert.Equal(t, 1, obs.Accepted())
}
