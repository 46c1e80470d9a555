package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadWrite_RoundTrip: one representative mission survives a
// write/read cycle with identity intact.
func TestReadWrite_RoundTrip(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 2)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))

	got, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), got.VertexCount())
	assert.Equal(t, g.Edges(), got.Edges())
}

// TestRead_RejectsInvalid: malformed missions surface core sentinels.
func TestRead_RejectsInvalid(t *testing.T) {
	_, err := graphio.Read(strings.NewReader("nodes: 2\nedges:\n  - {from: 0, to: 0, weight: 1}\n"))
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = graphio.Read(strings.NewReader("nodes: 2\nedges:\n  - {from: 0, to: 1, weight: -1}\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = graphio.Read(strings.NewReader("nodes: 1\nedges:\n  - {from: 0, to: 1, weight: 1}\n"))
	assert.ErrorIs(t, err, core.ErrVertexRange)
}

// TestLoadSave: disk round trip through the file helpers.
func TestLoadSave(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 2, 9)

	path := filepath.Join(t.TempDir(), "mission.yaml")
	require.NoError(t, graphio.Save(path, g))

	got, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), got.Edges())

	_, err = graphio.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
