package trace_test

import (
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/katalvlaran/lvlmatch/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuffer_Records checks event order and the helpers.
func TestBuffer_Records(t *testing.T) {
	b := trace.NewBuffer()
	b.Step("scan")
	b.Message("hello")
	b.CurrentNode(3)
	b.PickEdge(1, core.ColorGreen)
	b.Commit()

	events := b.Events()
	require.Len(t, events, 5)
	assert.Equal(t, trace.KindStep, events[0].Kind)
	assert.Equal(t, trace.KindCommit, events[4].Kind)
	assert.Equal(t, []string{"hello"}, b.Messages())
	assert.Equal(t, 1, b.Frames())

	b.Reset()
	assert.Empty(t, b.Events())
}

// TestBuffer_CommitIdempotent: repeated commits collapse to one frame.
func TestBuffer_CommitIdempotent(t *testing.T) {
	b := trace.NewBuffer()
	b.Step("s")
	b.Commit()
	b.Commit()
	b.Commit()
	assert.Equal(t, 1, b.Frames())
}

// TestBuffer_DoesNotChangeResults: tracing a matcher run yields the
// same matching as running untraced.
func TestBuffer_DoesNotChangeResults(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(2, 3, 2)

	b := trace.NewBuffer()
	traced, err := matching.Blossom(g, b, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b.Events())

	plain, err := matching.Blossom(g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, traced)
}
