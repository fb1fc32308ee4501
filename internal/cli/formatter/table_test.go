package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"DAM", "DUE"},
		[][]string{
			{"DOE-1", "2025-03-04"},
			{"COW-12", "2026-01-10"},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "DAM     DUE", lines[0])
	assert.Equal(t, "──────  ──────────", lines[1])
	assert.Equal(t, "DOE-1   2025-03-04", lines[2])
	assert.Equal(t, "COW-12  2026-01-10", lines[3])
}

func TestRenderTable_RaggedRows(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"x"}, {"1", "2", "3", "extra"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "x     ", lines[2])
	assert.Equal(t, "1  2  3", lines[3])
	assert.NotContains(t, out, "extra")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
