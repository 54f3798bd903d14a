package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapSample = `# Undirected graph: sample
# FromNodeId	ToNodeId
1	2
1	3
% konect style comment

2	3
1	2
3	4	5
`

// TestReadEdges_DuplicatePolicies: the repeated 1→2 record is dropped or summed.
func TestReadEdges_DuplicatePolicies(t *testing.T) {
	b := core.NewBuilder()
	n, err := edgelist.ReadEdges(strings.NewReader(snapSample), b)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3}, g.Nodes(), "4 only appears as a target")
	w, _ := g.Weight(1, 2)
	assert.Equal(t, int64(1), w)
	w, _ = g.Weight(3, 4)
	assert.Equal(t, int64(5), w)

	b = core.NewBuilder(core.WithDuplicatePolicy(core.DuplicateAccumulate))
	_, err = edgelist.ReadEdges(strings.NewReader(snapSample), b)
	require.NoError(t, err)
	g, err = b.Build()
	require.NoError(t, err)
	w, _ = g.Weight(1, 2)
	assert.Equal(t, int64(2), w)
}

// TestReadEdges_Malformed reports the offending line number.
func TestReadEdges_Malformed(t *testing.T) {
	tests := map[string]string{
		"one field":    "1 2\n3\n",
		"not a number": "1 2\nx 3\n",
		"negative id":  "1 -2\n",
		"zero weight":  "1 2 0\n",
		"four fields":  "1 2 3 4\n",
		"bad weight":   "1 2 w\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := edgelist.ReadEdges(strings.NewReader(input), core.NewBuilder())
			require.ErrorIs(t, err, edgelist.ErrMalformedLine)
		})
	}

	_, err := edgelist.ReadEdges(strings.NewReader("1 2\n\n# c\nbad\n"), core.NewBuilder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

// TestLoadEdges reads from disk with builder options.
func TestLoadEdges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n2 3\n"), 0o600))

	g, err := edgelist.LoadEdges(path, core.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	_, err = edgelist.LoadEdges(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestReadSimplices builds per-year min→max pairs.
func TestReadSimplices(t *testing.T) {
	nverts := "3\n1\n2\n"
	simplices := "3\n1\n2\n7\n2\n1\n"
	times := "2010\n2010\n2011\n"

	tg, err := edgelist.ReadSimplices(strings.NewReader(nverts), strings.NewReader(simplices), strings.NewReader(times))
	require.NoError(t, err)
	assert.Equal(t, []int{2010, 2011}, tg.Times())

	g, ok := tg.Bucket(2010)
	require.True(t, ok)
	assert.Equal(t, []core.NodeID{1, 2}, g.Nodes())
	assert.Equal(t, []core.NodeID{2, 3}, g.NeighborIDs(1))
	assert.Equal(t, []core.NodeID{3}, g.NeighborIDs(2))

	g, _ = tg.Bucket(2011)
	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, int64(1), w)
}

// TestReadSimplices_Misaligned covers every way the streams can disagree.
func TestReadSimplices_Misaligned(t *testing.T) {
	tests := []struct {
		name                     string
		nverts, simplices, times string
		want                     error
	}{
		{"times short", "2\n2\n", "1\n2\n3\n4\n", "2000\n", edgelist.ErrMisaligned},
		{"nverts short", "2\n", "1\n2\n", "2000\n2001\n", edgelist.ErrMisaligned},
		{"members short", "3\n", "1\n2\n", "2000\n", edgelist.ErrMisaligned},
		{"members left over", "2\n", "1\n2\n3\n", "2000\n", edgelist.ErrMisaligned},
		{"bad size", "two\n", "1\n2\n", "2000\n", edgelist.ErrMalformedLine},
		{"negative member", "2\n", "1\n-2\n", "2000\n", edgelist.ErrMalformedLine},
		{"bad time", "2\n", "1\n2\n", "y2k\n", edgelist.ErrMalformedLine},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.ReadSimplices(
				strings.NewReader(tc.nverts), strings.NewReader(tc.simplices), strings.NewReader(tc.times))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoadSimplices reads the three files from disk.
func TestLoadSimplices(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}
	tg, err := edgelist.LoadSimplices(
		write("nverts.txt", "2\n"), write("simplices.txt", "5\n4\n"), write("times.txt", "1999\n"))
	require.NoError(t, err)
	g, ok := tg.Bucket(1999)
	require.True(t, ok)
	assert.True(t, g.HasEdge(4, 5))

	_, err = edgelist.LoadSimplices(filepath.Join(dir, "nope"), "", "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
