package edgelist_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/facetkit/edgelist"
	"github.com/katalvlaran/facetkit/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_CommentsAndDuplicates checks comment skipping, 0-indexing,
// duplicate collapse and first-seen order.
func TestLoad_CommentsAndDuplicates(t *testing.T) {
	in := "% bip unweighted\n   % indented comment\n1 1\n1 2\n2 1\n1 2\n3 4 1 973000000\n"
	set, err := edgelist.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []edgelist.Edge{
		{Left: 0, Right: 0},
		{Left: 0, Right: 1},
		{Left: 1, Right: 0},
		{Left: 2, Right: 3},
	}, set.Edges())
}

// TestLoad_UnicodeIndentedComment treats any leading Unicode space
// (NBSP, ideographic space) before '%' as indentation.
func TestLoad_UnicodeIndentedComment(t *testing.T) {
	in := "\u00a0% nbsp comment\n\u3000\t% wide comment\n1 2\n"
	set, err := edgelist.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []edgelist.Edge{{Left: 0, Right: 1}}, set.Edges())
}

func TestLoad_Empty(t *testing.T) {
	set, err := edgelist.Load(strings.NewReader("% only a comment\n"))
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Edges())
}

// TestLoad_Malformed verifies every malformed class surfaces as ParseError.
func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"single field", "1 1\n2\n", 2},
		{"blank line", "1 1\n\n2 2\n", 2},
		{"non integer", "1 a\n", 1},
		{"float", "1.5 2\n", 1},
		{"overflow", "1 99999999999999999999\n", 1},
		{"min int64", "-9223372036854775808 1\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Load(strings.NewReader(tc.in))
			require.ErrorIs(t, err, textio.ErrMalformedLine)
			var pe *textio.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "out.bip")
	require.NoError(t, os.WriteFile(good, []byte("1 1\n2 2\n"), 0o644))
	set, err := edgelist.LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	bad := filepath.Join(dir, "bad.bip")
	require.NoError(t, os.WriteFile(bad, []byte("1 1\nx y\n"), 0o644))
	_, err = edgelist.LoadFile(bad)
	var pe *textio.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, bad, pe.Path)
	assert.Equal(t, 2, pe.Line)

	_, err = edgelist.LoadFile(filepath.Join(dir, "missing.bip"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSet(t *testing.T) {
	s := edgelist.NewSet(edgelist.Edge{Left: 1, Right: 2}, edgelist.Edge{Left: 1, Right: 2})
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(edgelist.Edge{Left: 1, Right: 2}))
	assert.False(t, s.Add(edgelist.Edge{Left: 1, Right: 2}))
	assert.True(t, s.Add(edgelist.Edge{Left: 2, Right: 1}))

	// Edges returns a copy.
	e := s.Edges()
	e[0] = edgelist.Edge{}
	assert.Equal(t, edgelist.Edge{Left: 1, Right: 2}, s.Edges()[0])
}

func TestColumn(t *testing.T) {
	for _, c := range []int{0, 1} {
		col, err := edgelist.ParseColumn(c)
		require.NoError(t, err)
		assert.Equal(t, edgelist.Column(c), col)
	}
	for _, c := range []int{-1, 2, 7} {
		_, err := edgelist.ParseColumn(c)
		assert.ErrorIs(t, err, edgelist.ErrBadColumn)
	}
	assert.Equal(t, edgelist.Right, edgelist.Left.Other())
	assert.Equal(t, edgelist.Left, edgelist.Right.Other())

	e := edgelist.Edge{Left: 4, Right: 9}
	assert.Equal(t, int64(4), e.At(edgelist.Left))
	assert.Equal(t, int64(9), e.At(edgelist.Right))
}

// TestRemap_Example follows the converter walkthrough: left {0,1}, right {0,1}
// (after 0-indexing the file ids 1,2).
func TestRemap_Example(t *testing.T) {
	in := []edgelist.Edge{{Left: 0, Right: 0}, {Left: 0, Right: 1}, {Left: 1, Right: 0}}
	out, m := edgelist.Remap(in)
	assert.Equal(t, in, out)
	assert.Equal(t, 2, m.Size(edgelist.Left))
	assert.Equal(t, 2, m.Size(edgelist.Right))
}

func TestRemap_SparseIDs(t *testing.T) {
	in := []edgelist.Edge{{Left: 40, Right: 7}, {Left: 12, Right: 7}, {Left: 40, Right: 99}}
	out, m := edgelist.Remap(in)
	assert.Equal(t, []edgelist.Edge{{Left: 0, Right: 0}, {Left: 1, Right: 0}, {Left: 0, Right: 1}}, out)

	orig, ok := m.Original(edgelist.Left, 1)
	require.True(t, ok)
	assert.Equal(t, int64(12), orig)
	dense, ok := m.Dense(edgelist.Right, 99)
	require.True(t, ok)
	assert.Equal(t, int64(1), dense)

	_, ok = m.Original(edgelist.Left, 2)
	assert.False(t, ok)
	_, ok = m.Dense(edgelist.Column(3), 40)
	assert.False(t, ok)
	assert.Zero(t, m.Size(edgelist.Column(-1)))
}

// TestRemap_Bijective checks distinct ids stay distinct and each side
// covers exactly 0..k-1.
func TestRemap_Bijective(t *testing.T) {
	var in []edgelist.Edge
	for i := int64(0); i < 50; i++ {
		in = append(in, edgelist.Edge{Left: (i * 37) % 23 * 1000, Right: (i * 11) % 17 * -3})
	}
	out, m := edgelist.Remap(in)
	require.Len(t, out, len(in))

	for _, c := range []edgelist.Column{edgelist.Left, edgelist.Right} {
		fwd := map[int64]int64{}
		back := map[int64]int64{}
		for i := range in {
			o, d := in[i].At(c), out[i].At(c)
			if prev, ok := fwd[o]; ok {
				assert.Equal(t, prev, d, "same original id must map to same dense id")
			}
			if prev, ok := back[d]; ok {
				assert.Equal(t, prev, o, "distinct original ids must not collide")
			}
			fwd[o], back[d] = d, o
		}
		k := m.Size(c)
		assert.Len(t, back, k)
		for id := int64(0); id < int64(k); id++ {
			_, ok := back[id]
			assert.True(t, ok, "dense id %d missing on column %d", id, c)
		}
	}
}

func TestRemap_Empty(t *testing.T) {
	out, m := edgelist.Remap(nil)
	assert.Empty(t, out)
	assert.Zero(t, m.Size(edgelist.Left))
}

func TestSortBy(t *testing.T) {
	in := []edgelist.Edge{{Left: 2, Right: 0}, {Left: 0, Right: 5}, {Left: 1, Right: 1}, {Left: 0, Right: 3}}

	byLeft := edgelist.SortBy(in, edgelist.Left)
	assert.Equal(t, []edgelist.Edge{{Left: 0, Right: 5}, {Left: 0, Right: 3}, {Left: 1, Right: 1}, {Left: 2, Right: 0}}, byLeft)

	byRight := edgelist.SortBy(in, edgelist.Right)
	assert.Equal(t, []edgelist.Edge{{Left: 2, Right: 0}, {Left: 1, Right: 1}, {Left: 0, Right: 3}, {Left: 0, Right: 5}}, byRight)

	// Input untouched.
	assert.Equal(t, edgelist.Edge{Left: 2, Right: 0}, in[0])
}

func BenchmarkLoadRemapSort(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		sb.WriteString(strconv.Itoa(i%500 + 1))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(i%733 + 1))
		sb.WriteByte('\n')
	}
	data := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set, err := edgelist.Load(strings.NewReader(data))
		if err != nil {
			b.Fatalf("Load failed: %v", err)
		}
		edges, _ := edgelist.Remap(set.Edges())
		_ = edgelist.SortBy(edges, edgelist.Left)
	}
}
