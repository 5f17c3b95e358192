package citygraph_test

import (
	"math"
	"testing"

	"github.com/planvo/tourkit/citygraph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *citygraph.Graph {
	t.Helper()

	g := citygraph.New()
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.AddCity(name, 0, 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.Connect(0, 1, 1))
	require.NoError(t, g.Connect(1, 2, 2))

	return g
}

func TestSnapshot_Distances(t *testing.T) {
	m := triangle(t).Snapshot()

	require.Equal(t, 3, m.Nodes())
	require.Equal(t, 2, m.EdgeCount())

	// Diagonal is zero, stored edges are symmetric, missing edges +Inf.
	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, m.Distance(i, i))
	}
	require.Equal(t, 1.0, m.Distance(0, 1))
	require.Equal(t, 1.0, m.Distance(1, 0))
	require.Equal(t, 2.0, m.Distance(1, 2))
	require.True(t, math.IsInf(m.Distance(0, 2), 1))
	require.True(t, math.IsInf(m.Distance(2, 0), 1))
}

func TestSnapshot_OutOfRangeIsNaN(t *testing.T) {
	m := triangle(t).Snapshot()

	require.True(t, math.IsNaN(m.Distance(-1, 0)))
	require.True(t, math.IsNaN(m.Distance(0, 3)))
}

func TestSnapshot_DetachedFromBuilder(t *testing.T) {
	g := triangle(t)
	m := g.Snapshot()

	// Mutate the builder after freezing: the snapshot must not move.
	require.NoError(t, g.Connect(0, 2, 9))
	require.NoError(t, g.Disconnect(0, 1))

	require.Equal(t, 1.0, m.Distance(0, 1))
	require.True(t, math.IsInf(m.Distance(0, 2), 1))

	// A fresh snapshot observes the edits.
	m2 := g.Snapshot()
	require.Equal(t, 9.0, m2.Distance(0, 2))
	require.True(t, math.IsInf(m2.Distance(0, 1), 1))
}

func TestSnapshot_Clone(t *testing.T) {
	m := triangle(t).Snapshot()
	c := m.Clone()

	require.Equal(t, m.Nodes(), c.Nodes())
	require.Equal(t, m.EdgeCount(), c.EdgeCount())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a, b := m.Distance(i, j), c.Distance(i, j)
			if math.IsInf(a, 1) {
				require.True(t, math.IsInf(b, 1))
				continue
			}
			require.Equal(t, a, b)
		}
	}
}

func TestSnapshot_EmptyGraph(t *testing.T) {
	m := citygraph.New().Snapshot()
	require.Equal(t, 0, m.Nodes())
	require.Equal(t, 0, m.EdgeCount())
}
