package citygraph_test

import (
	"fmt"

	"github.com/planvo/tourkit/citygraph"
)

// Example builds a small triangle of cities and freezes it for solving.
func Example() {
	g := citygraph.New()
	a, _ := g.AddCity("Alba", 0, 0)
	b, _ := g.AddCity("Береза", 3, 4)
	c, _ := g.AddCity("Cedro", 6, 0)

	_ = g.EuclideanConnect(a, b) // 3-4-5 triangle side
	_ = g.EuclideanConnect(b, c)
	_ = g.Connect(a, c, 7.5) // hand-weighted road

	m := g.Snapshot()
	fmt.Printf("cities=%d edges=%d d(a,b)=%.1f d(a,c)=%.1f\n",
		m.Nodes(), m.EdgeCount(), m.Distance(a, b), m.Distance(a, c))
	// Output:
	// cities=3 edges=3 d(a,b)=5.0 d(a,c)=7.5
}
