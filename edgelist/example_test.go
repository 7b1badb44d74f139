package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/facetkit/edgelist"
)

// ExampleLoad loads a small KONECT file, relabels both sides densely and
// sorts by the left column.
func ExampleLoad() {
	in := "% bip\n10 7\n10 3\n4 7\n10 7\n"
	set, err := edgelist.Load(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	edges, m := edgelist.Remap(set.Edges())
	for _, e := range edgelist.SortBy(edges, edgelist.Left) {
		fmt.Println(e.Left, e.Right)
	}
	fmt.Println("left:", m.Size(edgelist.Left), "right:", m.Size(edgelist.Right))
	// Output:
	// 0 0
	// 0 1
	// 1 0
	// left: 2 right: 2
}
