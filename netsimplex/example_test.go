package netsimplex_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/netsimplex"
)

// ExampleNetwork_Solve routes two supplies to two demands at minimum cost.
func ExampleNetwork_Solve() {
	d := netsimplex.Int64Domain{}
	nw := netsimplex.NewNetwork[int64](d, 4)

	// Nodes 0 and 1 supply 20 and 30 units; nodes 2 and 3 demand 30 and 20.
	_ = nw.SetSupply(0, 20)
	_ = nw.SetSupply(1, 30)
	_ = nw.SetSupply(2, -30)
	_ = nw.SetSupply(3, -20)

	_, _ = nw.AddArc(0, 2, 25, 2)
	_, _ = nw.AddArc(0, 3, 25, 3)
	_, _ = nw.AddArc(1, 2, 25, 4)
	_, _ = nw.AddArc(1, 3, 25, 1)

	flow, _ := nw.Solve()
	fmt.Println(flow.Status)
	fmt.Println("flows =", flow.ArcFlows)
	fmt.Println("total cost =", flow.TotalCost)

	// Output:
	// Optimal
	// flows = [20 0 10 20]
	// total cost = 100
}
