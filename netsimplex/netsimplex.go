package netsimplex

import "fmt"

// arc is one directed edge with capacity and unit cost. Artificial root arcs
// are uncapacitated and exist only inside a solve.
type arc[T any] struct {
	from, to   int
	capacity   T
	cost       T
	artificial bool
}

// Network is a min-cost-flow problem under construction: a fixed node set,
// directed capacitated arcs with unit costs, and a supply per node (positive
// supplies, negative demands). A Network is not safe for concurrent
// mutation; build it on one goroutine, then Solve.
type Network[T any] struct {
	dom    Domain[T]
	nodes  int
	arcs   []arc[T]
	supply []T
}

// NewNetwork returns an empty network over the given number of nodes, with
// every supply zero. The domain value supplies all scalar arithmetic.
func NewNetwork[T any](dom Domain[T], nodes int) *Network[T] {
	s := make([]T, nodes)
	for i := range s {
		s[i] = dom.Zero()
	}

	return &Network[T]{dom: dom, nodes: nodes, supply: s}
}

// NumNodes returns the size of the node set.
func (nw *Network[T]) NumNodes() int { return nw.nodes }

// NumArcs returns the number of arcs added so far.
func (nw *Network[T]) NumArcs() int { return len(nw.arcs) }

// AddArc adds a directed arc with the given capacity and unit cost and
// returns its index (insertion order, also the index into Flow.ArcFlows).
// Capacity must be non-negative.
func (nw *Network[T]) AddArc(from, to int, capacity, cost T) (int, error) {
	if from < 0 || from >= nw.nodes || to < 0 || to >= nw.nodes {
		return 0, ErrNodeOutOfRange
	}
	if nw.dom.Cmp(capacity, nw.dom.Zero()) < 0 {
		return 0, ErrNegativeCapacity
	}
	nw.arcs = append(nw.arcs, arc[T]{from: from, to: to, capacity: capacity, cost: cost})

	return len(nw.arcs) - 1, nil
}

// SetSupply sets the supply of a node: positive values inject flow, negative
// values demand it. Supplies must balance to zero for a feasible problem.
func (nw *Network[T]) SetSupply(node int, supply T) error {
	if node < 0 || node >= nw.nodes {
		return ErrNodeOutOfRange
	}
	nw.supply[node] = supply

	return nil
}

// Arc states inside a solve.
const (
	stateTree int8 = iota
	stateLower
	stateUpper
)

// netRunner is the per-solve working state: the spanning-tree basis over the
// node set plus an artificial root, arc flows and node potentials. Owned
// exclusively by one Solve call.
type netRunner[T any] struct {
	dom   Domain[T]
	n     int // user nodes; the artificial root is node n
	mUser int
	arcs  []arc[T] // user arcs followed by one artificial arc per node

	flow  []T
	state []int8

	parent    []int // per node, parent[root] = -1
	parentArc []int
	depth     []int
	pot       []T

	opts       Options
	iterations int
}

// cycleStep is one tree arc on the cycle induced by an entering arc.
// forward means the arc points along the direction of the flow change;
// child is the deeper endpoint, the root of the subtree severed if this arc
// leaves the basis.
type cycleStep struct {
	arcIdx  int
	child   int
	forward bool
}

// Solve runs the network simplex method and returns the terminal outcome.
// Terminal statuses (Optimal, Infeasible, IterationLimitExceeded) are
// reported in the Flow; the error path is reserved and currently always nil,
// mirroring the LP solver's signature.
func (nw *Network[T]) Solve(opts ...Option) (*Flow[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := nw.dom

	// 1) Supplies must balance; an unbalanced problem has no feasible flow.
	total := d.Zero()
	for _, s := range nw.supply {
		total = d.Add(total, s)
	}
	if d.Cmp(total, d.Zero()) != 0 {
		return &Flow[T]{Status: StatusInfeasible, TotalCost: d.Zero()}, nil
	}

	// 2) Artificial arc cost: one more than the total absolute arc cost, so
	//    any feasible flow beats any flow still using an artificial arc.
	penalty := d.One()
	for _, a := range nw.arcs {
		c := a.cost
		if d.Cmp(c, d.Zero()) < 0 {
			c = d.Neg(c)
		}
		penalty = d.Add(penalty, c)
	}

	// 3) Initial spanning tree: every node hangs off the artificial root,
	//    its artificial arc oriented with the supply and carrying it.
	r := &netRunner[T]{
		dom:       d,
		n:         nw.nodes,
		mUser:     len(nw.arcs),
		arcs:      append(append([]arc[T]{}, nw.arcs...), make([]arc[T], nw.nodes)...),
		flow:      make([]T, len(nw.arcs)+nw.nodes),
		state:     make([]int8, len(nw.arcs)+nw.nodes),
		parent:    make([]int, nw.nodes+1),
		parentArc: make([]int, nw.nodes+1),
		depth:     make([]int, nw.nodes+1),
		pot:       make([]T, nw.nodes+1),
		opts:      cfg,
	}
	root := r.n
	r.parent[root] = -1
	r.parentArc[root] = -1
	for v := 0; v < r.n; v++ {
		idx := r.mUser + v
		if d.Cmp(nw.supply[v], d.Zero()) >= 0 {
			r.arcs[idx] = arc[T]{from: v, to: root, cost: penalty, artificial: true}
			r.flow[idx] = nw.supply[v]
		} else {
			r.arcs[idx] = arc[T]{from: root, to: v, cost: penalty, artificial: true}
			r.flow[idx] = d.Neg(nw.supply[v])
		}
		r.arcs[idx].capacity = d.Zero() // unused for artificial arcs
		r.parent[v] = root
		r.parentArc[v] = idx
	}
	for a := 0; a < r.mUser; a++ {
		r.state[a] = stateLower
		r.flow[a] = d.Zero()
	}

	return r.solve()
}

// solve is the pivot loop: potentials, entering arc, cycle, push, reattach.
func (r *netRunner[T]) solve() (*Flow[T], error) {
	d := r.dom
	for {
		// 1) Iteration ceiling.
		if r.iterations >= r.opts.IterationLimit {
			return &Flow[T]{Status: StatusIterationLimit, TotalCost: d.Zero(), Iterations: r.iterations}, nil
		}

		// 2) Node potentials from the current tree.
		r.computePotentials()

		// 3) Entering arc: most violated reduced cost among non-tree user
		//    arcs, ties by insertion order. Artificial arcs never re-enter.
		entering := -1
		var viol T
		for a := 0; a < r.mUser; a++ {
			if r.state[a] == stateTree {
				continue
			}
			red := d.Add(r.arcs[a].cost, d.Sub(r.pot[r.arcs[a].from], r.pot[r.arcs[a].to]))
			var v T
			switch {
			case r.state[a] == stateLower && d.Cmp(red, d.Zero()) < 0:
				v = d.Neg(red)
			case r.state[a] == stateUpper && d.Cmp(red, d.Zero()) > 0:
				v = red
			default:
				continue
			}
			if entering == -1 || d.Cmp(v, viol) > 0 {
				entering, viol = a, v
			}
		}
		if entering == -1 {
			return r.terminal(), nil
		}

		// 4) Cycle orientation: flow moves s→t along the entering arc and
		//    returns through the tree path t→apex→s.
		s, t := r.arcs[entering].from, r.arcs[entering].to
		if r.state[entering] == stateUpper {
			s, t = t, s
		}
		steps := r.traceCycle(s, t)

		// 5) Leaving arc: minimum residual along the cycle, the entering
		//    arc's own capacity included; ties by lowest arc index.
		delta := d.Sub(r.arcs[entering].capacity, r.flow[entering])
		if r.state[entering] == stateUpper {
			delta = r.flow[entering]
		}
		leaving := entering
		leavingChild := -1
		for _, st := range steps {
			if r.arcs[st.arcIdx].artificial && st.forward {
				continue // uncapacitated
			}
			res := r.flow[st.arcIdx]
			if st.forward {
				res = d.Sub(r.arcs[st.arcIdx].capacity, r.flow[st.arcIdx])
			}
			if c := d.Cmp(res, delta); c < 0 || (c == 0 && st.arcIdx < leaving) {
				delta, leaving, leavingChild = res, st.arcIdx, st.child
			}
		}

		// 6) Push delta around the cycle.
		if d.Cmp(delta, d.Zero()) > 0 {
			if r.state[entering] == stateLower {
				r.flow[entering] = d.Add(r.flow[entering], delta)
			} else {
				r.flow[entering] = d.Sub(r.flow[entering], delta)
			}
			for _, st := range steps {
				if st.forward {
					r.flow[st.arcIdx] = d.Add(r.flow[st.arcIdx], delta)
				} else {
					r.flow[st.arcIdx] = d.Sub(r.flow[st.arcIdx], delta)
				}
			}
		}

		// 7) Basis exchange. The entering arc saturating on its own bound
		//    flips state without touching the tree.
		if leaving == entering {
			if r.state[entering] == stateLower {
				r.state[entering] = stateUpper
			} else {
				r.state[entering] = stateLower
			}
		} else {
			if d.Cmp(r.flow[leaving], d.Zero()) == 0 {
				r.state[leaving] = stateLower
			} else {
				r.state[leaving] = stateUpper
			}
			r.reattach(entering, leavingChild)
			r.state[entering] = stateTree
		}

		r.iterations++
		if r.opts.Verbose {
			fmt.Printf("netsimplex: pivot %d: enter arc %d, leave arc %d\n",
				r.iterations, entering, leaving)
		}
	}
}

// computePotentials rebuilds depths and potentials by walking the tree from
// the artificial root. Tree arcs have zero reduced cost, so a child's
// potential follows its parent's along the connecting arc.
func (r *netRunner[T]) computePotentials() {
	d := r.dom
	root := r.n

	children := make([][]int, r.n+1)
	for v := 0; v < r.n; v++ {
		children[r.parent[v]] = append(children[r.parent[v]], v)
	}

	r.pot[root] = d.Zero()
	r.depth[root] = 0
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range children[u] {
			r.depth[v] = r.depth[u] + 1
			a := r.arcs[r.parentArc[v]]
			if a.from == u {
				r.pot[v] = d.Add(r.pot[u], a.cost)
			} else {
				r.pot[v] = d.Sub(r.pot[u], a.cost)
			}
			stack = append(stack, v)
		}
	}
}

// traceCycle collects the tree arcs on the path t→apex→s, oriented along
// the direction of the flow change.
func (r *netRunner[T]) traceCycle(s, t int) []cycleStep {
	var steps []cycleStep

	// Climbing from t, the cycle direction is child→parent; from s it is
	// parent→child.
	a, b := t, s
	for r.depth[a] > r.depth[b] {
		pa := r.parentArc[a]
		steps = append(steps, cycleStep{arcIdx: pa, child: a, forward: r.arcs[pa].from == a})
		a = r.parent[a]
	}
	for r.depth[b] > r.depth[a] {
		pb := r.parentArc[b]
		steps = append(steps, cycleStep{arcIdx: pb, child: b, forward: r.arcs[pb].to == b})
		b = r.parent[b]
	}
	for a != b {
		pa := r.parentArc[a]
		steps = append(steps, cycleStep{arcIdx: pa, child: a, forward: r.arcs[pa].from == a})
		a = r.parent[a]

		pb := r.parentArc[b]
		steps = append(steps, cycleStep{arcIdx: pb, child: b, forward: r.arcs[pb].to == b})
		b = r.parent[b]
	}

	return steps
}

// reattach replaces the severed subtree's link to the tree with the entering
// arc, reversing the parent chain from the entering endpoint inside the
// subtree up to the subtree's root. The leaving arc, formerly the subtree
// root's parent link, is overwritten in the final step.
func (r *netRunner[T]) reattach(entering, child int) {
	x, y := r.arcs[entering].from, r.arcs[entering].to
	if !r.inSubtree(x, child) {
		x, y = y, x
	}

	node, par, pa := x, y, entering
	for {
		nextPar, nextArc := r.parent[node], r.parentArc[node]
		r.parent[node] = par
		r.parentArc[node] = pa
		if node == child {
			break
		}
		par, pa = node, nextArc
		node = nextPar
	}
}

// inSubtree reports whether node lies in the subtree rooted at sub.
func (r *netRunner[T]) inSubtree(node, sub int) bool {
	for node != -1 {
		if node == sub {
			return true
		}
		node = r.parent[node]
	}

	return false
}

// terminal classifies a priced-out basis: any artificial arc still carrying
// flow proves the supplies cannot be routed within the capacities.
func (r *netRunner[T]) terminal() *Flow[T] {
	d := r.dom
	for a := r.mUser; a < len(r.arcs); a++ {
		if d.Cmp(r.flow[a], d.Zero()) != 0 {
			return &Flow[T]{Status: StatusInfeasible, TotalCost: d.Zero(), Iterations: r.iterations}
		}
	}

	flows := make([]T, r.mUser)
	copy(flows, r.flow[:r.mUser])
	total := d.Zero()
	for a := 0; a < r.mUser; a++ {
		total = d.Add(total, d.Mul(flows[a], r.arcs[a].cost))
	}

	return &Flow[T]{
		Status:     StatusOptimal,
		ArcFlows:   flows,
		TotalCost:  total,
		Iterations: r.iterations,
	}
}
