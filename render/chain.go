package render

import "github.com/katalvlaran/circuitcode/gridmodel"

type edgeKind uint8

const (
	horizontal edgeKind = iota
	vertical
	diagonal
)

// edge is one undirected multigraph edge built from a grid.
type edge struct {
	a, b gridmodel.Node
	kind edgeKind
	diag gridmodel.Diagonal
}

func (e edge) other(n gridmodel.Node) gridmodel.Node {
	if n == e.a {
		return e.b
	}
	return e.a
}

// Step is one consumed edge of a chain, ending at To.
type Step struct {
	To       gridmodel.Node
	Diagonal *gridmodel.Diagonal // nil for orthogonal edges
}

// Chain is a maximal pen-down walk through the panel graph.
type Chain struct {
	Start gridmodel.Node
	Steps []Step
}

// edgesOf lists slot edges in natural order, then diagonals in insertion order.
func edgesOf(g *gridmodel.Grid) []edge {
	p := g.Presence()
	diags := g.Diagonals()
	out := make([]edge, 0, len(p)+len(diags))
	for i, ok := range p {
		if !ok {
			continue
		}
		s := gridmodel.SlotAt(i)
		a, b := s.Endpoints()
		k := horizontal
		if s.Kind == gridmodel.Vertical {
			k = vertical
		}
		out = append(out, edge{a: a, b: b, kind: k})
	}
	for _, d := range diags {
		a, b := d.Endpoints()
		out = append(out, edge{a: a, b: b, kind: diagonal, diag: d})
	}
	return out
}

// Chains decomposes the grid's edges into chains. Every edge is consumed by
// exactly one chain.
//
// Steps:
//  1. Build adjacency lists and residual degrees over all present edges.
//  2. Start a chain at every node whose residual degree is 1, so leaves are
//     chain ends rather than stranded single-edge paths.
//  3. Start further chains at any node with residual edges, in index order.
//  4. A chain consumes the first unused incident edge of its current node and
//     moves on; it stops when the new node has no residual edge or was
//     already visited by this chain (closed loop).
//
// The walk is an explicit loop over a worklist of nodes, never recursion.
// Complexity: O(V + E·d), d ≤ MaxDegree.
func Chains(g *gridmodel.Grid) []Chain {
	edges := edgesOf(g)
	var (
		adj      [gridmodel.NodeCount][]int
		residual [gridmodel.NodeCount]int
		used     = make([]bool, len(edges))
	)
	for i, e := range edges {
		ai, bi := e.a.Index(), e.b.Index()
		adj[ai] = append(adj[ai], i)
		adj[bi] = append(adj[bi], i)
		residual[ai]++
		residual[bi]++
	}

	next := func(n int) int {
		for _, ei := range adj[n] {
			if !used[ei] {
				return ei
			}
		}
		return -1
	}

	var chains []Chain
	walk := func(start int) {
		for residual[start] > 0 {
			ch := Chain{Start: gridmodel.NodeAt(start)}
			visited := map[int]bool{start: true}
			cur := start
			for {
				ei := next(cur)
				if ei < 0 {
					break
				}
				used[ei] = true
				e := edges[ei]
				residual[e.a.Index()]--
				residual[e.b.Index()]--

				to := e.other(gridmodel.NodeAt(cur))
				step := Step{To: to}
				if e.kind == diagonal {
					d := e.diag
					step.Diagonal = &d
				}
				ch.Steps = append(ch.Steps, step)

				ti := to.Index()
				if visited[ti] || residual[ti] == 0 {
					break
				}
				visited[ti] = true
				cur = ti
			}
			chains = append(chains, ch)
		}
	}

	for n := 0; n < gridmodel.NodeCount; n++ {
		if residual[n] == 1 {
			walk(n)
		}
	}
	for n := 0; n < gridmodel.NodeCount; n++ {
		walk(n)
	}
	return chains
}
