// Package digraph implements a directed graph as an adjacency map with a
// payload on every edge. At most one edge exists per ordered vertex pair;
// re-adding an edge overwrites its payload in place. Enumeration order is
// insertion order, tracked explicitly since Go maps do not preserve it.
package digraph

// Edge is one directed edge with its payload, as returned by Edges.
type Edge[K comparable, E any] struct {
	From K
	To   K
	Info E
}

type neighborSet[K comparable, E any] struct {
	edges map[K]E
	order []K
}

// Graph is a directed adjacency-map graph keyed by K with edge payloads of
// type E. The zero value is not usable; construct with New.
type Graph[K comparable, E any] struct {
	adjacency map[K]*neighborSet[K, E]
	order     []K
}

// New returns an empty graph.
func New[K comparable, E any]() *Graph[K, E] {
	return &Graph[K, E]{adjacency: map[K]*neighborSet[K, E]{}}
}

func (g *Graph[K, E]) hasVertex(vertex K) bool {
	_, ok := g.adjacency[vertex]
	return ok
}

// AddVertex registers vertex with no outgoing edges. Adding an existing
// vertex is a no-op.
func (g *Graph[K, E]) AddVertex(vertex K) {
	if g.hasVertex(vertex) {
		return
	}
	g.adjacency[vertex] = &neighborSet[K, E]{edges: map[K]E{}}
	g.order = append(g.order, vertex)
}

// AddEdge sets the single directed edge from→to, creating either vertex as
// needed. An existing edge for the pair has its payload overwritten.
func (g *Graph[K, E]) AddEdge(from, to K, info E) {
	g.AddVertex(from)
	g.AddVertex(to)

	neighbors := g.adjacency[from]
	if _, ok := neighbors.edges[to]; !ok {
		neighbors.order = append(neighbors.order, to)
	}
	neighbors.edges[to] = info
}

// RemoveEdge deletes the edge from→to. Unknown vertices or a missing edge are
// a no-op.
func (g *Graph[K, E]) RemoveEdge(from, to K) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		return
	}
	if _, ok := neighbors.edges[to]; !ok {
		return
	}
	delete(neighbors.edges, to)
	neighbors.order = removeKey(neighbors.order, to)
}

// RemoveVertex deletes vertex together with its outgoing edges, then scans
// every remaining vertex to drop incoming edges targeting it. O(V).
func (g *Graph[K, E]) RemoveVertex(vertex K) {
	if !g.hasVertex(vertex) {
		return
	}
	delete(g.adjacency, vertex)
	g.order = removeKey(g.order, vertex)

	for _, neighbors := range g.adjacency {
		if _, ok := neighbors.edges[vertex]; ok {
			delete(neighbors.edges, vertex)
			neighbors.order = removeKey(neighbors.order, vertex)
		}
	}
}

// Neighbors returns the outgoing edge targets of from in insertion order, or
// an empty slice when from is unknown.
func (g *Graph[K, E]) Neighbors(from K) []K {
	neighbors, ok := g.adjacency[from]
	if !ok {
		return []K{}
	}
	targets := make([]K, len(neighbors.order))
	copy(targets, neighbors.order)
	return targets
}

// EdgeInfo returns the payload of the edge from→to, and whether it exists.
func (g *Graph[K, E]) EdgeInfo(from, to K) (E, bool) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		var zero E
		return zero, false
	}
	info, ok := neighbors.edges[to]
	return info, ok
}

// Vertices returns every vertex in insertion order.
func (g *Graph[K, E]) Vertices() []K {
	vertices := make([]K, len(g.order))
	copy(vertices, g.order)
	return vertices
}

// Edges returns every edge with its payload, grouped by source vertex in
// insertion order.
func (g *Graph[K, E]) Edges() []Edge[K, E] {
	edges := []Edge[K, E]{}
	for _, from := range g.order {
		neighbors := g.adjacency[from]
		for _, to := range neighbors.order {
			edges = append(edges, Edge[K, E]{From: from, To: to, Info: neighbors.edges[to]})
		}
	}
	return edges
}

func removeKey[K comparable](keys []K, key K) []K {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}
