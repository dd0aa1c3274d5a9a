package layout

import (
	"fmt"
	"strings"
)

// Edge is a dependency: To reads From's frame, so From must be laid out first.
type Edge struct {
	From, To Ref
}

// RecursiveLayoutError reports a dependency cycle among the views of one
// container. No frame in the container is modified when it is returned.
type RecursiveLayoutError struct {
	// Container names the view whose layout pass failed.
	Container string
	// Remaining are the edges left once every resolvable view was removed.
	Remaining []Edge
	// Labels optionally names the refs in Remaining.
	Labels map[Ref]string
}

func (e *RecursiveLayoutError) Error() string {
	parts := make([]string, 0, len(e.Remaining))
	for _, edge := range e.Remaining {
		parts = append(parts, e.label(edge.From)+" -> "+e.label(edge.To))
	}
	container := e.Container
	if container == "" {
		container = "container"
	}
	return fmt.Sprintf("layout: recursive dependency in %s: %s", container, strings.Join(parts, ", "))
}

func (e *RecursiveLayoutError) label(r Ref) string {
	if name, ok := e.Labels[r]; ok && name != "" {
		return name
	}
	return r.String()
}

// Sort orders nodes so every edge's From precedes its To (Kahn's algorithm).
// Endpoints of edges that are not in nodes are added after them. Nodes with
// no pending dependency keep their input order. A cycle, including a
// self-edge, returns *RecursiveLayoutError and a nil order.
func Sort(nodes []Ref, edges []Edge) ([]Ref, error) {
	order := make([]Ref, 0, len(nodes))
	seen := make(map[Ref]bool, len(nodes))
	add := func(r Ref) {
		if !seen[r] {
			seen[r] = true
			order = append(order, r)
		}
	}
	for _, n := range nodes {
		add(n)
	}

	inDegree := make(map[Ref]int, len(order))
	outgoing := make(map[Ref][]int)
	for i, e := range edges {
		add(e.From)
		add(e.To)
		inDegree[e.To]++
		outgoing[e.From] = append(outgoing[e.From], i)
	}

	queue := make([]Ref, 0, len(order))
	for _, n := range order {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	removed := make([]bool, len(edges))
	sorted := make([]Ref, 0, len(order))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		sorted = append(sorted, n)
		for _, i := range outgoing[n] {
			removed[i] = true
			to := edges[i].To
			inDegree[to]--
			if inDegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	var remaining []Edge
	for i, e := range edges {
		if !removed[i] {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) > 0 {
		return nil, &RecursiveLayoutError{Remaining: remaining}
	}
	return sorted, nil
}
