package inject

import (
	"sort"
	"sync"
)

// dependencyGraph records which services were resolved while building which
// others, so releasing a service can invalidate everything built from it.
type dependencyGraph struct {
	// dependency -> dependents
	downstream map[serviceKey][]serviceKey
	mu         sync.RWMutex
}

func newDependencyGraph() *dependencyGraph {
	return &dependencyGraph{
		downstream: make(map[serviceKey][]serviceKey),
	}
}

func (g *dependencyGraph) addDependency(dependent, dependency serviceKey) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.downstream[dependency] = appendUnique(g.downstream[dependency], dependent)
}

// findDependents walks the graph iteratively and returns every service that
// transitively depends on start
func (g *dependencyGraph) findDependents(start serviceKey) []serviceKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stack := make([]serviceKey, 0, 16)
	stack = append(stack, start)

	dependents := make([]serviceKey, 0, 16)
	visited := make(map[serviceKey]bool, 16)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[current] {
			continue
		}
		visited[current] = true

		if current != start {
			dependents = append(dependents, current)
		}

		for _, dep := range g.downstream[current] {
			if !visited[dep] {
				stack = append(stack, dep)
			}
		}
	}

	return dependents
}

// export returns dependency -> sorted dependents, keyed by service name
func (g *dependencyGraph) export() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.downstream))
	for dependency, dependents := range g.downstream {
		names := make([]string, len(dependents))
		for i, d := range dependents {
			names[i] = d.String()
		}
		sort.Strings(names)
		out[dependency.String()] = names
	}
	return out
}

func appendUnique[T comparable](slice []T, item T) []T {
	for _, existing := range slice {
		if existing == item {
			return slice
		}
	}
	return append(slice, item)
}
