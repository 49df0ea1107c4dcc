package dcgp

import "sort"

// updateDataStructures recomputes activeNodes and activeGenes from the
// current chromosome by a back-wave from the output selectors.
// Termination is guaranteed because every wave strictly decreases the
// maximum reachable column index; a defensive iteration cap stands in for
// an explicit cycle-is-impossible assertion, since bound construction
// already forbids a gene from referencing its own or a later column.
func (e *Expression[T]) updateDataStructures() {
	shape := e.layout.shape
	s := e.layout.size

	seen := make(map[int]bool, shape.N+shape.R*shape.C)
	current := make([]int, shape.M)
	for i := 0; i < shape.M; i++ {
		current[i] = e.x[s-shape.M+i]
	}

	maxWaves := shape.N + shape.R*shape.C + 1 // every wave adds >= 1 new node, so waves <= node count
	for wave := 0; len(current) > 0 && wave < maxWaves; wave++ {
		next := map[int]bool{}
		for _, id := range current {
			if seen[id] {
				continue
			}
			seen[id] = true
			if id >= shape.N {
				col, _ := shape.nodeColRow(id)
				idx := e.layout.geneIdx[id]
				arity := shape.Arity[col]
				for t := 0; t < arity; t++ {
					ref := e.x[idx+1+t]
					if !seen[ref] {
						next[ref] = true
					}
				}
			}
		}
		current = current[:0]
		for id := range next {
			current = append(current, id)
		}
		sort.Ints(current)
	}

	activeNodes := make([]int, 0, len(seen))
	for id := range seen {
		activeNodes = append(activeNodes, id)
	}
	sort.Ints(activeNodes)

	geneSet := make(map[int]bool)
	for _, id := range activeNodes {
		if id < shape.N {
			continue
		}
		col, _ := shape.nodeColRow(id)
		idx := e.layout.geneIdx[id]
		arity := shape.Arity[col]
		for k := idx; k <= idx+arity; k++ {
			geneSet[k] = true
		}
	}
	for i := 0; i < shape.M; i++ {
		geneSet[s-shape.M+i] = true
	}
	activeGenes := make([]int, 0, len(geneSet))
	for k := range geneSet {
		activeGenes = append(activeGenes, k)
	}
	sort.Ints(activeGenes)

	e.activeNodes = activeNodes
	e.activeGenes = activeGenes
}

// IsActive reports whether a node id currently feeds at least one output.
func (e *Expression[T]) IsActive(id int) bool {
	i := sort.SearchInts(e.activeNodes, id)
	return i < len(e.activeNodes) && e.activeNodes[i] == id
}
