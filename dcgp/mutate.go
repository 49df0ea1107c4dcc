package dcgp

import "fmt"

// maxRejectionAttempts bounds rejection-sampling loops (picking an active
// function node, or reseeding a gene to a value different from its
// current one) so a pathological shape can never spin forever.
const maxRejectionAttempts = 1000

// drawDifferent draws a fresh value in [lb, ub] distinct from old, unless
// lb == ub (a degenerate gene, in which case the draw is a deliberate
// no-op).
func (e *Expression[T]) drawDifferent(lb, ub, old int) (int, bool) {
	if lb == ub {
		return old, false
	}
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		v := e.rng.IntRange(lb, ub)
		if v != old {
			return v, true
		}
	}
	return old, false
}

// mutateGeneNoRefresh applies the per-index mutation rule to gene k without
// touching the active subgraph. k is assumed already range-checked.
func (e *Expression[T]) mutateGeneNoRefresh(k int) bool {
	v, changed := e.drawDifferent(e.layout.lb[k], e.layout.ub[k], e.x[k])
	if changed {
		e.x[k] = v
	}
	return changed
}

func (e *Expression[T]) checkIndex(k int) error {
	if k < 0 || k >= e.layout.size {
		return fmt.Errorf("%w: gene index %d outside [0, %d)", ErrInvalidIndex, k, e.layout.size)
	}
	return nil
}

// Mutate mutates a single gene index k, then re-derives the active
// subgraph. The refresh runs even for a function-gene mutation, which can
// never change connectivity — a safe over-approximation the active-gene
// variants below also rely on. Skipping the refresh when k is a function
// gene would not change observable behavior.
func (e *Expression[T]) Mutate(k int) error {
	if err := e.checkIndex(k); err != nil {
		return err
	}
	e.mutateGeneNoRefresh(k)
	e.updateDataStructures()
	return nil
}

// MutateIndices mutates a list of gene indices, refreshing once at the end
// iff any gene actually changed.
func (e *Expression[T]) MutateIndices(ks []int) error {
	for _, k := range ks {
		if err := e.checkIndex(k); err != nil {
			return err
		}
	}
	anyChanged := false
	for _, k := range ks {
		if e.mutateGeneNoRefresh(k) {
			anyChanged = true
		}
	}
	if anyChanged {
		e.updateDataStructures()
	}
	return nil
}

// MutateRandom repeats N times: pick a gene index uniformly in [0, S-1] and
// apply the per-index rule, then refresh once at the end.
func (e *Expression[T]) MutateRandom(n int) {
	for i := 0; i < n; i++ {
		k := e.rng.IntRange(0, e.layout.size-1)
		e.mutateGeneNoRefresh(k)
	}
	e.updateDataStructures()
}

// MutateActive repeats n times: pick a gene index uniformly from the
// current active-gene set, then mutate it. Each iteration refreshes,
// because the active-gene set can change between iterations.
func (e *Expression[T]) MutateActive(n int) {
	for i := 0; i < n; i++ {
		if len(e.activeGenes) == 0 {
			return
		}
		k := e.activeGenes[e.rng.IntRange(0, len(e.activeGenes)-1)]
		e.mutateGeneNoRefresh(k)
		e.updateDataStructures()
	}
}

// pickActiveFunctionNode rejection-samples the active-node set until it
// finds a function node (id >= n), returning ok=false if none exists within
// the attempt budget (e.g. the only active node is an input feeding an
// output directly).
func (e *Expression[T]) pickActiveFunctionNode() (id int, ok bool) {
	n := e.layout.shape.N
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		candidate := e.activeNodes[e.rng.IntRange(0, len(e.activeNodes)-1)]
		if candidate >= n {
			return candidate, true
		}
	}
	return 0, false
}

// MutateActiveFuncGene repeats n times: pick an active function node and
// mutate its function gene. Connectivity never changes, but the current
// implementation still refreshes every iteration.
func (e *Expression[T]) MutateActiveFuncGene(n int) {
	for i := 0; i < n; i++ {
		id, ok := e.pickActiveFunctionNode()
		if !ok {
			return
		}
		e.mutateGeneNoRefresh(e.layout.geneIdx[id])
		e.updateDataStructures()
	}
}

// MutateActiveConnGene repeats n times: pick an active non-input node, then
// one of its connection genes uniformly, and mutate it.
func (e *Expression[T]) MutateActiveConnGene(n int) {
	for i := 0; i < n; i++ {
		id, ok := e.pickActiveFunctionNode()
		if !ok {
			return
		}
		col, _ := e.layout.shape.nodeColRow(id)
		arity := e.layout.shape.Arity[col]
		idx := e.layout.geneIdx[id]
		k := idx + 1 + e.rng.IntRange(0, arity-1)
		e.mutateGeneNoRefresh(k)
		e.updateDataStructures()
	}
}

// MutateOutputGene repeats n times: mutate one of the m output genes,
// chosen uniformly when m > 1 (and trivially when m == 1).
func (e *Expression[T]) MutateOutputGene(n int) {
	m := e.layout.shape.M
	s := e.layout.size
	for i := 0; i < n; i++ {
		k := s - m
		if m > 1 {
			k += e.rng.IntRange(0, m-1)
		}
		e.mutateGeneNoRefresh(k)
		e.updateDataStructures()
	}
}
