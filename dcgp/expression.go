package dcgp

import (
	"fmt"

	"github.com/google/uuid"
)

// Expression is the stateful dCGP graph: a chromosome over a fixed Shape and
// kernel library F, together with the active subgraph derived from it. It is
// a single-writer object: Call and the single-point Loss are safe to
// invoke concurrently on one instance so long as no mutator or Set runs at
// the same time.
type Expression[T Numeric[T]] struct {
	InstanceID uuid.UUID // stamped at construction, for log/checkpoint correlation

	layout *layout
	F      []Kernel[T]
	rng    RNG

	x           []int
	activeNodes []int
	activeGenes []int
}

// NewExpression constructs a dCGP expression over shape, drawing a random
// chromosome within bounds from a seeded RNG. This is the per-column-arity
// constructor; NewUniformExpression wraps it for the common uniform case.
func NewExpression[T Numeric[T]](shape Shape, library []Kernel[T], seed int64) (*Expression[T], error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(library) == 0 {
		return nil, fmt.Errorf("%w: kernel library must not be empty", ErrInvalidShape)
	}

	lay := buildLayout(shape, len(library))
	rng := newLockedRand(seed)

	x := make([]int, lay.size)
	for k := range x {
		x[k] = rng.IntRange(lay.lb[k], lay.ub[k])
	}

	e := &Expression[T]{
		InstanceID: uuid.New(),
		layout:     lay,
		F:          library,
		rng:        rng,
		x:          x,
	}
	e.updateDataStructures()
	return e, nil
}

// NewUniformExpression is the "uniform arity" constructor shape,
// equivalent to NewExpression with every column given arity a.
func NewUniformExpression[T Numeric[T]](n, m, r, c, l, a int, library []Kernel[T], seed int64) (*Expression[T], error) {
	return NewExpression(UniformShape(n, m, r, c, l, a), library, seed)
}

// Seed reseeds the expression's owned RNG collaborator.
func (e *Expression[T]) Seed(seed int64) { e.rng.Seed(seed) }

// Get returns the current chromosome. The returned slice is a copy; mutating
// it has no effect on the expression.
func (e *Expression[T]) Get() []int { return append([]int(nil), e.x...) }

// GetLB returns the per-gene lower bounds.
func (e *Expression[T]) GetLB() []int { return append([]int(nil), e.layout.lb...) }

// GetUB returns the per-gene upper bounds.
func (e *Expression[T]) GetUB() []int { return append([]int(nil), e.layout.ub...) }

// GetActiveGenes returns the sorted, duplicate-free set of active chromosome indices.
func (e *Expression[T]) GetActiveGenes() []int { return append([]int(nil), e.activeGenes...) }

// GetActiveNodes returns the sorted, duplicate-free set of active node ids.
func (e *Expression[T]) GetActiveNodes() []int { return append([]int(nil), e.activeNodes...) }

// GetGeneIdx returns the gene-index table: for each node id >= N, the
// chromosome position of its function gene. Entries for input ids are 0.
func (e *Expression[T]) GetGeneIdx() []int { return append([]int(nil), e.layout.geneIdx...) }

// GetN, GetM, GetR, GetC, GetL return the expression's grid geometry.
func (e *Expression[T]) GetN() int { return e.layout.shape.N }
func (e *Expression[T]) GetM() int { return e.layout.shape.M }
func (e *Expression[T]) GetR() int { return e.layout.shape.R }
func (e *Expression[T]) GetC() int { return e.layout.shape.C }
func (e *Expression[T]) GetL() int { return e.layout.shape.L }

// GetArity returns the per-column arity vector.
func (e *Expression[T]) GetArity() []int { return append([]int(nil), e.layout.shape.Arity...) }

// GetNodeArity returns the arity of the column a given function node id belongs to.
func (e *Expression[T]) GetNodeArity(id int) (int, error) {
	if id < e.layout.shape.N || id >= e.layout.shape.N+e.layout.shape.R*e.layout.shape.C {
		return 0, fmt.Errorf("%w: node id %d is not a function node", ErrInvalidNode, id)
	}
	col, _ := e.layout.shape.nodeColRow(id)
	return e.layout.shape.Arity[col], nil
}

// GetF returns the kernel library view.
func (e *Expression[T]) GetF() []Kernel[T] { return e.F }

// IsValid reports whether y could replace the current chromosome: the
// right length and every gene within its bounds.
func (e *Expression[T]) IsValid(y []int) bool { return e.layout.isValid(y) }

// Set installs a new chromosome after validating it, then re-derives the
// active subgraph. On a failed validation the current state is left
// untouched — never partially valid.
func (e *Expression[T]) Set(y []int) error {
	if !e.layout.isValid(y) {
		return fmt.Errorf("%w: chromosome has length %d, want %d, or a gene out of bounds",
			ErrInvalidChromosome, len(y), e.layout.size)
	}
	e.x = append([]int(nil), y...)
	e.updateDataStructures()
	return nil
}

// SetFunctionGene overwrites only the function gene of node id, without
// refreshing the active subgraph: changing which kernel a node applies
// never changes connectivity.
func (e *Expression[T]) SetFunctionGene(id, fID int) error {
	n, rc := e.layout.shape.N, e.layout.shape.R*e.layout.shape.C
	if id < n || id >= n+rc {
		return fmt.Errorf("%w: node id %d outside function-node range [%d, %d)", ErrInvalidNode, id, n, n+rc)
	}
	if fID < 0 || fID >= len(e.F) {
		return fmt.Errorf("%w: kernel id %d outside library range [0, %d)", ErrInvalidNode, fID, len(e.F))
	}
	e.x[e.layout.geneIdx[id]] = fID
	return nil
}

// String renders the expression via Render.
func (e *Expression[T]) String() string {
	return Render(e)
}
