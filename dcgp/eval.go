package dcgp

import "fmt"

// evalActive walks the active subgraph in ascending node-id order — a valid
// topological order because every connection gene references a strictly
// earlier column or an input — and is polymorphic over the
// evaluation domain V via two small callbacks: how to read an input, and
// how to apply a kernel by id. Call and CallSymbolic are thin instances of
// this one routine over T and string respectively, so symbolic and numeric
// evaluation share one routine.
func evalActive[T Numeric[T], V any](e *Expression[T], read func(input int) V, apply func(kernelID int, args []V) V) []V {
	shape := e.layout.shape
	s := e.layout.size
	scratch := make([]V, shape.N+shape.R*shape.C)

	for _, id := range e.activeNodes {
		if id < shape.N {
			scratch[id] = read(id)
			continue
		}
		col, _ := shape.nodeColRow(id)
		idx := e.layout.geneIdx[id]
		arity := shape.Arity[col]
		args := make([]V, arity)
		for t := 0; t < arity; t++ {
			args[t] = scratch[e.x[idx+1+t]]
		}
		scratch[id] = apply(e.x[idx], args)
	}

	out := make([]V, shape.M)
	for i := 0; i < shape.M; i++ {
		out[i] = scratch[e.x[s-shape.M+i]]
	}
	return out
}

// Call evaluates the expression over a numeric input tuple.
func (e *Expression[T]) Call(point []T) ([]T, error) {
	if len(point) != e.layout.shape.N {
		return nil, fmt.Errorf("%w: point has length %d, want %d", ErrShapeMismatch, len(point), e.layout.shape.N)
	}
	out := evalActive[T, T](e,
		func(i int) T { return point[i] },
		func(kernelID int, args []T) T { return e.F[kernelID].ApplyT(args) },
	)
	return out, nil
}

// CallSymbolic evaluates the expression over a symbolic input tuple,
// producing a pretty-printed expression string per output.
func (e *Expression[T]) CallSymbolic(point []string) ([]string, error) {
	if len(point) != e.layout.shape.N {
		return nil, fmt.Errorf("%w: point has length %d, want %d", ErrShapeMismatch, len(point), e.layout.shape.N)
	}
	out := evalActive[T, string](e,
		func(i int) string { return point[i] },
		func(kernelID int, args []string) string { return e.F[kernelID].ApplySym(args) },
	)
	return out, nil
}
