package dcgp

import "errors"

// Error kinds returned by the core. Callers should match with errors.Is,
// since every failure is wrapped with call-specific detail via %w.
var (
	// ErrInvalidShape signals a zero or inconsistent (n, m, r, c, l, arity, |F|).
	ErrInvalidShape = errors.New("dcgp: invalid shape")
	// ErrInvalidChromosome signals Set(x) with the wrong length or an out-of-bounds gene.
	ErrInvalidChromosome = errors.New("dcgp: invalid chromosome")
	// ErrInvalidIndex signals Mutate(k) or MutateIndices with k >= S.
	ErrInvalidIndex = errors.New("dcgp: invalid gene index")
	// ErrInvalidNode signals SetFunctionGene(id, ...) with id outside the function-node range,
	// or a kernel id outside the library range.
	ErrInvalidNode = errors.New("dcgp: invalid node")
	// ErrInvalidBatch signals |points| != |labels|, an empty batch, or parallel > 0 with
	// |points| not divisible by parallel.
	ErrInvalidBatch = errors.New("dcgp: invalid batch")
	// ErrUnknownLoss signals a loss-kind string outside {"MSE", "CE"}.
	ErrUnknownLoss = errors.New("dcgp: unknown loss kind")
	// ErrShapeMismatch signals |point| != n or |prediction| != m during evaluation or loss.
	ErrShapeMismatch = errors.New("dcgp: shape mismatch")
)
