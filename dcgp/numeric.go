package dcgp

// Numeric is the capability trait required of a dCGP scalar domain T: ring
// operations plus the transcendentals the default kernel library needs.
// It is a self-referencing generic constraint so a kernel written once
// against Numeric[T] works for any domain that satisfies it — the real
// numbers, a truncated power series, or anything else a caller supplies.
//
// Finite reports whether a value is usable as a kernel result; its meaning
// is domain-specific (an ordinary non-finite check for Real, a check over
// every component for Dual). Protected division relies on this rather than
// a hardcoded zero-check so the guard stays correct across domains.
type Numeric[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Finite() bool

	// ToFloat reads the domain out as a plain float64, the representation
	// the loss functions are defined over regardless of T (for Dual this
	// is the value component, discarding the derivative).
	ToFloat() float64

	Sin() T
	Cos() T
	Tanh() T
	Exp() T
	Log() T
	Sqrt() T

	// Zero and One are the additive and multiplicative identities of the
	// domain, giving kernels like pdiv and mul a fold seed without the
	// core needing to construct a T out of a literal.
	Zero() T
	One() T
}

// Kernel is the external collaborator contract: a pair of callables over a
// variadic argument list, one numeric and one symbolic. Arity is
// informational only — the evaluator always forms exactly the calling
// column's arity worth of arguments and passes them regardless of what the
// kernel declares; column arity always wins.
type Kernel[T Numeric[T]] struct {
	Name     string
	Arity    int
	ApplyT   func(args []T) T
	ApplySym func(args []string) string
}
