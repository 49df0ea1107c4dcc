// Package dcgp implements the evaluation and evolutionary-mutation core of a
// Differentiable Cartesian Genetic Programming (dCGP) engine.
//
// A dCGP expression encodes a feed-forward computational graph that consumes
// n inputs and produces m outputs by composing kernels drawn from a
// configurable library, laid out on a fixed r x c grid of function nodes
// with a levels-back locality constraint. The whole graph, including its m
// output selectors, is serialized as a single integer chromosome.
//
// This package owns: chromosome layout and per-gene bounds, the derivation
// of the active subgraph from a chromosome, the ordered evaluator, the
// bounded mutation family, and the MSE/cross-entropy loss with an optional
// parallel batch path. It does not own: kernel implementations (see the
// sibling dcgp/kernels package), persistence, or genetic crossover.
//
// Basic usage:
//
//	expr, err := dcgp.NewExpression(dcgp.Shape{
//		N: 2, M: 1, R: 1, C: 1, L: 1,
//		Arity: []int{2},
//	}, kernels.Library[dcgp.Real](), 123)
//	if err != nil {
//		log.Fatalf("Error constructing expression: %v", err)
//	}
//
//	out, err := expr.Call([]dcgp.Real{3, 4})
//	if err != nil {
//		log.Fatalf("Error evaluating expression: %v", err)
//	}
//	fmt.Println(out)
package dcgp
