// Package kernels is the default kernel-library collaborator for dcgp: the
// standard dCGP primitives (sum, diff, mul, pdiv, sin, cos, log, exp, tanh),
// generic over any dcgp.Numeric[T] domain. It is a name-keyed registry the
// host selects from by string, rather than a hardwired switch.
package kernels

import (
	"fmt"
	"strings"

	"github.com/baldhumanity/dcgp-go/dcgp"
)

// Library returns the default kernel set in a stable order, suitable for
// passing directly to dcgp.NewExpression.
func Library[T dcgp.Numeric[T]]() []dcgp.Kernel[T] {
	return []dcgp.Kernel[T]{
		Sum[T](), Diff[T](), Mul[T](), Pdiv[T](),
		Sin[T](), Cos[T](), Log[T](), Exp[T](), Tanh[T](),
	}
}

// ByName looks up a single kernel from the default library.
func ByName[T dcgp.Numeric[T]](name string) (dcgp.Kernel[T], error) {
	for _, k := range Library[T]() {
		if k.Name == name {
			return k, nil
		}
	}
	var zero dcgp.Kernel[T]
	return zero, fmt.Errorf("kernels: unknown kernel %q", name)
}

// FromNames builds a kernel library in the given name order, the shape
// dcgp.ExpressionConfig.KernelNames is meant to be resolved through.
func FromNames[T dcgp.Numeric[T]](names []string) ([]dcgp.Kernel[T], error) {
	lib := make([]dcgp.Kernel[T], 0, len(names))
	for _, name := range names {
		k, err := ByName[T](name)
		if err != nil {
			return nil, err
		}
		lib = append(lib, k)
	}
	return lib, nil
}

// Sum is the saturating n-ary addition kernel: it accepts any arity.
func Sum[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return dcgp.Kernel[T]{
		Name:  "sum",
		Arity: 2,
		ApplyT: func(args []T) T {
			acc := args[0].Zero()
			for _, a := range args {
				acc = acc.Add(a)
			}
			return acc
		},
		ApplySym: func(args []string) string {
			return "(" + strings.Join(args, "+") + ")"
		},
	}
}

// Diff subtracts every argument after the first from the first.
func Diff[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return dcgp.Kernel[T]{
		Name:  "diff",
		Arity: 2,
		ApplyT: func(args []T) T {
			acc := args[0]
			for _, a := range args[1:] {
				acc = acc.Sub(a)
			}
			return acc
		},
		ApplySym: func(args []string) string {
			return "(" + strings.Join(args, "-") + ")"
		},
	}
}

// Mul is the n-ary product kernel.
func Mul[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return dcgp.Kernel[T]{
		Name:  "mul",
		Arity: 2,
		ApplyT: func(args []T) T {
			acc := args[0].One()
			for _, a := range args {
				acc = acc.Mul(a)
			}
			return acc
		},
		ApplySym: func(args []string) string {
			return "(" + strings.Join(args, "*") + ")"
		},
	}
}

// Pdiv is protected division: the first argument divided by the product of
// the rest, falling back to the domain's multiplicative identity whenever
// the result is not finite.
func Pdiv[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return dcgp.Kernel[T]{
		Name:  "pdiv",
		Arity: 2,
		ApplyT: func(args []T) T {
			denom := args[0].One()
			for _, a := range args[1:] {
				denom = denom.Mul(a)
			}
			result := args[0].Div(denom)
			if !result.Finite() {
				return args[0].One()
			}
			return result
		},
		ApplySym: func(args []string) string {
			return "(" + strings.Join(args, "/") + ")"
		},
	}
}

// unary wraps a single-argument function into a kernel that reads only its
// first argument and ignores the rest.
func unary[T dcgp.Numeric[T]](name string, fn func(T) T, sym func(string) string) dcgp.Kernel[T] {
	return dcgp.Kernel[T]{
		Name:  name,
		Arity: 1,
		ApplyT: func(args []T) T {
			return fn(args[0])
		},
		ApplySym: func(args []string) string {
			return sym(args[0])
		},
	}
}

func Sin[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return unary[T]("sin", T.Sin, func(a string) string { return "sin(" + a + ")" })
}

func Cos[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return unary[T]("cos", T.Cos, func(a string) string { return "cos(" + a + ")" })
}

func Log[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return unary[T]("log", T.Log, func(a string) string { return "log(" + a + ")" })
}

func Exp[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return unary[T]("exp", T.Exp, func(a string) string { return "exp(" + a + ")" })
}

func Tanh[T dcgp.Numeric[T]]() dcgp.Kernel[T] {
	return unary[T]("tanh", T.Tanh, func(a string) string { return "tanh(" + a + ")" })
}
