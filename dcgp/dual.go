package dcgp

import "math"

// Dual is a truncated first-order power series (a forward-mode dual number):
// Value carries the function value, Deriv its first derivative with respect
// to whatever single variable the caller is differentiating against. This
// is the order-1 slice of the "generalized dual" domain spec.md names as an
// admissible but out-of-scope scalar domain — enough to show the evaluator
// and kernel library are domain-agnostic, without building a full
// arbitrary-order automatic-differentiation library.
type Dual struct {
	Value Real
	Deriv Real
}

// NewConstant builds a Dual with zero derivative, the lift of a plain
// constant into the dual domain.
func NewConstant(v Real) Dual { return Dual{Value: v} }

// NewVariable builds a Dual seeded with unit derivative, the lift of the
// variable being differentiated against.
func NewVariable(v Real) Dual { return Dual{Value: v, Deriv: 1} }

func (d Dual) Add(o Dual) Dual {
	return Dual{Value: d.Value.Add(o.Value), Deriv: d.Deriv.Add(o.Deriv)}
}

func (d Dual) Sub(o Dual) Dual {
	return Dual{Value: d.Value.Sub(o.Value), Deriv: d.Deriv.Sub(o.Deriv)}
}

func (d Dual) Mul(o Dual) Dual {
	return Dual{
		Value: d.Value.Mul(o.Value),
		Deriv: d.Deriv.Mul(o.Value).Add(d.Value.Mul(o.Deriv)),
	}
}

func (d Dual) Div(o Dual) Dual {
	return Dual{
		Value: d.Value.Div(o.Value),
		Deriv: d.Deriv.Mul(o.Value).Sub(d.Value.Mul(o.Deriv)).Div(o.Value.Mul(o.Value)),
	}
}

func (d Dual) Neg() Dual {
	return Dual{Value: d.Value.Neg(), Deriv: d.Deriv.Neg()}
}

// Finite guards both components: a dual number is only usable downstream if
// neither its value nor its first derivative blew up.
func (d Dual) Finite() bool {
	return d.Value.Finite() && d.Deriv.Finite()
}

// ToFloat returns the value component, discarding the derivative.
func (d Dual) ToFloat() float64 { return float64(d.Value) }

func (d Dual) Zero() Dual { return Dual{} }
func (d Dual) One() Dual  { return Dual{Value: 1} }

func (d Dual) Sin() Dual {
	return Dual{Value: d.Value.Sin(), Deriv: d.Deriv.Mul(d.Value.Cos())}
}

func (d Dual) Cos() Dual {
	return Dual{Value: d.Value.Cos(), Deriv: d.Deriv.Mul(d.Value.Sin()).Neg()}
}

func (d Dual) Tanh() Dual {
	t := d.Value.Tanh()
	return Dual{Value: t, Deriv: d.Deriv.Mul(Real(1).Sub(t.Mul(t)))}
}

func (d Dual) Exp() Dual {
	e := d.Value.Exp()
	return Dual{Value: e, Deriv: d.Deriv.Mul(e)}
}

func (d Dual) Log() Dual {
	v := float64(d.Value)
	if v <= 0 {
		v = 1e-9
	}
	return Dual{Value: Real(math.Log(v)), Deriv: d.Deriv.Div(Real(v))}
}

func (d Dual) Sqrt() Dual {
	v := float64(d.Value)
	if v < 0 {
		v = 0
	}
	s := math.Sqrt(v)
	if s == 0 {
		return Dual{Value: 0, Deriv: 0}
	}
	return Dual{Value: Real(s), Deriv: d.Deriv.Div(Real(2 * s))}
}
