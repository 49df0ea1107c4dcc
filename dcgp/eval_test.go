package dcgp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/dcgp-go/dcgp"
	"github.com/baldhumanity/dcgp-go/dcgp/kernels"
)

func TestCallSymbolic_PrettyPrintsActiveExpression(t *testing.T) {
	lib := []dcgp.Kernel[dcgp.Real]{kernels.Sum[dcgp.Real](), kernels.Diff[dcgp.Real]()}
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]int{0, 0, 1, 2}))

	out, err := expr.CallSymbolic([]string{"x0", "x1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"(x0+x1)"}, out)
}

func TestCall_RejectsWrongArity(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)

	_, err = expr.Call([]dcgp.Real{1})
	assert.ErrorIs(t, err, dcgp.ErrShapeMismatch)
}

func TestCallSymbolic_RejectsWrongArity(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)

	_, err = expr.CallSymbolic([]string{"x0"})
	assert.ErrorIs(t, err, dcgp.ErrShapeMismatch)
}
