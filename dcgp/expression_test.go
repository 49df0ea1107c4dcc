package dcgp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/dcgp-go/dcgp"
	"github.com/baldhumanity/dcgp-go/dcgp/kernels"
)

func TestNewExpression_InvariantsHold(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 4, R: 2, C: 3, L: 4, Arity: []int{2, 2, 2}}, lib, 123)
	require.NoError(t, err)

	x := expr.Get()
	lb := expr.GetLB()
	ub := expr.GetUB()
	require.Len(t, x, expr.GetR()*expr.GetC()+expr.GetR()*6+expr.GetM())
	for k := range x {
		assert.GreaterOrEqual(t, x[k], lb[k])
		assert.LessOrEqual(t, x[k], ub[k])
	}
	assert.Len(t, expr.GetGeneIdx(), expr.GetN()+expr.GetR()*expr.GetC())
}

func TestNewExpression_RejectsInvalidShape(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()

	_, err := dcgp.NewExpression(dcgp.Shape{N: 0, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	assert.ErrorIs(t, err, dcgp.ErrInvalidShape)

	_, err = dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{0}}, lib, 1)
	assert.ErrorIs(t, err, dcgp.ErrInvalidShape)

	_, err = dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 2, L: 1, Arity: []int{2}}, lib, 1)
	assert.ErrorIs(t, err, dcgp.ErrInvalidShape)
}

func TestConstructAndEvaluateSum(t *testing.T) {
	lib := []dcgp.Kernel[dcgp.Real]{kernels.Sum[dcgp.Real](), kernels.Diff[dcgp.Real]()}
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 123)
	require.NoError(t, err)

	require.NoError(t, expr.Set([]int{0, 0, 1, 2}))

	out, err := expr.Call([]dcgp.Real{3.0, 4.0})
	require.NoError(t, err)
	assert.Equal(t, []dcgp.Real{7.0}, out)
}

func TestActiveSetMinimal(t *testing.T) {
	lib := []dcgp.Kernel[dcgp.Real]{kernels.Sum[dcgp.Real]()}
	// L=2 so the output gene's bound window reaches past column 0 into the
	// input bank: the output gene's lower bound collapses to 0 once levels-back
	// exceeds the column count.
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 2, Arity: []int{2}}, lib, 123)
	require.NoError(t, err)

	require.NoError(t, expr.Set([]int{0, 0, 1, 0}))

	assert.Equal(t, []int{0}, expr.GetActiveNodes())
	assert.Equal(t, []int{3}, expr.GetActiveGenes())

	out, err := expr.Call([]dcgp.Real{5.0, 9.0})
	require.NoError(t, err)
	assert.Equal(t, []dcgp.Real{5.0}, out)
}

func TestDuplicateOutputsProduceEqualEntries(t *testing.T) {
	lib := []dcgp.Kernel[dcgp.Real]{kernels.Sum[dcgp.Real](), kernels.Diff[dcgp.Real]()}
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 2, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)

	require.NoError(t, expr.Set([]int{0, 0, 1, 2, 2}))
	out, err := expr.Call([]dcgp.Real{3, 4})
	require.NoError(t, err)
	assert.Equal(t, out[0], out[1])
}

func TestSetFunctionGene_PreservesActiveSets(t *testing.T) {
	lib := []dcgp.Kernel[dcgp.Real]{kernels.Sum[dcgp.Real](), kernels.Diff[dcgp.Real]()}
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]int{0, 0, 1, 2}))

	before := expr.GetActiveNodes()
	beforeGenes := expr.GetActiveGenes()

	require.NoError(t, expr.SetFunctionGene(2, 1)) // switch node 2 from sum to diff

	assert.Equal(t, before, expr.GetActiveNodes())
	assert.Equal(t, beforeGenes, expr.GetActiveGenes())

	out, err := expr.Call([]dcgp.Real{3, 4})
	require.NoError(t, err)
	assert.Equal(t, dcgp.Real(-1), out[0]) // 3 - 4
}

func TestSetFunctionGene_RejectsNonFunctionNode(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)

	err = expr.SetFunctionGene(0, 0) // id 0 is an input, not a function node
	assert.ErrorIs(t, err, dcgp.ErrInvalidNode)

	err = expr.SetFunctionGene(2, len(lib)) // kernel id out of range
	assert.ErrorIs(t, err, dcgp.ErrInvalidNode)
}

func TestSet_RejectsInvalidChromosome(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 2, M: 1, R: 1, C: 1, L: 1, Arity: []int{2}}, lib, 1)
	require.NoError(t, err)

	before := expr.Get()
	err = expr.Set([]int{1, 2, 3})
	assert.ErrorIs(t, err, dcgp.ErrInvalidChromosome)
	assert.Equal(t, before, expr.Get()) // untouched on failure

	err = expr.Set([]int{99, 0, 1, 2})
	assert.ErrorIs(t, err, dcgp.ErrInvalidChromosome)
	assert.Equal(t, before, expr.Get())
}

func TestSetGet_RoundTrip(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 3, M: 2, R: 2, C: 2, L: 2, Arity: []int{3, 2}}, lib, 7)
	require.NoError(t, err)

	before := expr.Get()
	require.NoError(t, expr.Set(expr.Get()))
	assert.Equal(t, before, expr.Get())
}

func TestLevelsBack_ActiveConnectionsRespectWindow(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	shape := dcgp.Shape{N: 2, M: 1, R: 2, C: 4, L: 2, Arity: []int{2, 2, 2, 2}}
	expr, err := dcgp.NewExpression(shape, lib, 42)
	require.NoError(t, err)

	geneIdx := expr.GetGeneIdx()
	x := expr.Get()
	for _, id := range expr.GetActiveNodes() {
		if id < expr.GetN() {
			continue
		}
		col := (id - expr.GetN()) / expr.GetR()
		arity, err := expr.GetNodeArity(id)
		require.NoError(t, err)
		idx := geneIdx[id]
		for g := 0; g < arity; g++ {
			ref := x[idx+1+g]
			if ref < expr.GetN() {
				continue
			}
			refCol := (ref - expr.GetN()) / expr.GetR()
			assert.GreaterOrEqual(t, refCol, col-expr.GetL())
			assert.Less(t, refCol, col)
		}
	}
}

func TestMinimalGrid_OneByOne(t *testing.T) {
	lib := kernels.Library[dcgp.Real]()
	expr, err := dcgp.NewExpression(dcgp.Shape{N: 1, M: 1, R: 1, C: 1, L: 1, Arity: []int{1}}, lib, 5)
	require.NoError(t, err)
	out, err := expr.Call([]dcgp.Real{2.0})
	require.NoError(t, err)
	require.Len(t, out, 1)
}
