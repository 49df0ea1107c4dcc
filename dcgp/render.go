package dcgp

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	activeColor = color.New(color.FgGreen, color.Bold)
	outputColor = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
)

// Render is the human-readable renderer: it emits the expression's
// shape, bounds, active sets and gene-index table, then the chromosome
// itself with active genes highlighted green, inactive genes dimmed, and
// the trailing output genes in cyan.
func Render[T Numeric[T]](e *Expression[T]) string {
	shape := e.layout.shape
	var b strings.Builder

	fmt.Fprintf(&b, "dCGP expression %s\n", e.InstanceID)
	fmt.Fprintf(&b, "  shape:   n=%d m=%d r=%d c=%d l=%d arity=%v\n", shape.N, shape.M, shape.R, shape.C, shape.L, shape.Arity)
	fmt.Fprintf(&b, "  library: %d kernels\n", len(e.F))
	fmt.Fprintf(&b, "  active nodes: %v\n", e.activeNodes)
	fmt.Fprintf(&b, "  active genes: %v\n", e.activeGenes)
	fmt.Fprintf(&b, "  lower bounds: %v\n", e.layout.lb)
	fmt.Fprintf(&b, "  upper bounds: %v\n", e.layout.ub)
	fmt.Fprintf(&b, "  gene idx: %v\n", e.layout.geneIdx)

	activeSet := make(map[int]bool, len(e.activeGenes))
	for _, k := range e.activeGenes {
		activeSet[k] = true
	}
	outputStart := e.layout.size - shape.M

	b.WriteString("  chromosome:")
	for k, v := range e.x {
		b.WriteByte(' ')
		text := fmt.Sprintf("%d", v)
		switch {
		case k >= outputStart:
			b.WriteString(outputColor.Sprint(text))
		case activeSet[k]:
			b.WriteString(activeColor.Sprint(text))
		default:
			b.WriteString(dimColor.Sprint(text))
		}
	}
	b.WriteByte('\n')

	return b.String()
}
