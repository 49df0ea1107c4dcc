package dcgp

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// LossKind selects between the two supported loss families.
type LossKind int

const (
	MSE LossKind = iota
	CE
)

func (k LossKind) String() string {
	if k == CE {
		return "CE"
	}
	return "MSE"
}

// ParseLossKind maps the wire-level strings {"MSE", "CE"} to a LossKind.
func ParseLossKind(s string) (LossKind, error) {
	switch s {
	case "MSE":
		return MSE, nil
	case "CE":
		return CE, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLoss, s)
	}
}

// Loss evaluates the expression at point and compares it against
// prediction under the chosen loss kind. The comparison always runs
// in float64, the representation both loss families are defined over
// regardless of the expression's scalar domain T.
func (e *Expression[T]) Loss(point []T, prediction []T, kind LossKind) (float64, error) {
	if len(prediction) != e.layout.shape.M {
		return 0, fmt.Errorf("%w: prediction has length %d, want %d", ErrShapeMismatch, len(prediction), e.layout.shape.M)
	}
	out, err := e.Call(point)
	if err != nil {
		return 0, err
	}

	o := make([]float64, len(out))
	for i, v := range out {
		o[i] = v.ToFloat()
	}
	p := make([]float64, len(prediction))
	for i, v := range prediction {
		p[i] = v.ToFloat()
	}

	switch kind {
	case MSE:
		return mseLoss(o, p), nil
	case CE:
		return crossEntropyLoss(o, p), nil
	default:
		return 0, fmt.Errorf("%w: loss kind %d", ErrUnknownLoss, kind)
	}
}

func mseLoss(o, p []float64) float64 {
	sum := 0.0
	for i := range o {
		diff := o[i] - p[i]
		sum += diff * diff
	}
	return sum / float64(len(o))
}

// crossEntropyLoss applies a numerically-stable softmax (subtracting the
// max before exponentiating) and then the cross-entropy against p.
func crossEntropyLoss(o, p []float64) float64 {
	maxV := o[0]
	for _, v := range o[1:] {
		if v > maxV {
			maxV = v
		}
	}
	exps := make([]float64, len(o))
	z := 0.0
	for i, v := range o {
		exps[i] = math.Exp(v - maxV)
		z += exps[i]
	}
	loss := 0.0
	for i, e := range exps {
		loss -= math.Log(e/z) * p[i]
	}
	return loss
}

// LossBatch computes the average loss over a batch of points/labels.
// With parallel == 0 the batch runs sequentially on the caller's
// goroutine. With parallel == p > 0, |points| must be divisible by p; the
// batch is split into p contiguous slabs, each reduced on its own worker
// via golang.org/x/sync/errgroup (the parallel-for collaborator), and the
// per-slab partial sums are folded into a single total under a spin-lock —
// one locked floating addition per slab, not per point.
func (e *Expression[T]) LossBatch(points, labels [][]T, kindStr string, parallel int) (float64, error) {
	kind, err := ParseLossKind(kindStr)
	if err != nil {
		return 0, err
	}
	if len(points) != len(labels) || len(points) == 0 {
		return 0, fmt.Errorf("%w: %d points vs %d labels", ErrInvalidBatch, len(points), len(labels))
	}
	if parallel < 0 {
		return 0, fmt.Errorf("%w: parallel degree must be >= 0, got %d", ErrInvalidBatch, parallel)
	}

	if parallel == 0 {
		total := 0.0
		for i := range points {
			l, err := e.Loss(points[i], labels[i], kind)
			if err != nil {
				return 0, err
			}
			total += l
		}
		return total / float64(len(points)), nil
	}

	if len(points)%parallel != 0 {
		return 0, fmt.Errorf("%w: batch size %d not divisible by parallel degree %d", ErrInvalidBatch, len(points), parallel)
	}
	slab := len(points) / parallel

	var total float64
	var lock spinLock
	var g errgroup.Group
	for w := 0; w < parallel; w++ {
		start := w * slab
		g.Go(func() error {
			sum := 0.0
			for i := start; i < start+slab; i++ {
				l, err := e.Loss(points[i], labels[i], kind)
				if err != nil {
					return err
				}
				sum += l
			}
			lock.Lock()
			total += sum
			lock.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total / float64(len(points)), nil
}
