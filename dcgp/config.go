package dcgp

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ExpressionConfig is the on-disk configuration for an Expression's shape,
// kernel-library selection and RNG seed: an INI section mapped onto a
// tagged struct, followed by a validation pass.
type ExpressionConfig struct {
	N           int      `ini:"n"`
	M           int      `ini:"m"`
	R           int      `ini:"r"`
	C           int      `ini:"c"`
	L           int      `ini:"l"`
	UniformArity int     `ini:"uniform_arity"`            // used when Arity is empty
	Arity       []int    `ini:"arity" delim:" "`           // per-column arity; overrides UniformArity when non-empty
	KernelNames []string `ini:"kernels" delim:" "`         // resolved against a registry by the caller
	Seed        int64    `ini:"seed"`
}

// LoadExpressionConfig loads an ExpressionConfig from the [Expression]
// section of an INI file, deriving the per-column Arity vector when the
// file specifies uniform_arity instead, then validating the shape.
func LoadExpressionConfig(filePath string) (*ExpressionConfig, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", filePath, err)
	}

	ec := &ExpressionConfig{}
	if err := cfg.Section("Expression").MapTo(ec); err != nil {
		return nil, fmt.Errorf("failed to map [Expression] section: %w", err)
	}

	for i, name := range ec.KernelNames {
		ec.KernelNames[i] = strings.TrimSpace(name)
	}

	if len(ec.Arity) == 0 {
		if ec.C <= 0 || ec.UniformArity <= 0 {
			return nil, fmt.Errorf("%w: config must set either arity (per column) or uniform_arity and c", ErrInvalidShape)
		}
		ec.Arity = make([]int, ec.C)
		for j := range ec.Arity {
			ec.Arity[j] = ec.UniformArity
		}
	}

	if len(ec.KernelNames) == 0 {
		return nil, fmt.Errorf("%w: config error: kernels must list at least one kernel name", ErrInvalidShape)
	}

	if err := ec.Shape().validate(); err != nil {
		return nil, err
	}
	return ec, nil
}

// Shape returns the dcgp.Shape this configuration describes.
func (ec *ExpressionConfig) Shape() Shape {
	return Shape{N: ec.N, M: ec.M, R: ec.R, C: ec.C, L: ec.L, Arity: ec.Arity}
}
