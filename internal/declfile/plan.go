package declfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/panda131456/enumn"
)

// Plan is the YAML form of a [enumn.Conversion].
type Plan struct {
	Type  string     `yaml:"type"`
	Func  string     `yaml:"func"`
	Repr  string     `yaml:"repr"`
	Cases []PlanCase `yaml:"cases"`
}

// PlanCase is an entry of the dispatch table of a [Plan].
type PlanCase struct {
	Value planValue `yaml:"value"`
	Tag   string    `yaml:"tag"`
}

// planValue keeps discriminants exact. They are written as plain integer
// literals of arbitrary size.
type planValue enumn.Value

// MarshalYAML implements yaml.Marshaler.
func (v planValue) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: enumn.Value(v).String(),
	}, nil
}

// NewPlan describes conv as a plan.
func NewPlan(conv *enumn.Conversion) Plan {
	p := Plan{
		Type:  conv.Type,
		Func:  conv.Func,
		Repr:  conv.Repr.String(),
		Cases: make([]PlanCase, 0, len(conv.Cases)),
	}
	for _, cs := range conv.Cases {
		p.Cases = append(p.Cases, PlanCase{Value: planValue(cs.Value), Tag: cs.Tag})
	}
	return p
}

// WritePlans writes the plans of convs to w as a YAML list.
func WritePlans(w io.Writer, convs []*enumn.Conversion) error {
	plans := make([]Plan, 0, len(convs))
	for _, conv := range convs {
		plans = append(plans, NewPlan(conv))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plans); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return enc.Close()
}
