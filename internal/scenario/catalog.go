// Package scenario holds the named, evidence-sourced presets for labor share
// and wage premium.
package scenario

import (
	"errors"
	"fmt"

	"davisbacon/internal/model"
)

// Scenario is one preset. It carries only the two labor-market inputs; home
// price, construction share and mortgage terms come from the caller's base.
type Scenario struct {
	Name        string  `json:"name" yaml:"name"`
	LaborShare  float64 `json:"labor_share" yaml:"labor_share"`
	WagePremium float64 `json:"wage_premium" yaml:"wage_premium"`
	Description string  `json:"description" yaml:"description"`
	Source      string  `json:"source" yaml:"source"`
}

// Apply returns base with the preset's labor share and wage premium.
func (s Scenario) Apply(base model.ParameterSet) (model.ParameterSet, error) {
	p, err := base.With(model.FieldLaborShare, s.LaborShare)
	if err != nil {
		return model.ParameterSet{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	p, err = p.With(model.FieldWagePremium, s.WagePremium)
	if err != nil {
		return model.ParameterSet{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return p, nil
}

// Catalog is a read-only, ordered set of presets.
type Catalog struct {
	order  []string
	byName map[string]Scenario
}

// NewCatalog validates entries and builds a catalog in the given order.
func NewCatalog(entries []Scenario) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(entries)),
		byName: make(map[string]Scenario, len(entries)),
	}
	for i, s := range entries {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("scenario %q: duplicate name", s.Name)
		}
		if err := validate(s); err != nil {
			return nil, err
		}
		c.order = append(c.order, s.Name)
		c.byName[s.Name] = s
	}
	return c, nil
}

func validate(s Scenario) error {
	// Any in-range home price works as a probe; presets never set it.
	probe, err := model.NewParameterSet(model.RangeOf(model.FieldHomePrice).Min)
	if err != nil {
		return err
	}
	_, err = s.Apply(probe)
	return err
}

// Get looks a preset up by name.
func (c *Catalog) Get(name string) (Scenario, error) {
	s, ok := c.byName[name]
	if !ok {
		return Scenario{}, &model.UnknownScenarioError{Name: name}
	}
	return s, nil
}

// Resolve applies the named preset to base.
func (c *Catalog) Resolve(name string, base model.ParameterSet) (model.ParameterSet, error) {
	s, err := c.Get(name)
	if err != nil {
		return model.ParameterSet{}, err
	}
	return s.Apply(base)
}

// Names returns preset names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every preset in catalog order.
func (c *Catalog) All() []Scenario {
	out := make([]Scenario, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }

// IsUnknown reports whether err came from a missing preset.
func IsUnknown(err error) bool {
	var target *model.UnknownScenarioError
	return errors.As(err, &target)
}
