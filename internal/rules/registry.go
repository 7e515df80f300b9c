package rules

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// BuilderFunc creates a Rule from generic config.
// Config is a map of rule-specific parameters parsed from the rules file.
type BuilderFunc func(cfg map[string]any) (driven.Rule, error)

// Config names a rule and its parameters.
type Config struct {
	Name   string
	Params map[string]any
}

// Registry maps rule names to their builders.
// It allows construction of a rule set from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new rule registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rule builder to the registry.
// Name should be unique and match the rule's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a rule by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Rule, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, name)
	}
	rule, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}
	return rule, nil
}

// BuildAll creates rules in the order given.
func (r *Registry) BuildAll(configs []Config) ([]driven.Rule, error) {
	rules := make([]driven.Rule, 0, len(configs))
	for _, cfg := range configs {
		rule, err := r.Build(cfg.Name, cfg.Params)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Has returns true if a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
