package calculator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Registry is an ordered, read-only set of calculator definitions. It is
// built once and safe for concurrent use; nothing mutates it afterwards.
type Registry struct {
	logger *zap.Logger
	order  []string
	bySlug map[string]Definition
}

// NewRegistry validates defs and builds a registry that keeps their order.
func NewRegistry(logger *zap.Logger, defs ...Definition) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		logger: logger,
		bySlug: make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, exists := r.bySlug[def.Slug]; exists {
			return nil, fmt.Errorf("duplicate calculator slug %q", def.Slug)
		}
		r.bySlug[def.Slug] = def.clone()
		r.order = append(r.order, def.Slug)
	}
	logger.Debug("calculator registry built",
		zap.String("op", "calculator.NewRegistry"),
		zap.Int("calculators", len(r.order)),
	)
	return r, nil
}

// Default builds the registry of every built-in calculator. It panics only
// if the built-in catalog itself is inconsistent.
func Default(logger *zap.Logger) *Registry {
	r, err := NewRegistry(logger, Catalog()...)
	if err != nil {
		panic(fmt.Sprintf("built-in calculator catalog is invalid: %v", err))
	}
	return r
}

func validateDefinition(def Definition) error {
	if def.Slug == "" {
		return errors.New("calculator slug must not be empty")
	}
	if def.Calculate == nil {
		return fmt.Errorf("calculator %q has no calculation function", def.Slug)
	}
	keys := make(map[string]bool, len(def.Fields))
	for _, f := range def.Fields {
		if f.Key == "" {
			return fmt.Errorf("calculator %q has a field without a key", def.Slug)
		}
		if keys[f.Key] {
			return fmt.Errorf("calculator %q has duplicate field key %q", def.Slug, f.Key)
		}
		keys[f.Key] = true
		if f.Type == FieldSelect {
			if len(f.Options) == 0 {
				return fmt.Errorf("calculator %q select field %q has no options", def.Slug, f.Key)
			}
			found := false
			for _, o := range f.Options {
				if o.Value == f.Default {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("calculator %q select field %q default %q is not an option", def.Slug, f.Key, f.Default)
			}
		}
	}
	return nil
}

// Len returns the number of calculators.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup returns the definition for slug. A miss is a normal outcome.
func (r *Registry) Lookup(slug string) (Definition, bool) {
	def, ok := r.bySlug[slug]
	if !ok {
		r.logger.Debug("calculator not found",
			zap.String("op", "calculator.Lookup"),
			zap.String("slug", slug),
		)
		return Definition{}, false
	}
	return def.clone(), true
}

// List returns every definition in registration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug].clone())
	}
	return out
}

// ByCategory returns the definitions in category, in registration order.
func (r *Registry) ByCategory(category Category) []Definition {
	var out []Definition
	for _, slug := range r.order {
		if def := r.bySlug[slug]; def.Category == category {
			out = append(out, def.clone())
		}
	}
	return out
}

// Categories returns each category once, in order of first appearance.
func (r *Registry) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, slug := range r.order {
		c := r.bySlug[slug].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Related returns up to limit other calculators from slug's category. A
// limit of zero or less means no limit.
func (r *Registry) Related(slug string, limit int) []Definition {
	def, ok := r.bySlug[slug]
	if !ok {
		return nil
	}
	var out []Definition
	for _, other := range r.ByCategory(def.Category) {
		if other.Slug == slug {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, other)
	}
	return out
}

// Calculate runs the calculator for slug over values. The boolean is false
// when slug is unknown.
func (r *Registry) Calculate(slug string, values map[string]string) (Output, bool) {
	def, ok := r.bySlug[slug]
	if !ok {
		r.logger.Debug("calculator not found",
			zap.String("op", "calculator.Calculate"),
			zap.String("slug", slug),
		)
		return Output{}, false
	}
	out := def.Run(values)
	r.logger.Debug("calculated",
		zap.String("op", "calculator.Calculate"),
		zap.String("slug", slug),
		zap.Int("results", len(out.Results)),
		zap.Bool("table", out.Table != nil),
	)
	return out, true
}
