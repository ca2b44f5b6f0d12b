package activity

// Predicate evaluates one activity. It must be pure and total over any
// Input that passes Validate.
type Predicate func(Input) Result

// Rule is a named activity predicate.
type Rule struct {
	Name     string
	Evaluate Predicate
}

// Registry is an ordered, fixed set of rules with unique names.
type Registry struct {
	rules []Rule
}

// NewRegistry builds a registry in the given order. Duplicate or empty names
// and nil predicates are rejected here so evaluation never sees them.
func NewRegistry(rules ...Rule) (*Registry, error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, &ConfigError{Field: "rule", Reason: "empty rule name"}
		}
		if r.Evaluate == nil {
			return nil, &ConfigError{Field: "rule", Value: r.Name, Reason: "nil predicate"}
		}
		if seen[r.Name] {
			return nil, &ConfigError{Field: "rule", Value: r.Name, Reason: "duplicate rule name"}
		}
		seen[r.Name] = true
	}
	return &Registry{rules: append([]Rule(nil), rules...)}, nil
}

// DefaultRegistry returns the built-in activity rules. The table is compiled
// in, so a construction failure is a programming error.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(defaultRules()...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Rules returns the rules in registration order.
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

func (r *Registry) Len() int {
	return len(r.rules)
}

// Names returns the rule names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}
