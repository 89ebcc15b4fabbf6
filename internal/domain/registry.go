package domain

import (
	"fmt"

	"sliceql/internal/sqlexpr"
)

// Registry is an immutable catalog of the metrics, dimensions, and joins that
// slice requests against one primary table may reference. Build one with
// RegistryBuilder.
type Registry struct {
	name    string
	table   sqlexpr.Table
	dialect sqlexpr.Dialect

	metricOrder []string
	metrics     map[string]Metric

	dimensionOrder []string
	dimensions     map[string]Dimension

	joins map[string]Join
}

// Name returns the registry name.
func (r *Registry) Name() string { return r.name }

// Table returns the primary table of the registry.
func (r *Registry) Table() sqlexpr.Table { return r.table }

// Dialect returns the SQL dialect the registry compiles against.
func (r *Registry) Dialect() sqlexpr.Dialect { return r.dialect }

// Metric looks up a metric by name.
func (r *Registry) Metric(name string) (Metric, bool) {
	m, ok := r.metrics[name]
	return m, ok
}

// Dimension looks up a dimension by name.
func (r *Registry) Dimension(name string) (Dimension, bool) {
	d, ok := r.dimensions[name]
	return d, ok
}

// Join looks up a join by key.
func (r *Registry) Join(key string) (Join, bool) {
	j, ok := r.joins[key]
	return j, ok
}

// Metrics returns the registered metrics in registration order.
func (r *Registry) Metrics() []Metric {
	out := make([]Metric, 0, len(r.metricOrder))
	for _, name := range r.metricOrder {
		out = append(out, r.metrics[name])
	}
	return out
}

// Dimensions returns the registered dimensions in registration order.
func (r *Registry) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(r.dimensionOrder))
	for _, name := range r.dimensionOrder {
		out = append(out, r.dimensions[name])
	}
	return out
}

// RegistryBuilder accumulates registry content and validates it on Build.
type RegistryBuilder struct {
	reg  *Registry
	errs []error
}

// NewRegistryBuilder starts a registry over the given primary table. The
// dialect defaults to Vertica until overridden.
func NewRegistryBuilder(name string, table sqlexpr.Table) *RegistryBuilder {
	return &RegistryBuilder{
		reg: &Registry{
			name:       name,
			table:      table,
			dialect:    sqlexpr.VerticaDialect{},
			metrics:    make(map[string]Metric),
			dimensions: make(map[string]Dimension),
			joins:      make(map[string]Join),
		},
	}
}

// Dialect sets the SQL dialect the registry compiles against.
func (b *RegistryBuilder) Dialect(d sqlexpr.Dialect) *RegistryBuilder {
	b.reg.dialect = d
	return b
}

// Join registers a join under its key.
func (b *RegistryBuilder) Join(j Join) *RegistryBuilder {
	if j.Key == "" {
		b.errs = append(b.errs, fmt.Errorf("join key must not be empty"))
		return b
	}
	if _, exists := b.reg.joins[j.Key]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate join key %q", j.Key))
		return b
	}
	b.reg.joins[j.Key] = j
	return b
}

// Metric registers a metric. A missing label defaults to the title-cased
// name and a missing definition defaults to SUM over the same-named column
// of the primary table.
func (b *RegistryBuilder) Metric(m Metric) *RegistryBuilder {
	if m.Label == "" {
		m.Label = TitleLabel(m.Name)
	}
	if m.Definition == nil {
		m.Definition = sqlexpr.Sum(b.reg.table.C(m.Name))
	}
	if err := m.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("metric %q: %w", m.Name, err))
		return b
	}
	if _, exists := b.reg.metrics[m.Name]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate metric %q", m.Name))
		return b
	}
	b.reg.metrics[m.Name] = m
	b.reg.metricOrder = append(b.reg.metricOrder, m.Name)
	return b
}

// Dimension registers a dimension. A missing label defaults to the
// title-cased name.
func (b *RegistryBuilder) Dimension(d Dimension) *RegistryBuilder {
	if d.Label == "" {
		d.Label = TitleLabel(d.Name)
	}
	if err := d.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("dimension %q: %w", d.Name, err))
		return b
	}
	if _, exists := b.reg.dimensions[d.Name]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate dimension %q", d.Name))
		return b
	}
	b.reg.dimensions[d.Name] = d
	b.reg.dimensionOrder = append(b.reg.dimensionOrder, d.Name)
	return b
}

// Build finalizes the registry, returning the first accumulated error if any
// registration was invalid.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.reg.name == "" {
		return nil, fmt.Errorf("registry name must not be empty")
	}
	if b.reg.table.Name == "" {
		return nil, fmt.Errorf("registry %q: primary table name must not be empty", b.reg.name)
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("registry %q: %w", b.reg.name, b.errs[0])
	}
	return b.reg, nil
}
