package declarative

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/domain"
	"sliceql/internal/sqlexpr"
)

// buildRegistry turns a validated slicer document into a registry.
func buildRegistry(doc SlicerDoc) (*domain.Registry, error) {
	if doc.Metadata.Name == "" {
		return nil, fmt.Errorf("slicer document requires metadata.name")
	}
	spec := doc.Spec

	dialect, err := sqlexpr.DialectByName(spec.Dialect)
	if err != nil {
		return nil, fmt.Errorf("slicer %q: %w", doc.Metadata.Name, err)
	}

	table := sqlexpr.NewTable(spec.Table.Name, spec.Table.Alias)
	joinTables := make(map[string]sqlexpr.Table, len(spec.Joins))
	for _, j := range spec.Joins {
		joinTables[j.Key] = sqlexpr.NewTable(j.Table.Name, j.Table.Alias)
	}

	// columnFor resolves a column against the primary table or, when from
	// names a join key, against that join's table.
	columnFor := func(from, column string) (sqlexpr.Column, error) {
		if from == "" {
			return table.C(column), nil
		}
		jt, ok := joinTables[from]
		if !ok {
			return sqlexpr.Column{}, fmt.Errorf("unknown join key %q in from", from)
		}
		return jt.C(column), nil
	}

	b := domain.NewRegistryBuilder(doc.Metadata.Name, table).Dialect(dialect)

	for _, j := range spec.Joins {
		jt := joinTables[j.Key]
		b.Join(domain.NewJoin(j.Key, jt, sqlexpr.EqCols(table.C(j.On.Left), jt.C(j.On.Right))))
	}

	for _, m := range spec.Metrics {
		def, err := metricDefinition(m, columnFor)
		if err != nil {
			return nil, fmt.Errorf("slicer %q: metric %q: %w", doc.Metadata.Name, m.Name, err)
		}
		b.Metric(domain.Metric{Name: m.Name, Label: m.Label, Definition: def, Joins: m.Joins})
	}

	for _, d := range spec.Dimensions {
		dim, err := dimension(d, columnFor)
		if err != nil {
			return nil, fmt.Errorf("slicer %q: dimension %q: %w", doc.Metadata.Name, d.Name, err)
		}
		b.Dimension(dim)
	}

	return b.Build()
}

// metricDefinition resolves a metric spec to its expression. A nil return
// with nil error keeps the registry builder's SUM default.
func metricDefinition(m MetricSpec, columnFor func(from, column string) (sqlexpr.Column, error)) (sq.Sqlizer, error) {
	if m.SQL != "" {
		if m.Aggregation != "" || len(m.Columns) > 0 {
			return nil, fmt.Errorf("sql excludes aggregation and columns")
		}
		return sqlexpr.Raw(m.SQL), nil
	}
	if len(m.Columns) == 0 {
		if m.Aggregation != "" {
			return nil, fmt.Errorf("aggregation requires columns")
		}
		return nil, nil
	}

	exprs := make([]sq.Sqlizer, len(m.Columns))
	for i, col := range m.Columns {
		c, err := columnFor(m.From, col)
		if err != nil {
			return nil, err
		}
		exprs[i] = c
	}
	operand := sqlexpr.Add(exprs...)

	switch m.Aggregation {
	case "", "sum":
		return sqlexpr.Sum(operand), nil
	case "count":
		return sqlexpr.Count(operand), nil
	case "avg":
		return sqlexpr.Avg(operand), nil
	case "min":
		return sqlexpr.Min(operand), nil
	case "max":
		return sqlexpr.Max(operand), nil
	}
	return nil, fmt.Errorf("unknown aggregation %q", m.Aggregation)
}

// dimension resolves a dimension spec to its domain value.
func dimension(d DimensionSpec, columnFor func(from, column string) (sqlexpr.Column, error)) (domain.Dimension, error) {
	switch d.Type {
	case "date", "numeric", "categorical":
		if d.Column == "" {
			return domain.Dimension{}, fmt.Errorf("type %q requires column", d.Type)
		}
		col, err := columnFor(d.From, d.Column)
		if err != nil {
			return domain.Dimension{}, err
		}
		dim := domain.Dimension{
			Name:       d.Name,
			Label:      d.Label,
			Kind:       domain.DimensionKind(d.Type),
			Definition: col,
			Options:    d.Options,
			Joins:      d.Joins,
		}
		return dim, nil

	case "unique":
		if len(d.IDColumns) == 0 || d.LabelColumn == "" {
			return domain.Dimension{}, fmt.Errorf("type unique requires id_columns and label_column")
		}
		idFields := make([]sq.Sqlizer, len(d.IDColumns))
		for i, col := range d.IDColumns {
			c, err := columnFor(d.From, col)
			if err != nil {
				return domain.Dimension{}, err
			}
			idFields[i] = c
		}
		labelField, err := columnFor(d.From, d.LabelColumn)
		if err != nil {
			return domain.Dimension{}, err
		}
		return domain.Dimension{
			Name:       d.Name,
			Label:      d.Label,
			Kind:       domain.DimensionUnique,
			IDFields:   idFields,
			LabelField: labelField,
			Joins:      d.Joins,
		}, nil
	}
	return domain.Dimension{}, fmt.Errorf("unknown dimension type %q", d.Type)
}
