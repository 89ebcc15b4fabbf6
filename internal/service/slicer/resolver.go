package slicer

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/domain"
	"sliceql/internal/sqlexpr"
)

const (
	defaultBinWidth  = 1
	defaultBinOffset = 0
)

// resolveMetric expands a metric into its single output column.
func resolveMetric(m domain.Metric) domain.SelectColumn {
	return domain.SelectColumn{Alias: m.Name, Expression: m.Definition}
}

// resolveDimension expands a dimension under the selection's modifier into
// its ordered flat output columns. Date dimensions truncate to the selected
// interval, numeric dimensions bin by width and offset, categorical
// dimensions pass through, and unique dimensions expand to their identifier
// columns plus a label column.
func (s *Service) resolveDimension(d domain.Dimension, sel domain.DimensionSelection) ([]domain.SelectColumn, error) {
	switch d.Kind {
	case domain.DimensionDate:
		interval := sel.Interval
		if interval == "" {
			interval = sqlexpr.IntervalDay
		}
		if !interval.Valid() {
			return nil, fmt.Errorf("dimension %q: unknown interval %q", d.Name, interval)
		}
		expr := s.reg.Dialect().TruncDate(d.Definition, interval)
		return []domain.SelectColumn{{Alias: d.Name, Expression: expr}}, nil

	case domain.DimensionNumeric:
		width, offset := sel.Width, sel.Offset
		if width == 0 {
			width, offset = defaultBinWidth, defaultBinOffset
		}
		expr := sqlexpr.Bin(d.Definition, width, offset)
		return []domain.SelectColumn{{Alias: d.Name, Expression: expr}}, nil

	case domain.DimensionCategorical:
		return []domain.SelectColumn{{Alias: d.Name, Expression: d.Definition}}, nil

	case domain.DimensionUnique:
		names := d.IDFieldNames()
		cols := make([]domain.SelectColumn, 0, len(names)+1)
		for i, idField := range d.IDFields {
			cols = append(cols, domain.SelectColumn{Alias: names[i], Expression: idField})
		}
		cols = append(cols, domain.SelectColumn{Alias: d.LabelFieldName(), Expression: d.LabelField})
		return cols, nil
	}
	return nil, fmt.Errorf("dimension %q has unknown kind %q", d.Name, d.Kind)
}

// filterTarget resolves the single expression a filter compares against.
// Unique dimensions are filtered on their first identifier expression. Range
// filters on numeric dimensions always use the default bin so the bounds
// compare against raw-aligned buckets; combining caller bins with range
// bounds has no defined meaning.
func (s *Service) filterTarget(d domain.Dimension, sel domain.DimensionSelection, kind domain.FilterKind) (sq.Sqlizer, error) {
	if d.Kind == domain.DimensionUnique {
		return d.IDFields[0], nil
	}
	if d.Kind == domain.DimensionNumeric && kind == domain.FilterRange {
		sel = domain.DimensionSelection{Name: d.Name}
	}
	cols, err := s.resolveDimension(d, sel)
	if err != nil {
		return nil, err
	}
	return cols[0].Expression, nil
}
