package slicer

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/domain"
	"sliceql/internal/sqlexpr"
)

// QuerySchema compiles a slice request into an execution plan. Metrics
// resolve before dimensions, join keys deduplicate in first-seen order,
// filters and references are validated against their namespaces, and rollup
// operations expand to flat dimension column names.
func (s *Service) QuerySchema(req domain.SliceRequest) (*domain.QuerySchema, error) {
	selected := make(map[string]domain.DimensionSelection, len(req.Dimensions))

	var joinKeys []string
	seenJoins := make(map[string]bool)
	collectJoins := func(keys []string) {
		for _, key := range keys {
			if seenJoins[key] {
				continue
			}
			seenJoins[key] = true
			joinKeys = append(joinKeys, key)
		}
	}

	var metrics []domain.SelectColumn
	for _, name := range req.Metrics {
		m, ok := s.reg.Metric(name)
		if !ok {
			return nil, domain.ErrUnknownName("metric %q is not registered", name)
		}
		metrics = append(metrics, resolveMetric(m))
		collectJoins(m.Joins)
	}

	var dimensions []domain.SelectColumn
	for _, sel := range req.Dimensions {
		d, ok := s.reg.Dimension(sel.Name)
		if !ok {
			return nil, domain.ErrUnknownName("dimension %q is not registered", sel.Name)
		}
		cols, err := s.resolveDimension(d, sel)
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, cols...)
		collectJoins(d.Joins)
		selected[sel.Name] = sel
	}

	var joins []domain.ResolvedJoin
	for _, key := range joinKeys {
		j, ok := s.reg.Join(key)
		if !ok {
			return nil, domain.ErrUnknownName("join %q is not registered", key)
		}
		joins = append(joins, domain.ResolvedJoin{Key: j.Key, Table: j.Table, On: j.On})
	}

	var dfilters []sq.Sqlizer
	for _, f := range req.DimensionFilters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, isMetric := s.reg.Metric(f.Element); isMetric {
			return nil, domain.ErrNamespaceMismatch("dimension filter targets metric %q", f.Element)
		}
		d, ok := s.reg.Dimension(f.Element)
		if !ok {
			return nil, domain.ErrUnknownName("dimension filter targets unregistered name %q", f.Element)
		}
		target, err := s.filterTarget(d, selected[f.Element], f.Kind)
		if err != nil {
			return nil, err
		}
		pred, err := predicate(target, f)
		if err != nil {
			return nil, err
		}
		dfilters = append(dfilters, pred)
	}

	var mfilters []sq.Sqlizer
	for _, f := range req.MetricFilters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, isDimension := s.reg.Dimension(f.Element); isDimension {
			return nil, domain.ErrNamespaceMismatch("metric filter targets dimension %q", f.Element)
		}
		m, ok := s.reg.Metric(f.Element)
		if !ok {
			return nil, domain.ErrUnknownName("metric filter targets unregistered name %q", f.Element)
		}
		pred, err := predicate(m.Definition, f)
		if err != nil {
			return nil, err
		}
		mfilters = append(mfilters, pred)
	}

	var references []domain.ReferencePair
	for _, ref := range req.References {
		d, ok := s.reg.Dimension(ref.Dimension)
		if !ok {
			return nil, domain.ErrUnknownName("reference targets unregistered dimension %q", ref.Dimension)
		}
		if _, isSelected := selected[ref.Dimension]; !isSelected {
			return nil, domain.ErrNamespaceMismatch("reference targets dimension %q outside the current selection", ref.Dimension)
		}
		if d.Kind != domain.DimensionDate {
			return nil, domain.ErrNamespaceMismatch("reference targets non-date dimension %q", ref.Dimension)
		}
		references = append(references, domain.ReferencePair{Key: ref.Key(), Dimension: ref.Dimension})
	}

	var rollup []string
	for _, op := range req.Operations {
		if op.Kind != domain.OperationRollup {
			return nil, fmt.Errorf("unknown operation kind %q", op.Kind)
		}
		for _, name := range op.Dimensions {
			d, ok := s.reg.Dimension(name)
			if !ok {
				return nil, domain.ErrUnknownName("rollup targets unregistered dimension %q", name)
			}
			if _, isSelected := selected[name]; !isSelected {
				return nil, domain.ErrUnknownName("rollup targets dimension %q outside the current selection", name)
			}
			rollup = append(rollup, d.IDFieldNames()...)
		}
	}

	return &domain.QuerySchema{
		Table:            s.reg.Table(),
		Joins:            joins,
		Metrics:          metrics,
		Dimensions:       dimensions,
		DimensionFilters: dfilters,
		MetricFilters:    mfilters,
		References:       references,
		RollupDimensions: rollup,
	}, nil
}

// predicate builds the filter condition for a resolved target expression.
// Targets are argument-free, so their rendered SQL is usable as a squirrel
// condition key; literal payloads become placeholder arguments.
func predicate(target sq.Sqlizer, f domain.Filter) (sq.Sqlizer, error) {
	rendered, err := sqlexpr.SQL(target)
	if err != nil {
		return nil, fmt.Errorf("filter on %q: %w", f.Element, err)
	}
	switch f.Kind {
	case domain.FilterEquality:
		switch f.Operator {
		case domain.OpEq:
			return sq.Eq{rendered: f.Value}, nil
		case domain.OpNe:
			return sq.NotEq{rendered: f.Value}, nil
		case domain.OpGt:
			return sq.Gt{rendered: f.Value}, nil
		case domain.OpLt:
			return sq.Lt{rendered: f.Value}, nil
		case domain.OpGte:
			return sq.GtOrEq{rendered: f.Value}, nil
		case domain.OpLte:
			return sq.LtOrEq{rendered: f.Value}, nil
		}
	case domain.FilterContains:
		return sq.Eq{rendered: f.Values}, nil
	case domain.FilterWildcard:
		return sq.Like{rendered: f.Pattern}, nil
	case domain.FilterRange:
		return sq.Expr(rendered+" BETWEEN ? AND ?", f.Lower, f.Upper), nil
	}
	return nil, fmt.Errorf("filter on %q has unknown kind %q", f.Element, f.Kind)
}
