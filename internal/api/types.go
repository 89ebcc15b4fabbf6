package api

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/domain"
	"sliceql/internal/sqlexpr"
)

// CompileRequest is the JSON body of the query-schema and display-schema
// endpoints.
type CompileRequest struct {
	Metrics          []string             `json:"metrics,omitempty"`
	Dimensions       []DimensionSelection `json:"dimensions,omitempty"`
	DimensionFilters []Filter             `json:"dimension_filters,omitempty"`
	MetricFilters    []Filter             `json:"metric_filters,omitempty"`
	References       []Reference          `json:"references,omitempty"`
	Operations       []Operation          `json:"operations,omitempty"`
}

// DimensionSelection names a dimension with an optional modifier.
type DimensionSelection struct {
	Name     string `json:"name"`
	Interval string `json:"interval,omitempty"`
	Width    int    `json:"width,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Filter is the JSON shape of a metric or dimension filter.
type Filter struct {
	Element  string        `json:"element"`
	Kind     string        `json:"kind"`
	Operator string        `json:"operator,omitempty"`
	Value    interface{}   `json:"value,omitempty"`
	Values   []interface{} `json:"values,omitempty"`
	Pattern  string        `json:"pattern,omitempty"`
	Lower    interface{}   `json:"lower,omitempty"`
	Upper    interface{}   `json:"upper,omitempty"`
}

// Reference requests a period-over-period comparison.
type Reference struct {
	Dimension string `json:"dimension"`
	Period    string `json:"period"`
	Mode      string `json:"mode,omitempty"`
}

// Operation is a post-aggregation transform.
type Operation struct {
	Kind       string   `json:"kind"`
	Dimensions []string `json:"dimensions"`
}

// ToDomain validates the request body and converts it to a slice request.
func (r CompileRequest) ToDomain() (domain.SliceRequest, error) {
	out := domain.SliceRequest{Metrics: r.Metrics}

	for _, sel := range r.Dimensions {
		interval := sqlexpr.Interval(sel.Interval)
		if sel.Interval != "" && !interval.Valid() {
			return domain.SliceRequest{}, fmt.Errorf("dimension %q: unknown interval %q", sel.Name, sel.Interval)
		}
		out.Dimensions = append(out.Dimensions, domain.DimensionSelection{
			Name:     sel.Name,
			Interval: interval,
			Width:    sel.Width,
			Offset:   sel.Offset,
		})
	}

	for _, f := range r.DimensionFilters {
		df, err := f.toDomain()
		if err != nil {
			return domain.SliceRequest{}, err
		}
		out.DimensionFilters = append(out.DimensionFilters, df)
	}
	for _, f := range r.MetricFilters {
		mf, err := f.toDomain()
		if err != nil {
			return domain.SliceRequest{}, err
		}
		out.MetricFilters = append(out.MetricFilters, mf)
	}

	for _, ref := range r.References {
		dr, err := ref.toDomain()
		if err != nil {
			return domain.SliceRequest{}, err
		}
		out.References = append(out.References, dr)
	}

	for _, op := range r.Operations {
		if op.Kind != string(domain.OperationRollup) {
			return domain.SliceRequest{}, fmt.Errorf("unknown operation kind %q", op.Kind)
		}
		out.Operations = append(out.Operations, domain.Rollup(op.Dimensions...))
	}

	return out, nil
}

func (f Filter) toDomain() (domain.Filter, error) {
	df := domain.Filter{
		Element: f.Element,
		Kind:    domain.FilterKind(f.Kind),
		Value:   f.Value,
		Values:  f.Values,
		Pattern: f.Pattern,
		Lower:   f.Lower,
		Upper:   f.Upper,
	}
	if f.Operator != "" {
		df.Operator = domain.FilterOperator(f.Operator)
	}
	if err := df.Validate(); err != nil {
		return domain.Filter{}, err
	}
	return df, nil
}

func (r Reference) toDomain() (domain.Reference, error) {
	ref := domain.Reference{Dimension: r.Dimension}
	switch domain.ReferencePeriod(r.Period) {
	case domain.PeriodWoW, domain.PeriodMoM, domain.PeriodQoQ, domain.PeriodYoY:
		ref.Period = domain.ReferencePeriod(r.Period)
	default:
		return domain.Reference{}, fmt.Errorf("unknown reference period %q", r.Period)
	}
	switch domain.ReferenceMode(r.Mode) {
	case domain.ModeValue, domain.ModeDelta, domain.ModeDeltaPercent:
		ref.Mode = domain.ReferenceMode(r.Mode)
	case "":
		ref.Mode = domain.ModeValue
	default:
		return domain.Reference{}, fmt.Errorf("unknown reference mode %q", r.Mode)
	}
	return ref, nil
}

// Expression is the rendered form of a compiled expression: its SQL text and
// placeholder arguments.
type Expression struct {
	SQL  string        `json:"sql"`
	Args []interface{} `json:"args,omitempty"`
}

func renderExpression(e sq.Sqlizer) (Expression, error) {
	sql, args, err := e.ToSql()
	if err != nil {
		return Expression{}, err
	}
	return Expression{SQL: sql, Args: args}, nil
}

func renderExpressions(exprs []sq.Sqlizer) ([]Expression, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	out := make([]Expression, len(exprs))
	for i, e := range exprs {
		rendered, err := renderExpression(e)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

// ResolvedJoin is the rendered form of a compiled join.
type ResolvedJoin struct {
	Key   string        `json:"key"`
	Table sqlexpr.Table `json:"table"`
	On    Expression    `json:"on"`
}

// ReferencePair ties a reference key to its date dimension.
type ReferencePair struct {
	Key       string `json:"key"`
	Dimension string `json:"dimension"`
}

// QuerySchemaResponse is the JSON rendering of a compiled query schema.
type QuerySchemaResponse struct {
	Table            sqlexpr.Table         `json:"table"`
	Joins            []ResolvedJoin        `json:"joins,omitempty"`
	Metrics          map[string]Expression `json:"metrics"`
	Dimensions       map[string]Expression `json:"dimensions"`
	DimensionFilters []Expression          `json:"dimension_filters,omitempty"`
	MetricFilters    []Expression          `json:"metric_filters,omitempty"`
	References       []ReferencePair       `json:"references,omitempty"`
	Rollup           []string              `json:"rollup,omitempty"`
}

// NewQuerySchemaResponse renders a compiled query schema for JSON output.
func NewQuerySchemaResponse(qs *domain.QuerySchema) (*QuerySchemaResponse, error) {
	resp := &QuerySchemaResponse{
		Table:      qs.Table,
		Metrics:    make(map[string]Expression, len(qs.Metrics)),
		Dimensions: make(map[string]Expression, len(qs.Dimensions)),
		Rollup:     qs.RollupDimensions,
	}

	for _, j := range qs.Joins {
		on, err := renderExpression(j.On)
		if err != nil {
			return nil, err
		}
		resp.Joins = append(resp.Joins, ResolvedJoin{Key: j.Key, Table: j.Table, On: on})
	}

	for _, col := range qs.Metrics {
		rendered, err := renderExpression(col.Expression)
		if err != nil {
			return nil, err
		}
		resp.Metrics[col.Alias] = rendered
	}
	for _, col := range qs.Dimensions {
		rendered, err := renderExpression(col.Expression)
		if err != nil {
			return nil, err
		}
		resp.Dimensions[col.Alias] = rendered
	}

	var err error
	if resp.DimensionFilters, err = renderExpressions(qs.DimensionFilters); err != nil {
		return nil, err
	}
	if resp.MetricFilters, err = renderExpressions(qs.MetricFilters); err != nil {
		return nil, err
	}

	for _, ref := range qs.References {
		resp.References = append(resp.References, ReferencePair{Key: ref.Key, Dimension: ref.Dimension})
	}

	return resp, nil
}

// MetricInfo describes a registered metric.
type MetricInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// DimensionInfo describes a registered dimension.
type DimensionInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// SlicerInfo describes one registered slicer.
type SlicerInfo struct {
	Name       string          `json:"name"`
	Table      sqlexpr.Table   `json:"table"`
	Dialect    string          `json:"dialect"`
	Metrics    []MetricInfo    `json:"metrics"`
	Dimensions []DimensionInfo `json:"dimensions"`
}

func slicerInfo(reg *domain.Registry) SlicerInfo {
	info := SlicerInfo{
		Name:       reg.Name(),
		Table:      reg.Table(),
		Dialect:    reg.Dialect().Name(),
		Metrics:    []MetricInfo{},
		Dimensions: []DimensionInfo{},
	}
	for _, m := range reg.Metrics() {
		info.Metrics = append(info.Metrics, MetricInfo{Name: m.Name, Label: m.Label})
	}
	for _, d := range reg.Dimensions() {
		info.Dimensions = append(info.Dimensions, DimensionInfo{Name: d.Name, Label: d.Label, Type: string(d.Kind)})
	}
	return info
}
