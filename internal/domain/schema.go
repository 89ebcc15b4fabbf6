package domain

import (
	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/sqlexpr"
)

// SelectColumn is an output column of a compiled query schema with its
// result-set alias.
type SelectColumn struct {
	Alias      string
	Expression sq.Sqlizer
}

// ResolvedJoin is a join required by a compiled request, carried in
// first-use order.
type ResolvedJoin struct {
	Key   string
	Table sqlexpr.Table
	On    sq.Sqlizer
}

// ReferencePair ties a validated reference key to the date dimension it
// compares over.
type ReferencePair struct {
	Key       string
	Dimension string
}

// QuerySchema is the compiled execution plan for one slice request.
type QuerySchema struct {
	Table            sqlexpr.Table
	Joins            []ResolvedJoin
	Metrics          []SelectColumn
	Dimensions       []SelectColumn
	DimensionFilters []sq.Sqlizer
	MetricFilters    []sq.Sqlizer
	References       []ReferencePair
	RollupDimensions []string
}

// DimensionDisplay describes how one selected dimension renders downstream.
type DimensionDisplay struct {
	Label        string           `json:"label"`
	IDFields     []string         `json:"id_fields"`
	LabelField   string           `json:"label_field,omitempty"`
	LabelOptions []DimensionValue `json:"label_options,omitempty"`
}

// DisplaySchema carries the rendering metadata for one slice request. All
// collections are non-nil so JSON encoding yields arrays and objects, never
// null.
type DisplaySchema struct {
	Metrics    map[string]string  `json:"metrics"`
	Dimensions []DimensionDisplay `json:"dimensions"`
	References []string           `json:"references"`
}
