package domain

import "sliceql/internal/sqlexpr"

// DimensionSelection names a dimension in a slice request together with an
// optional modifier. Interval applies to date dimensions; Width and Offset
// apply to continuous numeric dimensions. Zero values mean the compiler's
// defaults.
type DimensionSelection struct {
	Name     string
	Interval sqlexpr.Interval
	Width    int
	Offset   int
}

// Select names a dimension with default modifiers.
func Select(name string) DimensionSelection {
	return DimensionSelection{Name: name}
}

// ByInterval selects a date dimension truncated to the given interval.
func ByInterval(name string, interval sqlexpr.Interval) DimensionSelection {
	return DimensionSelection{Name: name, Interval: interval}
}

// ByBin selects a continuous dimension binned by width and offset.
func ByBin(name string, width, offset int) DimensionSelection {
	return DimensionSelection{Name: name, Width: width, Offset: offset}
}

// SliceRequest is one compilation request against a registry.
type SliceRequest struct {
	Metrics          []string
	Dimensions       []DimensionSelection
	DimensionFilters []Filter
	MetricFilters    []Filter
	References       []Reference
	Operations       []Operation
}
