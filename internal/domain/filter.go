package domain

import "fmt"

// FilterKind tags the operator class of a filter.
type FilterKind string

const (
	FilterEquality FilterKind = "equality"
	FilterContains FilterKind = "contains"
	FilterWildcard FilterKind = "wildcard"
	FilterRange    FilterKind = "range"
)

// FilterOperator is a comparison operator for equality-class filters.
type FilterOperator string

const (
	OpEq  FilterOperator = "eq"
	OpNe  FilterOperator = "ne"
	OpGt  FilterOperator = "gt"
	OpLt  FilterOperator = "lt"
	OpGte FilterOperator = "gte"
	OpLte FilterOperator = "lte"
)

// Filter constrains a metric or dimension by name. Element names a target in
// exactly one namespace: dimension filters may only target dimensions and
// metric filters may only target metrics.
type Filter struct {
	Element  string
	Kind     FilterKind
	Operator FilterOperator // equality
	Value    interface{}    // equality
	Values   []interface{}  // contains
	Pattern  string         // wildcard
	Lower    interface{}    // range
	Upper    interface{}    // range
}

// EqualityFilter compares the target against a single value.
func EqualityFilter(element string, op FilterOperator, value interface{}) Filter {
	return Filter{Element: element, Kind: FilterEquality, Operator: op, Value: value}
}

// ContainsFilter restricts the target to a set of values.
func ContainsFilter(element string, values ...interface{}) Filter {
	return Filter{Element: element, Kind: FilterContains, Values: values}
}

// WildcardFilter matches the target against a LIKE pattern.
func WildcardFilter(element, pattern string) Filter {
	return Filter{Element: element, Kind: FilterWildcard, Pattern: pattern}
}

// RangeFilter bounds the target inclusively between lower and upper.
func RangeFilter(element string, lower, upper interface{}) Filter {
	return Filter{Element: element, Kind: FilterRange, Lower: lower, Upper: upper}
}

// Validate checks that the filter is well-formed.
func (f Filter) Validate() error {
	if f.Element == "" {
		return fmt.Errorf("filter element is required")
	}
	switch f.Kind {
	case FilterEquality:
		switch f.Operator {
		case OpEq, OpNe, OpGt, OpLt, OpGte, OpLte:
		default:
			return fmt.Errorf("filter on %q has unknown operator %q", f.Element, f.Operator)
		}
	case FilterContains:
		if len(f.Values) == 0 {
			return fmt.Errorf("contains filter on %q requires at least one value", f.Element)
		}
	case FilterWildcard:
		if f.Pattern == "" {
			return fmt.Errorf("wildcard filter on %q requires a pattern", f.Element)
		}
	case FilterRange:
		if f.Lower == nil || f.Upper == nil {
			return fmt.Errorf("range filter on %q requires both bounds", f.Element)
		}
	default:
		return fmt.Errorf("filter on %q has unknown kind %q", f.Element, f.Kind)
	}
	return nil
}
