package domain

// OperationKind identifies a post-aggregation operation carried on a slice
// request.
type OperationKind string

const (
	// OperationRollup requests grouping-set subtotals over the named
	// selected dimensions.
	OperationRollup OperationKind = "rollup"
)

// Operation is a post-aggregation transform applied to the compiled query
// schema.
type Operation struct {
	Kind       OperationKind
	Dimensions []string
}

// Rollup builds a rollup operation over the named dimensions. Each name must
// refer to a dimension selected in the same request.
func Rollup(dimensions ...string) Operation {
	return Operation{Kind: OperationRollup, Dimensions: dimensions}
}
