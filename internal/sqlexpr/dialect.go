package sqlexpr

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Interval is a date truncation granularity.
type Interval string

const (
	IntervalDay     Interval = "day"
	IntervalWeek    Interval = "week"
	IntervalMonth   Interval = "month"
	IntervalQuarter Interval = "quarter"
	IntervalYear    Interval = "year"
)

// Valid reports whether the interval is a known granularity.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalQuarter, IntervalYear:
		return true
	}
	return false
}

// Dialect renders vendor-specific expression fragments. The compilers only
// need date truncation; everything else renders identically across vendors.
type Dialect interface {
	// Name identifies the dialect in configuration.
	Name() string
	// TruncDate truncates a date expression to the interval boundary.
	TruncDate(e sq.Sqlizer, unit Interval) sq.Sqlizer
}

// VerticaDialect truncates dates with ROUND(expr,'FMT').
type VerticaDialect struct{}

var verticaFormats = map[Interval]string{
	IntervalDay:     "DD",
	IntervalWeek:    "WW",
	IntervalMonth:   "MM",
	IntervalQuarter: "Q",
	IntervalYear:    "Y",
}

func (VerticaDialect) Name() string { return "vertica" }

func (VerticaDialect) TruncDate(e sq.Sqlizer, unit Interval) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("ROUND(?,'%s')", verticaFormats[unit]), e)
}

// DuckDBDialect truncates dates with DATE_TRUNC('unit', expr).
type DuckDBDialect struct{}

func (DuckDBDialect) Name() string { return "duckdb" }

func (DuckDBDialect) TruncDate(e sq.Sqlizer, unit Interval) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("DATE_TRUNC('%s',?)", unit), e)
}

// DialectByName resolves a configured dialect name.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case "", "vertica":
		return VerticaDialect{}, nil
	case "duckdb":
		return DuckDBDialect{}, nil
	}
	return nil, fmt.Errorf("unknown dialect %q", name)
}
