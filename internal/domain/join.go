package domain

import (
	sq "github.com/Masterminds/squirrel"

	"sliceql/internal/sqlexpr"
)

// Join declares a relationship to a secondary table. It is pulled into a
// compiled query only when a selected metric or dimension names its key.
type Join struct {
	Key   string
	Table sqlexpr.Table
	On    sq.Sqlizer
}

// NewJoin returns a join declaration.
func NewJoin(key string, table sqlexpr.Table, on sq.Sqlizer) Join {
	return Join{Key: key, Table: table, On: on}
}
