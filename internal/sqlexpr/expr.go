// Package sqlexpr builds the SQL expression fragments the slicer compilers
// emit. Expressions are squirrel Sqlizers; column and table references render
// as double-quoted identifiers and carry no bound arguments, so a resolved
// metric or dimension expression is always a plain SQL string.
package sqlexpr

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Table is a reference to a relation, optionally aliased.
type Table struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// NewTable returns a table reference. An empty alias means the table is
// referenced by its own name.
func NewTable(name, alias string) Table {
	return Table{Name: name, Alias: alias}
}

// Ref returns the identifier other expressions use to reference the table:
// the alias when set, the table name otherwise.
func (t Table) Ref() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// C returns a column reference on this table.
func (t Table) C(name string) Column {
	return Column{Table: t.Ref(), Name: name}
}

// Column is a fully-qualified column reference.
type Column struct {
	Table string
	Name  string
}

// ToSql renders the column as a quoted identifier pair.
func (c Column) ToSql() (string, []interface{}, error) {
	return fmt.Sprintf(`"%s"."%s"`, c.Table, c.Name), nil, nil
}

// Raw wraps a literal SQL fragment as an expression.
func Raw(sql string) sq.Sqlizer {
	return sq.Expr(sql)
}

// Sum wraps an expression in a SUM aggregate.
func Sum(e sq.Sqlizer) sq.Sqlizer { return sq.Expr("SUM(?)", e) }

// Count wraps an expression in a COUNT aggregate.
func Count(e sq.Sqlizer) sq.Sqlizer { return sq.Expr("COUNT(?)", e) }

// Avg wraps an expression in an AVG aggregate.
func Avg(e sq.Sqlizer) sq.Sqlizer { return sq.Expr("AVG(?)", e) }

// Min wraps an expression in a MIN aggregate.
func Min(e sq.Sqlizer) sq.Sqlizer { return sq.Expr("MIN(?)", e) }

// Max wraps an expression in a MAX aggregate.
func Max(e sq.Sqlizer) sq.Sqlizer { return sq.Expr("MAX(?)", e) }

// Add sums two or more expressions.
func Add(exprs ...sq.Sqlizer) sq.Sqlizer {
	if len(exprs) == 1 {
		return exprs[0]
	}
	sql := "?"
	args := make([]interface{}, len(exprs))
	args[0] = exprs[0]
	for i := 1; i < len(exprs); i++ {
		sql += "+?"
		args[i] = exprs[i]
	}
	return sq.Expr(sql, args...)
}

// EqCols builds an equality predicate between two columns, used for join
// conditions.
func EqCols(left, right Column) sq.Sqlizer {
	return sq.Expr("?=?", left, right)
}

// Bin buckets a numeric expression into intervals of the given width,
// aligned by offset: MOD(expr+offset,width). The constants are inlined so
// the resolved expression stays argument-free.
func Bin(e sq.Sqlizer, width, offset int) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("MOD(?+%d,%d)", offset, width), e)
}

// SQL renders an expression to its SQL text. It fails when the expression
// carries bound arguments, which resolved definitions never do.
func SQL(e sq.Sqlizer) (string, error) {
	sql, args, err := e.ToSql()
	if err != nil {
		return "", err
	}
	if len(args) > 0 {
		return "", fmt.Errorf("expression %q carries %d bound arguments", sql, len(args))
	}
	return sql, nil
}
