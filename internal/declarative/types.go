// Package declarative loads slicer registries from a directory of YAML
// documents. Each document declares one slicer: its table, dialect, joins,
// metrics, and dimensions.
package declarative

import "sliceql/internal/domain"

const (
	// SupportedAPIVersion is the only apiVersion accepted in slicer documents.
	SupportedAPIVersion = "sliceql/v1"
	// KindSlicer is the document kind for a slicer definition.
	KindSlicer = "Slicer"
)

// SlicerDoc is the top-level YAML document for one slicer.
type SlicerDoc struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   Metadata   `yaml:"metadata"`
	Spec       SlicerSpec `yaml:"spec"`
}

// Metadata names the slicer.
type Metadata struct {
	Name string `yaml:"name"`
}

// SlicerSpec is the declarative body of a slicer document.
type SlicerSpec struct {
	Dialect    string          `yaml:"dialect,omitempty"`
	Table      TableSpec       `yaml:"table"`
	Joins      []JoinSpec      `yaml:"joins,omitempty"`
	Metrics    []MetricSpec    `yaml:"metrics,omitempty"`
	Dimensions []DimensionSpec `yaml:"dimensions,omitempty"`
}

// TableSpec references a relation, optionally aliased.
type TableSpec struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// JoinSpec declares a join to a secondary table. On equates a column of the
// primary table with a column of the joined table.
type JoinSpec struct {
	Key   string     `yaml:"key"`
	Table TableSpec  `yaml:"table"`
	On    JoinOnSpec `yaml:"on"`
}

// JoinOnSpec is the equality condition of a join: left is a column of the
// primary table, right a column of the joined table.
type JoinOnSpec struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// MetricSpec declares one metric. Either sql carries a raw expression, or
// aggregation/columns describe an aggregate over one or more columns; with
// neither, the metric defaults to SUM over the same-named primary-table
// column. From names a join key whose table the columns belong to.
type MetricSpec struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label,omitempty"`
	Aggregation string   `yaml:"aggregation,omitempty"`
	Columns     []string `yaml:"columns,omitempty"`
	From        string   `yaml:"from,omitempty"`
	SQL         string   `yaml:"sql,omitempty"`
	Joins       []string `yaml:"joins,omitempty"`
}

// DimensionSpec declares one dimension. Type selects the variant: date,
// numeric, and categorical use column; unique uses id_columns and
// label_column. From names a join key whose table the columns belong to.
type DimensionSpec struct {
	Name        string                  `yaml:"name"`
	Label       string                  `yaml:"label,omitempty"`
	Type        string                  `yaml:"type"`
	Column      string                  `yaml:"column,omitempty"`
	Options     []domain.DimensionValue `yaml:"options,omitempty"`
	IDColumns   []string                `yaml:"id_columns,omitempty"`
	LabelColumn string                  `yaml:"label_column,omitempty"`
	From        string                  `yaml:"from,omitempty"`
	Joins       []string                `yaml:"joins,omitempty"`
}
