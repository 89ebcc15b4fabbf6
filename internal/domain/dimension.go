package domain

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// DimensionKind tags the shape variant of a dimension. Each kind has its own
// flat-column expansion rule, dispatched once in the expression resolver.
type DimensionKind string

const (
	DimensionDate        DimensionKind = "date"
	DimensionNumeric     DimensionKind = "numeric"
	DimensionCategorical DimensionKind = "categorical"
	DimensionUnique      DimensionKind = "unique"
)

// DimensionValue maps a raw categorical value to its display label.
type DimensionValue struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Dimension is a named grouping expression. Definition is set for date,
// numeric, and categorical dimensions; unique dimensions carry an ordered
// list of identifier expressions plus a separate label expression instead.
type Dimension struct {
	Name       string
	Label      string
	Kind       DimensionKind
	Definition sq.Sqlizer
	Options    []DimensionValue
	IDFields   []sq.Sqlizer
	LabelField sq.Sqlizer
	Joins      []string
}

// NewDateDimension returns a continuous date dimension.
func NewDateDimension(name string, definition sq.Sqlizer, joins ...string) Dimension {
	return Dimension{Name: name, Kind: DimensionDate, Definition: definition, Joins: joins}
}

// NewContinuousDimension returns a continuous numeric dimension.
func NewContinuousDimension(name string, definition sq.Sqlizer, joins ...string) Dimension {
	return Dimension{Name: name, Kind: DimensionNumeric, Definition: definition, Joins: joins}
}

// NewCategoricalDimension returns a categorical dimension with an optional
// value-to-label mapping.
func NewCategoricalDimension(name string, definition sq.Sqlizer, options ...DimensionValue) Dimension {
	return Dimension{Name: name, Kind: DimensionCategorical, Definition: definition, Options: options}
}

// NewUniqueDimension returns a unique dimension with one or more ordered
// identifier expressions and a label expression.
func NewUniqueDimension(name string, labelField sq.Sqlizer, idFields ...sq.Sqlizer) Dimension {
	return Dimension{Name: name, Kind: DimensionUnique, LabelField: labelField, IDFields: idFields}
}

// Validate checks that the dimension is well-formed for its kind.
func (d Dimension) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dimension name is required")
	}
	switch d.Kind {
	case DimensionDate, DimensionNumeric, DimensionCategorical:
		if d.Definition == nil {
			return fmt.Errorf("dimension %q requires a definition", d.Name)
		}
	case DimensionUnique:
		if len(d.IDFields) == 0 {
			return fmt.Errorf("unique dimension %q requires at least one id field", d.Name)
		}
		if d.LabelField == nil {
			return fmt.Errorf("unique dimension %q requires a label field", d.Name)
		}
	default:
		return fmt.Errorf("dimension %q has unknown kind %q", d.Name, d.Kind)
	}
	return nil
}

// IDFieldNames returns the flat identifier column names for the dimension:
// name_id0..name_idN-1 for unique dimensions, the bare name otherwise.
func (d Dimension) IDFieldNames() []string {
	if d.Kind != DimensionUnique {
		return []string{d.Name}
	}
	names := make([]string, len(d.IDFields))
	for i := range d.IDFields {
		names[i] = fmt.Sprintf("%s_id%d", d.Name, i)
	}
	return names
}

// LabelFieldName returns the flat label column name for unique dimensions.
func (d Dimension) LabelFieldName() string {
	return d.Name + "_label"
}
