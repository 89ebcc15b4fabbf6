package domain

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metric is a named, aggregatable measure expression. The registry builder
// fills in defaults: the label is the title-cased name and the definition is
// SUM over the base table column of the same name.
type Metric struct {
	Name       string
	Label      string
	Definition sq.Sqlizer
	Joins      []string
}

// Validate checks that the metric is well-formed.
func (m Metric) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("metric name is required")
	}
	return nil
}

// TitleLabel derives a display label from a name: underscores become spaces
// and each word is title-cased ("total_clicks" -> "Total Clicks"). A fresh
// caser per call; cases.Caser is stateful and not safe to share.
func TitleLabel(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
