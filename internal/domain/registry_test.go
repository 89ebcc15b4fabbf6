package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sliceql/internal/sqlexpr"
)

func TestRegistryBuilderDefaults(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")
	reg, err := NewRegistryBuilder("test", table).
		Metric(Metric{Name: "foo"}).
		Build()
	require.NoError(t, err)

	m, ok := reg.Metric("foo")
	require.True(t, ok)
	assert.Equal(t, "Foo", m.Label)

	sql, err := sqlexpr.SQL(m.Definition)
	require.NoError(t, err)
	assert.Equal(t, `SUM("test"."foo")`, sql)
}

func TestRegistryBuilderKeepsExplicitLabelAndDefinition(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")
	reg, err := NewRegistryBuilder("test", table).
		Metric(Metric{
			Name:       "weirdly_long_metric_name",
			Label:      "Weird Label",
			Definition: sqlexpr.Sum(sqlexpr.Add(table.C("fiz"), table.C("buz"))),
		}).
		Build()
	require.NoError(t, err)

	m, ok := reg.Metric("weirdly_long_metric_name")
	require.True(t, ok)
	assert.Equal(t, "Weird Label", m.Label)

	sql, err := sqlexpr.SQL(m.Definition)
	require.NoError(t, err)
	assert.Equal(t, `SUM("test"."fiz"+"test"."buz")`, sql)
}

func TestRegistryBuilderDimensionLabelDefault(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")
	reg, err := NewRegistryBuilder("test", table).
		Dimension(NewCategoricalDimension("locale_code", table.C("locale"))).
		Build()
	require.NoError(t, err)

	d, ok := reg.Dimension("locale_code")
	require.True(t, ok)
	assert.Equal(t, "Locale Code", d.Label)
}

func TestRegistryBuilderRejectsDuplicates(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")

	_, err := NewRegistryBuilder("test", table).
		Metric(Metric{Name: "foo"}).
		Metric(Metric{Name: "foo"}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate metric "foo"`)

	_, err = NewRegistryBuilder("test", table).
		Dimension(NewCategoricalDimension("locale", table.C("locale"))).
		Dimension(NewCategoricalDimension("locale", table.C("locale"))).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate dimension "locale"`)

	join := NewJoin("join1", sqlexpr.NewTable("test_join1", "join1"),
		sqlexpr.EqCols(table.C("join1_id"), sqlexpr.NewTable("test_join1", "join1").C("id")))
	_, err = NewRegistryBuilder("test", table).
		Join(join).
		Join(join).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate join key "join1"`)
}

func TestRegistryBuilderRejectsInvalidDefinitions(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")

	_, err := NewRegistryBuilder("test", table).
		Dimension(Dimension{Name: "broken", Kind: DimensionCategorical}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a definition")

	_, err = NewRegistryBuilder("test", table).
		Dimension(Dimension{Name: "broken", Kind: DimensionUnique, LabelField: table.C("name")}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one id field")

	_, err = NewRegistryBuilder("", table).Build()
	require.Error(t, err)
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")
	reg, err := NewRegistryBuilder("test", table).
		Metric(Metric{Name: "foo"}).
		Metric(Metric{Name: "bar"}).
		Dimension(NewCategoricalDimension("locale", table.C("locale"))).
		Dimension(NewDateDimension("date", table.C("dt"))).
		Build()
	require.NoError(t, err)

	metrics := reg.Metrics()
	require.Len(t, metrics, 2)
	assert.Equal(t, "foo", metrics[0].Name)
	assert.Equal(t, "bar", metrics[1].Name)

	dims := reg.Dimensions()
	require.Len(t, dims, 2)
	assert.Equal(t, "locale", dims[0].Name)
	assert.Equal(t, "date", dims[1].Name)
}

func TestTitleLabel(t *testing.T) {
	assert.Equal(t, "Foo", TitleLabel("foo"))
	assert.Equal(t, "Total Clicks", TitleLabel("total_clicks"))
	assert.Equal(t, "Weirdly Long Metric Name", TitleLabel("weirdly_long_metric_name"))
}
