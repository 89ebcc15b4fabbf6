package slicer

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sliceql/internal/domain"
	"sliceql/internal/sqlexpr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	table := sqlexpr.NewTable("test_table", "test")
	joinTable := sqlexpr.NewTable("test_join_table", "join")

	blah := domain.NewCategoricalDimension("blah", joinTable.C("blah"))
	blah.Joins = []string{"join1"}

	reg, err := domain.NewRegistryBuilder("test", table).
		Join(domain.NewJoin("join1", joinTable, sqlexpr.EqCols(table.C("join_id"), joinTable.C("id")))).
		Metric(domain.Metric{Name: "foo"}).
		Metric(domain.Metric{
			Name:       "bar",
			Label:      "FizBuz",
			Definition: sqlexpr.Sum(sqlexpr.Add(table.C("fiz"), table.C("buz"))),
		}).
		Metric(domain.Metric{
			Name:       "piddle",
			Definition: sqlexpr.Sum(joinTable.C("piddle")),
			Joins:      []string{"join1"},
		}).
		Metric(domain.Metric{
			Name:       "paddle",
			Definition: sqlexpr.Sum(sqlexpr.Add(joinTable.C("paddle"), table.C("foo"))),
			Joins:      []string{"join1"},
		}).
		Dimension(domain.NewDateDimension("date", table.C("dt"))).
		Dimension(domain.Dimension{
			Name:       "clicks",
			Label:      "Clicks CUSTOM LABEL",
			Kind:       domain.DimensionNumeric,
			Definition: table.C("clicks"),
		}).
		Dimension(domain.NewCategoricalDimension("locale", table.C("locale"),
			domain.DimensionValue{Value: "us", Label: "United States"},
			domain.DimensionValue{Value: "de", Label: "Germany"},
		)).
		Dimension(domain.NewUniqueDimension("account", table.C("account_name"), table.C("account_id"))).
		Dimension(domain.NewUniqueDimension("keyword", table.C("keyword_name"),
			table.C("keyword_id"), table.C("keyword_type"), table.C("adgroup_id"), table.C("engine"))).
		Dimension(blah).
		Build()
	require.NoError(t, err)

	return NewService(reg)
}

func columnSQL(t *testing.T, cols []domain.SelectColumn, alias string) string {
	t.Helper()
	for _, c := range cols {
		if c.Alias == alias {
			sql, err := sqlexpr.SQL(c.Expression)
			require.NoError(t, err)
			return sql
		}
	}
	t.Fatalf("no column with alias %q", alias)
	return ""
}

func aliases(cols []domain.SelectColumn) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Alias
	}
	return out
}

func predicateSQL(t *testing.T, pred sq.Sqlizer) (string, []interface{}) {
	t.Helper()
	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestQuerySchemaMetricWithDefaultDefinition(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{Metrics: []string{"foo"}})
	require.NoError(t, err)

	assert.Equal(t, "test_table", qs.Table.Name)
	assert.Equal(t, []string{"foo"}, aliases(qs.Metrics))
	assert.Equal(t, `SUM("test"."foo")`, columnSQL(t, qs.Metrics, "foo"))
	assert.Nil(t, qs.Joins)
	assert.Nil(t, qs.Dimensions)
	assert.Nil(t, qs.DimensionFilters)
	assert.Nil(t, qs.MetricFilters)
	assert.Nil(t, qs.References)
	assert.Nil(t, qs.RollupDimensions)
}

func TestQuerySchemaMetricWithCustomDefinition(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{Metrics: []string{"bar"}})
	require.NoError(t, err)

	assert.Equal(t, `SUM("test"."fiz"+"test"."buz")`, columnSQL(t, qs.Metrics, "bar"))
}

func TestQuerySchemaDateDimensionDefaultInterval(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("date")},
	})
	require.NoError(t, err)

	assert.Equal(t, `ROUND("test"."dt",'DD')`, columnSQL(t, qs.Dimensions, "date"))
}

func TestQuerySchemaDateDimensionCustomInterval(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.ByInterval("date", sqlexpr.IntervalWeek)},
	})
	require.NoError(t, err)

	assert.Equal(t, `ROUND("test"."dt",'WW')`, columnSQL(t, qs.Dimensions, "date"))
}

func TestQuerySchemaNumericDimensionDefaultBin(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("clicks")},
	})
	require.NoError(t, err)

	assert.Equal(t, `MOD("test"."clicks"+0,1)`, columnSQL(t, qs.Dimensions, "clicks"))
}

func TestQuerySchemaNumericDimensionCustomBin(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.ByBin("clicks", 100, 25)},
	})
	require.NoError(t, err)

	assert.Equal(t, `MOD("test"."clicks"+25,100)`, columnSQL(t, qs.Dimensions, "clicks"))
}

func TestQuerySchemaCategoricalDimension(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("locale")},
	})
	require.NoError(t, err)

	assert.Equal(t, `"test"."locale"`, columnSQL(t, qs.Dimensions, "locale"))
}

func TestQuerySchemaUniqueDimensionSingleID(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("account")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"account_id0", "account_label"}, aliases(qs.Dimensions))
	assert.Equal(t, `"test"."account_id"`, columnSQL(t, qs.Dimensions, "account_id0"))
	assert.Equal(t, `"test"."account_name"`, columnSQL(t, qs.Dimensions, "account_label"))
}

func TestQuerySchemaUniqueDimensionCompositeID(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("keyword")},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"keyword_id0", "keyword_id1", "keyword_id2", "keyword_id3", "keyword_label"},
		aliases(qs.Dimensions))
	assert.Equal(t, `"test"."keyword_id"`, columnSQL(t, qs.Dimensions, "keyword_id0"))
	assert.Equal(t, `"test"."keyword_type"`, columnSQL(t, qs.Dimensions, "keyword_id1"))
	assert.Equal(t, `"test"."adgroup_id"`, columnSQL(t, qs.Dimensions, "keyword_id2"))
	assert.Equal(t, `"test"."engine"`, columnSQL(t, qs.Dimensions, "keyword_id3"))
	assert.Equal(t, `"test"."keyword_name"`, columnSQL(t, qs.Dimensions, "keyword_label"))
}

func TestQuerySchemaMultipleMetricsAndDimensions(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics: []string{"foo", "bar"},
		Dimensions: []domain.DimensionSelection{
			domain.ByInterval("date", sqlexpr.IntervalMonth),
			domain.ByBin("clicks", 50, 100),
			domain.Select("locale"),
			domain.Select("account"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar"}, aliases(qs.Metrics))
	assert.Equal(t,
		[]string{"date", "clicks", "locale", "account_id0", "account_label"},
		aliases(qs.Dimensions))
	assert.Equal(t, `MOD("test"."clicks"+100,50)`, columnSQL(t, qs.Dimensions, "clicks"))
}

func TestQuerySchemaDimensionFilters(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		filter   domain.Filter
		wantSQL  string
		wantArgs []interface{}
	}{
		{"eq", domain.EqualityFilter("locale", domain.OpEq, "en"), `"test"."locale" = ?`, []interface{}{"en"}},
		{"ne", domain.EqualityFilter("locale", domain.OpNe, "en"), `"test"."locale" <> ?`, []interface{}{"en"}},
		{"gt", domain.EqualityFilter("locale", domain.OpGt, "en"), `"test"."locale" > ?`, []interface{}{"en"}},
		{"lt", domain.EqualityFilter("locale", domain.OpLt, "en"), `"test"."locale" < ?`, []interface{}{"en"}},
		{"gte", domain.EqualityFilter("locale", domain.OpGte, "en"), `"test"."locale" >= ?`, []interface{}{"en"}},
		{"lte", domain.EqualityFilter("locale", domain.OpLte, "en"), `"test"."locale" <= ?`, []interface{}{"en"}},
		{"in", domain.ContainsFilter("locale", "en", "de"), `"test"."locale" IN (?,?)`, []interface{}{"en", "de"}},
		{"like", domain.WildcardFilter("locale", "e%"), `"test"."locale" LIKE ?`, []interface{}{"e%"}},
		{"numeric range", domain.RangeFilter("clicks", 25, 100), `MOD("test"."clicks"+0,1) BETWEEN ? AND ?`, []interface{}{25, 100}},
		{"date range", domain.RangeFilter("date", "2000-01-01", "2000-03-01"), `ROUND("test"."dt",'DD') BETWEEN ? AND ?`, []interface{}{"2000-01-01", "2000-03-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := svc.QuerySchema(domain.SliceRequest{
				Metrics:          []string{"foo"},
				Dimensions:       []domain.DimensionSelection{domain.Select("locale")},
				DimensionFilters: []domain.Filter{tt.filter},
			})
			require.NoError(t, err)
			require.Len(t, qs.DimensionFilters, 1)

			sql, args := predicateSQL(t, qs.DimensionFilters[0])
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQuerySchemaDimensionFilterUsesSelectedModifier(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:          []string{"foo"},
		Dimensions:       []domain.DimensionSelection{domain.ByInterval("date", sqlexpr.IntervalWeek)},
		DimensionFilters: []domain.Filter{domain.EqualityFilter("date", domain.OpEq, "2000-01-01")},
	})
	require.NoError(t, err)
	require.Len(t, qs.DimensionFilters, 1)

	sql, _ := predicateSQL(t, qs.DimensionFilters[0])
	assert.Equal(t, `ROUND("test"."dt",'WW') = ?`, sql)
}

func TestQuerySchemaDimensionFilterOnUniqueDimension(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:          []string{"foo"},
		DimensionFilters: []domain.Filter{domain.EqualityFilter("account", domain.OpEq, 42)},
	})
	require.NoError(t, err)
	require.Len(t, qs.DimensionFilters, 1)

	sql, args := predicateSQL(t, qs.DimensionFilters[0])
	assert.Equal(t, `"test"."account_id" = ?`, sql)
	assert.Equal(t, []interface{}{42}, args)
}

func TestQuerySchemaMetricFilters(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		filter  domain.Filter
		wantSQL string
	}{
		{"eq", domain.EqualityFilter("foo", domain.OpEq, 100), `SUM("test"."foo") = ?`},
		{"ne", domain.EqualityFilter("foo", domain.OpNe, 100), `SUM("test"."foo") <> ?`},
		{"gt", domain.EqualityFilter("foo", domain.OpGt, 100), `SUM("test"."foo") > ?`},
		{"lt", domain.EqualityFilter("foo", domain.OpLt, 100), `SUM("test"."foo") < ?`},
		{"gte", domain.EqualityFilter("foo", domain.OpGte, 100), `SUM("test"."foo") >= ?`},
		{"lte", domain.EqualityFilter("foo", domain.OpLte, 100), `SUM("test"."foo") <= ?`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := svc.QuerySchema(domain.SliceRequest{
				Metrics:       []string{"foo"},
				Dimensions:    []domain.DimensionSelection{domain.Select("locale")},
				MetricFilters: []domain.Filter{tt.filter},
			})
			require.NoError(t, err)
			require.Len(t, qs.MetricFilters, 1)

			sql, args := predicateSQL(t, qs.MetricFilters[0])
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, []interface{}{100}, args)
		})
	}
}

func TestQuerySchemaUnknownNames(t *testing.T) {
	svc := newTestService(t)

	var unknown *domain.UnknownNameError

	_, err := svc.QuerySchema(domain.SliceRequest{Metrics: []string{"blahblahblah"}})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("blahblahblah")},
	})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:          []string{"foo"},
		DimensionFilters: []domain.Filter{domain.EqualityFilter("blahblahblah", domain.OpEq, 0)},
	})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:       []string{"foo"},
		MetricFilters: []domain.Filter{domain.EqualityFilter("blahblahblah", domain.OpEq, 0)},
	})
	require.ErrorAs(t, err, &unknown)
}

func TestQuerySchemaNamespaceMismatches(t *testing.T) {
	svc := newTestService(t)

	var mismatch *domain.NamespaceMismatchError

	_, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:          []string{"foo"},
		Dimensions:       []domain.DimensionSelection{domain.Select("locale")},
		DimensionFilters: []domain.Filter{domain.EqualityFilter("foo", domain.OpGt, 100)},
	})
	require.ErrorAs(t, err, &mismatch)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:       []string{"foo"},
		Dimensions:    []domain.DimensionSelection{domain.Select("locale")},
		MetricFilters: []domain.Filter{domain.EqualityFilter("locale", domain.OpEq, "US")},
	})
	require.ErrorAs(t, err, &mismatch)
}

func TestQuerySchemaReferences(t *testing.T) {
	svc := newTestService(t)

	refs := []domain.Reference{
		domain.WoW("date"), domain.WoW("date").Delta(), domain.WoW("date").Percent(),
		domain.MoM("date"), domain.MoM("date").Delta(), domain.MoM("date").Percent(),
		domain.QoQ("date"), domain.QoQ("date").Delta(), domain.QoQ("date").Percent(),
		domain.YoY("date"), domain.YoY("date").Delta(), domain.YoY("date").Percent(),
	}
	for _, ref := range refs {
		t.Run(ref.Key(), func(t *testing.T) {
			qs, err := svc.QuerySchema(domain.SliceRequest{
				Metrics:    []string{"foo"},
				Dimensions: []domain.DimensionSelection{domain.Select("date")},
				References: []domain.Reference{ref},
			})
			require.NoError(t, err)

			assert.Equal(t, `ROUND("test"."dt",'DD')`, columnSQL(t, qs.Dimensions, "date"))
			assert.Equal(t, []domain.ReferencePair{{Key: ref.Key(), Dimension: "date"}}, qs.References)
		})
	}
}

func TestQuerySchemaReferenceRequiresSelectedDateDimension(t *testing.T) {
	svc := newTestService(t)

	var mismatch *domain.NamespaceMismatchError
	var unknown *domain.UnknownNameError

	// Registered but not selected.
	_, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		References: []domain.Reference{domain.WoW("date")},
	})
	require.ErrorAs(t, err, &mismatch)

	// Selected but not a date dimension.
	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("locale")},
		References: []domain.Reference{domain.WoW("locale")},
	})
	require.ErrorAs(t, err, &mismatch)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("date")},
		References: []domain.Reference{domain.WoW("blahblahblah")},
	})
	require.ErrorAs(t, err, &unknown)
}

func TestQuerySchemaRollup(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics: []string{"foo"},
		Dimensions: []domain.DimensionSelection{
			domain.Select("date"), domain.Select("locale"), domain.Select("account"),
		},
		Operations: []domain.Operation{domain.Rollup("locale", "account")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"locale", "account_id0"}, qs.RollupDimensions)
}

func TestQuerySchemaRollupRequiresSelectedDimensions(t *testing.T) {
	svc := newTestService(t)

	var unknown *domain.UnknownNameError

	_, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("date")},
		Operations: []domain.Operation{domain.Rollup("blahblahblah")},
	})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("date")},
		Operations: []domain.Operation{domain.Rollup("locale")},
	})
	require.ErrorAs(t, err, &unknown)
}

func TestQuerySchemaMetricWithJoin(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{Metrics: []string{"piddle"}})
	require.NoError(t, err)

	require.Len(t, qs.Joins, 1)
	assert.Equal(t, "join1", qs.Joins[0].Key)
	assert.Equal(t, "test_join_table", qs.Joins[0].Table.Name)

	on, err := sqlexpr.SQL(qs.Joins[0].On)
	require.NoError(t, err)
	assert.Equal(t, `"test"."join_id"="join"."id"`, on)

	assert.Equal(t, `SUM("join"."piddle")`, columnSQL(t, qs.Metrics, "piddle"))
}

func TestQuerySchemaMetricWithComplexJoin(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{Metrics: []string{"paddle"}})
	require.NoError(t, err)

	require.Len(t, qs.Joins, 1)
	assert.Equal(t, `SUM("join"."paddle"+"test"."foo")`, columnSQL(t, qs.Metrics, "paddle"))
}

func TestQuerySchemaDimensionWithJoin(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("blah")},
	})
	require.NoError(t, err)

	require.Len(t, qs.Joins, 1)
	assert.Equal(t, `"join"."blah"`, columnSQL(t, qs.Dimensions, "blah"))
}

func TestQuerySchemaJoinsDeduplicate(t *testing.T) {
	svc := newTestService(t)

	qs, err := svc.QuerySchema(domain.SliceRequest{
		Metrics:    []string{"piddle", "paddle"},
		Dimensions: []domain.DimensionSelection{domain.Select("blah")},
	})
	require.NoError(t, err)

	require.Len(t, qs.Joins, 1)
	assert.Equal(t, "join1", qs.Joins[0].Key)
}

func TestQuerySchemaUnregisteredJoinKey(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")

	orphan := domain.NewCategoricalDimension("orphan", table.C("orphan"))
	orphan.Joins = []string{"missing"}

	reg, err := domain.NewRegistryBuilder("test", table).
		Metric(domain.Metric{Name: "foo", Joins: []string{"missing"}}).
		Dimension(orphan).
		Build()
	require.NoError(t, err)
	svc := NewService(reg)

	var unknown *domain.UnknownNameError

	_, err = svc.QuerySchema(domain.SliceRequest{Metrics: []string{"foo"}})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.QuerySchema(domain.SliceRequest{
		Dimensions: []domain.DimensionSelection{domain.Select("orphan")},
	})
	require.ErrorAs(t, err, &unknown)
}

func TestDisplaySchemaMetricsOnly(t *testing.T) {
	svc := newTestService(t)

	ds, err := svc.DisplaySchema(domain.SliceRequest{Metrics: []string{"foo"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"foo": "Foo"}, ds.Metrics)
	assert.Empty(t, ds.Dimensions)
	assert.Empty(t, ds.References)
	assert.NotNil(t, ds.Dimensions)
	assert.NotNil(t, ds.References)
}

func TestDisplaySchemaCustomMetricLabel(t *testing.T) {
	svc := newTestService(t)

	ds, err := svc.DisplaySchema(domain.SliceRequest{Metrics: []string{"bar"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"bar": "FizBuz"}, ds.Metrics)
}

func TestDisplaySchemaDimensions(t *testing.T) {
	svc := newTestService(t)

	ds, err := svc.DisplaySchema(domain.SliceRequest{
		Metrics: []string{"foo", "bar"},
		Dimensions: []domain.DimensionSelection{
			domain.ByInterval("date", sqlexpr.IntervalMonth),
			domain.ByBin("clicks", 50, 100),
			domain.Select("locale"),
			domain.Select("account"),
			domain.Select("keyword"),
			domain.Select("blah"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"foo": "Foo", "bar": "FizBuz"}, ds.Metrics)
	assert.Equal(t, []domain.DimensionDisplay{
		{Label: "Date", IDFields: []string{"date"}},
		{Label: "Clicks CUSTOM LABEL", IDFields: []string{"clicks"}},
		{Label: "Locale", IDFields: []string{"locale"}, LabelOptions: []domain.DimensionValue{
			{Value: "us", Label: "United States"},
			{Value: "de", Label: "Germany"},
		}},
		{Label: "Account", IDFields: []string{"account_id0"}, LabelField: "account_label"},
		{Label: "Keyword", IDFields: []string{"keyword_id0", "keyword_id1", "keyword_id2", "keyword_id3"}, LabelField: "keyword_label"},
		{Label: "Blah", IDFields: []string{"blah"}},
	}, ds.Dimensions)

	// Categorical without options carries no label_options.
	assert.Empty(t, ds.Dimensions[5].LabelOptions)
}

func TestDisplaySchemaReferences(t *testing.T) {
	svc := newTestService(t)

	ds, err := svc.DisplaySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("date")},
		References: []domain.Reference{domain.WoW("date"), domain.YoY("date").Percent()},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"wow", "yoy_p"}, ds.References)
}

func TestDisplaySchemaUnknownNames(t *testing.T) {
	svc := newTestService(t)

	var unknown *domain.UnknownNameError

	_, err := svc.DisplaySchema(domain.SliceRequest{Metrics: []string{"blahblahblah"}})
	require.ErrorAs(t, err, &unknown)

	_, err = svc.DisplaySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.Select("blahblahblah")},
	})
	require.ErrorAs(t, err, &unknown)
}

func TestQuerySchemaDuckDBDialect(t *testing.T) {
	table := sqlexpr.NewTable("test_table", "test")
	reg, err := domain.NewRegistryBuilder("test", table).
		Dialect(sqlexpr.DuckDBDialect{}).
		Metric(domain.Metric{Name: "foo"}).
		Dimension(domain.NewDateDimension("date", table.C("dt"))).
		Build()
	require.NoError(t, err)

	qs, err := NewService(reg).QuerySchema(domain.SliceRequest{
		Metrics:    []string{"foo"},
		Dimensions: []domain.DimensionSelection{domain.ByInterval("date", sqlexpr.IntervalMonth)},
	})
	require.NoError(t, err)

	assert.Equal(t, `DATE_TRUNC('month',"test"."dt")`, columnSQL(t, qs.Dimensions, "date"))
}
