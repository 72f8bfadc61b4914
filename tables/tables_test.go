package tables

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/fintab/logging"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/period"
)

func q(year, n int) period.Period {
	p, _ := period.Quarter(year, n)
	return p
}

func lines(s ...string) string {
	return strings.Join(s, "\n")
}

func TestDetectHeader(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantLine int
		want     []period.Period
	}{
		{
			name:     "quarters",
			lines:    []string{"ACME Corp", "Q1 2023 Q2 2023 Q3 2023", "Revenue 1 2 3"},
			wantLine: 1,
			want:     []period.Period{q(2023, 1), q(2023, 2), q(2023, 3)},
		},
		{
			name:     "half year misread as hash",
			lines:    []string{"#1 2023 #2 2023"},
			wantLine: 0,
			want:     []period.Period{q(2023, 2), q(2023, 4)},
		},
		{
			name:     "years",
			lines:    []string{"Fiscal year 2022 2023"},
			wantLine: 0,
			want:     []period.Period{period.Year(2022), period.Year(2023)},
		},
		{
			name:     "single period is not a header",
			lines:    []string{"Report for Q1 2023", "Revenue 1 2"},
			wantLine: -1,
		},
		{
			name:     "first qualifying line wins",
			lines:    []string{"2021 2022", "Q1 2023 Q2 2023"},
			wantLine: 0,
			want:     []period.Period{period.Year(2021), period.Year(2022)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := DetectHeader(tt.lines)
			assert.Equal(t, tt.wantLine, h.Line)
			assert.Equal(t, tt.wantLine >= 0, h.Found())
			assert.Equal(t, tt.want, h.Periods())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.MinRowTokens = 1
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.MinHeaderPeriods = 0
	assert.Error(t, c.Validate())

	a := NewAssembler()
	assert.Error(t, a.Configure(c))
	assert.Equal(t, DefaultConfig().MinHeaderPeriods, a.Config().MinHeaderPeriods)
}

func TestAssembleWithHeader(t *testing.T) {
	text := lines(
		"Consolidated statement",
		"Q1 2023 Q2 2023 Q3 2023",
		"Revenue $1,000 $1,100 $1,200",
		"Cost of sales (400) (450) (500)",
		"Basic 0.10 0.11 0.12",
		"Net Income 600 650 700",
	)

	table, warnings := NewAssembler().Assemble("doc", text)
	assert.Empty(t, warnings)
	require.Equal(t, 3, table.ColCount())
	require.True(t, table.Sortable())
	assert.Equal(t, []period.Period{q(2023, 1), q(2023, 2), q(2023, 3)}, table.Periods())

	require.Equal(t, 3, table.RowCount())
	assert.Equal(t, "Revenue", table.Rows[0].Description)
	assert.Equal(t, []string{"1000", "1100", "1200"}, table.Rows[0].Values)
	assert.Equal(t, []string{"-400", "-450", "-500"}, table.Rows[1].Values)
	assert.Equal(t, "Net Income", table.Rows[2].Description)
}

func TestAssembleModeFilter(t *testing.T) {
	text := lines(
		"Q1 2023 Q2 2023 Q3 2023",
		"A 1 2 3",
		"B 4 5 6",
		"C 7 8 9",
		"D 10 11",
	)

	table, warnings := NewAssembler().Assemble("doc", text)
	assert.Empty(t, warnings)
	require.Equal(t, 3, table.RowCount())
	for _, r := range table.Rows {
		assert.NotEqual(t, "D", r.Description)
		assert.Len(t, r.Values, 3)
	}
}

func TestAssembleHeaderMismatch(t *testing.T) {
	text := lines(
		"Q1 2023 Q2 2023",
		"Revenue 1 2 3",
		"Cost 4 5 6",
	)

	table, warnings := NewAssembler().Assemble("doc", text)
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnHeaderMismatch, warnings[0].Code)
	assert.Equal(t, "doc", warnings[0].Document)
	assert.Contains(t, warnings[0].Message, "found 2 headers but data has 3 columns")

	assert.False(t, table.Sortable())
	assert.Equal(t, []string{"Description", "Value 1", "Value 2", "Value 3"}, table.Header())
	assert.Equal(t, 2, table.RowCount())
}

func TestAssembleNoHeader(t *testing.T) {
	table, warnings := NewAssembler().Assemble("doc", lines("Revenue 1 2", "Cost 3 4"))
	assert.Empty(t, warnings)
	assert.False(t, table.Sortable())
	assert.Equal(t, []string{"Description", "Value 1", "Value 2"}, table.Header())
}

func TestAssembleNoRows(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose", "Nothing to see here\nat all"},
		{"single value", "Q1 2023 Q2 2023\nRevenue 100"},
		{"denylisted only", "Diluted 1 2\nof which: 3 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, warnings := NewAssembler().Assemble("doc", tt.text)
			assert.True(t, table.IsEmpty())
			require.Len(t, warnings, 1)
			assert.Equal(t, model.WarnNoRows, warnings[0].Code)
		})
	}
}

func TestAssembleKeepHeaderLine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludeHeaderLine = false
	a := NewAssembler()
	require.NoError(t, a.Configure(cfg))

	// "Periods Q1 2023 Q2 2023" yields four numeric tokens and becomes a row.
	text := lines("Periods Q1 2023 Q2 2023", "Revenue 1 2 3 4")
	table, _ := a.Assemble("doc", text)
	assert.Equal(t, 2, table.RowCount())
}

func TestAssembleKeepsBareYearRow(t *testing.T) {
	// the first line also reads as a header of two bare years
	table, warnings := NewAssembler().Assemble("doc", lines("Revenue 1234 5678", "Costs 100 200", "Tax 3 4"))
	assert.Empty(t, warnings)
	require.Equal(t, 3, table.RowCount())
	assert.Equal(t, "Revenue", table.Rows[0].Description)
	assert.Equal(t, []string{"1234", "5678"}, table.Rows[0].Values)
}

func TestHeaderMarked(t *testing.T) {
	assert.True(t, DetectHeader([]string{"Q1 2023 Q2 2023"}).Marked())
	assert.True(t, DetectHeader([]string{"#1 2023 H2 2023"}).Marked())
	assert.False(t, DetectHeader([]string{"Revenue 2022 2023"}).Marked())
	assert.False(t, DetectHeader([]string{"no periods"}).Marked())
}

func TestAssembleExtraDenylist(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Denylist = []string{"Memo:"}
	a := NewAssembler()
	require.NoError(t, a.Configure(cfg))

	table, _ := a.Assemble("doc", lines("Revenue 1 2", "memo: 3 4"))
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Revenue", table.Rows[0].Description)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\r\nb\nc\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

// ============================================================================
// Combine Tests
// ============================================================================

func periodTable(doc string, periods []period.Period, rows ...model.DataRow) *model.Table {
	t := model.NewTable(doc, model.PeriodColumns(periods))
	for _, r := range rows {
		_ = t.AddRow(r)
	}
	return t
}

func row(desc string, values ...string) model.DataRow {
	return model.DataRow{Description: desc, Values: values}
}

func TestCombineKeepFirst(t *testing.T) {
	a := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)}, row("Revenue", "100", "110"))
	b := periodTable("B", []period.Period{q(2023, 2), q(2023, 3)}, row("Revenue", "999", "120"))

	res := Combine([]*model.Table{a, b})
	require.NotNil(t, res.Sorted)
	assert.Equal(t, []period.Period{q(2023, 1), q(2023, 2), q(2023, 3)}, res.Sorted.Periods)

	v, ok := res.Sorted.Value("Revenue", q(2023, 2))
	require.True(t, ok)
	assert.Equal(t, "110", v)

	// reversing the order reverses the winner
	res = Combine([]*model.Table{b, a})
	v, _ = res.Sorted.Value("Revenue", q(2023, 2))
	assert.Equal(t, "999", v)
}

func TestCombinePrecedence(t *testing.T) {
	a := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)}, row("Revenue", "100", "110"))
	b := periodTable("B", []period.Period{q(2023, 2), q(2023, 3)}, row("Revenue", "999", "120"))

	res := Combine([]*model.Table{a, b}, "B")
	v, _ := res.Sorted.Value("Revenue", q(2023, 2))
	assert.Equal(t, "999", v)

	ordered := Order([]*model.Table{a, b}, []string{"missing", "B"})
	assert.Equal(t, "B", ordered[0].Document)
	assert.Equal(t, "A", ordered[1].Document)
}

func TestCombineDropsNonNumeric(t *testing.T) {
	a := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)},
		row("Revenue", "1.2.3", "110"),
		row("Junk", "1,", "."),
	)

	res := Combine([]*model.Table{a})
	_, ok := res.Sorted.Value("Revenue", q(2023, 1))
	assert.False(t, ok)
	v, ok := res.Sorted.Value("Revenue", q(2023, 2))
	assert.True(t, ok)
	assert.Equal(t, "110", v)
	assert.Equal(t, []string{"Revenue"}, res.Sorted.Descriptions())
}

func TestCombineDescriptionOrder(t *testing.T) {
	a := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)},
		row("Revenue", "1", "2"),
		row("Cost", "3", "4"),
	)
	b := periodTable("B", []period.Period{period.Year(2022), q(2022, 4)},
		row("Tax", "5", "6"),
		row("Revenue", "7", "8"),
	)

	res := Combine([]*model.Table{a, b})
	assert.Equal(t, []string{"Revenue", "Cost", "Tax"}, res.Sorted.Descriptions())
	assert.Equal(t, []period.Period{period.Year(2022), q(2022, 4), q(2023, 1), q(2023, 2)}, res.Sorted.Periods)

	_, ok := res.Sorted.Value("Cost", period.Year(2022))
	assert.False(t, ok)
}

func TestCombineUnsortable(t *testing.T) {
	sorted := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)}, row("Revenue", "1", "2"))
	generic := model.NewTable("B", model.GenericColumns(3))
	_ = generic.AddRow(row("Revenue", "5", "6", "7"))
	empty := model.NewTable("C", nil)

	res := Combine([]*model.Table{sorted, generic, empty})
	assert.Equal(t, 1, res.Sorted.RowCount())
	require.Len(t, res.Unsorted.Parts, 1)
	assert.Equal(t, "B", res.Unsorted.Parts[0].Document)
	assert.Equal(t, 3, res.Unsorted.Width())
}

func TestCombineEmpty(t *testing.T) {
	res := Combine(nil)
	assert.True(t, res.IsEmpty())
	assert.True(t, res.Sorted.IsEmpty())
	assert.True(t, res.Unsorted.IsEmpty())
}

func TestCombineIdempotent(t *testing.T) {
	a := periodTable("A", []period.Period{q(2023, 1), q(2023, 2)}, row("Revenue", "100", "110"))

	once := Combine([]*model.Table{a})
	twice := Combine([]*model.Table{a, a})
	assert.Equal(t, once.Sorted, twice.Sorted)
}

func TestEndToEnd(t *testing.T) {
	docA := lines("Q1 2023 Q2 2023", "Net Income 100 200")
	docB := lines("Q3 2023 Q4 2023", "Net Income 300 400")

	a := NewAssembler()
	ta, wa := a.Assemble("A", docA)
	tb, wb := a.Assemble("B", docB)
	assert.Empty(t, wa)
	assert.Empty(t, wb)

	res := Combine([]*model.Table{ta, tb})
	assert.True(t, res.Unsorted.IsEmpty())
	assert.Equal(t, []string{"Description", "2023Q1", "2023Q2", "2023Q3", "2023Q4"}, res.Sorted.Header())
	assert.Equal(t, [][]string{
		{"Net Income", "100", "200", "300", "400"},
	}, res.Sorted.Records())
}

func TestAssembleLogsMissingHeader(t *testing.T) {
	h := logging.NewBufferedHandler(slog.LevelDebug)
	logging.SetLogger(slog.New(h))
	t.Cleanup(func() { logging.SetLogger(nil) })

	_, warnings := NewAssembler().Assemble("doc", lines("Revenue 1 2", "Cost 3 4"))
	assert.Empty(t, warnings)
	assert.True(t, h.Contains("no header line"))

	var found bool
	for _, r := range h.Records() {
		if r.Message == "rows selected" {
			found = true
			assert.Equal(t, "doc", r.Attrs["document"])
			assert.Equal(t, "tables", r.Attrs["component"])
			assert.Equal(t, "2", r.Attrs["mode"])
		}
	}
	assert.True(t, found)
}
