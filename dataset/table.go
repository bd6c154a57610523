package dataset

import (
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/samber/lo"
)

// DateColumn is the name of the date column in raw and normalized tables.
const DateColumn = "Date"

// PrePandemicSuffix marks the comparison percentage columns of each mode.
const PrePandemicSuffix = ": % of Pre-Pandemic"

// Table is an immutable date-keyed ridership table. The date column is kept
// in YYYY-MM-DD form inside the dataframe; the parsed dates are carried
// alongside so downstream steps never re-parse them.
type Table struct {
	df    dataframe.DataFrame
	dates []time.Time
}

// DF returns the underlying dataframe.
func (t *Table) DF() dataframe.DataFrame { return t.df }

// Dates returns the parsed date of each row, strictly increasing.
func (t *Table) Dates() []time.Time { return t.dates }

// Nrow returns the number of rows.
func (t *Table) Nrow() int { return t.df.Nrow() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.df.Names() }

// Col returns the named column.
func (t *Table) Col(name string) series.Series { return t.df.Col(name) }

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	return hasColumn(t.df, name)
}

// NumericColumns returns the names of the float-typed columns, in order.
func (t *Table) NumericColumns() []string {
	names := t.df.Names()
	types := t.df.Types()
	var out []string
	for i, name := range names {
		if types[i] == series.Float {
			out = append(out, name)
		}
	}
	return out
}

// ServiceColumns returns the ridership count columns: every column that is
// neither the date nor a pre-pandemic comparison percentage.
func (t *Table) ServiceColumns() []string {
	return lo.Filter(t.df.Names(), func(name string, _ int) bool {
		return name != DateColumn && !strings.HasSuffix(name, PrePandemicSuffix)
	})
}

// PercentColumns returns the pre-pandemic comparison percentage columns.
func (t *Table) PercentColumns() []string {
	return lo.Filter(t.df.Names(), func(name string, _ int) bool {
		return strings.HasSuffix(name, PrePandemicSuffix)
	})
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
