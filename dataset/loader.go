package dataset

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/samber/lo"
)

// isoDate is the canonical date layout used inside tables.
const isoDate = "2006-01-02"

// dateLayouts are tried in order when parsing the raw Date column. The MTA
// export uses MM/DD/YYYY.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	isoDate,
}

// Load reads the ridership CSV at path. Missing file or an unparseable date
// column is a fatal load error; malformed numeric cells become NaN.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ridership csv: %w", err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read ridership csv %s: %w", path, err)
	}
	return t, nil
}

// Read parses ridership CSV data from r. Every column except Date is typed
// float so that malformed cells surface as missing values.
func Read(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{DateColumn: series.String}),
		dataframe.NaNValues([]string{"", "NA", "N/A"}),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	return FromDataFrame(df)
}

// FromDataFrame builds a Table from a dataframe that carries a Date column.
// Rows are sorted by date and duplicate dates are rejected, so the resulting
// table is always strictly increasing in time.
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	if !hasColumn(df, DateColumn) {
		return nil, fmt.Errorf("missing %s column", DateColumn)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("empty ridership table")
	}

	raw := df.Col(DateColumn).Records()
	dates := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		dates[i] = d
	}

	order := make([]int, len(dates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dates[order[i]].Before(dates[order[j]])
	})

	sorted := make([]time.Time, len(dates))
	for i, idx := range order {
		sorted[i] = dates[idx]
	}
	for i := 1; i < len(sorted); i++ {
		if !sorted[i].After(sorted[i-1]) {
			return nil, fmt.Errorf("duplicate date %s", sorted[i].Format(isoDate))
		}
	}

	df = df.Subset(order)
	if df.Err != nil {
		return nil, df.Err
	}
	labels := lo.Map(sorted, func(d time.Time, _ int) string {
		return d.Format(isoDate)
	})
	df = df.Mutate(series.New(labels, series.String, DateColumn))
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df, dates: sorted}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
