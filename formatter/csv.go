package formatter

import (
	"io"

	"github.com/go-gota/gota/dataframe"
)

// WriteCSV streams the table as CSV, header included.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	return df.WriteCSV(w)
}
