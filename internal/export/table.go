package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/san-kum/mechcalc/internal/mech"
)

// Table is a header row plus numeric rows. NaN marks an empty cell.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// SeriesTable joins series into one table. Series sharing an X grid get a
// single X column followed by one column per series; otherwise every series
// contributes its own X and Y columns, and shorter series leave their cells
// empty past their last point.
func SeriesTable(series []mech.Series) (Table, error) {
	if len(series) == 0 {
		return Table{}, fmt.Errorf("no data to export")
	}
	base := series[0]
	shared := true
	rows := 0
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return Table{}, fmt.Errorf("series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if !slices.Equal(s.X, base.X) {
			shared = false
		}
		rows = max(rows, s.Len())
	}

	var t Table
	if shared {
		t.Columns = []string{base.XLabel}
		for _, s := range series {
			t.Columns = append(t.Columns, s.YLabel)
		}
	} else {
		for _, s := range series {
			t.Columns = append(t.Columns, s.Name+" "+s.XLabel, s.Name+" "+s.YLabel)
		}
	}

	t.Rows = make([][]float64, rows)
	for i := range t.Rows {
		row := make([]float64, 0, len(t.Columns))
		if shared {
			row = append(row, base.X[i])
		}
		for _, s := range series {
			switch {
			case i >= s.Len():
				row = append(row, math.NaN(), math.NaN())
			case shared:
				row = append(row, s.Y[i])
			default:
				row = append(row, s.X[i], s.Y[i])
			}
		}
		t.Rows[i] = row
	}
	return t, nil
}

func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			if !math.IsNaN(v) {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type seriesData struct {
	Name   string    `json:"name"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// Document is the JSON layout for exported series.
type Document struct {
	Title  string       `json:"title"`
	Series []seriesData `json:"series"`
}

func NewDocument(title string, series []mech.Series) Document {
	doc := Document{Title: title, Series: make([]seriesData, len(series))}
	for i, s := range series {
		doc.Series[i] = seriesData{Name: s.Name, XLabel: s.XLabel, YLabel: s.YLabel, X: s.X, Y: s.Y}
	}
	return doc
}

// WriteJSON encodes v with two-space indentation.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
