package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/mechcalc/internal/mech"
)

// Formats lists the file extensions accepted by [Save].
var Formats = []string{".csv", ".json", ".xlsx", ".png", ".svg", ".pdf"}

// Save writes series to path, choosing the format from its extension. The
// output is rendered in memory first, so on error any existing file at path
// is left as it was.
func Save(path, title string, series []mech.Series, opts ChartOptions) error {
	ext := strings.ToLower(filepath.Ext(path))

	var buf bytes.Buffer
	var err error
	switch ext {
	case ".json":
		err = WriteJSON(&buf, NewDocument(title, series))
	case ".png", ".svg", ".pdf":
		if opts.Title == "" {
			opts.Title = title
		}
		err = WriteChart(&buf, ext[1:], series, opts)
	case ".csv", ".xlsx":
		var t Table
		if t, err = SeriesTable(series); err != nil {
			break
		}
		if ext == ".csv" {
			err = WriteCSV(&buf, t)
		} else {
			err = WriteXLSX(&buf, sheetName(title), t)
		}
	default:
		return fmt.Errorf("unsupported output format %q (want one of %s)", ext, strings.Join(Formats, ", "))
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// sheetName trims title to a valid worksheet name.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, title)
	if name == "" {
		return "Data"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
