package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM makes spreadsheet software detect the encoding of accented text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a semicolon separated file: BOM, a "sep=;" hint line for
// spreadsheet software, the header row and then rows.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write csv bom: %w", err)
	}
	if _, err := io.WriteString(w, "sep=;\n"); err != nil {
		return fmt.Errorf("write csv separator hint: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
