package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	xls "github.com/extrame/xls"
	excelize "github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are not XLSX or XLS.
// The price-list page shows a download-only fallback when it sees this.
var ErrUnsupportedFormat = errors.New("fileio: unsupported spreadsheet format")

// PriceTable is the first sheet of a price list flattened for display:
// the first row becomes the headers, everything below becomes the rows.
type PriceTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ReadPriceTable parses the spreadsheet at path into a PriceTable,
// dispatching on the file extension.
func ReadPriceTable(path string) (*PriceTable, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case "xlsx":
		return ReadXLSX(f)
	case "xls":
		return ReadXLS(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadXLSX reads the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader) (*PriceTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wb, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return tableFromRows(rows), nil
}

// ReadXLS reads the first sheet of a legacy XLS workbook. Price lists exported
// from 1C are usually windows-1251, so that charset is tried first.
func ReadXLS(r io.Reader) (*PriceTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, charset := range []string{"windows-1251", "utf-8"} {
		wb, lastErr = xls.OpenReader(bytes.NewReader(b), charset)
		if lastErr == nil && wb != nil {
			break
		}
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("fileio: failed to open xls workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return tableFromRows(nil), nil
	}

	width := xlsWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, width)
		if row != nil {
			for j := 0; j < width; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return tableFromRows(rows), nil
}

// xlsWidth probes for the widest populated row. Row.LastCol is unreliable in
// this format, so every row is scanned up to a sane column cap.
func xlsWidth(sheet *xls.WorkSheet) int {
	const probeMax = 256
	width := 1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > width {
				width = j + 1
			}
		}
	}
	return width
}

func tableFromRows(rows [][]string) *PriceTable {
	// Skip fully empty leading rows so a decorative blank line does not
	// become the header row.
	for len(rows) > 0 && isEmptyRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return &PriceTable{Headers: []string{}, Rows: [][]string{}}
	}

	headers := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		// Pad short rows so every row renders against the full header set.
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		}
		body = append(body, row)
	}
	return &PriceTable{Headers: headers, Rows: body}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
