// Package importer turns uploaded roster files into row maps and
// resolves which columns carry attendee data.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrNoRows = errors.New("file has no data rows")

// Row maps a header label to the cell value under it. Missing cells
// default to the empty string.
type Row map[string]string

// Parse reads a CSV, XLS or XLSX file (picked by filename extension)
// into the header labels and one Row per data row.
func Parse(filename string, data []byte) ([]string, []Row, error) {
	var records [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		records, err = readXLSX(data)
	case ".xls":
		records, err = readXLS(data)
	default:
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return nil, nil, ErrNoRows
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	// Spreadsheet exports often prepend a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return records, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("invalid XLS: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("invalid XLS: no sheets")
	}

	var records [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		var rec []string
		for j := 0; j <= row.LastCol(); j++ {
			rec = append(rec, row.Col(j))
		}
		records = append(records, rec)
	}
	return records, nil
}
