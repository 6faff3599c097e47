package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Workbook is a single-sheet xlsx file holding header-keyed rows. Readers and
// writers always operate on the whole sheet; there are no partial updates.
type Workbook struct {
	path    string
	headers []string
}

func NewWorkbook(path string, headers []string) *Workbook {
	return &Workbook{path: path, headers: headers}
}

func (w *Workbook) Path() string {
	return w.path
}

// ReadAll returns every data row as a header-keyed map. A missing file is
// created empty rather than treated as an error.
func (w *Workbook) ReadAll() ([]map[string]string, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		if err := w.WriteAll(nil); err != nil {
			return nil, err
		}
		return []map[string]string{}, nil
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", w.path, err)
	}
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteAll replaces the whole sheet with the header row followed by the given
// records, in the workbook's declared header order.
func (w *Workbook) WriteAll(records []map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create workbook dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerCells := make([]any, len(w.headers))
	for i, h := range w.headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return err
	}

	for i, record := range records {
		cells := make([]any, len(w.headers))
		for j, h := range w.headers {
			cells[j] = record[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("write workbook %s: %w", w.path, err)
	}
	return nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
