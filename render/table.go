package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Table stores parallel columns under a header; Sheet names the xlsx sheet.
type Table struct {
	Sheet   string
	Header  []string
	Columns [][]float64
}

// Entry is one key/value row of the summary sheet.
type Entry struct {
	Key   string
	Value any
}

func (t Table) rows() (int, error) {
	if len(t.Header) != len(t.Columns) {
		return 0, fmt.Errorf("table %q: %d headers for %d columns", t.Sheet, len(t.Header), len(t.Columns))
	}
	if len(t.Columns) == 0 {
		return 0, nil
	}
	n := len(t.Columns[0])
	for i, c := range t.Columns {
		if len(c) != n {
			return 0, fmt.Errorf("table %q: column %q has %d rows, want %d", t.Sheet, t.Header[i], len(c), n)
		}
	}
	return n, nil
}

func WriteCSV(w io.Writer, t Table) error {
	n, err := t.rows()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for i := 0; i < n; i++ {
		for j, c := range t.Columns {
			row[j] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// SaveXLSX writes a "Summary" sheet with the entries followed by one sheet
// per table.
func SaveXLSX(path string, summary []Entry, tables ...Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, e := range summary {
		if err := setRow(f, sheet, i+1, e.Key, e.Value); err != nil {
			return err
		}
	}

	for _, t := range tables {
		if t.Sheet == "" || t.Sheet == sheet {
			return errors.New("table sheet name is empty or reserved")
		}
		n, err := t.rows()
		if err != nil {
			return err
		}
		if _, err := f.NewSheet(t.Sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", t.Sheet, err)
		}

		header := make([]any, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := setRow(f, t.Sheet, 1, header...); err != nil {
			return err
		}
		row := make([]any, len(t.Columns))
		for i := 0; i < n; i++ {
			for j, c := range t.Columns {
				row[j] = c[i]
			}
			if err := setRow(f, t.Sheet, i+2, row...); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
