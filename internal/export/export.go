// Package export writes fetched feed data to .xlsx workbooks.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

const (
	defaultSheetName = "Sheet1"
	maxSheetNameLen  = 31
)

// SaveCells writes cells to the first sheet of a new workbook at path. Cell
// positions are kept as-is so the grid lines up with the source worksheet.
func SaveCells(path, sheetName string, cells *sheetfeed.Cells) error {
	f, sheet, err := newWorkbook(sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	if cells != nil {
		for row, cols := range cells.Cells {
			for col, cell := range cols {
				if err := setValue(f, sheet, col, row, cell.Value); err != nil {
					return err
				}
			}
		}
	}

	return save(f, path)
}

// SaveRows writes rows under a header line of their column names. The union
// of columns is used; the id field is left out.
func SaveRows(path, sheetName string, rows []sheetfeed.Row) error {
	f, sheet, err := newWorkbook(sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	columns := rowColumns(rows)
	for i, name := range columns {
		if err := setValue(f, sheet, i+1, 1, name); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for i, name := range columns {
			value, ok := row.Lookup(name)
			if !ok {
				continue
			}
			if err := setValue(f, sheet, i+1, r+2, value); err != nil {
				return err
			}
		}
	}

	return save(f, path)
}

func newWorkbook(sheetName string) (*excelize.File, string, error) {
	f := excelize.NewFile()
	name := SheetName(sheetName)
	if name != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, name); err != nil {
			_ = f.Close()
			return nil, "", fmt.Errorf("rename sheet: %w", err)
		}
	}
	return f, name, nil
}

func setValue(f *excelize.File, sheet string, col, row int, value string) error {
	if value == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, parseValue(value)); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}

func save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// SheetName turns a worksheet title into a valid workbook sheet name.
func SheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	name = strings.Trim(name, "'")
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	if name == "" {
		return defaultSheetName
	}
	return name
}

func rowColumns(rows []sheetfeed.Row) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range rows {
		for _, name := range row.Columns() {
			if name == "id" || seen[name] {
				continue
			}
			seen[name] = true
			columns = append(columns, name)
		}
	}
	return columns
}

// parseValue returns int64 for integers, float64 for decimals, or the
// original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
