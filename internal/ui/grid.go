package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

const (
	minColumnWidth = 4
	maxColumnWidth = 32
)

// worksheetTable lists the worksheets of a spreadsheet.
func worksheetTable(sheet *sheetfeed.Spreadsheet) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: 30},
		{Title: "Rows", Width: 6},
		{Title: "Cols", Width: 6},
	}
	if sheet == nil {
		return cols, nil
	}
	rows := make([]table.Row, 0, len(sheet.Worksheets))
	for _, ws := range sheet.Worksheets {
		rows = append(rows, table.Row{
			ws.ID,
			ws.Title,
			strconv.Itoa(ws.RowCount),
			strconv.Itoa(ws.ColCount),
		})
	}
	return cols, fitColumns(cols, rows)
}

// cellTable lays cells out on a grid with spreadsheet-style column letters.
// Row numbers fill the first column.
func cellTable(cells *sheetfeed.Cells) ([]table.Column, []table.Row) {
	maxRow, maxCol := 0, 0
	if cells != nil {
		maxRow, maxCol = cells.Bounds()
	}

	cols := make([]table.Column, 0, maxCol+1)
	cols = append(cols, table.Column{Title: "#", Width: len(strconv.Itoa(maxRow)) + 1})
	for c := 1; c <= maxCol; c++ {
		cols = append(cols, table.Column{Title: columnLetter(c)})
	}

	rows := make([]table.Row, 0, maxRow)
	for r := 1; r <= maxRow; r++ {
		row := make(table.Row, maxCol+1)
		row[0] = strconv.Itoa(r)
		for c := 1; c <= maxCol; c++ {
			if cell, ok := cells.Get(r, c); ok {
				row[c] = flatten(cell.Value)
			}
		}
		rows = append(rows, row)
	}
	return cols, fitColumns(cols, rows)
}

// rowTable shows list-feed rows with the union of their keys as columns.
func rowTable(rows []sheetfeed.Row) ([]table.Column, []table.Row) {
	var names []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, name := range row.Columns() {
			if name == "id" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	cols := make([]table.Column, 0, len(names))
	for _, name := range names {
		cols = append(cols, table.Column{Title: name})
	}

	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		values := make(table.Row, len(names))
		for i, name := range names {
			values[i] = flatten(row.Value(name))
		}
		out = append(out, values)
	}
	return cols, fitColumns(cols, out)
}

// fitColumns sizes each column to its widest value within bounds. Columns
// given an explicit width keep at least that width.
func fitColumns(cols []table.Column, rows []table.Row) []table.Row {
	for i := range cols {
		width := max(cols[i].Width, lipgloss.Width(cols[i].Title), minColumnWidth)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}
		cols[i].Width = min(width, maxColumnWidth)
	}
	return rows
}

// columnLetter converts a 1-based column index to A, B, ..., Z, AA, AB, ...
func columnLetter(col int) string {
	if col <= 0 {
		return ""
	}
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}

func flatten(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
