package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func printSpreadsheet(w io.Writer, sheet *sheetfeed.Spreadsheet) error {
	_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Title:"), sheet.Title)
	if sheet.Author.Name != "" || sheet.Author.Email != "" {
		_, _ = fmt.Fprintf(w, "%s %s <%s>\n", labelStyle.Render("Author:"), sheet.Author.Name, sheet.Author.Email)
	}
	if !sheet.Updated.IsZero() {
		_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Updated:"), sheet.Updated.Format("2006-01-02 15:04:05 MST"))
	}

	t := newTable("ID", "Title", "Rows", "Cols")
	for _, ws := range sheet.Worksheets {
		t.Row(ws.ID, ws.Title, strconv.Itoa(ws.RowCount), strconv.Itoa(ws.ColCount))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func printRows(w io.Writer, rows []sheetfeed.Row) error {
	var columns []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, name := range row.Columns() {
			if name == "id" || seen[name] {
				continue
			}
			seen[name] = true
			columns = append(columns, name)
		}
	}
	if len(columns) == 0 {
		_, err := fmt.Fprintln(w, "no rows")
		return err
	}

	t := newTable(columns...)
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, name := range columns {
			values[i] = row.Value(name)
		}
		t.Row(values...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func printCells(w io.Writer, cells *sheetfeed.Cells) error {
	list := cells.List()
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no cells")
		return err
	}

	t := newTable("Cell", "Value", "Input")
	for _, cell := range list {
		t.Row(cellName(cell), cell.Value, cell.InputValue)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
