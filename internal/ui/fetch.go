package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

// Messages

type spreadsheetMsg struct {
	sheet *sheetfeed.Spreadsheet
	err   error
}

type cellsMsg struct {
	worksheetID string
	cells       *sheetfeed.Cells
	err         error
}

type rowsMsg struct {
	worksheetID string
	rows        []sheetfeed.Row
	err         error
}

// Commands

// loadSpreadsheet fetches the worksheet list for the configured key.
func (m *Model) loadSpreadsheet() tea.Cmd {
	if m.fetcher == nil || m.key == "" {
		return func() tea.Msg { return spreadsheetMsg{err: errNoKey} }
	}
	m.loading = true
	ctx, fetcher := m.ctx, m.fetcher
	opts := &sheetfeed.SpreadsheetOptions{Key: m.key, Credential: m.cred}

	return func() tea.Msg {
		sheet, err := fetcher.GetSpreadsheet(ctx, opts)
		return spreadsheetMsg{sheet: sheet, err: err}
	}
}

// loadWorksheet fetches the cells or rows of the open worksheet.
func (m *Model) loadWorksheet() tea.Cmd {
	if m.fetcher == nil || m.spreadsheet == nil || m.worksheet == nil {
		return nil
	}
	m.loading = true
	ctx, fetcher := m.ctx, m.fetcher
	key, cred, id := m.spreadsheet.Key, m.spreadsheet.Credential, m.worksheet.ID

	if m.currentView == ViewRows {
		opts := &sheetfeed.RowOptions{Key: key, Worksheet: id, Credential: cred}
		return func() tea.Msg {
			rows, err := fetcher.GetRows(ctx, opts)
			return rowsMsg{worksheetID: id, rows: rows, err: err}
		}
	}

	opts := &sheetfeed.CellOptions{Key: key, Worksheet: id, Credential: cred}
	return func() tea.Msg {
		cells, err := fetcher.GetCells(ctx, opts)
		return cellsMsg{worksheetID: id, cells: cells, err: err}
	}
}
