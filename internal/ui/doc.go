// Package ui provides a terminal browser for spreadsheet feeds.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program built around a single bubbles table. It is
// read-only: it opens one spreadsheet, lists its worksheets and drills into
// the cell grid or the row list of the selected worksheet.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and the Run function
//   - fetch.go: Commands that call the feed and the messages they return
//   - grid.go: Conversion of worksheets, cells and rows into table columns/rows
//   - view.go: Header, summary line, table panel and help footer rendering
//   - keys.go: Key bindings shared by the help view and key handling
//   - theme.go: Color palettes and Lipgloss styles
//
// # View Types
//
//   - Worksheets: ID, title and dimensions of each worksheet
//   - Cells: the cells feed laid out on a grid with A, B, C column headers
//   - Rows: the list feed, one column per field name
//
// # Data Flow
//
// Fetches run as tea.Cmd functions against a sheetfeed.Fetcher so the
// program never blocks on the network. Results carry the worksheet they
// belong to; a result for a worksheet that is no longer open is dropped.
// Going back with Esc abandons a fetch in flight.
//
// # Preferences
//
// Cycling the theme with T and opening a spreadsheet both write prefs.toml so
// the next session starts with the same theme and key. Opened keys also join
// the recent history listed by `sheetfeed recent`.
package ui
