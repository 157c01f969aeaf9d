package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sheetfeed/internal/prefs"
	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

type fakeFetcher struct {
	sheet    *sheetfeed.Spreadsheet
	cells    *sheetfeed.Cells
	rows     []sheetfeed.Row
	sheetErr error

	cellOpts *sheetfeed.CellOptions
	rowOpts  *sheetfeed.RowOptions
}

func (f *fakeFetcher) GetSpreadsheet(_ context.Context, opts *sheetfeed.SpreadsheetOptions) (*sheetfeed.Spreadsheet, error) {
	if f.sheetErr != nil {
		return nil, f.sheetErr
	}
	return f.sheet, nil
}

func (f *fakeFetcher) GetRows(_ context.Context, opts *sheetfeed.RowOptions) ([]sheetfeed.Row, error) {
	f.rowOpts = opts
	return f.rows, nil
}

func (f *fakeFetcher) GetCells(_ context.Context, opts *sheetfeed.CellOptions) (*sheetfeed.Cells, error) {
	f.cellOpts = opts
	return f.cells, nil
}

func newFakeFetcher() *fakeFetcher {
	sheet := &sheetfeed.Spreadsheet{
		Key:        "abc123",
		Credential: sheetfeed.StaticToken("tok"),
		Title:      "Example Spreadsheet",
		Author:     sheetfeed.Author{Name: "sam.c.day"},
	}
	sheet.Worksheets = []*sheetfeed.Worksheet{
		{ID: "od6", Title: "Sheet1", RowCount: 100, ColCount: 20, Spreadsheet: sheet},
		{ID: "od7", Title: "Sheet2", RowCount: 5, ColCount: 3, Spreadsheet: sheet},
	}
	return &fakeFetcher{
		sheet: sheet,
		cells: &sheetfeed.Cells{Cells: map[int]map[int]sheetfeed.Cell{
			1: {1: {Row: 1, Col: 1, Value: "Hello,"}, 2: {Row: 1, Col: 2, Value: "World!"}},
		}},
		rows: []sheetfeed.Row{{"hello": strPtr("2")}, {"hello": strPtr("3")}},
	}
}

// step feeds msg through Update and runs the returned command once.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	var out tea.Msg
	if cmd != nil {
		out = cmd()
	}
	return next.(Model), out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startModel(t *testing.T, f *fakeFetcher) (Model, string) {
	t.Helper()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Fetcher: f, Key: "abc123", PrefsPath: prefsPath})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = step(t, m, m.Init()())
	return m, prefsPath
}

func TestModel_LoadsWorksheets(t *testing.T) {
	m, prefsPath := startModel(t, newFakeFetcher())

	if m.loading || m.err != nil {
		t.Fatalf("loading=%v err=%v, want loaded", m.loading, m.err)
	}
	if m.currentView != ViewWorksheets || len(m.table.Rows()) != 2 {
		t.Fatalf("view=%v rows=%d, want worksheet list of 2", m.currentView, len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "Example Spreadsheet") {
		t.Fatalf("View() missing spreadsheet title")
	}

	p, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if p.LastKey != "abc123" || len(p.Recent) != 1 || p.Recent[0] != "abc123" {
		t.Fatalf("prefs = %#v, want abc123 remembered", p)
	}
}

func TestModel_OpenCellsAndBack(t *testing.T) {
	f := newFakeFetcher()
	m, _ := startModel(t, f)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, msg := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewCells || !m.loading || m.worksheet.ID != "od7" {
		t.Fatalf("view=%v loading=%v ws=%v, want loading cells of od7", m.currentView, m.loading, m.worksheet)
	}
	m, _ = step(t, m, msg)

	if f.cellOpts == nil || f.cellOpts.Key != "abc123" || f.cellOpts.Worksheet != "od7" {
		t.Fatalf("cell options = %#v", f.cellOpts)
	}
	if f.cellOpts.Credential != sheetfeed.StaticToken("tok") {
		t.Fatalf("credential not carried from spreadsheet: %#v", f.cellOpts.Credential)
	}
	if m.loading || len(m.table.Rows()) != 1 || m.table.Rows()[0][1] != "Hello," {
		t.Fatalf("cell rows = %#v", m.table.Rows())
	}
	if m.summary != "2 cells" {
		t.Fatalf("summary = %q, want 2 cells", m.summary)
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewWorksheets || m.worksheet != nil {
		t.Fatalf("esc did not return to worksheets")
	}
	if m.table.Cursor() != 1 {
		t.Fatalf("cursor = %d, want restored to 1", m.table.Cursor())
	}
}

func TestModel_OpenRows(t *testing.T) {
	f := newFakeFetcher()
	m, _ := startModel(t, f)

	m, msg := step(t, m, keyRunes("r"))
	if m.currentView != ViewRows {
		t.Fatalf("view = %v, want rows", m.currentView)
	}
	m, _ = step(t, m, msg)
	if f.rowOpts == nil || f.rowOpts.Worksheet != "od6" {
		t.Fatalf("row options = %#v", f.rowOpts)
	}
	if len(m.table.Rows()) != 2 || m.summary != "2 rows" {
		t.Fatalf("rows = %#v summary = %q", m.table.Rows(), m.summary)
	}
}

func TestModel_IgnoresStaleWorksheetResults(t *testing.T) {
	m, _ := startModel(t, newFakeFetcher())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, cellsMsg{worksheetID: "other", err: errors.New("boom")})
	if m.err != nil || !m.loading {
		t.Fatalf("stale message applied: err=%v loading=%v", m.err, m.loading)
	}
}

func TestModel_BackDuringFetchKeepsBrowserUsable(t *testing.T) {
	f := newFakeFetcher()
	m, _ := startModel(t, f)

	next, pending := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if pending == nil || !m.loading || m.currentView != ViewCells {
		t.Fatalf("enter: view=%v loading=%v cmd nil=%v, want a cells fetch", m.currentView, m.loading, pending == nil)
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewWorksheets || m.loading {
		t.Fatalf("esc: view=%v loading=%v, want idle worksheet list", m.currentView, m.loading)
	}

	m, _ = step(t, m, pending())
	if m.currentView != ViewWorksheets || m.loading || len(m.table.Rows()) != 2 {
		t.Fatalf("late result: view=%v loading=%v rows=%d, want it dropped", m.currentView, m.loading, len(m.table.Rows()))
	}

	next, cmd := m.Update(keyRunes("r"))
	m = next.(Model)
	if cmd == nil || m.currentView != ViewRows {
		t.Fatalf("r after late result: view=%v cmd nil=%v, want a rows fetch", m.currentView, cmd == nil)
	}
	m, _ = step(t, m, cmd())
	if m.loading || len(m.table.Rows()) != 2 {
		t.Fatalf("rows: loading=%v rows=%d, want 2 rows", m.loading, len(m.table.Rows()))
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR}); cmd == nil {
		t.Fatalf("ctrl+r returned no command after going back")
	}
}

func TestModel_ErrorShownInView(t *testing.T) {
	f := newFakeFetcher()
	f.sheetErr = &sheetfeed.AccessDeniedError{}
	m, _ := startModel(t, f)

	if !sheetfeed.IsAccessDenied(m.err) {
		t.Fatalf("err = %v, want AccessDeniedError", m.err)
	}
	if !strings.Contains(m.View(), "No access to that spreadsheet") {
		t.Fatalf("View() missing access error")
	}
}

func TestModel_NoKey(t *testing.T) {
	m := New(Options{Fetcher: newFakeFetcher(), PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m, _ = step(t, m, m.Init()())
	if !errors.Is(m.err, errNoKey) {
		t.Fatalf("err = %v, want errNoKey", m.err)
	}
}

func TestModel_CycleThemePersists(t *testing.T) {
	m, prefsPath := startModel(t, newFakeFetcher())

	m, _ = step(t, m, keyRunes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	p, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if p.Theme != "Kanagawa" || p.LastKey != "abc123" {
		t.Fatalf("prefs = %#v", p)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := startModel(t, newFakeFetcher())

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		_, out := step(t, m, msg)
		if _, ok := out.(tea.QuitMsg); !ok {
			t.Fatalf("%s produced %T, want tea.QuitMsg", msg, out)
		}
	}
}
