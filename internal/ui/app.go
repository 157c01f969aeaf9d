package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sheetfeed/internal/prefs"
	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

// View represents the current active view.
type View int

const (
	ViewWorksheets View = iota
	ViewCells
	ViewRows
)

var errNoKey = errors.New("no spreadsheet key given; pass one or open a spreadsheet once to remember it")

// Options configures the UI.
type Options struct {
	Context    context.Context
	Fetcher    sheetfeed.Fetcher
	Key        string
	Credential sheetfeed.Credential
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   sheetfeed.Fetcher
	key       string
	cred      sheetfeed.Credential
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int

	// Data state
	spreadsheet *sheetfeed.Spreadsheet
	worksheet   *sheetfeed.Worksheet
	sheetCursor int
	table       table.Model
	summary     string
	loading     bool
	err         error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	tbl := table.New(
		table.WithFocused(true),
		table.WithStyles(theme.TableStyles()),
	)

	return Model{
		ctx:         ctx,
		fetcher:     opts.Fetcher,
		key:         opts.Key,
		cred:        opts.Credential,
		prefsPath:   prefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewWorksheets,
		table:       tbl,
		loading:     true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadSpreadsheet()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case spreadsheetMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.spreadsheet = msg.sheet
		m.sheetCursor = 0
		m.savePrefs()
		m.showWorksheets()
		return m, nil

	case cellsMsg:
		if m.currentView != ViewCells || m.worksheet == nil || msg.worksheetID != m.worksheet.ID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		cols, rows := cellTable(msg.cells)
		m.setTable(cols, rows)
		m.summary = countLabel(msg.cells.Len(), "cell")
		return m, nil

	case rowsMsg:
		if m.currentView != ViewRows || m.worksheet == nil || msg.worksheetID != m.worksheet.ID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		cols, rows := rowTable(msg.rows)
		m.setTable(cols, rows)
		m.summary = countLabel(len(msg.rows), "row")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.table.SetStyles(m.theme.TableStyles())
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload()

	case key.Matches(msg, m.keys.Back):
		if m.currentView != ViewWorksheets {
			m.showWorksheets()
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenCells):
		if m.currentView == ViewWorksheets {
			return m.openWorksheet(ViewCells)
		}

	case key.Matches(msg, m.keys.OpenRows):
		if m.currentView == ViewWorksheets {
			return m.openWorksheet(ViewRows)
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) openWorksheet(view View) (tea.Model, tea.Cmd) {
	ws := m.selectedWorksheet()
	if ws == nil || m.loading {
		return m, nil
	}
	m.sheetCursor = m.table.Cursor()
	m.worksheet = ws
	m.currentView = view
	m.err = nil
	m.summary = ""
	m.setTable(nil, nil)
	cmd := m.loadWorksheet()
	return m, cmd
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	if m.currentView == ViewWorksheets || m.worksheet == nil {
		cmd = m.loadSpreadsheet()
	} else {
		cmd = m.loadWorksheet()
	}
	return m, cmd
}

// showWorksheets returns to the worksheet list. A cells or rows fetch still
// in flight is abandoned; its result is dropped when it arrives.
func (m *Model) showWorksheets() {
	m.currentView = ViewWorksheets
	m.worksheet = nil
	m.loading = false
	m.err = nil
	cols, rows := worksheetTable(m.spreadsheet)
	m.setTable(cols, rows)
	if m.sheetCursor < len(rows) {
		m.table.SetCursor(m.sheetCursor)
	}
	m.summary = countLabel(len(rows), "worksheet")
}

func (m *Model) selectedWorksheet() *sheetfeed.Worksheet {
	if m.spreadsheet == nil {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.spreadsheet.Worksheets) {
		return nil
	}
	return m.spreadsheet.Worksheets[i]
}

// setTable swaps the table contents. Rows are cleared first so the table
// never renders rows wider than its columns.
func (m *Model) setTable(cols []table.Column, rows []table.Row) {
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, summary, footer and the panel border
	chrome := 4 + lipgloss.Height(m.help.View(m.keys))
	m.table.SetWidth(max(m.width-2, 10))
	m.table.SetHeight(max(m.height-chrome, 3))
}

// savePrefs persists the theme and records the open spreadsheet in the
// recent history.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	theme, key := m.theme.Name, ""
	if m.spreadsheet != nil {
		key = m.spreadsheet.Key
	}
	_ = prefs.Update(m.prefsPath, func(p *prefs.Prefs) {
		p.Theme = theme
		p.Remember(key)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
