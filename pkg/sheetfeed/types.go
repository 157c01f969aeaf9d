package sheetfeed

import (
	"context"
	"sort"
	"time"
)

// Author identifies the owner of a spreadsheet.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Spreadsheet is the worksheets feed of one spreadsheet key.
type Spreadsheet struct {
	Key        string       `json:"key"`
	Credential Credential   `json:"-"`
	Title      string       `json:"title"`
	Updated    time.Time    `json:"updated"`
	Author     Author       `json:"author"`
	Worksheets []*Worksheet `json:"worksheets"`

	client *Client
}

// Worksheet returns the worksheet with the given id or title.
func (s *Spreadsheet) Worksheet(idOrTitle string) (*Worksheet, bool) {
	if s == nil {
		return nil, false
	}
	for _, ws := range s.Worksheets {
		if ws.ID == idOrTitle {
			return ws, true
		}
	}
	for _, ws := range s.Worksheets {
		if ws.Title == idOrTitle {
			return ws, true
		}
	}
	return nil, false
}

// Worksheet is one tab of a Spreadsheet.
type Worksheet struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	RowCount    int          `json:"rowCount"`
	ColCount    int          `json:"colCount"`
	Spreadsheet *Spreadsheet `json:"-"`
}

// Rows fetches the list feed of the worksheet. Key, credential and worksheet
// id are taken from the worksheet; opts may be nil.
func (w *Worksheet) Rows(ctx context.Context, opts *RowOptions) ([]Row, error) {
	if w == nil || w.Spreadsheet == nil {
		return nil, &InvalidArgumentError{Reason: msgWorksheetMissing}
	}
	var o RowOptions
	if opts != nil {
		o = *opts
	}
	o.Key, o.Credential, o.Worksheet = w.Spreadsheet.Key, w.Spreadsheet.Credential, w.ID
	return w.Spreadsheet.client.GetRows(ctx, &o)
}

// Cells fetches the cells feed of the worksheet. Key, credential and
// worksheet id are taken from the worksheet; opts may be nil.
func (w *Worksheet) Cells(ctx context.Context, opts *CellOptions) (*Cells, error) {
	if w == nil || w.Spreadsheet == nil {
		return nil, &InvalidArgumentError{Reason: msgWorksheetMissing}
	}
	var o CellOptions
	if opts != nil {
		o = *opts
	}
	o.Key, o.Credential, o.Worksheet = w.Spreadsheet.Key, w.Spreadsheet.Credential, w.ID
	return w.Spreadsheet.client.GetCells(ctx, &o)
}

// Row maps column names to cell text. A nil value marks a column the feed
// reported as empty. The entry identifier is stored under "id".
type Row map[string]*string

// ID returns the feed entry identifier of the row.
func (r Row) ID() string {
	return r.Value("id")
}

// Value returns the text of a column, or "" when missing or empty.
func (r Row) Value(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Lookup returns the text of a column and whether it carried a value.
func (r Row) Lookup(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Columns returns the row's keys in sorted order.
func (r Row) Columns() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Cell is one entry of the cells feed.
type Cell struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
	// InputValue is the formula or literal typed into the cell. Empty when
	// the feed does not report it.
	InputValue string `json:"inputValue,omitempty"`
}

// Cells is a sparse grid keyed by 1-based row, then column.
type Cells struct {
	Cells map[int]map[int]Cell `json:"cells"`
}

func newCells() *Cells {
	return &Cells{Cells: make(map[int]map[int]Cell)}
}

func (c *Cells) set(cell Cell) {
	row, ok := c.Cells[cell.Row]
	if !ok {
		row = make(map[int]Cell)
		c.Cells[cell.Row] = row
	}
	row[cell.Col] = cell
}

// Get returns the cell at row, col.
func (c *Cells) Get(row, col int) (Cell, bool) {
	if c == nil {
		return Cell{}, false
	}
	cell, ok := c.Cells[row][col]
	return cell, ok
}

// Len returns the number of populated cells.
func (c *Cells) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, row := range c.Cells {
		n += len(row)
	}
	return n
}

// List returns the populated cells ordered by row, then column.
func (c *Cells) List() []Cell {
	if c == nil {
		return nil
	}
	out := make([]Cell, 0, c.Len())
	for _, row := range c.Cells {
		for _, cell := range row {
			out = append(out, cell)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Bounds returns the largest populated row and column indices, or zeros for
// an empty grid.
func (c *Cells) Bounds() (maxRow, maxCol int) {
	if c == nil {
		return 0, 0
	}
	for r, row := range c.Cells {
		if r > maxRow {
			maxRow = r
		}
		for col := range row {
			if col > maxCol {
				maxCol = col
			}
		}
	}
	return maxRow, maxCol
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
