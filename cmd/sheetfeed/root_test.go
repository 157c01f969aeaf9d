package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/five82/sheetfeed/internal/prefs"
)

const worksheetsFeed = `{"feed": {
  "title": {"$t": "Example Spreadsheet"},
  "updated": {"$t": "2014-02-19T10:11:12Z"},
  "author": [{"name": {"$t": "sam"}, "email": {"$t": "sam@example.com"}}],
  "entry": [{
    "id": {"$t": "https://spreadsheets.google.com/feeds/worksheets/abc123/public/values/od6"},
    "title": {"$t": "Sheet1"},
    "gs$rowCount": {"$t": "100"},
    "gs$colCount": {"$t": "20"}
  }]
}}`

const listFeed = `{"feed": {"entry": [
  {"id": {"$t": "https://x/list/cokwr"}, "gsx$hello": {"$t": "2"}, "gsx$world": {"$t": "10"}},
  {"id": {"$t": "https://x/list/cpzh4"}, "gsx$hello": {"$t": "3"}, "gsx$world": {"$t": "20"}}
]}}`

const cellsFeed = `{"feed": {"entry": [
  {"gs$cell": {"row": "1", "col": "1", "inputValue": "Hello,", "$t": "Hello,"}},
  {"gs$cell": {"row": "1", "col": "2", "inputValue": "=A1", "$t": "Hello,"}}
]}}`

type feedServer struct {
	*httptest.Server
	lastQuery string
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	fs := &feedServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "GoogleLogin auth=bad" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch {
		case strings.HasPrefix(r.URL.Path, "/feeds/worksheets/"):
			_, _ = io.WriteString(w, worksheetsFeed)
		case strings.HasPrefix(r.URL.Path, "/feeds/list/"):
			fs.lastQuery = r.URL.RawQuery
			_, _ = io.WriteString(w, listFeed)
		case strings.HasPrefix(r.URL.Path, "/feeds/cells/"):
			fs.lastQuery = r.URL.RawQuery
			_, _ = io.WriteString(w, cellsFeed)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func setupCLI(t *testing.T, serverURL, extraConfig string) []string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHEETFEED_AUTH_TOKEN", "")
	t.Setenv("SHEETFEED_ACCESS_TOKEN", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := "feed_url = \"" + serverURL + "/feeds/\"\n" + extraConfig
	if err := os.WriteFile(configPath, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return []string{"--config", configPath, "--prefs", filepath.Join(dir, "prefs.toml")}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestInfo_Text(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "info", "abc123")...)
	if err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	for _, want := range []string{"Example Spreadsheet", "sam@example.com", "od6", "Sheet1", "100"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestInfo_JSON(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "info", "abc123", "--json")...)
	if err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	var got struct {
		Key        string `json:"key"`
		Title      string `json:"title"`
		Worksheets []struct {
			ID       string `json:"id"`
			RowCount int    `json:"rowCount"`
		} `json:"worksheets"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if got.Key != "abc123" || got.Title != "Example Spreadsheet" || len(got.Worksheets) != 1 || got.Worksheets[0].RowCount != 100 {
		t.Fatalf("info json = %+v", got)
	}
}

func TestRows_PassesQueryAndResolvesTitle(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "rows", "abc123", "Sheet1", "--sq", "hello>1", "--reverse", "--num", "5")...)
	if err != nil {
		t.Fatalf("rows returned error: %v", err)
	}
	for _, want := range []string{"sq=hello%3E1", "reverse=true", "max-results=5"} {
		if !strings.Contains(srv.lastQuery, want) {
			t.Fatalf("query %q missing %q", srv.lastQuery, want)
		}
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "20") {
		t.Fatalf("rows output:\n%s", out)
	}
	if strings.Contains(out, "cokwr") {
		t.Fatalf("rows output should not include the id column:\n%s", out)
	}
}

func TestCells_JSON(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "cells", "abc123", "od6", "--range", "A1:B1", "--json")...)
	if err != nil {
		t.Fatalf("cells returned error: %v", err)
	}
	if !strings.Contains(srv.lastQuery, "range=A1%3AB1") {
		t.Fatalf("query = %q, want range", srv.lastQuery)
	}
	var cells []struct {
		Row        int    `json:"row"`
		Col        int    `json:"col"`
		Value      string `json:"value"`
		InputValue string `json:"inputValue"`
	}
	if err := json.Unmarshal([]byte(out), &cells); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(cells) != 2 || cells[1].Col != 2 || cells[1].InputValue != "=A1" {
		t.Fatalf("cells = %+v", cells)
	}
}

func TestCells_Text(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "cells", "abc123", "od6")...)
	if err != nil {
		t.Fatalf("cells returned error: %v", err)
	}
	if !strings.Contains(out, "A1") || !strings.Contains(out, "B1") || !strings.Contains(out, "=A1") {
		t.Fatalf("cells output:\n%s", out)
	}
}

func TestExport_WritesWorkbook(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")
	path := filepath.Join(t.TempDir(), "out.xlsx")

	out, _, err := execute(t, append(base, "export", "abc123", "od6", "--out", path)...)
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	if !strings.Contains(out, "wrote 2 cells") {
		t.Fatalf("export output = %q", out)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if got, _ := f.GetCellValue("Sheet1", "A1"); got != "Hello," {
		t.Fatalf("A1 = %q, want Hello,", got)
	}
}

func TestExport_RequiresOut(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	_, stderr, err := execute(t, append(base, "export", "abc123", "od6")...)
	if err == nil {
		t.Fatalf("export without --out returned nil error")
	}
	if !strings.Contains(stderr, "out") {
		t.Fatalf("stderr = %q, want it to mention the out flag", stderr)
	}
}

func TestErrors_ReportedOnStderr(t *testing.T) {
	srv := newFeedServer(t)

	base := setupCLI(t, srv.URL, "auth_token = \"bad\"\n")
	_, stderr, err := execute(t, append(base, "info", "abc123")...)
	if err == nil || !strings.Contains(stderr, "Invalid authorization key.") {
		t.Fatalf("err = %v stderr = %q, want invalid credential", err, stderr)
	}

	base = setupCLI(t, srv.URL, "")
	_, stderr, err = execute(t, append(base, "rows", "abc123", "missing")...)
	if err == nil || !strings.Contains(stderr, `worksheet "missing" not found`) {
		t.Fatalf("err = %v stderr = %q, want missing worksheet", err, stderr)
	}
}

func TestRecent_ListsRememberedKeys(t *testing.T) {
	srv := newFeedServer(t)
	base := setupCLI(t, srv.URL, "")

	out, _, err := execute(t, append(base, "recent")...)
	if err != nil {
		t.Fatalf("recent returned error: %v", err)
	}
	if strings.TrimSpace(out) != "no recent spreadsheets" {
		t.Fatalf("recent output = %q", out)
	}

	prefsPath := base[len(base)-1]
	if err := prefs.Update(prefsPath, func(p *prefs.Prefs) {
		p.Remember("first")
		p.Remember("second")
	}); err != nil {
		t.Fatalf("prefs.Update: %v", err)
	}

	out, _, err = execute(t, append(base, "recent")...)
	if err != nil {
		t.Fatalf("recent returned error: %v", err)
	}
	if out != "second\nfirst\n" {
		t.Fatalf("recent output = %q, want second then first", out)
	}
}
