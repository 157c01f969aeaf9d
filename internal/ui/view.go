package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	styles := m.theme.Styles()
	parts := []string{
		m.renderHeader(styles),
		m.renderSummary(styles),
		m.renderContent(styles),
		styles.Footer.Width(m.width).Render(m.help.View(m.keys)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title bar: logo, spreadsheet title and breadcrumb.
func (m Model) renderHeader(styles Styles) string {
	crumbs := []string{styles.Logo.Render("sheetfeed")}

	title := m.key
	if m.spreadsheet != nil && m.spreadsheet.Title != "" {
		title = m.spreadsheet.Title
	}
	if title != "" {
		crumbs = append(crumbs, title)
	}
	if m.worksheet != nil {
		crumbs = append(crumbs, m.worksheet.Title, viewLabel(m.currentView))
	}
	return styles.Header.Width(m.width).Render(strings.Join(crumbs, " / "))
}

func (m Model) renderSummary(styles Styles) string {
	switch {
	case m.loading:
		return styles.WarningText.Render("Loading...")
	case m.err != nil:
		return styles.DangerText.Render(describeError(m.err))
	}

	parts := []string{m.summary}
	if m.currentView == ViewWorksheets && m.spreadsheet != nil {
		if author := m.spreadsheet.Author.Name; author != "" {
			parts = append(parts, "by "+author)
		}
		if !m.spreadsheet.Updated.IsZero() {
			parts = append(parts, "updated "+m.spreadsheet.Updated.Local().Format("2006-01-02 15:04"))
		}
	}
	if m.cred != nil {
		parts = append(parts, "private")
	}
	return styles.MutedText.Render(strings.Join(nonEmpty(parts), " · "))
}

func (m Model) renderContent(styles Styles) string {
	return styles.Panel.Render(m.table.View())
}

func viewLabel(v View) string {
	switch v {
	case ViewCells:
		return "cells"
	case ViewRows:
		return "rows"
	default:
		return "worksheets"
	}
}

// describeError adds a hint to the feed errors a user can act on.
func describeError(err error) string {
	switch {
	case sheetfeed.IsInvalidCredential(err):
		return err.Error() + " Check auth_token or access_token in the config."
	case sheetfeed.IsAccessDenied(err):
		return err.Error() + " The spreadsheet may not be published, or needs a credential."
	default:
		return err.Error()
	}
}

func nonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
