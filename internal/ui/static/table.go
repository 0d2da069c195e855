// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/raphi011/nixpm/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// PathRow describes one configured package list for "nixpm config show".
type PathRow struct {
	Setting  string // config key, e.g. "darwin_packages_path"
	Template string // value as configured, possibly starting with ~
	Expanded string // resolved path; empty if expansion failed
	Exists   bool
}

// PathHeaders are the column headers of RenderPaths.
var PathHeaders = []string{"SETTING", "VALUE", "PATH", "EXISTS"}

// PathTableRow renders a PathRow as table cells. The resolved path is a
// file:// hyperlink when it exists.
func PathTableRow(r PathRow) []string {
	path := r.Expanded
	exists := styles.ErrorStyle.Render("no")
	if r.Exists {
		path = styles.FileLink(r.Expanded)
		exists = styles.SuccessStyle.Render("yes")
	}
	if r.Expanded == "" {
		path = styles.MutedStyle.Render("-")
	}
	return []string{r.Setting, r.Template, path, exists}
}

// RenderPaths renders the package list table for "nixpm config show".
func RenderPaths(rows []PathRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, PathTableRow(r))
	}
	return RenderTable(PathHeaders, cells)
}
