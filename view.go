package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/fx/internal/browser"
	"github.com/LFroesch/fx/internal/utils"
)

const (
	sizeColumn = 9
	dateColumn = 10
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var main string
	switch m.mode {
	case modeHelp:
		main = m.renderDialog(m.renderHelp())
	case modeConfirmDelete:
		main = m.renderDialog(m.renderConfirmDelete())
	default:
		main = m.renderFileList()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		main,
		m.renderPromptLine(),
		m.renderStatusBar(),
	)
}

func (m *model) renderHeader() string {
	right := fmt.Sprintf("sort: %s", m.browser.SortMode())
	if m.browser.ShowHidden() {
		right += " | hidden"
	}
	right = m.styles.headerR.Render(right)

	left := m.styles.header.Render("fx")
	pathWidth := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	path := m.styles.header.UnsetBold().
		Foreground(m.styles.file.GetForeground()).
		Width(max(pathWidth, 0)).
		Render(utils.Truncate(m.browser.CurrentPath(), max(pathWidth-2, 0)))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, path, right)
}

func (m *model) renderFileList() string {
	inner := m.width - 2
	height := m.listHeight()
	entries := m.browser.Entries()
	start := m.browser.ScrollOffset()
	end := min(start+height, len(entries))

	var rows []string
	if len(entries) == 0 {
		rows = append(rows, m.styles.muted.Render(" (empty)"))
	}
	now := time.Now()
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(entries[i], i == m.browser.SelectedIndex(), inner, now))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}

	return m.styles.panel.Width(inner).Render(strings.Join(rows, "\n"))
}

func iconKind(e browser.Entry) utils.IconKind {
	switch {
	case e.IsParent():
		return utils.KindParent
	case e.IsSymlink:
		return utils.KindSymlink
	case e.IsDir:
		return utils.KindDir
	case e.IsExecutable:
		return utils.KindExecutable
	}
	return utils.KindFile
}

func (m *model) nameStyle(e browser.Entry) lipgloss.Style {
	switch {
	case e.IsHidden:
		return m.styles.hidden
	case e.IsSymlink:
		return m.styles.symlink
	case e.IsDir:
		return m.styles.dir
	case e.IsExecutable:
		return m.styles.exec
	}
	return m.styles.file
}

func (m *model) renderRow(e browser.Entry, selected bool, width int, now time.Time) string {
	icon := utils.Icon(e.Name, iconKind(e), m.icons)
	// glyphs vary between one and two cells
	icon += strings.Repeat(" ", max(3-lipgloss.Width(icon), 1))

	name := e.Name
	if e.IsDir && !e.IsParent() {
		name += "/"
	}

	size, date := "", ""
	if !e.IsParent() {
		date = utils.FormatModTime(e.ModTime, now)
		if !e.IsDir {
			size = utils.FormatFileSize(e.Size)
		}
	}

	nameWidth := max(width-lipgloss.Width(icon)-sizeColumn-dateColumn-3, 1)
	name = utils.Truncate(name, nameWidth)
	name += strings.Repeat(" ", max(nameWidth-lipgloss.Width(name), 0))
	sizeCell := fmt.Sprintf("%*s", sizeColumn, size)
	dateCell := fmt.Sprintf("%*s", dateColumn, date)

	if selected {
		return m.styles.selected.Width(width).Render(icon + name + " " + sizeCell + " " + dateCell)
	}

	if size != "" {
		sizeCell = strings.Repeat(" ", sizeColumn-len(size)) + utils.FormatFileSizeColored(e.Size)
	}
	return icon + m.nameStyle(e).Render(name) + " " + sizeCell + " " + m.styles.muted.Render(dateCell)
}

func (m *model) renderPromptLine() string {
	switch m.mode {
	case modeCreateFile:
		return m.styles.title.Render(" New file: ") + m.textInput.View()
	case modeCreateDir:
		return m.styles.title.Render(" New directory: ") + m.textInput.View()
	case modeRename:
		return m.styles.title.Render(fmt.Sprintf(" Rename %s: ", m.target)) + m.textInput.View()
	case modeJump:
		return m.styles.title.Render(" / ") + m.textInput.View()
	}

	if m.statusMsg == "" || time.Now().After(m.statusExpiry) {
		return ""
	}
	if m.statusIsErr {
		return m.styles.errMsg.Render(" " + m.statusMsg)
	}
	return m.styles.okMsg.Render(" " + m.statusMsg)
}

func (m *model) renderStatusBar() string {
	left := ""
	if total := m.browser.TotalEntries(); total > 0 {
		left = fmt.Sprintf("%d/%d", m.browser.SelectedIndex()+1, total)
	}
	left += fmt.Sprintf(" | %d dirs, %d files", m.browser.DirectoryCount(), m.browser.FileCount())
	if m.opening {
		left += " | opening..."
	}
	if m.launcher.Strict() {
		left += " | strict"
	}
	if m.pendingKey == "d" {
		left += " | d-"
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	if lipgloss.Width(left)+lipgloss.Width(right)+3 > m.width {
		right = "? help"
	}
	pad := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return m.styles.status.
		Padding(0, 1).
		Width(m.width).
		Render(left + strings.Repeat(" ", pad) + right)
}

// renderDialog centres content in the area the file list normally takes.
func (m *model) renderDialog(content string) string {
	box := m.styles.dialog.Render(content)
	return lipgloss.Place(m.width, m.listHeight()+2, lipgloss.Center, lipgloss.Center, box)
}

func (m *model) renderConfirmDelete() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Delete"))
	b.WriteString("\n\n")
	what := m.target
	if i := m.browser.IndexOf(m.target); i >= 0 && m.browser.Entries()[i].IsDir {
		what += "/ and everything in it"
	}
	b.WriteString(fmt.Sprintf("Permanently delete %s?\n\n", what))
	b.WriteString(m.styles.muted.Render("y: delete | any other key: cancel"))
	return b.String()
}

var helpRows = [][2]string{
	{"j/k, arrows", "move"},
	{"h, left, backspace", "parent directory"},
	{"l, right, enter", "open"},
	{"g / G", "first / last"},
	{"ctrl+u / ctrl+d", "half page up / down"},
	{"ctrl+b / ctrl+f", "page up / down"},
	{".", "toggle hidden files"},
	{"s", "cycle sort"},
	{"S", "toggle strict command checking"},
	{"R, F5", "refresh"},
	{"n / N", "new file / directory"},
	{"r", "rename"},
	{"dd", "delete"},
	{"Y / x / p", "copy / cut / paste"},
	{"/", "jump to name"},
	{"q, esc", "quit"},
}

func (m *model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range helpRows {
		b.WriteString(fmt.Sprintf("%-20s %s\n", row[0], m.styles.muted.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("press any key to close"))
	return b.String()
}
