package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/fx/internal/logger"
)

// palette holds the colours one theme uses.
type palette struct {
	accent     lipgloss.Color
	headerBg   lipgloss.Color
	dir        lipgloss.Color
	file       lipgloss.Color
	exec       lipgloss.Color
	symlink    lipgloss.Color
	hidden     lipgloss.Color
	selectedFg lipgloss.Color
	selectedBg lipgloss.Color
	muted      lipgloss.Color
	statusFg   lipgloss.Color
	statusBg   lipgloss.Color
	errFg      lipgloss.Color
	okFg       lipgloss.Color
}

var themes = map[string]palette{
	"catppuccin": {
		accent: "#cba6f7", headerBg: "#1e1e2e", dir: "#89b4fa", file: "#cdd6f4",
		exec: "#a6e3a1", symlink: "#94e2d5", hidden: "#6c7086",
		selectedFg: "#1e1e2e", selectedBg: "#cba6f7", muted: "#7f849c",
		statusFg: "#cdd6f4", statusBg: "#313244", errFg: "#f38ba8", okFg: "#a6e3a1",
	},
	"nord": {
		accent: "#88c0d0", headerBg: "#2e3440", dir: "#81a1c1", file: "#eceff4",
		exec: "#a3be8c", symlink: "#8fbcbb", hidden: "#4c566a",
		selectedFg: "#2e3440", selectedBg: "#88c0d0", muted: "#616e88",
		statusFg: "#eceff4", statusBg: "#3b4252", errFg: "#bf616a", okFg: "#a3be8c",
	},
	"gruvbox": {
		accent: "#fabd2f", headerBg: "#282828", dir: "#83a598", file: "#ebdbb2",
		exec: "#b8bb26", symlink: "#8ec07c", hidden: "#665c54",
		selectedFg: "#282828", selectedBg: "#fabd2f", muted: "#928374",
		statusFg: "#ebdbb2", statusBg: "#3c3836", errFg: "#fb4934", okFg: "#b8bb26",
	},
	"mono": {
		accent: "255", headerBg: "235", dir: "255", file: "250",
		exec: "250", symlink: "250", hidden: "240",
		selectedFg: "235", selectedBg: "255", muted: "244",
		statusFg: "255", statusBg: "240", errFg: "255", okFg: "255",
	},
}

const defaultTheme = "catppuccin"

func themeFor(name string) palette {
	if p, ok := themes[name]; ok {
		return p
	}
	logger.Warn("Unknown theme %q, using %s", name, defaultTheme)
	return themes[defaultTheme]
}

func borderFor(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	}
	return lipgloss.RoundedBorder()
}

// styles are built once per theme.
type styles struct {
	header   lipgloss.Style
	headerR  lipgloss.Style
	panel    lipgloss.Style
	dir      lipgloss.Style
	file     lipgloss.Style
	exec     lipgloss.Style
	symlink  lipgloss.Style
	hidden   lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	status   lipgloss.Style
	errMsg   lipgloss.Style
	okMsg    lipgloss.Style
	dialog   lipgloss.Style
	title    lipgloss.Style
}

func newStyles(p palette, border lipgloss.Border) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Background(p.headerBg).
			Padding(0, 1),
		headerR: lipgloss.NewStyle().
			Foreground(p.muted).
			Background(p.headerBg).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.muted),
		dir:      lipgloss.NewStyle().Foreground(p.dir).Bold(true),
		file:     lipgloss.NewStyle().Foreground(p.file),
		exec:     lipgloss.NewStyle().Foreground(p.exec),
		symlink:  lipgloss.NewStyle().Foreground(p.symlink).Italic(true),
		hidden:   lipgloss.NewStyle().Foreground(p.hidden),
		selected: lipgloss.NewStyle().Foreground(p.selectedFg).Background(p.selectedBg).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		status: lipgloss.NewStyle().
			Foreground(p.statusFg).
			Background(p.statusBg),
		errMsg: lipgloss.NewStyle().Foreground(p.errFg).Bold(true),
		okMsg:  lipgloss.NewStyle().Foreground(p.okFg),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2).
			Width(60),
		title: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
	}
}
