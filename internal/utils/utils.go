package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// IconKind classifies an entry for its icon.
type IconKind int

const (
	KindFile IconKind = iota
	KindDir
	KindParent
	KindSymlink
	KindExecutable
)

func extIcon(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".go":
		return "🐹", true
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜", true
	case ".py":
		return "🐍", true
	case ".rb":
		return "💎", true
	case ".java":
		return "☕", true
	case ".rs":
		return "🦀", true
	case ".c", ".cpp", ".h", ".hpp":
		return "⚙️", true
	case ".html", ".htm":
		return "🌐", true
	case ".css", ".scss":
		return "🎨", true
	case ".json", ".yaml", ".yml", ".toml":
		return "📋", true
	case ".md", ".markdown":
		return "📝", true
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
		return "🖼️", true
	case ".mp4", ".mkv", ".mov", ".avi":
		return "🎬", true
	case ".mp3", ".flac", ".ogg", ".wav":
		return "🎵", true
	case ".zip", ".tar", ".gz", ".xz", ".7z", ".rar":
		return "📦", true
	case ".pdf":
		return "📕", true
	case ".sh", ".bash", ".zsh":
		return "🖥️", true
	}
	return "", false
}

// Icon returns the glyph drawn before an entry name. With glyphs disabled it
// falls back to ls -F style markers.
func Icon(name string, kind IconKind, glyphs bool) string {
	if !glyphs {
		switch kind {
		case KindDir, KindParent:
			return "/"
		case KindSymlink:
			return "@"
		case KindExecutable:
			return "*"
		}
		return " "
	}

	switch kind {
	case KindParent:
		return "⬆️"
	case KindDir:
		return "📁"
	case KindSymlink:
		return "🔗"
	}
	if icon, ok := extIcon(name); ok {
		return icon
	}
	if kind == KindExecutable {
		return "⚡"
	}
	return "📄"
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatFileSizeColored renders the size dimmer for tiny files and louder for huge ones.
func FormatFileSizeColored(size int64) string {
	const (
		KB    = 1024
		MB    = 1024 * KB
		MB100 = 100 * MB
	)

	style := lipgloss.NewStyle()
	switch {
	case size < KB:
		style = style.Foreground(lipgloss.Color("240"))
	case size < MB:
		style = style.Foreground(lipgloss.Color("252"))
	case size < MB100:
		style = style.Foreground(lipgloss.Color("214")).Bold(true)
	default:
		style = style.Foreground(lipgloss.Color("196")).Bold(true)
	}
	return style.Render(FormatFileSize(size))
}

// FormatModTime shows a clock time for today and a date otherwise.
func FormatModTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04")
	}
	if y1 == y2 {
		return t.Format("Jan 02")
	}
	return t.Format("2006-01-02")
}

// Truncate cuts s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
