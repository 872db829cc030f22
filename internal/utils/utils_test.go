package utils

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name   string
		kind   IconKind
		glyphs bool
		want   string
	}{
		{"main.go", KindFile, true, "🐹"},
		{"README.MD", KindFile, true, "📝"},
		{"src", KindDir, true, "📁"},
		{"..", KindParent, true, "⬆️"},
		{"run", KindExecutable, true, "⚡"},
		{"run.sh", KindExecutable, true, "🖥️"},
		{"unknown.xyz", KindFile, true, "📄"},
		{"src", KindDir, false, "/"},
		{"link", KindSymlink, false, "@"},
		{"run", KindExecutable, false, "*"},
		{"main.go", KindFile, false, " "},
	}

	for _, tt := range tests {
		if got := Icon(tt.name, tt.kind, tt.glyphs); got != tt.want {
			t.Errorf("Icon(%q, %v, %v) = %q, want %q", tt.name, tt.kind, tt.glyphs, got, tt.want)
		}
	}
}

func TestFormatModTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	if got := FormatModTime(time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC), now); got != "09:05" {
		t.Errorf("today = %q", got)
	}
	if got := FormatModTime(time.Date(2026, 1, 2, 9, 5, 0, 0, time.UTC), now); got != "Jan 02" {
		t.Errorf("this year = %q", got)
	}
	if got := FormatModTime(time.Date(2024, 1, 2, 9, 5, 0, 0, time.UTC), now); got != "2024-01-02" {
		t.Errorf("older = %q", got)
	}
	if got := FormatModTime(time.Time{}, now); got != "" {
		t.Errorf("zero = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	got := Truncate("a-very-long-file-name.txt", 10)
	if lipgloss.Width(got) > 10 {
		t.Errorf("Truncate overflowed: %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}
