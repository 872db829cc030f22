package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByExtension(t *testing.T) {
	rules := []Rule{{Extensions: []string{"md"}, Command: "glow"}}

	rule, ok := Find("README.md", rules)
	require.True(t, ok)
	assert.Equal(t, "glow", rule.Command)

	_, ok = Find("README", rules)
	assert.False(t, ok, "a name without an extension matches nothing")
}

func TestFindDotFileHasNoExtension(t *testing.T) {
	rules := []Rule{{Extensions: []string{"bashrc"}, Command: "nvim"}}

	_, ok := Find("/home/u/.bashrc", rules)
	assert.False(t, ok)

	rule, ok := Find("/home/u/.config.bashrc", rules)
	require.True(t, ok)
	assert.Equal(t, "nvim", rule.Command)

	_, ok = Find("/home/u/.bashrc", []Rule{{Pattern: ".bashrc", Command: "nvim"}})
	assert.True(t, ok, "dot-files are still reachable by pattern")
}

func TestFindIsCaseSensitive(t *testing.T) {
	rules := []Rule{
		{Pattern: "*.md", Command: "glow"},
		{Extensions: []string{"go"}, Command: "nvim"},
	}

	_, ok := Find("a.MD", rules)
	assert.False(t, ok)
	_, ok = Find("main.GO", rules)
	assert.False(t, ok)

	rule, ok := Find("a.md", rules)
	require.True(t, ok)
	assert.Equal(t, "glow", rule.Command)
}

func TestFindFirstRuleWins(t *testing.T) {
	rules := []Rule{
		{Pattern: "*.c", Command: "less"},
		{Extensions: []string{"c"}, Command: "nvim", Terminal: true},
	}

	rule, ok := Find("/src/main.c", rules)
	require.True(t, ok)
	assert.Equal(t, "less", rule.Command)
}

func TestFindExtensionBeforePatternWithinRule(t *testing.T) {
	rules := []Rule{{Extensions: []string{"h"}, Pattern: "*.nomatch", Command: "nvim"}}

	rule, ok := Find("x.h", rules)
	require.True(t, ok)
	assert.Equal(t, "nvim", rule.Command)
}

func TestFindIgnoresMimeType(t *testing.T) {
	rules := []Rule{{MimeType: "image/*", Command: "kitty +kitten icat"}}

	_, ok := Find("photo.png", rules)
	assert.False(t, ok)
}

func TestFindPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"suffix", "*.md", "/docs/notes.md", true},
		{"suffix on dotless name", "*.md", "md", false},
		{"multi-dot suffix", "*.tar.gz", "backup.tar.gz", true},
		{"multi-dot suffix mismatch", "*.tar.gz", "backup.gz", false},
		{"glob exact name", "Makefile", "/repo/Makefile", true},
		{"glob prefix", "README*", "README.txt", true},
		{"glob alternatives", "*.{jpg,png}", "cat.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Find(tt.path, []Rule{{Pattern: tt.pattern, Command: "x"}})
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestFindEmptyRules(t *testing.T) {
	_, ok := Find("a.txt", nil)
	assert.False(t, ok)
}
