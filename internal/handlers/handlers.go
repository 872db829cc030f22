// Package handlers maps file names to the external commands configured to open them.
package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/LFroesch/fx/internal/logger"
)

// Rule is one [[file_handlers.rules]] entry.
type Rule struct {
	Extensions []string `toml:"extensions,omitempty"`
	Pattern    string   `toml:"pattern,omitempty"`
	MimeType   string   `toml:"mime_type,omitempty"`
	Command    string   `toml:"command"`
	Terminal   bool     `toml:"terminal,omitempty"`
}

// Find returns the first rule in order that matches path.
//
// Within a rule the extension list is checked before the pattern. Matching is
// case-sensitive: "a.MD" does not match "*.md". MimeType is carried but never
// consulted.
func Find(path string, rules []Rule) (Rule, bool) {
	name := filepath.Base(path)
	ext := extension(name)

	for _, rule := range rules {
		if ext != "" {
			for _, e := range rule.Extensions {
				if e == ext {
					return rule, true
				}
			}
		}
		if matchPattern(rule.Pattern, name, ext) {
			return rule, true
		}
	}
	return Rule{}, false
}

// extension returns the text after the last dot, or "" when there is none.
// A dot-file such as ".bashrc" has no extension.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

func matchPattern(pattern, name, ext string) bool {
	if pattern == "" {
		return false
	}
	if suffix, ok := strings.CutPrefix(pattern, "*."); ok && !strings.ContainsAny(suffix, "*?[{") {
		if !strings.Contains(suffix, ".") {
			return ext != "" && suffix == ext
		}
		// multi-dot suffix such as *.tar.gz
		return strings.HasSuffix(name, "."+suffix)
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		logger.Warn("Ignoring invalid handler pattern %q: %v", pattern, err)
		return false
	}
	return g.Match(name)
}
