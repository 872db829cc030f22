package opener

import "strings"

var defaultAllowedCommands = []string{
	// editors
	"arc", "vim", "nvim", "vi", "nano", "emacs", "emacsclient", "code", "subl",
	"atom", "gedit", "kate", "kwrite", "notepad", "notepad++",
	// pagers
	"less", "more", "cat", "bat", "most",
	// images
	"feh", "sxiv", "eog", "eom", "gwenview", "gthumb", "gimp", "krita", "inkscape",
	// media
	"mpv", "vlc", "mplayer", "ffplay", "totem",
	// documents
	"zathura", "evince", "okular", "mupdf", "xpdf",
	// browsers
	"firefox", "chrome", "chromium", "brave", "safari",
	// archives
	"file-roller", "ark", "xarchiver",
}

// ParseCommand splits a command line on spaces and tabs. Single or double
// quotes group words and are dropped; a quote of the other kind inside them is
// kept. Nothing else is special: no escapes, globbing or variable expansion.
// An unterminated quote runs to the end of the string.
func ParseCommand(command string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
	)

	for _, c := range command {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				current.WriteRune(c)
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ' ' || c == '\t':
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// commandName reduces an argv[0] to the name compared against the allow-list.
// Both separators are stripped so windows paths reduce the same way everywhere.
func commandName(arg string) string {
	if i := strings.LastIndexAny(arg, `/\`); i >= 0 {
		arg = arg[i+1:]
	}
	return strings.TrimSuffix(arg, ".exe")
}

// IsCommandAllowed reports whether the first word of command is on the allow-list.
func (l *Launcher) IsCommandAllowed(command string) bool {
	argv := ParseCommand(command)
	return len(argv) > 0 && l.isAllowed(argv[0])
}

func (l *Launcher) isAllowed(arg string) bool {
	_, ok := l.allowed[commandName(arg)]
	return ok
}

// AllowCommand adds a command name to the allow-list.
func (l *Launcher) AllowCommand(name string) {
	l.allowed[commandName(name)] = struct{}{}
}

// ClearAllowedCommands empties the allow-list.
func (l *Launcher) ClearAllowedCommands() {
	clear(l.allowed)
}

// SetStrict toggles strict mode.
func (l *Launcher) SetStrict(strict bool) {
	l.strict = strict
}

// Strict reports whether callers should validate commands against the allow-list.
func (l *Launcher) Strict() bool {
	return l.strict
}
