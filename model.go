package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/fx/internal/browser"
	"github.com/LFroesch/fx/internal/clipboard"
	"github.com/LFroesch/fx/internal/config"
	"github.com/LFroesch/fx/internal/opener"
)

const (
	minTerminalWidth  = 60
	minTerminalHeight = 12
	// header + panel border + prompt line + status bar
	uiOverhead = 5

	statusDuration = 3 * time.Second
)

type mode int

const (
	modeNormal mode = iota
	modeCreateFile
	modeCreateDir
	modeRename
	modeConfirmDelete
	modeJump
	modeHelp
)

// fileLauncher is the part of opener.Launcher the UI drives.
type fileLauncher interface {
	OpenWith(path string, cfg opener.Config) opener.Result
	OpenWithDefault(path string) opener.Result
	Strict() bool
	SetStrict(strict bool)
}

// fileClipboard is the part of clipboard.Files the UI drives.
type fileClipboard interface {
	Copy(paths []string) error
	Cut(paths []string) error
	Paths() ([]string, clipboard.Operation, error)
	Clear()
}

// fileOpenResultMsg arrives when a launch started by openSelected returns.
type fileOpenResultMsg struct {
	name   string
	result opener.Result
}

type statusClearMsg struct{}

// keymap holds the bindings config.toml can change.
type keymap struct {
	Quit key.Binding
	Open key.Binding
	Up   key.Binding
	Help key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Up, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// normalizeKey maps config spellings such as "ESC" or "Ctrl+C" to the
// strings tea.KeyMsg.String returns.
func normalizeKey(k string) string {
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func binding(fallback, desc string, builtin, configured []string) key.Binding {
	keys := append([]string{}, builtin...)
	for _, k := range configured {
		keys = append(keys, normalizeKey(k))
	}
	label := fallback
	if len(configured) > 0 {
		label = normalizeKey(configured[0])
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

func newKeymap(kb config.Keybindings) keymap {
	return keymap{
		Quit: binding("ctrl+c", "quit", []string{"ctrl+c"}, kb.Quit),
		Open: binding("enter", "open", nil, kb.Open),
		Up:   binding("k", "up", nil, kb.Up),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

type model struct {
	browser  *browser.Browser
	launcher fileLauncher
	clip     fileClipboard
	cfg      *config.Config
	keys     keymap
	help     help.Model
	styles   styles
	icons    bool

	mode      mode
	textInput textinput.Model
	// target is the entry a rename or delete prompt acts on. It is looked
	// up by name on confirm since indices do not survive a reload.
	target string

	width  int
	height int

	statusMsg    string
	statusIsErr  bool
	statusExpiry time.Time

	pendingKey string
	opening    bool
}

func newModel(cfg *config.Config, b *browser.Browser, launcher fileLauncher, clip fileClipboard) *model {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Width = 50

	m := &model{
		browser:   b,
		launcher:  launcher,
		clip:      clip,
		cfg:       cfg,
		keys:      newKeymap(cfg.Keybindings),
		help:      help.New(),
		styles:    newStyles(themeFor(cfg.Appearance.Theme), borderFor(cfg.Appearance.BorderStyle)),
		icons:     cfg.Appearance.Icons,
		textInput: ti,
		width:     80,
		height:    24,
	}
	if b.HasError() {
		m.setError(b.ErrorMessage())
		b.ClearError()
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fx"),
	)
}

// listHeight is the number of entry rows visible in the panel.
func (m *model) listHeight() int {
	h := m.height - uiOverhead
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusIsErr = false
	m.statusExpiry = time.Now().Add(statusDuration)
	return clearStatusAfter(statusDuration)
}

func (m *model) setError(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusIsErr = true
	m.statusExpiry = time.Now().Add(statusDuration)
	return clearStatusAfter(statusDuration)
}

// browserError moves the browser's last error into the status line.
func (m *model) browserError() tea.Cmd {
	if !m.browser.HasError() {
		return nil
	}
	cmd := m.setError(m.browser.ErrorMessage())
	m.browser.ClearError()
	return cmd
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
