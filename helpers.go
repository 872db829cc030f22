package main

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/fx/internal/clipboard"
	"github.com/LFroesch/fx/internal/handlers"
	"github.com/LFroesch/fx/internal/logger"
	"github.com/LFroesch/fx/internal/opener"
)

// isPlatformOpener reports whether a default handler names the system opener,
// which OpenWithDefault already picks per platform.
func isPlatformOpener(command string) bool {
	switch command {
	case "", "default", "xdg-open", "open", "start":
		return true
	}
	return false
}

// openSelected enters the selected directory, or launches the selected file
// in the background and reports back with a fileOpenResultMsg.
func (m *model) openSelected() tea.Cmd {
	entry, ok := m.browser.SelectedEntry()
	if !ok {
		return nil
	}
	if entry.IsDir {
		from := ""
		if entry.IsParent() {
			from = filepath.Base(m.browser.CurrentPath())
		}
		if !m.browser.NavigateInto(m.browser.SelectedIndex()) {
			return m.browserError()
		}
		if from != "" {
			m.browser.SelectByName(from)
		}
		return nil
	}
	if m.opening {
		return m.setStatus("Still waiting for the last program")
	}
	m.opening = true
	return m.launch(entry.Path, entry.Name)
}

func (m *model) launch(path, name string) tea.Cmd {
	launcher := m.launcher
	strict := launcher.Strict()
	rule, found := handlers.Find(path, m.cfg.FileHandlers.Rules)
	fallback := m.cfg.FileHandlers.Default

	return func() tea.Msg {
		var res opener.Result
		switch {
		case found:
			res = launcher.OpenWith(path, opener.Config{
				Command:           rule.Command,
				WaitForCompletion: rule.Terminal,
				ValidateCommand:   strict,
			})
		case isPlatformOpener(fallback):
			res = launcher.OpenWithDefault(path)
		default:
			res = launcher.OpenWith(path, opener.Config{
				Command:         fallback,
				ValidateCommand: strict,
			})
		}
		return fileOpenResultMsg{name: name, result: res}
	}
}

func (m *model) handleOpenResult(msg fileOpenResultMsg) tea.Cmd {
	m.opening = false

	// the program may have changed the directory
	if m.browser.Refresh() {
		m.browser.SelectByName(msg.name)
	}
	m.browser.UpdateScroll(m.listHeight())

	if !msg.result.Success {
		logger.Warn("Open %s failed: %s", msg.name, msg.result.ErrorMessage)
		return m.setError(msg.result.ErrorMessage)
	}
	if cmd := m.browserError(); cmd != nil {
		return cmd
	}
	return m.setStatus(fmt.Sprintf("Opened %s", msg.name))
}

func (m *model) yank(cut bool) tea.Cmd {
	entry, ok := m.browser.SelectedEntry()
	if !ok || entry.IsParent() {
		return nil
	}

	paths := []string{entry.Path}
	verb := "Copied"
	var err error
	if cut {
		verb = "Cut"
		err = m.clip.Cut(paths)
	} else {
		err = m.clip.Copy(paths)
	}
	if err != nil {
		logger.Error("Clipboard write failed: %v", err)
		return m.setError(err.Error())
	}
	return m.setStatus(fmt.Sprintf("%s %s", verb, entry.Name))
}

func (m *model) paste() tea.Cmd {
	paths, op, err := m.clip.Paths()
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			return m.setStatus("Nothing to paste")
		}
		logger.Error("Clipboard read failed: %v", err)
		return m.setError(err.Error())
	}

	cut := op == clipboard.OpCut
	if !m.browser.ExecutePaste(paths, cut) {
		return m.browserError()
	}
	if cut {
		m.clip.Clear()
	}
	return m.setStatus(fmt.Sprintf("Pasted %d item(s)", len(paths)))
}
