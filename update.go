package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/fx/internal/logger"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minTerminalWidth)
		m.height = max(msg.Height, minTerminalHeight)
		m.browser.UpdateScroll(m.listHeight())
		return m, nil

	case statusClearMsg:
		return m, nil

	case fileOpenResultMsg:
		return m, m.handleOpenResult(msg)

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.mode {
		case modeCreateFile, modeCreateDir, modeRename:
			cmd = m.handlePromptKeys(msg)
		case modeJump:
			cmd = m.handleJumpKeys(msg)
		case modeConfirmDelete:
			cmd = m.handleConfirmKeys(msg)
		case modeHelp:
			m.mode = modeNormal
		default:
			cmd = m.handleNormalKeys(msg)
		}
		m.browser.UpdateScroll(m.listHeight())
		return m, cmd
	}

	return m, nil
}

func (m *model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()

	if m.pendingKey == "d" {
		m.pendingKey = ""
		if k == "d" {
			return m.startDelete()
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Up):
		m.browser.SelectPrevious()
		return nil
	}

	half := max(m.listHeight()/2, 1)

	switch k {
	case "q", "esc":
		return tea.Quit
	case "j", "down":
		m.browser.SelectNext()
	case "k", "up":
		m.browser.SelectPrevious()
	case "g", "home":
		m.browser.SelectFirst()
	case "G", "end":
		m.browser.SelectLast()
	case "ctrl+d":
		m.browser.PageDown(half)
	case "ctrl+u":
		m.browser.PageUp(half)
	case "ctrl+f", "pgdown":
		m.browser.PageDown(m.listHeight())
	case "ctrl+b", "pgup":
		m.browser.PageUp(m.listHeight())

	case "h", "left", "backspace":
		return m.navigateUp()
	case "l", "right", "enter":
		return m.openSelected()

	case ".":
		if !m.browser.ToggleHidden() {
			return m.browserError()
		}
		if m.browser.ShowHidden() {
			return m.setStatus("Showing hidden files")
		}
		return m.setStatus("Hiding hidden files")
	case "s":
		return m.setStatus(fmt.Sprintf("Sort: %s", m.browser.CycleSortMode()))
	case "S":
		strict := !m.launcher.Strict()
		m.launcher.SetStrict(strict)
		logger.Info("Strict command checking set to %v", strict)
		if strict {
			return m.setStatus("Strict: only allow-listed commands run")
		}
		return m.setStatus("Strict off")
	case "R", "f5":
		if !m.browser.Refresh() {
			return m.browserError()
		}
		return m.setStatus("Refreshed")

	case "n":
		return m.startPrompt(modeCreateFile, "new file name", "")
	case "N":
		return m.startPrompt(modeCreateDir, "new directory name", "")
	case "r":
		entry, ok := m.browser.SelectedEntry()
		if !ok || entry.IsParent() {
			return nil
		}
		m.target = entry.Name
		return m.startPrompt(modeRename, "new name", entry.Name)
	case "d":
		m.pendingKey = "d"

	case "Y":
		return m.yank(false)
	case "x":
		return m.yank(true)
	case "p":
		return m.paste()

	case "/":
		return m.startPrompt(modeJump, "jump to", "")
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *model) navigateUp() tea.Cmd {
	from := filepath.Base(m.browser.CurrentPath())
	if !m.browser.NavigateUp() {
		return m.browserError()
	}
	m.browser.SelectByName(from)
	return nil
}

func (m *model) startPrompt(md mode, placeholder, value string) tea.Cmd {
	m.mode = md
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	return m.textInput.Focus()
}

func (m *model) endPrompt() {
	m.mode = modeNormal
	m.target = ""
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m *model) handlePromptKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.endPrompt()
		return nil
	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		md, target := m.mode, m.target
		m.endPrompt()
		if value == "" {
			return nil
		}
		return m.commitPrompt(md, target, value)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

func (m *model) commitPrompt(md mode, target, value string) tea.Cmd {
	switch md {
	case modeCreateFile:
		if !m.browser.CreateFile(value) {
			return m.browserError()
		}
		return m.setStatus(fmt.Sprintf("Created %s", value))
	case modeCreateDir:
		if !m.browser.CreateDirectory(value) {
			return m.browserError()
		}
		return m.setStatus(fmt.Sprintf("Created %s/", value))
	case modeRename:
		if value == target {
			return nil
		}
		if !m.browser.RenameEntry(m.browser.IndexOf(target), value) {
			return m.browserError()
		}
		return m.setStatus(fmt.Sprintf("Renamed %s to %s", target, value))
	}
	return nil
}

func (m *model) handleJumpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c", "enter":
		m.endPrompt()
		return nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.browser.SelectFuzzy(m.textInput.Value())
	return cmd
}

func (m *model) startDelete() tea.Cmd {
	entry, ok := m.browser.SelectedEntry()
	if !ok || entry.IsParent() {
		return nil
	}
	m.target = entry.Name
	m.mode = modeConfirmDelete
	return nil
}

func (m *model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	target := m.target
	m.mode = modeNormal
	m.target = ""

	switch msg.String() {
	case "y", "Y":
		if !m.browser.RemoveEntry(m.browser.IndexOf(target)) {
			return m.browserError()
		}
		logger.Info("Deleted %s", filepath.Join(m.browser.CurrentPath(), target))
		return m.setStatus(fmt.Sprintf("Deleted %s", target))
	}
	return m.setStatus("Delete cancelled")
}
