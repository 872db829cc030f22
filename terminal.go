package main

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// terminalController lends the screen to foreground child processes. The
// program is attached after tea.NewProgram, so it starts out empty.
type terminalController struct {
	mu      sync.Mutex
	program *tea.Program
}

func (t *terminalController) attach(p *tea.Program) {
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()
}

func (t *terminalController) current() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.program
}

// Suspend leaves the alt screen and restores cooked mode.
func (t *terminalController) Suspend() error {
	if p := t.current(); p != nil {
		return p.ReleaseTerminal()
	}
	return nil
}

// Resume puts the UI back and forces a repaint.
func (t *terminalController) Resume() error {
	if p := t.current(); p != nil {
		return p.RestoreTerminal()
	}
	return nil
}
