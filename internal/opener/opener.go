// Package opener launches external programs on files without a shell.
//
// Commands are split into argv by ParseCommand and executed directly, so shell
// metacharacters in handler strings or file names are passed through as plain
// argument text. Around every launch the Launcher hands the terminal over
// through its Terminal, so a full-screen UI can step aside for an editor.
package opener

import (
	"errors"
	"fmt"

	"github.com/LFroesch/fx/internal/logger"
)

var (
	ErrInvalidPath       = errors.New("invalid or inaccessible file path")
	ErrPathEscapesBase   = errors.New("path escapes the allowed base directory")
	ErrCommandNotAllowed = errors.New("command not in allowed whitelist")
	ErrEmptyCommand      = errors.New("empty command")
	ErrForkFailed        = errors.New("failed to start process")
	ErrExecFailed        = errors.New("failed to execute command")
)

// Config describes one open attempt.
type Config struct {
	Command string
	// WaitForCompletion runs the command in the foreground with the terminal
	// handed to it. Otherwise it is detached from the session.
	WaitForCompletion bool
	ValidateCommand   bool
	// AllowedBaseDir, when set, rejects files outside it.
	AllowedBaseDir string
}

// Result is the outcome of one open attempt.
type Result struct {
	Success      bool
	ErrorMessage string
	// Err carries the sentinel for errors.Is, nil on success.
	Err error
}

func ok() Result {
	return Result{Success: true}
}

func failed(err error) Result {
	return Result{ErrorMessage: err.Error(), Err: err}
}

// Terminal releases and reclaims the presentation layer's hold on the terminal.
type Terminal interface {
	Suspend() error
	Resume() error
}

type nopTerminal struct{}

func (nopTerminal) Suspend() error { return nil }
func (nopTerminal) Resume() error { return nil }

// spawner is the process boundary.
type spawner interface {
	Foreground(argv []string) error
	Detached(argv []string) error
	DefaultOpen(path string) error
}

// Launcher is not reentrant: one launch at a time.
type Launcher struct {
	term    Terminal
	spawn   spawner
	allowed map[string]struct{}
	strict  bool
}

type Option func(*Launcher)

// WithTerminal installs the suspend/resume pair used around launches.
func WithTerminal(t Terminal) Option {
	return func(l *Launcher) {
		if t != nil {
			l.term = t
		}
	}
}

// WithStrict enables the command allow-list by default.
func WithStrict(strict bool) Option {
	return func(l *Launcher) {
		l.strict = strict
	}
}

func withSpawner(s spawner) Option {
	return func(l *Launcher) {
		l.spawn = s
	}
}

// New returns a Launcher with the default allow-list.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		term:    nopTerminal{},
		spawn:   newExecSpawner(),
		allowed: make(map[string]struct{}, len(defaultAllowedCommands)),
	}
	for _, name := range defaultAllowedCommands {
		l.allowed[name] = struct{}{}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OpenWith runs cfg.Command with the file appended as its last argument.
func (l *Launcher) OpenWith(path string, cfg Config) Result {
	target, err := ValidatePath(path, cfg.AllowedBaseDir)
	if err != nil {
		return failed(err)
	}

	argv := ParseCommand(cfg.Command)
	if len(argv) == 0 {
		return failed(ErrEmptyCommand)
	}
	if cfg.ValidateCommand && !l.isAllowed(argv[0]) {
		return failed(fmt.Errorf("%w: %s", ErrCommandNotAllowed, argv[0]))
	}
	argv = append(argv, target)

	logger.Debug("Launching %q (wait=%v)", argv, cfg.WaitForCompletion)
	err = l.withTerminal(func() error {
		if cfg.WaitForCompletion {
			return l.spawn.Foreground(argv)
		}
		return l.spawn.Detached(argv)
	})
	if err != nil {
		logger.Error("Open %s with %s: %v", target, argv[0], err)
		return failed(err)
	}
	return ok()
}

// OpenWithDefault hands the file to the platform's default opener without waiting.
func (l *Launcher) OpenWithDefault(path string) Result {
	target, err := ValidatePath(path, "")
	if err != nil {
		return failed(err)
	}

	err = l.withTerminal(func() error {
		return l.spawn.DefaultOpen(target)
	})
	if err != nil {
		logger.Error("Default open %s: %v", target, err)
		return failed(err)
	}
	return ok()
}

// withTerminal suspends the terminal, runs fn and always resumes, even when
// suspend failed or fn panics.
func (l *Launcher) withTerminal(fn func() error) error {
	if err := l.term.Suspend(); err != nil {
		logger.Warn("Suspend terminal: %v", err)
	}
	defer func() {
		if err := l.term.Resume(); err != nil {
			logger.Warn("Resume terminal: %v", err)
		}
	}()
	return fn()
}
