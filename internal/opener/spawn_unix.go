//go:build unix

package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/LFroesch/fx/internal/logger"
)

type execSpawner struct {
	// useTTY hands the controlling terminal to foreground children when stdin is one.
	useTTY bool
}

func newExecSpawner() spawner {
	return execSpawner{useTTY: true}
}

// Foreground runs argv in its own process group, makes that group the
// terminal's foreground group and waits. The parent takes the terminal back
// afterwards.
func (s execSpawner) Foreground(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	tty := s.controllingTTY()
	if tty != nil {
		defer tty.Close()
		// the child runs tcsetpgrp on itself before exec
		cmd.SysProcAttr = &syscall.SysProcAttr{
			Setpgid:    true,
			Foreground: true,
			Ctty:       int(tty.Fd()),
		}
	}

	// Start returns once exec has succeeded, so the child never sees the
	// dispositions installed below.
	if err := cmd.Start(); err != nil {
		return startError(argv[0], err)
	}

	restore := ignoreJobControl()
	defer restore()

	waitErr := cmd.Wait()

	if tty != nil {
		if err := unix.IoctlSetPointerInt(int(tty.Fd()), unix.TIOCSPGRP, unix.Getpgrp()); err != nil {
			logger.Warn("Reclaim terminal foreground group: %v", err)
		}
	}

	if waitErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecFailed, argv[0], waitErr)
	}
	return nil
}

// Detached starts argv in a new session with stdio on the null device and
// does not wait. The exit status is only logged.
func (execSpawner) Detached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return startError(argv[0], err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("Detached %s exited: %v", argv[0], err)
		}
	}()
	return nil
}

// DefaultOpen runs the platform opener detached.
func (s execSpawner) DefaultOpen(path string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return s.Detached([]string{opener, path})
}

func (s execSpawner) controllingTTY() *os.File {
	if !s.useTTY || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		logger.Warn("Open /dev/tty: %v", err)
		return nil
	}
	return tty
}

// ignoreJobControl keeps terminal job-control signals from stopping the
// parent while a child owns the terminal. SIGWINCH and SIGCONT are caught
// rather than ignored so existing Notify registrations survive.
func ignoreJobControl() (restore func()) {
	stops := []os.Signal{syscall.SIGTSTP, syscall.SIGTTIN, syscall.SIGTTOU}
	signal.Ignore(stops...)

	sink := make(chan os.Signal, 1)
	signal.Notify(sink, syscall.SIGWINCH, syscall.SIGCONT)

	return func() {
		signal.Stop(sink)
		signal.Reset(stops...)
	}
}

func startError(name string, err error) error {
	if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM) {
		return fmt.Errorf("%w: %s: %w", ErrForkFailed, name, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrExecFailed, name, err)
}
