//go:build windows

package opener

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/fx/internal/logger"
)

// execSpawner has no process-group or console hand-off on windows.
type execSpawner struct{}

func newExecSpawner() spawner {
	return execSpawner{}
}

func (execSpawner) Foreground(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecFailed, argv[0], err)
	}
	return nil
}

func (execSpawner) Detached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecFailed, argv[0], err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("Detached %s exited: %v", argv[0], err)
		}
	}()
	return nil
}

// DefaultOpen goes through the shell's file association.
func (execSpawner) DefaultOpen(path string) error {
	if err := open.Start(path); err != nil {
		return fmt.Errorf("%w: %w", ErrExecFailed, err)
	}
	return nil
}
