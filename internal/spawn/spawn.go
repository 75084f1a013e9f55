// Package spawn runs the submitted command line as a detached child of the
// user's shell. The launcher exits right after submitting, so the child is
// started in its own session with no inherited stdio — the terminal
// equivalent of fork-and-exec-then-leave.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/gen2brain/beeep"
)

const defaultShell = "/bin/sh"

// Launcher resolves the shell and starts commands with it.
type Launcher struct {
	shell  string // overrides environment resolution when set
	notify bool
}

// New returns a launcher. An empty shell means resolve from $SHELL at
// launch time, falling back to /bin/sh.
func New(shell string) *Launcher {
	return &Launcher{shell: shell, notify: true}
}

// Launch starts `<shell> -c <commandLine>` detached and returns without
// waiting. By the time a start failure surfaces the popup is gone, so the
// failure is also reported as a desktop notification.
func (l *Launcher) Launch(commandLine string) error {
	shell := l.shell
	if shell == "" {
		shell = resolveShell(os.Getenv)
	}

	cmd := exec.Command(shell, "-c", commandLine)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		err = fmt.Errorf("failed to launch %q: %w", commandLine, err)
		if l.notify {
			// Best effort; there is nowhere else to report to.
			_ = beeep.Notify("thingylaunch", err.Error(), "")
		}
		return err
	}

	// The child belongs to its own session now; don't hold on to it.
	return cmd.Process.Release()
}

// resolveShell picks the shell from the environment, with a fixed fallback
// when $SHELL is unset. The lookup is injected for testing.
func resolveShell(getenv func(string) string) string {
	if shell := getenv("SHELL"); shell != "" {
		return shell
	}
	return defaultShell
}
