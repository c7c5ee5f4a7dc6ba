package launch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Launcher starts programs detached from the window manager. Children run
// in their own session so they outlive a restart and never receive the
// manager's terminal signals.
type Launcher struct {
	display string
	log     zerolog.Logger
}

// New returns a launcher. A non-empty display is exported to children as
// DISPLAY, so they connect to the server being managed.
func New(display string, log zerolog.Logger) *Launcher {
	return &Launcher{display: display, log: log}
}

// Launch starts name with args and returns once the process exists. The
// child is reaped in the background; its exit status is only logged.
func (l *Launcher) Launch(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = detached()
	if l.display != "" {
		cmd.Env = append(os.Environ(), "DISPLAY="+l.display)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %s: %w", name, err)
	}
	l.log.Info().Str("program", name).Int("pid", cmd.Process.Pid).Msg("launched")

	go func() {
		if err := cmd.Wait(); err != nil {
			l.log.Debug().Err(err).Str("program", name).Msg("launched program exited")
		}
	}()
	return nil
}
