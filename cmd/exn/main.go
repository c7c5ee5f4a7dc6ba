package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/exnwm/exn/internal/config"
	"github.com/exnwm/exn/internal/hotkeys"
	"github.com/exnwm/exn/internal/launch"
	"github.com/exnwm/exn/internal/logging"
	"github.com/exnwm/exn/internal/platform"
	"github.com/exnwm/exn/internal/wm"
	"github.com/exnwm/exn/internal/x11"
	"github.com/rs/zerolog"
)

var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	configPath string
	display    string
	explain    string
	check      bool
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: exn [-hnv] [-c config] [-d display] [-e yaml.path]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  -c config     Config file (default: ~/.config/exn/config.yaml)")
	fmt.Fprintln(w, "  -d display    X display to manage (default: $DISPLAY)")
	fmt.Fprintln(w, "  -e yaml.path  Print an effective config value and where it came from")
	fmt.Fprintln(w, "  -n            Validate the config and keybindings, then exit")
	fmt.Fprintln(w, "  -v            Print the version and exit")
	fmt.Fprintln(w, "  -h            Show this help")
}

func parseArgs(args []string, stdout, stderr io.Writer) (options, int, bool) {
	var o options
	opts, optind, err := getopt.Getopts(args, "c:d:e:hnv")
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return o, exitUsage, false
	}
	if optind < len(args) {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", args[optind])
		printUsage(stderr)
		return o, exitUsage, false
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			o.configPath = opt.Value
		case 'd':
			o.display = opt.Value
		case 'e':
			o.explain = opt.Value
		case 'n':
			o.check = true
		case 'h':
			printUsage(stdout)
			return o, exitOK, false
		case 'v':
			fmt.Fprintf(stdout, "exn %s\n", version)
			return o, exitOK, false
		}
	}
	return o, exitOK, true
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func run(args []string, stdout, stderr io.Writer) int {
	o, code, proceed := parseArgs(args, stdout, stderr)
	if !proceed {
		return code
	}

	res, err := loadConfig(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	cfg := res.Config

	if o.explain != "" {
		value, src, err := config.Explain(res, o.explain)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		fmt.Fprintf(stdout, "%s: %v (%s)\n", o.explain, value, src)
		return exitOK
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if o.check {
		file := res.File
		if file == "" {
			file = "defaults"
		}
		fmt.Fprintf(stdout, "config: ok (%s, %d keybindings)\n", file, len(bindings))
		return exitOK
	}

	log, closer, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		File:      cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	})
	if err != nil {
		fmt.Fprintf(stderr, "failed to set up logging: %v\n", err)
		return exitFailure
	}
	defer closer.Close()

	display := o.display
	if display == "" {
		display = cfg.Display
	}
	if err := manage(display, cfg, bindings, log); err != nil {
		if errors.Is(err, x11.ErrAnotherWM) {
			log.Error().Msg("another window manager is already running")
		} else {
			log.Error().Err(err).Msg("exn stopped")
		}
		return exitFailure
	}
	return exitOK
}

func manage(display string, cfg *config.Config, bindings []wm.Binding, log zerolog.Logger) error {
	backend, err := platform.NewLinuxBackendFromDisplay(display, log)
	if err != nil {
		return err
	}
	disconnect := sync.OnceFunc(backend.Disconnect)
	defer disconnect()

	discovered, err := backend.Displays()
	if err != nil {
		if len(cfg.Monitors) == 0 {
			return fmt.Errorf("failed to query monitors: %w", err)
		}
		log.Warn().Err(err).Msg("monitor discovery failed, using configured monitors")
	}
	displays := cfg.Displays(discovered)
	for _, d := range displays {
		log.Info().
			Int("monitor", d.ID).
			Str("name", d.Name).
			Int("x", d.Bounds.X).
			Int("y", d.Bounds.Y).
			Int("width", d.Bounds.Width).
			Int("height", d.Bounds.Height).
			Msg("monitor")
	}

	keymap := wm.NewKeymap(bindings)
	if err := hotkeys.NewHandler(backend, log).Register(keymap); err != nil {
		log.Warn().Err(err).Msg("some hotkeys could not be grabbed")
	}

	m, err := wm.New(backend, displays, wm.Options{
		Workspaces:     cfg.Workspaces,
		WrapMonitors:   cfg.WrapMonitors,
		WrapWorkspaces: cfg.WrapWorkspaces,
		WrapWindows:    cfg.WrapWindows,
		Keymap:         keymap,
		Launcher:       launch.New(display, log),
		Logger:         log,
	})
	if err != nil {
		return err
	}

	existing, err := backend.ExistingWindows()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list existing windows")
	}
	if n := m.Adopt(existing); n > 0 {
		log.Info().Int("windows", n).Msg("adopted existing windows")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go func() {
		// Closing the connection unblocks the pending event wait.
		<-ctx.Done()
		disconnect()
	}()

	log.Info().Str("version", version).Int("monitors", len(displays)).Int("workspaces", cfg.Workspaces).Msg("exn started")
	return m.Run(ctx, backend)
}
