// Package app implements the application layer for livetree.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
	"go.trai.ch/livetree/internal/engine/loop"
	"go.trai.ch/livetree/internal/ui/output"
	"go.trai.ch/livetree/internal/ui/render"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	builder      ports.TreeBuilder
	ignores      ports.IgnoreCompiler
	watcher      ports.Watcher
	surface      ports.Surface
	output       io.Writer
	homeDir      func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	builder ports.TreeBuilder,
	ignores ports.IgnoreCompiler,
	watcher ports.Watcher,
	surface ports.Surface,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		builder:      builder,
		ignores:      ignores,
		watcher:      watcher,
		surface:      surface,
		output:       os.Stdout,
		homeDir:      os.UserHomeDir,
	}
}

// WithOutput sets the writer the color profile is resolved for.
func (a *App) WithOutput(w io.Writer) *App {
	a.output = w
	return a
}

// WithHomeDir replaces the home directory lookup used to shorten the displayed path.
func (a *App) WithHomeDir(fn func() (string, error)) *App {
	a.homeDir = fn
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Settings holds the values from the command line, including defaults.
	Settings domain.Settings
	// ConfigPath selects the config file; empty means the default location.
	ConfigPath string
	// Changed reports whether a flag was given explicitly. Nil means none were.
	Changed func(flag string) bool
}

// Run resolves the settings, validates the root and watches it until the user quits.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) (retErr error) {
	// 1. Resolve settings
	settings, err := a.resolveSettings(opts)
	if err != nil {
		return err
	}
	if err := a.logger.Configure(settings); err != nil {
		return err
	}

	// 2. Validate the root
	root, err := resolveRoot(settings.Path)
	if err != nil {
		return err
	}

	// 3. Compile ignores; invalid patterns are skipped
	matcher, err := a.ignores.Compile(settings.IgnorePatterns())
	if err != nil {
		a.warnInvalidPatterns(err)
	}

	display := render.DisplayPath(root, a.home())
	if settings.Verbose > 0 {
		a.logger.Info(fmt.Sprintf("watching %s (debounce=%dms, color=%s)",
			display, settings.Debounce.Milliseconds(), onOff(!settings.NoColor)))
	}

	// 4. Start watching. A panic on a watcher goroutine restores the terminal before crashing.
	guard := loop.NewGuard(a.surface)
	a.watcher.SetPanicHandler(guard.Recover)
	events, err := a.watcher.Watch(ctx, root, settings.Debounce)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Close(); err != nil {
			a.logger.Debug("watcher close failed", "error", err)
		}
	}()

	// 5. Take over the terminal
	if err := a.surface.Init(); err != nil {
		return err
	}
	a.logger.Hold()
	defer a.logger.Release()

	defer func() {
		retErr = errors.Join(retErr, guard.Release())
	}()
	defer guard.Recover()

	if !settings.NoTitle {
		cols, _ := a.surface.Size()
		if title := render.Title(root, cols); title != "" {
			a.surface.SetTitle(title)
		}
	}

	// 6. Run the event loop
	l := loop.New(a.surface, a.builder, a.logger, render.New(a.output, settings.NoColor), guard, loop.Options{
		Root:        root,
		DisplayPath: display,
		Tree:        settings.TreeConfig(matcher),
		Highlight:   settings.Highlight,
		Quiet:       settings.Quiet,
	})
	return l.Run(ctx, events)
}

func (a *App) resolveSettings(opts RunOptions) (domain.Settings, error) {
	file, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, err
	}

	changed := opts.Changed
	if changed == nil {
		changed = func(string) bool { return false }
	}
	return opts.Settings.Merge(file, changed).Validated(output.NoColorEnv()), nil
}

// resolveRoot checks that path is an existing directory and returns its canonical form.
func resolveRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRoot.Error()), "path", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, domain.ErrNotADirectory)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRoot.Error()), "path", path)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRoot.Error()), "path", path)
	}
	return canonical, nil
}

func (a *App) warnInvalidPatterns(err error) {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		a.logger.Warn("skipping " + err.Error())
		return
	}
	for _, e := range joined.Unwrap() {
		a.logger.Warn("skipping " + e.Error())
	}
}

func (a *App) home() string {
	if a.homeDir == nil {
		return ""
	}
	home, err := a.homeDir()
	if err != nil {
		return ""
	}
	return home
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
