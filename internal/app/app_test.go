package app_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/livetree/internal/app"
	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports/mocks"
)

type appMocks struct {
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	builder *mocks.MockTreeBuilder
	ignores *mocks.MockIgnoreCompiler
	watcher *mocks.MockWatcher
	surface *mocks.MockSurface
}

func newApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		builder: mocks.NewMockTreeBuilder(ctrl),
		ignores: mocks.NewMockIgnoreCompiler(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		surface: mocks.NewMockSurface(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	a := app.New(m.loader, m.logger, m.builder, m.ignores, m.watcher, m.surface).
		WithOutput(io.Discard).
		WithHomeDir(func() (string, error) { return "", errors.New("no home") })
	return a, m
}

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func settingsFor(path string) domain.Settings {
	s := domain.DefaultSettings()
	s.Path = path
	return s
}

// expectSession sets up a terminal session that ends when the watcher reports the root deleted.
func (m *appMocks) expectSession(root string) {
	events := make(chan domain.WatchEvent, 1)
	events <- domain.RootDeleted()

	m.watcher.EXPECT().SetPanicHandler(gomock.Any())
	m.watcher.EXPECT().Watch(gomock.Any(), root, domain.DefaultDebounce).Return(events, nil)
	m.watcher.EXPECT().Close().Return(nil)

	m.builder.EXPECT().Build(root, gomock.Any()).Return(domain.TreeSnapshot{}).AnyTimes()

	m.surface.EXPECT().Size().Return(80, 24).AnyTimes()
	m.surface.EXPECT().Draw(gomock.Any()).Return(nil).AnyTimes()
	m.surface.EXPECT().Poll(gomock.Any()).DoAndReturn(func(d time.Duration) (domain.InputEvent, bool, error) {
		time.Sleep(d)
		return domain.InputEvent{}, false, nil
	}).AnyTimes()
	m.logger.EXPECT().Info("watched directory was deleted", gomock.Any()).AnyTimes()

	gomock.InOrder(
		m.logger.EXPECT().Configure(gomock.Any()).Return(nil),
		m.surface.EXPECT().Init().Return(nil),
		m.logger.EXPECT().Hold(),
		m.surface.EXPECT().Restore().Return(nil),
		m.logger.EXPECT().Release(),
	)
}

func TestApp_Run_FullSession(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		root := canonicalTempDir(t)
		a, m := newApp(t)

		m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
		m.ignores.EXPECT().Compile(domain.DefaultIgnores).Return(nil, nil)
		m.surface.EXPECT().SetTitle("Live Tree of " + filepath.Base(root))
		m.expectSession(root)

		err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(root)})
		require.NoError(t, err)
	})
}

func TestApp_Run_NoTitle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		root := canonicalTempDir(t)
		a, m := newApp(t)

		m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
		m.ignores.EXPECT().Compile(gomock.Any()).Return(nil, nil)
		m.expectSession(root)

		s := settingsFor(root)
		s.NoTitle = true
		require.NoError(t, a.Run(t.Context(), app.RunOptions{Settings: s}))
	})
}

func TestApp_Run_ConfigFileMerged(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		root := canonicalTempDir(t)
		a, m := newApp(t)

		level, showHidden, maxEntries := 2, true, 50
		m.loader.EXPECT().Load("/etc/livetree.yaml").Return(domain.ConfigFile{
			Level:      &level,
			ShowHidden: &showHidden,
			MaxEntries: &maxEntries,
			Ignore:     []string{"*.tmp"},
		}, nil)
		m.ignores.EXPECT().Compile(append(append([]string(nil), domain.DefaultIgnores...), "*.tmp", "*.log")).Return(nil, nil)
		m.surface.EXPECT().SetTitle(gomock.Any())

		var got domain.TreeConfig
		m.builder.EXPECT().Build(root, gomock.Any()).DoAndReturn(func(_ string, cfg domain.TreeConfig) domain.TreeSnapshot {
			got = cfg
			return domain.TreeSnapshot{}
		}).Times(1)
		m.expectSession(root)

		s := settingsFor(root)
		s.Ignore = []string{"*.log"}
		s.MaxEntries = 7
		err := a.Run(t.Context(), app.RunOptions{
			Settings:   s,
			ConfigPath: "/etc/livetree.yaml",
			Changed:    func(flag string) bool { return flag == domain.FlagMaxEntries },
		})
		require.NoError(t, err)

		assert.Equal(t, 2, got.MaxDepth, "file value fills an unset flag")
		assert.True(t, got.ShowHidden)
		assert.Equal(t, 7, got.MaxEntries, "explicit flag wins")
	})
}

func TestApp_Run_VerboseNoticeAndInvalidIgnores(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		root := canonicalTempDir(t)
		a, m := newApp(t)
		a.WithHomeDir(func() (string, error) { return filepath.Dir(root), nil })

		m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
		m.ignores.EXPECT().Compile(gomock.Any()).Return(nil, errors.Join(
			errors.New(`invalid ignore pattern: "["`),
			errors.New(`invalid ignore pattern: ""`),
		))
		m.logger.EXPECT().Warn(`skipping invalid ignore pattern: "["`)
		m.logger.EXPECT().Warn(`skipping invalid ignore pattern: ""`)
		m.logger.EXPECT().Info(
			"watching " + filepath.Join("~", filepath.Base(root)) + " (debounce=200ms, color=off)",
		)
		m.surface.EXPECT().SetTitle(gomock.Any())
		m.expectSession(root)

		s := settingsFor(root)
		s.Verbose = 1
		s.NoColor = true
		s.Ignore = []string{"[", ""}
		require.NoError(t, a.Run(t.Context(), app.RunOptions{Settings: s}))
	})
}

func TestApp_Run_NotADirectory(t *testing.T) {
	a, m := newApp(t)
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(nil)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(file)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
	assert.Equal(t, file+": Not a directory", err.Error())
}

func TestApp_Run_MissingRoot(t *testing.T) {
	a, m := newApp(t)
	missing := filepath.Join(t.TempDir(), "missing")

	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(nil)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(missing)})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFailedToResolveRoot.Error())
}

func TestApp_Run_ConfigLoadFails(t *testing.T) {
	a, m := newApp(t)
	loadErr := errors.New("boom")
	m.loader.EXPECT().Load("x.yaml").Return(domain.ConfigFile{}, loadErr)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor("."), ConfigPath: "x.yaml"})
	assert.ErrorIs(t, err, loadErr)
}

func TestApp_Run_LoggerConfigureFails(t *testing.T) {
	a, m := newApp(t)
	cfgErr := errors.New("log file")
	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(cfgErr)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(".")})
	assert.ErrorIs(t, err, cfgErr)
}

func TestApp_Run_WatchFails(t *testing.T) {
	root := canonicalTempDir(t)
	a, m := newApp(t)
	watchErr := errors.New("inotify limit")

	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(nil)
	m.ignores.EXPECT().Compile(gomock.Any()).Return(nil, nil)
	m.watcher.EXPECT().SetPanicHandler(gomock.Any())
	m.watcher.EXPECT().Watch(gomock.Any(), root, gomock.Any()).Return(nil, watchErr)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(root)})
	assert.ErrorIs(t, err, watchErr)
}

func TestApp_Run_SurfaceInitFails(t *testing.T) {
	root := canonicalTempDir(t)
	a, m := newApp(t)

	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(nil)
	m.ignores.EXPECT().Compile(gomock.Any()).Return(nil, nil)
	m.watcher.EXPECT().SetPanicHandler(gomock.Any())
	m.watcher.EXPECT().Watch(gomock.Any(), root, gomock.Any()).Return(make(chan domain.WatchEvent), nil)
	m.watcher.EXPECT().Close().Return(nil)
	m.surface.EXPECT().Init().Return(domain.ErrNotATerminal)

	err := a.Run(t.Context(), app.RunOptions{Settings: settingsFor(root)})
	assert.ErrorIs(t, err, domain.ErrNotATerminal)
}

func TestApp_Run_WatcherPanicRestoresSurface(t *testing.T) {
	root := canonicalTempDir(t)
	a, m := newApp(t)

	var handler func()
	m.loader.EXPECT().Load("").Return(domain.ConfigFile{}, nil)
	m.logger.EXPECT().Configure(gomock.Any()).Return(nil)
	m.ignores.EXPECT().Compile(gomock.Any()).Return(nil, nil)
	m.watcher.EXPECT().SetPanicHandler(gomock.Any()).Do(func(h func()) { handler = h })
	m.watcher.EXPECT().Watch(gomock.Any(), root, gomock.Any()).Return(nil, errors.New("stop here"))

	require.Error(t, a.Run(t.Context(), app.RunOptions{Settings: settingsFor(root)}))
	require.NotNil(t, handler)

	m.surface.EXPECT().Restore().Return(nil)
	assert.PanicsWithValue(t, "watcher goroutine", func() {
		defer handler()
		panic("watcher goroutine")
	})
}
