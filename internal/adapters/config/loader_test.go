package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/livetree/internal/adapters/config"
	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports/mocks"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T, env map[string]string, home string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoaderWithEnv(log, env, home)
}

func TestParse_AllKeys(t *testing.T) {
	content := `
ignore: ["*.log", "dist"]
show_hidden: true
dirs_only: false
follow_symlinks: true
level: 4
debounce_ms: 500
no_color: true
no_title: true
max_entries: 200
highlight_seconds: 10
default_ignores: false
log_file: /tmp/livetree.log
`
	file, err := config.Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"*.log", "dist"}, file.Ignore)
	require.NotNil(t, file.ShowHidden)
	assert.True(t, *file.ShowHidden)
	require.NotNil(t, file.DirsOnly)
	assert.False(t, *file.DirsOnly)
	require.NotNil(t, file.FollowSymlinks)
	assert.True(t, *file.FollowSymlinks)
	require.NotNil(t, file.Level)
	assert.Equal(t, 4, *file.Level)
	require.NotNil(t, file.DebounceMS)
	assert.Equal(t, 500, *file.DebounceMS)
	require.NotNil(t, file.NoColor)
	assert.True(t, *file.NoColor)
	require.NotNil(t, file.NoTitle)
	assert.True(t, *file.NoTitle)
	require.NotNil(t, file.MaxEntries)
	assert.Equal(t, 200, *file.MaxEntries)
	require.NotNil(t, file.HighlightSeconds)
	assert.Equal(t, 10, *file.HighlightSeconds)
	require.NotNil(t, file.DefaultIgnores)
	assert.False(t, *file.DefaultIgnores)
	require.NotNil(t, file.LogFile)
	assert.Equal(t, "/tmp/livetree.log", *file.LogFile)
}

func TestParse_AbsentKeysStayNil(t *testing.T) {
	file, err := config.Parse([]byte("level: 2\n"))
	require.NoError(t, err)

	require.NotNil(t, file.Level)
	assert.Equal(t, 2, *file.Level)
	assert.Nil(t, file.ShowHidden)
	assert.Nil(t, file.DebounceMS)
	assert.Empty(t, file.Ignore)
}

func TestParse_Empty(t *testing.T) {
	file, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigFile{}, file)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "colour: never\n"},
		{"wrong type", "level: deep\n"},
		{"malformed", "ignore: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "max_entries: 42\n")

	file, err := newLoader(t, nil, t.TempDir()).Load(path)
	require.NoError(t, err)
	require.NotNil(t, file.MaxEntries)
	assert.Equal(t, 42, *file.MaxEntries)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newLoader(t, nil, t.TempDir()).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, path, "level: [1\n")

	_, err := newLoader(t, nil, t.TempDir()).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}
