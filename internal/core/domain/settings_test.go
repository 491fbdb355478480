package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/livetree/internal/core/domain"
)

func TestSettings_Validated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    domain.Settings
		env   bool
		check func(t *testing.T, s domain.Settings)
	}{
		{
			name: "debounce floor",
			in:   domain.Settings{Debounce: 10 * time.Millisecond},
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, domain.MinDebounce, s.Debounce)
			},
		},
		{
			name: "quiet resets verbose",
			in:   domain.Settings{Verbose: 3, Quiet: true},
			check: func(t *testing.T, s domain.Settings) {
				assert.Zero(t, s.Verbose)
			},
		},
		{
			name: "highlight clamp",
			in:   domain.Settings{Highlight: 2 * time.Hour},
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, domain.MaxHighlight, s.Highlight)
			},
		},
		{
			name: "NO_COLOR forces no color",
			in:   domain.Settings{},
			env:  true,
			check: func(t *testing.T, s domain.Settings) {
				assert.True(t, s.NoColor)
			},
		},
		{
			name: "empty path defaults to dot",
			in:   domain.Settings{MaxEntries: -1},
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, ".", s.Path)
				assert.Zero(t, s.MaxEntries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, tt.in.Validated(tt.env))
		})
	}
}

func TestSettings_IgnorePatterns(t *testing.T) {
	t.Parallel()

	s := domain.DefaultSettings()
	s.Ignore = []string{"*.log"}
	assert.Equal(t, []string{".git", "node_modules", "__pycache__", ".DS_Store", "*.log"}, s.IgnorePatterns())

	s.NoDefaultIgnores = true
	assert.Equal(t, []string{"*.log"}, s.IgnorePatterns())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/home/u/.config", "livetree", "config.yaml"),
		domain.DefaultConfigPath("/home/u/.config"))
}
