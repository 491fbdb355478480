package domain

import "time"

// ConfigFile holds the values read from the optional config file.
// Nil fields were not present in the file.
type ConfigFile struct {
	Ignore           []string
	ShowHidden       *bool
	DirsOnly         *bool
	FollowSymlinks   *bool
	Level            *int
	DebounceMS       *int
	NoColor          *bool
	NoTitle          *bool
	MaxEntries       *int
	HighlightSeconds *int
	DefaultIgnores   *bool
	LogFile          *string
}

// Flag names shared by the command line and config merging.
const (
	FlagLevel            = "level"
	FlagIgnore           = "ignore"
	FlagAll              = "all"
	FlagDirsOnly         = "dirs-only"
	FlagFollowSymlinks   = "follow-symlinks"
	FlagDebounce         = "debounce"
	FlagNoColor          = "no-color"
	FlagVerbose          = "verbose"
	FlagQuiet            = "quiet"
	FlagNoTitle          = "no-title"
	FlagMaxEntries       = "max-entries"
	FlagHighlight        = "highlight"
	FlagNoDefaultIgnores = "no-default-ignores"
	FlagLogFile          = "log-file"
	FlagConfig           = "config"
)

// Merge fills s from the config file for every value whose flag was not set explicitly.
// changed reports whether the named flag was given on the command line.
// Ignore patterns from the file are prepended to the ones from the command line.
func (s Settings) Merge(file ConfigFile, changed func(flag string) bool) Settings {
	out := s

	if len(file.Ignore) > 0 {
		out.Ignore = append(append([]string(nil), file.Ignore...), s.Ignore...)
	}
	mergeBool(&out.ShowHidden, file.ShowHidden, changed(FlagAll))
	mergeBool(&out.DirsOnly, file.DirsOnly, changed(FlagDirsOnly))
	mergeBool(&out.FollowSymlinks, file.FollowSymlinks, changed(FlagFollowSymlinks))
	mergeBool(&out.NoColor, file.NoColor, changed(FlagNoColor))
	mergeBool(&out.NoTitle, file.NoTitle, changed(FlagNoTitle))

	if file.Level != nil && !changed(FlagLevel) {
		out.MaxDepth = *file.Level
	}
	if file.DebounceMS != nil && !changed(FlagDebounce) {
		out.Debounce = time.Duration(*file.DebounceMS) * time.Millisecond
	}
	if file.MaxEntries != nil && !changed(FlagMaxEntries) {
		out.MaxEntries = *file.MaxEntries
	}
	if file.HighlightSeconds != nil && !changed(FlagHighlight) {
		out.Highlight = time.Duration(*file.HighlightSeconds) * time.Second
	}
	if file.DefaultIgnores != nil && !changed(FlagNoDefaultIgnores) {
		out.NoDefaultIgnores = !*file.DefaultIgnores
	}
	if file.LogFile != nil && !changed(FlagLogFile) {
		out.LogFile = *file.LogFile
	}
	return out
}

func mergeBool(dst *bool, src *bool, explicit bool) {
	if src != nil && !explicit {
		*dst = *src
	}
}
