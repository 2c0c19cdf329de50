package figtag

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the read-only configuration handed to every resolver.
type Settings struct {
	// ContentRoot is the directory img sources are resolved under.
	ContentRoot string `yaml:"content_root"`
	// ErrorStrategy names how Expand handles failing tags: throw, remove, keepraw or log.
	ErrorStrategy string `yaml:"error_strategy"`
	// TagOpen and TagClose delimit tags in a document.
	TagOpen  string `yaml:"tag_open"`
	TagClose string `yaml:"tag_close"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		ContentRoot:   DefaultContentRoot,
		ErrorStrategy: ErrorStrategyNameThrow,
		TagOpen:       DefaultOpenDelim,
		TagClose:      DefaultCloseDelim,
	}
}

// ParseSettings decodes YAML settings on top of the defaults.
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, NewSettingsError(ErrMsgSettingsParse, "", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSettings reads YAML settings from path.
// A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, NewSettingsError(ErrMsgSettingsRead, path, err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return nil, NewSettingsError(ErrMsgSettingsParse, path, err)
	}
	return s, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.ContentRoot == "" {
		return NewSettingsError(ErrMsgEmptyContentRoot, "", nil)
	}
	if s.TagOpen == "" || s.TagClose == "" {
		return NewSettingsError(ErrMsgInvalidDelimiters, "", nil)
	}
	if s.ErrorStrategy != "" && !IsValidErrorStrategy(s.ErrorStrategy) {
		return NewInvalidStrategyError(s.ErrorStrategy)
	}
	return nil
}

// Clone returns a copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}
