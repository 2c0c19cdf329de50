package figtag

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	settings      *Settings
	errorStrategy *ErrorStrategy
	dims          DimensionReader
	logger        *zap.Logger
	skipBuiltins  bool
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		settings: DefaultSettings(),
	}
}

// WithSettings replaces the settings handed to resolvers.
// Empty fields keep their defaults.
func WithSettings(s *Settings) Option {
	return func(c *engineConfig) {
		if s == nil {
			return
		}
		if s.ContentRoot != "" {
			c.settings.ContentRoot = s.ContentRoot
		}
		if s.ErrorStrategy != "" {
			c.settings.ErrorStrategy = s.ErrorStrategy
		}
		if s.TagOpen != "" {
			c.settings.TagOpen = s.TagOpen
		}
		if s.TagClose != "" {
			c.settings.TagClose = s.TagClose
		}
	}
}

// WithContentRoot sets the directory image sources are resolved under.
// Default: "content"
func WithContentRoot(root string) Option {
	return func(c *engineConfig) {
		if root != "" {
			c.settings.ContentRoot = root
		}
	}
}

// WithDelimiters sets custom tag delimiters.
// Default: "{%" and "%}"
func WithDelimiters(open, close string) Option {
	return func(c *engineConfig) {
		if open != "" {
			c.settings.TagOpen = open
		}
		if close != "" {
			c.settings.TagClose = close
		}
	}
}

// WithErrorStrategy sets how Expand handles failing tags.
// It takes precedence over the strategy named in the settings.
// Default: ErrorStrategyThrow
func WithErrorStrategy(strategy ErrorStrategy) Option {
	return func(c *engineConfig) {
		c.errorStrategy = &strategy
	}
}

// WithDimensionReader sets how the img resolver reads image widths.
// Default: ImageConfigReader
func WithDimensionReader(dims DimensionReader) Option {
	return func(c *engineConfig) {
		c.dims = dims
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithoutBuiltins creates the engine without the img resolver registered.
func WithoutBuiltins() Option {
	return func(c *engineConfig) {
		c.skipBuiltins = true
	}
}
