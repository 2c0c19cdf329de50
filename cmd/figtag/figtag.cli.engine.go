package main

import (
	"io"

	"github.com/itsatony/go-figtag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// engineFlags are the flags shared by render and tag
type engineFlags struct {
	configPath  string
	contentRoot string
	strategy    string
	verbose     bool
}

// newLogger returns a console logger on stderr when verbose, otherwise a no-op logger
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// buildEngine loads settings and applies flag overrides on top of them
func buildEngine(f engineFlags, logger *zap.Logger) (*figtag.Engine, error) {
	settings, err := figtag.LoadSettings(f.configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug(figtag.LogMsgSettingsLoaded,
		zap.String(figtag.LogFieldPath, f.configPath),
		zap.String(figtag.LogFieldStrategy, settings.ErrorStrategy))

	opts := []figtag.Option{
		figtag.WithSettings(settings),
		figtag.WithContentRoot(f.contentRoot),
		figtag.WithLogger(logger),
	}
	if f.strategy != "" {
		opts = append(opts, figtag.WithErrorStrategy(figtag.ParseErrorStrategy(f.strategy)))
	}
	return figtag.New(opts...)
}
