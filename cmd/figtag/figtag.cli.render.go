package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-figtag"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	engineFlags
	inputPath  string
	outputPath string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine, err := buildEngine(cfg.engineFlags, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeInputError
	}

	result, err := engine.Expand(context.Background(), string(source))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExpandFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &renderConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	bindEngineFlags(fs, &cfg.engineFlags)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if cfg.strategy != "" && !figtag.IsValidErrorStrategy(cfg.strategy) {
		return nil, errors.New(ErrMsgInvalidStrategy)
	}

	return cfg, nil
}

// bindEngineFlags registers the shared engine flags on fs
func bindEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.configPath, FlagConfig, FlagDefaultConfig, "")
	fs.StringVar(&f.configPath, FlagConfigShort, FlagDefaultConfig, "")
	fs.StringVar(&f.contentRoot, FlagContentRoot, "", "")
	fs.StringVar(&f.contentRoot, FlagContentRootShort, "", "")
	fs.StringVar(&f.strategy, FlagStrategy, "", "")
	fs.StringVar(&f.strategy, FlagStrategyShort, "", "")
	fs.BoolVar(&f.verbose, FlagVerbose, false, "")
	fs.BoolVar(&f.verbose, FlagVerboseShort, false, "")
}
