package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-figtag"
)

// tagConfig holds parsed tag command configuration
type tagConfig struct {
	engineFlags
	markup string
}

func runTag(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseTagFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine, err := buildEngine(cfg.engineFlags, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeInputError
	}

	result, err := engine.RenderTag(context.Background(), figtag.TagNameImage, cfg.markup)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		if figtag.IsMarkupSyntaxError(err) {
			return ExitCodeUsageError
		}
		return ExitCodeError
	}

	fmt.Fprintln(stdout, result)
	return ExitCodeSuccess
}

func parseTagFlags(args []string) (*tagConfig, error) {
	fs := flag.NewFlagSet(CmdNameTag, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &tagConfig{}

	fs.StringVar(&cfg.markup, FlagMarkup, "", "")
	fs.StringVar(&cfg.markup, FlagMarkupShort, "", "")
	bindEngineFlags(fs, &cfg.engineFlags)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.markup == "" {
		return nil, errors.New(ErrMsgMissingMarkup)
	}

	return cfg, nil
}
