package figtag

import (
	"context"
	"errors"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-figtag/internal"
	"go.uber.org/zap"
)

// Engine is the plugin host: it owns the tag registry, expands tags found in
// documents and hands each resolver the shared read-only settings.
type Engine struct {
	registry *internal.Registry
	settings *Settings
	strategy ErrorStrategy
	logger   *zap.Logger
}

// New creates an Engine with the img resolver registered.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := config.settings.Validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	strategy := ParseErrorStrategy(config.settings.ErrorStrategy)
	if config.errorStrategy != nil {
		strategy = *config.errorStrategy
	}

	e := &Engine{
		registry: internal.NewRegistry(logger),
		settings: config.settings,
		strategy: strategy,
		logger:   logger,
	}

	if !config.skipBuiltins {
		if err := e.Register(NewImageTag(config.dims, logger)); err != nil {
			return nil, err
		}
	}

	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldStrategy, strategy.String()),
		zap.Strings(LogFieldTags, e.ListResolvers()))
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Register adds a resolver to the engine.
// Returns an error if a resolver for the same tag name is already registered.
func (e *Engine) Register(r Resolver) error {
	if r == nil {
		return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilResolver)
	}
	if err := e.registry.Register(&resolverAdapter{resolver: r}); err != nil {
		return cuserr.WrapStdError(err, ErrCodeRegistry, ErrMsgResolverExists).
			WithMetadata(MetaKeyTag, r.TagName())
	}
	return nil
}

// MustRegister adds a resolver and panics if registration fails.
func (e *Engine) MustRegister(r Resolver) {
	if err := e.Register(r); err != nil {
		panic(err)
	}
}

// HasResolver checks if a resolver is registered for the tag name.
func (e *Engine) HasResolver(tagName string) bool {
	return e.registry.Has(tagName)
}

// ListResolvers returns all registered tag names in sorted order.
func (e *Engine) ListResolvers() []string {
	return e.registry.List()
}

// Settings returns a copy of the engine's settings.
func (e *Engine) Settings() *Settings {
	return e.settings.Clone()
}

// ErrorStrategy returns the strategy applied by Expand.
func (e *Engine) ErrorStrategy() ErrorStrategy {
	return e.strategy
}

// RenderTag runs the resolver for tagName on one tag body. Errors are
// returned unchanged; the error strategy only applies to Expand.
func (e *Engine) RenderTag(ctx context.Context, tagName, markup string) (string, error) {
	r, ok := e.registry.Get(tagName)
	if !ok {
		return "", NewUnknownResolverError(tagName)
	}
	return r.Resolve(ctx, e.settings, markup)
}

// Expand replaces every registered tag in source with its resolver output.
// Tags without a resolver are kept verbatim.
func (e *Engine) Expand(ctx context.Context, source string) (string, error) {
	e.logger.Debug(LogMsgExpandStart)

	scanner := internal.NewScanner(source, internal.ScannerConfig{
		OpenDelim:  e.settings.TagOpen,
		CloseDelim: e.settings.TagClose,
	}, e.logger)
	segments, err := scanner.Scan()
	if err != nil {
		var scanErr *internal.ScanError
		if errors.As(err, &scanErr) {
			return "", NewDocumentParseError(Position(scanErr.Position), err)
		}
		return "", NewDocumentParseError(Position{}, err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind == internal.SegmentText {
			sb.WriteString(seg.Text)
			continue
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		out, err := e.expandTag(ctx, seg)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}

	e.logger.Debug(LogMsgExpandEnd, zap.Int(LogFieldSegments, len(segments)))
	return sb.String(), nil
}

// expandTag resolves one tag segment and applies the error strategy on failure.
func (e *Engine) expandTag(ctx context.Context, seg internal.Segment) (string, error) {
	r, ok := e.registry.Get(seg.Name)
	if !ok {
		e.logger.Debug(LogMsgTagUnknown, zap.String(LogFieldTag, seg.Name))
		return seg.Raw, nil
	}

	out, err := r.Resolve(ctx, e.settings, seg.Markup)
	if err == nil {
		e.logger.Debug(LogMsgTagResolved,
			zap.String(LogFieldTag, seg.Name),
			zap.Int(LogFieldLine, seg.Pos.Line))
		return out, nil
	}

	pos := Position(seg.Pos)
	e.logger.Debug(LogMsgStrategyApplied,
		zap.String(LogFieldTag, seg.Name),
		zap.String(LogFieldStrategy, e.strategy.String()),
		zap.String(LogFieldError, err.Error()))

	switch e.strategy {
	case ErrorStrategyRemove:
		return "", nil
	case ErrorStrategyKeepRaw:
		return seg.Raw, nil
	case ErrorStrategyLog:
		e.logger.Warn(LogMsgTagFailed,
			zap.String(LogFieldTag, seg.Name),
			zap.Int(LogFieldLine, pos.Line),
			zap.Int(LogFieldColumn, pos.Column),
			zap.Error(err))
		return "", nil
	default:
		return "", NewResolverError(seg.Name, pos, err)
	}
}

// resolverAdapter adapts the public Resolver interface to internal.InternalResolver
type resolverAdapter struct {
	resolver Resolver
}

func (a *resolverAdapter) TagName() string {
	return a.resolver.TagName()
}

func (a *resolverAdapter) Resolve(ctx context.Context, settings any, markup string) (string, error) {
	s, ok := settings.(*Settings)
	if !ok {
		s = DefaultSettings()
	}
	return a.resolver.Resolve(ctx, s, markup)
}
