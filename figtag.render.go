package figtag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Renderer turns parsed img attributes into a figure fragment.
// It holds no per-call state and is safe for concurrent use.
type Renderer struct {
	dims   DimensionReader
	logger *zap.Logger
}

// NewRenderer creates a renderer. A nil reader uses ImageConfigReader and a
// nil logger disables logging.
func NewRenderer(dims DimensionReader, logger *zap.Logger) *Renderer {
	if dims == nil {
		dims = ImageConfigReader{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{dims: dims, logger: logger}
}

// ResolvePath maps an img src onto the local filesystem under contentRoot.
// One leading slash is stripped. URLs are not special-cased.
func ResolvePath(src, contentRoot string) string {
	return filepath.Join(contentRoot, strings.TrimPrefix(src, "/"))
}

// Render resolves the image for attrs under contentRoot and returns the
// figure markup. A missing width is read from the image file.
func (r *Renderer) Render(ctx context.Context, attrs *Attributes, contentRoot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := ResolvePath(attrs.Src, contentRoot)
	if _, err := os.Stat(path); err != nil {
		return "", NewResourceNotFoundError(path, err)
	}
	r.logger.Debug(LogMsgSourceResolved,
		zap.String(LogFieldSrc, attrs.Src),
		zap.String(LogFieldPath, path))

	a := attrs.Clone()
	if a.Width == nil {
		w, _, err := r.dims.Dimensions(path)
		if err != nil {
			return "", NewImageDecodeError(path, err)
		}
		a.Width = &w
		a.Height = &Height{Auto: true}
		r.logger.Debug(LogMsgWidthIntrospected,
			zap.String(LogFieldPath, path),
			zap.Int(LogFieldWidth, w))
	}

	out := figure(a)
	r.logger.Debug(LogMsgFigureRendered,
		zap.String(LogFieldSrc, a.Src),
		zap.Int(LogFieldWidth, *a.Width),
		zap.Bool(LogFieldCaption, a.HasCaption()))
	return out, nil
}

// RenderMarkup parses markup and renders it against the settings' content root.
func (r *Renderer) RenderMarkup(ctx context.Context, markup string, settings *Settings) (string, error) {
	attrs, err := Parse(markup)
	if err != nil {
		return "", err
	}
	r.logger.Debug(LogMsgMarkupParsed,
		zap.String(LogFieldMarkup, markup),
		zap.String(LogFieldSrc, attrs.Src))

	root := DefaultContentRoot
	if settings != nil && settings.ContentRoot != "" {
		root = settings.ContentRoot
	}
	return r.Render(ctx, attrs, root)
}

// figure composes the fragment. a.Width must be set.
func figure(a *Attributes) string {
	classes := a.ClassNames()
	width := *a.Width

	style := fmt.Sprintf(FmtFigureStyle, width)
	body := fmt.Sprintf(FmtFigureImage, classes, width, a.AltText(), a.TitleText(), a.Src)
	if a.HasCaption() {
		body += FigureSeparator + fmt.Sprintf(FmtFigureCaption, *a.Caption)
	}

	return strings.Join([]string{
		fmt.Sprintf(FmtFigureOpen, classes, style),
		body,
		FigureClose,
	}, FigureSeparator)
}
