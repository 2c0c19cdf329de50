package figtag

import (
	"context"

	"go.uber.org/zap"
)

// Resolver is the interface that tag handlers must implement.
// The engine calls Resolve once per tag occurrence with the tag body, without
// the tag name and delimiters.
type Resolver interface {
	// TagName returns the tag name this resolver handles (e.g., "img").
	TagName() string

	// Resolve returns the replacement text for one tag.
	// settings is read-only and shared across calls.
	Resolve(ctx context.Context, settings *Settings, markup string) (string, error)
}

// ResolverFunc is a convenience type for creating resolvers from functions.
type ResolverFunc struct {
	name string
	fn   func(ctx context.Context, settings *Settings, markup string) (string, error)
}

// NewResolverFunc creates a new function-based resolver.
func NewResolverFunc(name string, fn func(ctx context.Context, settings *Settings, markup string) (string, error)) *ResolverFunc {
	return &ResolverFunc{name: name, fn: fn}
}

// TagName returns the resolver's tag name.
func (r *ResolverFunc) TagName() string {
	return r.name
}

// Resolve executes the resolver function.
func (r *ResolverFunc) Resolve(ctx context.Context, settings *Settings, markup string) (string, error) {
	return r.fn(ctx, settings, markup)
}

// ImageTag is the img resolver: it renders a captioned figure for an image
// under the settings' content root.
type ImageTag struct {
	renderer *Renderer
}

// NewImageTag creates the img resolver. A nil reader reads image headers from disk.
func NewImageTag(dims DimensionReader, logger *zap.Logger) *ImageTag {
	return &ImageTag{renderer: NewRenderer(dims, logger)}
}

// TagName returns "img".
func (t *ImageTag) TagName() string {
	return TagNameImage
}

// Resolve parses markup and renders the figure.
func (t *ImageTag) Resolve(ctx context.Context, settings *Settings, markup string) (string, error) {
	return t.renderer.RenderMarkup(ctx, markup, settings)
}
