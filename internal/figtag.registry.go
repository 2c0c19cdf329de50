package internal

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// InternalResolver mirrors the public Resolver interface for internal use.
// settings is the public *Settings passed through as any to avoid an import cycle.
type InternalResolver interface {
	TagName() string
	Resolve(ctx context.Context, settings any, markup string) (string, error)
}

// Registry maps tag names to resolvers with first-come-wins semantics.
// It is safe for concurrent use.
type Registry struct {
	resolvers map[string]InternalResolver
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		resolvers: make(map[string]InternalResolver),
		logger:    logger,
	}
}

// Register adds a resolver. A second resolver for the same tag name is
// rejected and the first one stays registered.
func (r *Registry) Register(resolver InternalResolver) error {
	if resolver == nil {
		return NewRegistryError(ErrMsgNilResolver, StringValueEmpty)
	}

	tagName := resolver.TagName()
	if tagName == StringValueEmpty {
		return NewRegistryError(ErrMsgEmptyResolverName, StringValueEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.resolvers[tagName]; exists {
		r.logger.Warn(LogMsgResolverCollision,
			zap.String(LogFieldTagName, tagName),
			zap.String(LogFieldExisting, existing.TagName()),
		)
		return NewRegistryError(ErrMsgResolverAlreadyExists, tagName)
	}

	r.resolvers[tagName] = resolver
	r.logger.Debug(LogMsgResolverRegistered, zap.String(LogFieldTagName, tagName))
	return nil
}

// Get retrieves a resolver by tag name.
func (r *Registry) Get(tagName string) (InternalResolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolver, exists := r.resolvers[tagName]
	return resolver, exists
}

// Has checks if a resolver is registered for the given tag name.
func (r *Registry) Has(tagName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.resolvers[tagName]
	return exists
}

// List returns all registered tag names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered resolvers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.resolvers)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message string
	TagName string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, tagName string) *RegistryError {
	return &RegistryError{
		Message: message,
		TagName: tagName,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.TagName != StringValueEmpty {
		return fmt.Sprintf(ErrFmtTagMessage, e.Message, e.TagName)
	}
	return e.Message
}
