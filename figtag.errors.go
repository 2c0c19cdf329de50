package figtag

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants
const (
	ErrFmtMarkupSyntax     = "error processing input %q, expected syntax: %s"
	ErrFmtResourceNotFound = "file %s could not be found"
	ErrFmtImageDecode      = "could not read image dimensions of %s"

	ErrMsgInvalidDimension  = "image dimension is not a valid integer"
	ErrMsgResolverFailed    = "resolver execution failed"
	ErrMsgResolverExists    = "resolver already registered"
	ErrMsgUnknownResolver   = "no resolver registered for tag"
	ErrMsgNilResolver       = "resolver cannot be nil"
	ErrMsgEmptyTagName      = "resolver tag name cannot be empty"
	ErrMsgDocumentParse     = "document parsing failed"
	ErrMsgSettingsRead      = "failed to read settings file"
	ErrMsgSettingsParse     = "failed to parse settings"
	ErrMsgInvalidStrategy   = "invalid error strategy"
	ErrMsgEmptyContentRoot  = "content root cannot be empty"
	ErrMsgInvalidDelimiters = "tag delimiters cannot be empty"
)

// Error code constants for categorization
const (
	ErrCodeSyntax   = "FIGTAG_SYNTAX"
	ErrCodeResource = "FIGTAG_RESOURCE"
	ErrCodeImage    = "FIGTAG_IMAGE"
	ErrCodeParse    = "FIGTAG_PARSE"
	ErrCodeExec     = "FIGTAG_EXEC"
	ErrCodeRegistry = "FIGTAG_REGISTRY"
	ErrCodeConfig   = "FIGTAG_CONFIG"
)

// Position represents a location in the source document
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NewMarkupSyntaxError creates the error returned when the img grammar
// cannot locate a source token in the markup.
func NewMarkupSyntaxError(markup string) error {
	return cuserr.NewValidationError(ErrCodeSyntax, fmt.Sprintf(ErrFmtMarkupSyntax, markup, Syntax)).
		WithMetadata(MetaKeyKind, ErrKindMarkupSyntax).
		WithMetadata(MetaKeyMarkup, markup).
		WithMetadata(MetaKeyExpected, Syntax)
}

// NewInvalidDimensionError creates a syntax error for a width or height
// token that does not fit an int.
func NewInvalidDimensionError(markup, attr, value string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSyntax, ErrMsgInvalidDimension).
		WithMetadata(MetaKeyKind, ErrKindMarkupSyntax).
		WithMetadata(MetaKeyMarkup, markup).
		WithMetadata(MetaKeyTag, attr).
		WithMetadata(MetaKeyValue, value)
}

// NewResourceNotFoundError creates the error for an image path that does not exist
func NewResourceNotFoundError(path string, cause error) error {
	var err *cuserr.CustomError
	msg := fmt.Sprintf(ErrFmtResourceNotFound, path)
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeResource, msg)
	} else {
		err = cuserr.NewNotFoundError(MetaKeyPath, msg)
	}
	return err.
		WithMetadata(MetaKeyKind, ErrKindResourceNotFound).
		WithMetadata(MetaKeyPath, path)
}

// NewImageDecodeError creates an error for an image whose header cannot be read
func NewImageDecodeError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeImage, fmt.Sprintf(ErrFmtImageDecode, path)).
		WithMetadata(MetaKeyKind, ErrKindImageDecode).
		WithMetadata(MetaKeyPath, path)
}

// NewDocumentParseError creates an error for malformed tag delimiters in a document
func NewDocumentParseError(pos Position, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgDocumentParse).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewResolverError wraps a resolver failure with the tag and its position
func NewResolverError(tagName string, pos Position, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeExec, ErrMsgResolverFailed).
		WithMetadata(MetaKeyResolver, tagName).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
}

// NewUnknownResolverError creates an error for a tag without a resolver
func NewUnknownResolverError(tagName string) error {
	return cuserr.NewNotFoundError(MetaKeyResolver, ErrMsgUnknownResolver).
		WithMetadata(MetaKeyTag, tagName)
}

// NewSettingsError creates a configuration error
func NewSettingsError(msg, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewInvalidStrategyError creates an error for an unknown error strategy name
func NewInvalidStrategyError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidStrategy).
		WithMetadata(MetaKeyValue, name)
}

// IsMarkupSyntaxError reports whether err, or any error it wraps, is a markup syntax error.
func IsMarkupSyntaxError(err error) bool {
	return hasKind(err, ErrKindMarkupSyntax)
}

// IsResourceNotFoundError reports whether err, or any error it wraps, is a missing image.
func IsResourceNotFoundError(err error) bool {
	return hasKind(err, ErrKindResourceNotFound)
}

// IsImageDecodeError reports whether err, or any error it wraps, is an unreadable image.
func IsImageDecodeError(err error) bool {
	return hasKind(err, ErrKindImageDecode)
}

// hasKind walks the wrap chain looking for a CustomError tagged with kind.
func hasKind(err error, kind string) bool {
	for err != nil {
		var customErr *cuserr.CustomError
		if !errors.As(err, &customErr) {
			return false
		}
		if k, ok := customErr.GetMetadata(MetaKeyKind); ok && k == kind {
			return true
		}
		err = errors.Unwrap(customErr)
	}
	return false
}
