package figtag

// Tag names handled by the built-in resolvers
const (
	TagNameImage = "img"
)

// Default liquid-tag delimiters
const (
	DefaultOpenDelim  = "{%"
	DefaultCloseDelim = "%}"
)

// Default settings values
const (
	DefaultContentRoot = "content"
)

// Syntax is the user-facing grammar of the img tag, reported on syntax errors.
const Syntax = `{% img [class name(s)] [http[s]:/]/path/to/image [width [height]] [title text | "title text" ["alt text" ["caption text"]]] %}`

// Attribute names, used as log fields and error metadata
const (
	AttrClass   = "class"
	AttrSrc     = "src"
	AttrWidth   = "width"
	AttrHeight  = "height"
	AttrTitle   = "title"
	AttrAlt     = "alt"
	AttrCaption = "caption"
)

// HeightAuto is the literal height used when the width is read from the image.
const HeightAuto = "auto"

// HTML fragments of the rendered figure
const (
	FmtFigureStyle   = "width: %dpx; height: auto;"
	FmtFigureOpen    = `<div class="figure %s" style="%s">`
	FmtFigureImage   = `<img class="%s" style="width: %dpx height: auto;" alt="%s" title="%s" src="%s">`
	FmtFigureCaption = `<p class="caption">%s</p>`
	FigureClose      = "</div>"
	FigureSeparator  = "\n"
)

// ErrorStrategy defines how the engine handles a failing tag during Expand
type ErrorStrategy int

const (
	// ErrorStrategyThrow stops expansion and returns the error
	ErrorStrategyThrow ErrorStrategy = iota
	// ErrorStrategyRemove drops the failing tag from the output
	ErrorStrategyRemove
	// ErrorStrategyKeepRaw keeps the original tag text in the output
	ErrorStrategyKeepRaw
	// ErrorStrategyLog logs the error and drops the tag
	ErrorStrategyLog
)

// Error strategy names
const (
	ErrorStrategyNameThrow   = "throw"
	ErrorStrategyNameRemove  = "remove"
	ErrorStrategyNameKeepRaw = "keepraw"
	ErrorStrategyNameLog     = "log"
)

// String returns the string representation of the error strategy
func (s ErrorStrategy) String() string {
	switch s {
	case ErrorStrategyThrow:
		return ErrorStrategyNameThrow
	case ErrorStrategyRemove:
		return ErrorStrategyNameRemove
	case ErrorStrategyKeepRaw:
		return ErrorStrategyNameKeepRaw
	case ErrorStrategyLog:
		return ErrorStrategyNameLog
	default:
		return ErrorStrategyNameThrow
	}
}

// ParseErrorStrategy parses a string into an ErrorStrategy.
// Returns ErrorStrategyThrow for unknown values.
func ParseErrorStrategy(s string) ErrorStrategy {
	switch s {
	case ErrorStrategyNameRemove:
		return ErrorStrategyRemove
	case ErrorStrategyNameKeepRaw:
		return ErrorStrategyKeepRaw
	case ErrorStrategyNameLog:
		return ErrorStrategyLog
	default:
		return ErrorStrategyThrow
	}
}

// IsValidErrorStrategy checks if a string is a valid error strategy name.
func IsValidErrorStrategy(s string) bool {
	switch s {
	case ErrorStrategyNameThrow, ErrorStrategyNameRemove, ErrorStrategyNameKeepRaw, ErrorStrategyNameLog:
		return true
	default:
		return false
	}
}

// Error metadata keys
const (
	MetaKeyKind     = "kind"
	MetaKeyMarkup   = "markup"
	MetaKeyPath     = "path"
	MetaKeyTag      = "tag"
	MetaKeyResolver = "resolver"
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyValue    = "value"
	MetaKeyExpected = "expected"
)

// Error kinds stored under MetaKeyKind
const (
	ErrKindMarkupSyntax     = "markup_syntax"
	ErrKindResourceNotFound = "resource_not_found"
	ErrKindImageDecode      = "image_decode"
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgExpandStart       = "starting expansion"
	LogMsgExpandEnd         = "expansion complete"
	LogMsgTagResolved       = "tag resolved"
	LogMsgTagUnknown        = "no resolver for tag, keeping text"
	LogMsgTagFailed         = "tag failed"
	LogMsgStrategyApplied   = "error strategy applied"
	LogMsgMarkupParsed      = "markup parsed"
	LogMsgSourceResolved    = "image source resolved"
	LogMsgWidthIntrospected = "width read from image"
	LogMsgFigureRendered    = "figure rendered"
	LogMsgSettingsLoaded    = "settings loaded"
	LogMsgSettingsDefault   = "settings file not found, using defaults"
)

// Log field constants
const (
	LogFieldTag      = "tag"
	LogFieldMarkup   = "markup"
	LogFieldSrc      = "src"
	LogFieldPath     = "path"
	LogFieldWidth    = "width"
	LogFieldStrategy = "strategy"
	LogFieldError    = "error"
	LogFieldLine     = "line"
	LogFieldColumn   = "column"
	LogFieldTags     = "tags"
	LogFieldCaption  = "caption"
	LogFieldSegments = "segments"
)
