package internal

// Segment kinds produced by the scanner
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentTag
)

// Segment kind names for debugging
const (
	SegmentKindNameText = "TEXT"
	SegmentKindNameTag  = "TAG"
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	if k == SegmentTag {
		return SegmentKindNameTag
	}
	return SegmentKindNameText
}

// Default delimiters
const (
	DefaultOpenDelim  = "{%"
	DefaultCloseDelim = "%}"
)

// Error message constants
const (
	ErrMsgUnterminatedTag       = "unterminated tag"
	ErrMsgEmptyTagName          = "tag name cannot be empty"
	ErrMsgEmptyDelimiter        = "delimiters cannot be empty"
	ErrMsgNilResolver           = "resolver cannot be nil"
	ErrMsgEmptyResolverName     = "resolver tag name cannot be empty"
	ErrMsgResolverAlreadyExists = "resolver already registered for tag"
)

// Error format constants
const (
	ErrFmtTagMessage      = "%s: %s"
	ErrFmtPositionMessage = "%s at line %d, column %d"
)

// Log message constants
const (
	LogMsgScannerCreated     = "scanner created"
	LogMsgScanStart          = "starting scan"
	LogMsgScanEnd            = "scan complete"
	LogMsgRegistryCreated    = "registry created"
	LogMsgResolverRegistered = "resolver registered"
	LogMsgResolverCollision  = "resolver collision, keeping first registration"
)

// Log field constants
const (
	LogFieldTagName  = "tag_name"
	LogFieldExisting = "existing"
	LogFieldSegments = "segments"
	LogFieldLength   = "length"
)

// StringValueEmpty is the empty string
const StringValueEmpty = ""
