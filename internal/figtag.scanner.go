package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Position is a location in the scanned document.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// ScannerConfig holds the tag delimiters.
type ScannerConfig struct {
	OpenDelim  string
	CloseDelim string
}

// DefaultScannerConfig returns the liquid-style delimiters.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		OpenDelim:  DefaultOpenDelim,
		CloseDelim: DefaultCloseDelim,
	}
}

// escapeOpen returns the escape pattern, e.g. "\{%" for "{%"
func (c ScannerConfig) escapeOpen() string {
	return "\\" + c.OpenDelim
}

// Segment is either literal text or one tag of the document.
type Segment struct {
	Kind   SegmentKind
	Text   string // Literal text for SegmentText
	Name   string // Tag name for SegmentTag
	Markup string // Tag body after the name, trimmed
	Raw    string // Original tag text including delimiters
	Pos    Position
}

// Scanner splits a document into text and tag segments.
type Scanner struct {
	source string
	config ScannerConfig
	pos    int
	line   int
	column int
	logger *zap.Logger
}

// NewScanner creates a scanner for source.
func NewScanner(source string, config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldLength, len(source)))
	return &Scanner{
		source: source,
		config: config,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan returns the document's segments in order. Adjacent text is merged.
func (s *Scanner) Scan() ([]Segment, error) {
	if s.config.OpenDelim == StringValueEmpty || s.config.CloseDelim == StringValueEmpty {
		return nil, &ScanError{Message: ErrMsgEmptyDelimiter}
	}
	s.logger.Debug(LogMsgScanStart)

	var segments []Segment
	var text strings.Builder
	textPos := s.currentPosition()

	flushText := func() {
		if text.Len() > 0 {
			segments = append(segments, Segment{Kind: SegmentText, Text: text.String(), Pos: textPos})
			text.Reset()
		}
	}

	for s.pos < len(s.source) {
		if strings.HasPrefix(s.source[s.pos:], s.config.escapeOpen()) {
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			text.WriteString(s.config.OpenDelim)
			s.advance(len(s.config.escapeOpen()))
			continue
		}

		if strings.HasPrefix(s.source[s.pos:], s.config.OpenDelim) {
			flushText()
			seg, err := s.scanTag()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
			continue
		}

		if text.Len() == 0 {
			textPos = s.currentPosition()
		}
		text.WriteByte(s.source[s.pos])
		s.advance(1)
	}
	flushText()

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments, nil
}

// scanTag consumes one tag starting at the open delimiter.
func (s *Scanner) scanTag() (Segment, error) {
	start := s.currentPosition()
	bodyStart := s.pos + len(s.config.OpenDelim)

	closeIdx := strings.Index(s.source[bodyStart:], s.config.CloseDelim)
	if closeIdx < 0 {
		return Segment{}, &ScanError{Message: ErrMsgUnterminatedTag, Position: start}
	}

	body := strings.TrimSpace(s.source[bodyStart : bodyStart+closeIdx])
	end := bodyStart + closeIdx + len(s.config.CloseDelim)
	raw := s.source[s.pos:end]

	name, markup := body, StringValueEmpty
	if i := strings.IndexAny(body, " \t\r\n"); i >= 0 {
		name, markup = body[:i], strings.TrimSpace(body[i:])
	}
	if name == StringValueEmpty {
		return Segment{}, &ScanError{Message: ErrMsgEmptyTagName, Position: start}
	}

	s.advance(end - s.pos)
	return Segment{
		Kind:   SegmentTag,
		Name:   name,
		Markup: markup,
		Raw:    raw,
		Pos:    start,
	}, nil
}

func (s *Scanner) advance(n int) {
	for i := 0; i < n && s.pos < len(s.source); i++ {
		if s.source[s.pos] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.pos++
	}
}

func (s *Scanner) currentPosition() Position {
	return Position{Offset: s.pos, Line: s.line, Column: s.column}
}

// ScanError reports malformed tag syntax.
type ScanError struct {
	Message  string
	Position Position
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.Position.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf(ErrFmtPositionMessage, e.Message, e.Position.Line, e.Position.Column)
}
