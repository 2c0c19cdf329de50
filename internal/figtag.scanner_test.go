package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) []Segment {
	t.Helper()
	segs, err := NewScanner(source, DefaultScannerConfig(), nil).Scan()
	require.NoError(t, err)
	return segs
}

func TestScanner_TextOnly(t *testing.T) {
	segs := scan(t, "just text\nwith lines")
	require.Len(t, segs, 1)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, "just text\nwith lines", segs[0].Text)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, segs[0].Pos)
}

func TestScanner_Empty(t *testing.T) {
	assert.Empty(t, scan(t, ""))
}

func TestScanner_Tags(t *testing.T) {
	source := "intro\n{% img left /a.png  Title here %} mid {%img /b.png%}{% raw %}"
	segs := scan(t, source)
	require.Len(t, segs, 5)

	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, "intro\n", segs[0].Text)

	assert.Equal(t, SegmentTag, segs[1].Kind)
	assert.Equal(t, "img", segs[1].Name)
	assert.Equal(t, "left /a.png  Title here", segs[1].Markup)
	assert.Equal(t, "{% img left /a.png  Title here %}", segs[1].Raw)
	assert.Equal(t, Position{Offset: 6, Line: 2, Column: 1}, segs[1].Pos)

	assert.Equal(t, " mid ", segs[2].Text)

	assert.Equal(t, "img", segs[3].Name)
	assert.Equal(t, "/b.png", segs[3].Markup)

	assert.Equal(t, "raw", segs[4].Name)
	assert.Equal(t, "", segs[4].Markup)
}

func TestScanner_Escape(t *testing.T) {
	segs := scan(t, `a \{% img x %} b`)
	require.Len(t, segs, 1)
	assert.Equal(t, "a {% img x %} b", segs[0].Text)
}

func TestScanner_CustomDelimiters(t *testing.T) {
	segs, err := NewScanner("x <<img /a.png>> {% y %}", ScannerConfig{OpenDelim: "<<", CloseDelim: ">>"}, nil).Scan()
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, "img", segs[1].Name)
	assert.Equal(t, " {% y %}", segs[2].Text)
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		config  ScannerConfig
		message string
		pos     Position
	}{
		{
			name:    "unterminated tag",
			source:  "ok\n  {% img /a.png",
			config:  DefaultScannerConfig(),
			message: ErrMsgUnterminatedTag,
			pos:     Position{Offset: 5, Line: 2, Column: 3},
		},
		{
			name:    "empty tag",
			source:  "{%   %}",
			config:  DefaultScannerConfig(),
			message: ErrMsgEmptyTagName,
			pos:     Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:    "empty delimiter",
			source:  "x",
			config:  ScannerConfig{OpenDelim: "", CloseDelim: "%}"},
			message: ErrMsgEmptyDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScanner(tt.source, tt.config, nil).Scan()
			require.Error(t, err)

			var scanErr *ScanError
			require.True(t, errors.As(err, &scanErr))
			assert.Equal(t, tt.message, scanErr.Message)
			assert.Equal(t, tt.pos, scanErr.Position)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSegmentKind_String(t *testing.T) {
	assert.Equal(t, SegmentKindNameText, SegmentText.String())
	assert.Equal(t, SegmentKindNameTag, SegmentTag.String())
}
