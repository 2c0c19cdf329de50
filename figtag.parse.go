package figtag

import (
	"regexp"
	"strconv"
	"strings"
)

// imgPattern matches the whole img grammar. The src alternatives are what
// separate class words from the path: a src must start with a scheme or a
// slash, or contain a slash.
var imgPattern = regexp.MustCompile(
	`(?P<class>\S.*\s+)?` +
		`(?P<src>(?:https?://|/|\S+/)\S+)` +
		`(?:\s+(?P<width>\d+))?` +
		`(?:\s+(?P<height>\d+))?` +
		`(?P<title>\s+.+)?`,
)

var (
	groupClass  = imgPattern.SubexpIndex(AttrClass)
	groupSrc    = imgPattern.SubexpIndex(AttrSrc)
	groupWidth  = imgPattern.SubexpIndex(AttrWidth)
	groupHeight = imgPattern.SubexpIndex(AttrHeight)
	groupTitle  = imgPattern.SubexpIndex(AttrTitle)
)

// Parse splits an img tag body into its attributes.
// It returns a markup syntax error when no source token can be found.
func Parse(markup string) (*Attributes, error) {
	m := imgPattern.FindStringSubmatch(markup)
	if m == nil {
		return nil, NewMarkupSyntaxError(markup)
	}

	group := func(i int) string {
		return strings.TrimSpace(m[i])
	}

	src := group(groupSrc)
	if src == "" {
		return nil, NewMarkupSyntaxError(markup)
	}

	attrs := &Attributes{
		Src:      src,
		Classes:  optional(group(groupClass)),
		TitleRaw: optional(group(groupTitle)),
	}

	if w := group(groupWidth); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, NewInvalidDimensionError(markup, AttrWidth, w, err)
		}
		attrs.Width = &n
	}

	if h := group(groupHeight); h != "" {
		n, err := strconv.Atoi(h)
		if err != nil {
			return nil, NewInvalidDimensionError(markup, AttrHeight, h, err)
		}
		attrs.Height = &Height{Pixels: n}
	}

	if attrs.TitleRaw != nil {
		parts := SplitTitle(*attrs.TitleRaw)
		attrs.Title = parts.Title
		attrs.Alt = parts.Alt
		attrs.Caption = parts.Caption
	}

	return attrs, nil
}
