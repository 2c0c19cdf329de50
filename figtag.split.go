package figtag

// TitleParts holds the values split out of the trailing title text of an img tag.
type TitleParts struct {
	Title   *string
	Alt     *string
	Caption *string
}

// SplitTitle splits raw trailing text into title, alt and caption.
//
// Three quoted segments separated by whitespace give title, alt and caption;
// failing that, two give title and alt; failing that, raw is the title.
// Each segment may open and close with either quote character.
// An absent alt falls back to the title.
func SplitTitle(raw string) TitleParts {
	var parts TitleParts

	if segs, ok := findSegments(raw, 3); ok {
		parts.Title, parts.Alt, parts.Caption = segs[0], segs[1], segs[2]
	} else if segs, ok := findSegments(raw, 2); ok {
		parts.Title, parts.Alt = segs[0], segs[1]
	} else {
		parts.Title = optional(raw)
	}

	if parts.Alt == nil && parts.Title != nil {
		parts.Alt = cloneString(parts.Title)
	}
	return parts
}

// findSegments returns the first run of n quoted segments in s, scanning
// start offsets left to right. Empty segments are returned as nil.
func findSegments(s string, n int) ([]*string, bool) {
	for start := 0; start < len(s); start++ {
		if !isQuote(s[start]) {
			continue
		}
		if segs, ok := matchSegments(s, start, n); ok {
			return segs, true
		}
	}
	return nil, false
}

// matchSegments matches exactly n whitespace-separated quoted segments at start.
func matchSegments(s string, start, n int) ([]*string, bool) {
	segs := make([]*string, 0, n)
	i := start
	for k := 0; k < n; k++ {
		if k > 0 {
			j := i
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j == i {
				return nil, false
			}
			i = j
		}

		if i >= len(s) || !isQuote(s[i]) {
			return nil, false
		}
		i++

		j := i
		for j < len(s) && !isQuote(s[j]) {
			j++
		}
		if j >= len(s) {
			return nil, false
		}

		segs = append(segs, optional(s[i:j]))
		i = j + 1
	}
	return segs, true
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
