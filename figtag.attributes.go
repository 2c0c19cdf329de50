package figtag

import "strconv"

// Height is the height attribute of an img tag: either explicit pixels or
// the literal "auto".
type Height struct {
	Pixels int
	Auto   bool
}

// String returns the pixel count or "auto".
func (h Height) String() string {
	if h.Auto {
		return HeightAuto
	}
	return strconv.Itoa(h.Pixels)
}

// Attributes is the structured result of parsing one img tag body.
// Nil pointer fields are absent; an absent field is distinct from an empty one.
type Attributes struct {
	Classes  *string
	Src      string
	Width    *int
	Height   *Height
	TitleRaw *string
	Title    *string
	Alt      *string
	Caption  *string
}

// ClassNames returns the class attribute or the empty string when absent.
func (a *Attributes) ClassNames() string {
	return valueOrEmpty(a.Classes)
}

// TitleText returns the title or the empty string when absent.
func (a *Attributes) TitleText() string {
	return valueOrEmpty(a.Title)
}

// AltText returns the alt text or the empty string when absent.
func (a *Attributes) AltText() string {
	return valueOrEmpty(a.Alt)
}

// HasCaption reports whether a caption paragraph should be rendered.
func (a *Attributes) HasCaption() bool {
	return a.Caption != nil
}

// Clone returns a deep copy so rendering never mutates the caller's value.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{Src: a.Src}
	c.Classes = cloneString(a.Classes)
	c.TitleRaw = cloneString(a.TitleRaw)
	c.Title = cloneString(a.Title)
	c.Alt = cloneString(a.Alt)
	c.Caption = cloneString(a.Caption)
	if a.Width != nil {
		w := *a.Width
		c.Width = &w
	}
	if a.Height != nil {
		h := *a.Height
		c.Height = &h
	}
	return c
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// optional returns a pointer to s, or nil when s is empty.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
