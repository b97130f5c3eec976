package styledtext

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/layout"
)

// Markup validates that text is non-empty and then runs layout.Markup,
// appending the parsed glyphs to l. The underlying parser is infallible
// by design (spec §7) and happily produces an empty Layout for empty
// input; this wrapper exists for callers that want that case surfaced
// as an error instead of a silent no-op.
func Markup(f *font.Font, text string, l *layout.Layout) error {
	if text == "" {
		return ErrEmptyMarkup
	}
	layout.Markup(f, text, l)
	return nil
}
