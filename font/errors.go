package font

import "errors"

// Sentinel errors for font loaders and Font construction (spec §7).
var (
	// ErrMissingSpaceGlyph is the only missing-glyph error loaders treat
	// as fatal: every other absent codepoint falls back silently to the
	// default glyph at draw time.
	ErrMissingSpaceGlyph = errors.New("font: missing required space glyph")

	// ErrFontFileNotFound is returned by LoadStructuredJSON when its
	// descriptor file does not exist on disk.
	ErrFontFileNotFound = errors.New("font: font file not found")

	// ErrUnsupportedFormat is returned when a Structured JSON font names
	// an atlas "type" this package does not recognize.
	ErrUnsupportedFormat = errors.New("font: unsupported distance field type")
)
