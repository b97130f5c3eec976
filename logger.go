// Package styledtext ties the glyph, font, layout, and render packages
// together: pack/unpack a glyph, build a Font and FontFamily, parse
// markup into a measured and wrapped Layout, and draw it through a
// pluggable Batch (spec §1, §2).
package styledtext

import (
	"log/slog"

	"github.com/gogpu/styledtext/internal/obslog"
)

// SetLogger configures the logger used by this module and its
// sub-packages (font, layout, render). By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used here:
//   - [slog.LevelWarn]: font loader failures (missing file, bad
//     descriptor, unsupported format), atlas overflow
//   - [slog.LevelDebug]: distance-field resize/crispness recalculation,
//     shader enable
func SetLogger(l *slog.Logger) {
	obslog.SetLogger(l)
}

// Logger returns the module's current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return obslog.Logger()
}
