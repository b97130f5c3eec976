package font

// EffectColors holds the packed RGBA8888 colors used by the renderer's
// extra passes: black/white outline overrides, the five fancy-line
// colors, halo, and drop shadow (spec §4.7, §6.4 PACKED_* fields).
type EffectColors struct {
	Black    uint32
	White    uint32
	Error    uint32
	Warn     uint32
	Note     uint32
	Context  uint32
	Suggest  uint32
	Halo     uint32
	Shadow   uint32
}

// DefaultEffectColors returns the conventional palette: black/white for
// outlines, red/green/yellow/gray/blue for the fancy lines (error, context,
// warn, suggest, note respectively, per spec §4.7's decoration table).
func DefaultEffectColors() EffectColors {
	return EffectColors{
		Black:   0x000000FF,
		White:   0xFFFFFFFF,
		Error:   0xFF0000FF,
		Warn:    0xFFFF00FF,
		Note:    0x3088B8FF,
		Context: 0x00FF00FF,
		Suggest: 0x808080FF,
		Halo:    0xFFFFFF77,
		Shadow:  0x00000088,
	}
}

// ZenMetrics are offsets expressed as fractions of cellWidth/cellHeight
// so they scale with the font (spec GLOSSARY "Zen metric", §4.7).
type ZenMetrics struct {
	UnderX, UnderY, UnderLength, UnderBreadth     float32
	StrikeX, StrikeY, StrikeLength, StrikeBreadth float32
}

// DefaultZenMetrics returns a centered underline just below the baseline
// and a strikethrough at roughly x-height, both spanning one cell.
func DefaultZenMetrics() ZenMetrics {
	return ZenMetrics{
		UnderX: 0, UnderY: 0.9, UnderLength: 1, UnderBreadth: 0.1,
		StrikeX: 0, StrikeY: 0.45, StrikeLength: 1, StrikeBreadth: 0.1,
	}
}
