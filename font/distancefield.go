package font

// DistanceField selects the shader path a Font's glyphs are rendered with.
type DistanceField uint8

const (
	// Standard is ordinary bitmap rendering: no distance-field shader.
	Standard DistanceField = iota
	// SDF is single-channel signed-distance-field rendering.
	SDF
	// MSDF is multi-channel signed-distance-field rendering.
	MSDF
	// SDFOutline is SDF with a baked-in outline channel.
	SDFOutline
)

func (d DistanceField) String() string {
	switch d {
	case Standard:
		return "Standard"
	case SDF:
		return "SDF"
	case MSDF:
		return "MSDF"
	case SDFOutline:
		return "SDFOutline"
	default:
		return "Unknown"
	}
}

// IsDistanceField reports whether this field type needs the smoothing
// uniform management of spec §4.9 (anything but Standard).
func (d DistanceField) IsDistanceField() bool {
	return d != Standard
}

// SmoothingMultiplier is the constant the u_smoothing uniform is scaled
// by in ResizeDistanceField/EnableShader (spec §4.9): 4x for SDF/SDFOutline,
// 8x for MSDF (the extra channel needs twice the gradient sharpening).
func (d DistanceField) SmoothingMultiplier() float32 {
	if d == MSDF {
		return 8
	}
	return 4
}
