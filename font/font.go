package font

import (
	"strings"

	"github.com/gogpu/styledtext/internal/obslog"
)

const (
	// atlasStart is the first private-use codepoint available for
	// AddAtlas/AddImage entries (spec §3.4, §6.2).
	atlasStart = 0xE000
	// atlasEnd is one past the last available private-use codepoint —
	// spec §7 "Atlas overflow": 0xF800 - 0xE000 = 6144 regions max.
	atlasEnd = 0xF800

	// defaultSolidBlock is the default solid_block codepoint (spec §3.4).
	defaultSolidBlock = 0x2588
	zeroWidthSpace    = 0x200B
)

// Font owns the glyph mapping, optional kerning table, case-insensitive
// atlas name lookup, metrics, distance-field parameters, effect colors,
// and named formatting states described in spec §3.4.
//
// Fonts are constructed by New or by a loader such as
// DecodeStructuredJSON, and then mutated via AddAtlas/AddImage/Scale/FitCell. The
// four large maps (Mapping, Kerning, NameLookup, NamesByCode) are shared
// by reference across Copy() until SetSharing(false) deep-clones them
// (spec §3.4, §5, §9 "Shared mutable maps").
type Font struct {
	Mapping     map[rune]Region
	Kerning     map[uint32]float32
	NameLookup  map[string]rune
	NamesByCode map[rune]string

	CellWidth, CellHeight                 float32
	OriginalCellWidth, OriginalCellHeight float32
	ScaleX, ScaleY                         float32
	Descent                                float32

	DistanceField          DistanceField
	DistanceFieldCrispness float32
	ActualCrispness        float32

	Family *Family

	Effects EffectColors
	Zen     ZenMetrics

	SolidBlock rune

	IsMono               bool
	IntegerPosition      bool
	OmitCurlyBraces      bool
	EnableSquareBrackets bool

	BoldStrength    float32
	ObliqueStrength float32
	OutlineStrength float32
	GlowStrength    float32

	DropShadowOffsetX, DropShadowOffsetY float32
	BoxDrawingBreadth                    float32

	InlineImageOffsetX, InlineImageOffsetY float32
	InlineImageXAdvance, InlineImageStretch float32

	// NamedStates stores the formatting words saved by "[(label)]" and
	// restored by "[ label]" (spec §3.4, §4.3). The codepoint bits of a
	// stored value are always zero.
	NamedStates map[string]uint64

	nextAtlasCode rune
	sharing       bool
}

// New returns a Font with sensible defaults: 1:1 scale, Standard
// rendering, the default solid-block codepoint, and square-bracket
// markup enabled. Callers (loaders) still need to call EnsureBaseGlyphs
// once the glyph mapping has been populated.
func New() *Font {
	return &Font{
		Mapping:              make(map[rune]Region),
		NameLookup:           make(map[string]rune),
		NamesByCode:          make(map[rune]string),
		ScaleX:               1,
		ScaleY:               1,
		DistanceFieldCrispness: 1,
		SolidBlock:           defaultSolidBlock,
		EnableSquareBrackets: true,
		BoldStrength:         1,
		ObliqueStrength:      0.2,
		OutlineStrength:      1,
		GlowStrength:         1,
		BoxDrawingBreadth:    1,
		InlineImageStretch:   1,
		Effects:              DefaultEffectColors(),
		Zen:                  DefaultZenMetrics(),
		NamedStates:          make(map[string]uint64),
		nextAtlasCode:        atlasStart,
	}
}

// EnsureBaseGlyphs guarantees the postconditions every loader must
// satisfy (spec §6.2): a space glyph exists (the only glyph whose
// absence is fatal, spec §7); '\r' aliases it; a zero-width space exists
// with zero advance; '\n' exists with zero width/height/advance; and the
// solid-block region exists, added as a 3x3 region if the font didn't
// supply one.
//
// It returns an error only if no space glyph is present — every other
// gap is filled in silently, matching spec §7's "missing required glyph"
// rule.
func (f *Font) EnsureBaseGlyphs() error {
	space, ok := f.Mapping[' ']
	if !ok {
		return ErrMissingSpaceGlyph
	}
	if _, ok := f.Mapping['\r']; !ok {
		f.Mapping['\r'] = space
	}
	if _, ok := f.Mapping[zeroWidthSpace]; !ok {
		zw := space
		zw.XAdvance = 0
		f.Mapping[zeroWidthSpace] = zw
	}
	if _, ok := f.Mapping['\n']; !ok {
		f.Mapping['\n'] = Region{}
	}
	if _, ok := f.Mapping[f.SolidBlock]; !ok {
		f.Mapping[f.SolidBlock] = Region{Width: 3, Height: 3}
	}
	return nil
}

// AddAtlas registers a named inline-image region and returns the
// private-use codepoint it was assigned; the region is marked IsColor
// so DrawGlyph skips the foreground tint for it. Lookups by name are
// case-insensitive (spec §3.4, TESTABLE PROPERTY §8.12). Once 6144
// entries have been assigned in this Font, further calls log the drop
// and return ok=false (spec §7 "Atlas overflow").
func (f *Font) AddAtlas(name string, region Region) (code rune, ok bool) {
	if f.nextAtlasCode == 0 {
		f.nextAtlasCode = atlasStart
	}
	if f.nextAtlasCode >= atlasEnd {
		obslog.Logger().Warn("font: atlas overflow, region dropped", "name", name)
		return 0, false
	}
	code = f.nextAtlasCode
	f.nextAtlasCode++
	region.IsColor = true
	f.Mapping[code] = region
	key := strings.ToLower(name)
	f.NameLookup[key] = code
	f.NamesByCode[code] = name
	return code, true
}

// AddImage is AddAtlas specialized for an inline image of the given
// pixel dimensions: the region's advance is its width, sized later at
// draw time to fit the line's cell height (spec §3.3, §6.4 and
// Scenario E).
func (f *Font) AddImage(name string, width, height float32) (code rune, ok bool) {
	return f.AddAtlas(name, Region{Width: width, Height: height, XAdvance: width})
}

// AtlasLookup resolves a previously-added atlas/image name to its
// codepoint, case-insensitively.
func (f *Font) AtlasLookup(name string) (rune, bool) {
	code, ok := f.NameLookup[strings.ToLower(name)]
	return code, ok
}

// kerningKey packs a kerning pair into one map key: (first << 16) |
// second (spec §3.4).
func kerningKey(first, second rune) uint32 {
	return uint32(first)<<16 | uint32(second)&0xFFFF
}

// KerningFor returns the kerning adjustment for a glyph pair, if any.
func (f *Font) KerningFor(first, second rune) (float32, bool) {
	if f.Kerning == nil {
		return 0, false
	}
	v, ok := f.Kerning[kerningKey(first, second)]
	return v, ok
}

// SetKerning records a kerning adjustment for a glyph pair, allocating
// the kerning map on first use.
func (f *Font) SetKerning(first, second rune, amount float32) {
	if f.Kerning == nil {
		f.Kerning = make(map[uint32]float32)
	}
	f.Kerning[kerningKey(first, second)] = amount
}

// Scale multiplies the font's ScaleX/ScaleY by the given factors.
func (f *Font) Scale(sx, sy float32) {
	f.ScaleX *= sx
	f.ScaleY *= sy
}

// FitCell resizes CellWidth/CellHeight to the given values, deriving new
// scale factors from the font's original (unscaled) cell size and
// refreshing ActualCrispness so distance-field smoothing stays correct
// (spec §4.9).
func (f *Font) FitCell(width, height float32) {
	f.CellWidth = width
	f.CellHeight = height
	if f.OriginalCellWidth > 0 {
		f.ScaleX = width / f.OriginalCellWidth
	}
	if f.OriginalCellHeight > 0 {
		f.ScaleY = height / f.OriginalCellHeight
	}
	f.refreshCrispness()
}

func (f *Font) refreshCrispness() {
	if f.OriginalCellHeight <= 0 || f.OriginalCellWidth <= 0 {
		f.ActualCrispness = f.DistanceFieldCrispness
		return
	}
	ratioH := f.CellHeight / f.OriginalCellHeight
	ratioW := f.CellWidth / f.OriginalCellWidth
	ratio := ratioH
	if ratioW > ratio {
		ratio = ratioW
	}
	f.ActualCrispness = f.DistanceFieldCrispness * ratio
}

// Sharing reports whether this Font's four large maps are borrowed
// references from a Copy() source (spec §5).
func (f *Font) Sharing() bool {
	return f.sharing
}

// Copy returns a shallow clone that shares Mapping, Kerning, NameLookup,
// and NamesByCode by reference with f. Mutating those maps through
// add_atlas/add_image/fit_cell-equivalents on one Font is visible in all
// siblings until SetSharing(false) breaks the link (spec §5, §9).
func (f *Font) Copy() *Font {
	clone := *f
	clone.sharing = true
	return &clone
}

// SetSharing(false) deep-clones the four shared maps so this Font no
// longer observes mutations made through its Copy() source or siblings.
// SetSharing(true) is a no-op: re-establishing sharing after
// independence would silently discard this Font's own edits, which the
// spec never calls for.
func (f *Font) SetSharing(share bool) {
	if share || !f.sharing {
		return
	}
	f.Mapping = cloneRegionMap(f.Mapping)
	f.Kerning = cloneFloatMap(f.Kerning)
	f.NameLookup = cloneRuneMap(f.NameLookup)
	f.NamesByCode = cloneStringMap(f.NamesByCode)
	f.sharing = false
}

func cloneRegionMap(m map[rune]Region) map[rune]Region {
	if m == nil {
		return nil
	}
	out := make(map[rune]Region, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneFloatMap(m map[uint32]float32) map[uint32]float32 {
	if m == nil {
		return nil
	}
	out := make(map[uint32]float32, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneRuneMap(m map[string]rune) map[string]rune {
	if m == nil {
		return nil
	}
	out := make(map[string]rune, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStringMap(m map[rune]string) map[rune]string {
	if m == nil {
		return nil
	}
	out := make(map[rune]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
