package font

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/gogpu/styledtext/internal/obslog"
)

// structuredBounds is a left/bottom/right/top rectangle, the shape both
// planeBounds (font-unit space) and atlasBounds (atlas-pixel space) share
// in a Structured JSON descriptor (spec §6.2).
type structuredBounds struct {
	Left, Bottom, Right, Top float32
}

// structuredGlyph mirrors one entry of a Structured JSON descriptor's
// "glyphs" array.
type structuredGlyph struct {
	Unicode     rune              `json:"unicode"`
	Advance     float32           `json:"advance"`
	PlaneBounds *structuredBounds `json:"planeBounds"`
	AtlasBounds *structuredBounds `json:"atlasBounds"`
}

// structuredKerningPair mirrors one entry of a Structured JSON
// descriptor's top-level "kerning" array.
type structuredKerningPair struct {
	Unicode1 rune    `json:"unicode1"`
	Unicode2 rune    `json:"unicode2"`
	Advance  float32 `json:"advance"`
}

// StructuredJSON is the decoded form of a msdf-atlas-gen-style font
// descriptor (spec §6.2): atlas metadata naming a distance-field type,
// per-glyph plane/atlas bounds and advance, and an optional kerning
// table.
type StructuredJSON struct {
	Atlas struct {
		Type          string  `json:"type"`
		DistanceRange float32 `json:"distanceRange"`
		Size          float32 `json:"size"`
		Width         float32 `json:"width"`
		Height        float32 `json:"height"`
	} `json:"atlas"`
	Metrics struct {
		LineHeight float32 `json:"lineHeight"`
		Descender  float32 `json:"descender"`
	} `json:"metrics"`
	Glyphs  []structuredGlyph       `json:"glyphs"`
	Kerning []structuredKerningPair `json:"kerning"`
}

// distanceFieldType maps a Structured JSON "type" string to this
// package's DistanceField enum (spec §6.2's "msdf|mtsdf|sdf|psdf|
// softmask|hardmask|<empty>"). mtsdf (multi-channel + true distance) and
// psdf (perpendicular distance) have no distinct shader path of their
// own here, so they fold into the nearest of MSDF/SDF; softmask,
// hardmask, and the empty string all mean plain bitmap rendering.
func distanceFieldType(t string) (DistanceField, error) {
	switch strings.ToLower(t) {
	case "msdf", "mtsdf":
		return MSDF, nil
	case "sdf", "psdf":
		return SDF, nil
	case "softmask", "hardmask", "":
		return Standard, nil
	default:
		return Standard, ErrUnsupportedFormat
	}
}

// DecodeStructuredJSON parses an uncompressed Structured JSON payload
// into a Font (spec §6.2). Each glyph's atlasBounds, scaled by the
// atlas's pixel dimensions, becomes its UV rectangle; planeBounds,
// scaled by the nominal glyph size, becomes its draw offset. A glyph
// with no atlasBounds gets a zero-sized region — spec §9 documents this
// as a likely oversight in the original format that must nonetheless be
// preserved for compatibility. The decoded Font goes through
// EnsureBaseGlyphs, so a descriptor without a space glyph is rejected
// with ErrMissingSpaceGlyph.
func DecodeStructuredJSON(data []byte) (*Font, error) {
	var doc StructuredJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		obslog.Logger().Warn("font: structured JSON decode failed", "error", err)
		return nil, err
	}
	distanceField, err := distanceFieldType(doc.Atlas.Type)
	if err != nil {
		obslog.Logger().Warn("font: unsupported structured JSON atlas type", "type", doc.Atlas.Type)
		return nil, err
	}

	f := New()
	f.DistanceField = distanceField
	f.CellWidth = doc.Atlas.Size
	f.CellHeight = doc.Metrics.LineHeight * doc.Atlas.Size
	f.OriginalCellWidth, f.OriginalCellHeight = f.CellWidth, f.CellHeight
	f.Descent = -doc.Metrics.Descender * doc.Atlas.Size

	for _, g := range doc.Glyphs {
		f.Mapping[g.Unicode] = structuredRegion(g, doc.Atlas.Width, doc.Atlas.Height, doc.Atlas.Size)
	}
	for _, k := range doc.Kerning {
		f.SetKerning(k.Unicode1, k.Unicode2, k.Advance*doc.Atlas.Size)
	}
	if err := f.EnsureBaseGlyphs(); err != nil {
		obslog.Logger().Warn("font: structured JSON descriptor has no space glyph")
		return nil, err
	}
	return f, nil
}

func structuredRegion(g structuredGlyph, atlasW, atlasH, size float32) Region {
	region := Region{XAdvance: g.Advance * size}
	if g.AtlasBounds == nil || atlasW <= 0 || atlasH <= 0 {
		return region
	}
	b := g.AtlasBounds
	region.U = b.Left / atlasW
	region.V = b.Bottom / atlasH
	region.U2 = b.Right / atlasW
	region.V2 = b.Top / atlasH
	region.Width = b.Right - b.Left
	region.Height = b.Top - b.Bottom
	if g.PlaneBounds != nil {
		region.OffsetX = g.PlaneBounds.Left * size
		region.OffsetY = g.PlaneBounds.Bottom * size
	}
	return region
}

// LoadStructuredJSON reads a Structured JSON descriptor from path and
// decodes it with DecodeStructuredJSON, reporting ErrFontFileNotFound
// when the file does not exist rather than a bare os.PathError (spec
// §7's loader error surface).
func LoadStructuredJSON(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			obslog.Logger().Warn("font: descriptor file not found", "path", path)
			return nil, ErrFontFileNotFound
		}
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lzma":
		return LoadStructuredJSONLZMA(data)
	case ".gz":
		return DecodeStructuredJSONGzip(data)
	default:
		return DecodeStructuredJSON(data)
	}
}

// LoadStructuredJSONLZMA decompresses an LZMA-compressed Structured JSON
// payload (the ".json.lzma"/".ubj.lzma" font variants, spec §6.2) and
// decodes it the same way DecodeStructuredJSON does. LZMA has no
// standard-library decoder, so this uses the same pure-Go xz/LZMA reader
// the wider Go ecosystem reaches for when it needs to read this format
// (see DESIGN.md for why no pack example grounds this specific choice).
func LoadStructuredJSONLZMA(compressed []byte) (*Font, error) {
	r, err := xz.NewReader(bytes.NewReader(compressed))
	if err != nil {
		// xz.NewReader expects the .xz container; StructuredJSON's
		// ".lzma" variant is the bare legacy stream, which the
		// package's lzma.Reader handles instead.
		return loadLegacyLZMA(compressed)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		obslog.Logger().Warn("font: xz decompress failed", "error", err)
		return nil, err
	}
	return DecodeStructuredJSON(raw)
}

func loadLegacyLZMA(compressed []byte) (*Font, error) {
	r, err := lzma.NewReader(bytes.NewReader(compressed))
	if err != nil {
		obslog.Logger().Warn("font: legacy LZMA stream rejected", "error", err)
		return nil, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		obslog.Logger().Warn("font: legacy LZMA decompress failed", "error", err)
		return nil, err
	}
	return DecodeStructuredJSON(raw)
}

// DecodeStructuredJSONGzip is a convenience for the far more common gzip-
// compressed descriptor variant some structured-font exports use
// alongside the LZMA one.
func DecodeStructuredJSONGzip(compressed []byte) (*Font, error) {
	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		obslog.Logger().Warn("font: gzip header rejected", "error", err)
		return nil, err
	}
	defer gz.Close()
	raw, err := io.ReadAll(gz)
	if err != nil {
		obslog.Logger().Warn("font: gzip decompress failed", "error", err)
		return nil, err
	}
	return DecodeStructuredJSON(raw)
}

// vectorFace is the slice of github.com/go-text/typesetting/font.Face
// VectorAdvanceSource needs: resolving a codepoint to a glyph ID and
// reading that glyph's horizontal advance. Narrowing to an interface
// here (rather than depending on *gotext.Face directly) lets tests
// supply a fake face instead of parsing real TTF bytes.
type vectorFace interface {
	NominalGlyph(r rune) (gotext.GID, bool)
	HorizontalAdvance(glyph gotext.GID, varCoords []float32) float32
}

// VectorAdvanceSource supplies per-glyph advance widths from a real
// TTF/OTF face, for callers that pair a bitmap atlas with a parsed
// vector font purely to borrow its metrics (spec §3.4's advance data,
// filled in once at load time rather than queried per draw call).
type VectorAdvanceSource struct {
	face vectorFace
}

// NewVectorAdvanceSource parses font bytes with go-text/typesetting and
// returns a source FillAdvancesFromFace can query: the same
// font.ParseTTF entry point a HarfBuzz-backed shaper uses to build its
// font cache, minus the shaping step itself — only per-glyph advance is
// needed here.
func NewVectorAdvanceSource(data []byte) (*VectorAdvanceSource, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		obslog.Logger().Warn("font: vector face parse failed", "error", err)
		return nil, err
	}
	return &VectorAdvanceSource{face: face}, nil
}

// FillAdvancesFromFace overwrites the XAdvance of every codepoint in
// codepoints that already has a Mapping entry, using src's own
// horizontal advance scaled from font units to this Font's cell size.
// It exists for bitmap atlases assembled from a rasterized TTF that
// dropped the original per-glyph advance data; fonts whose atlas already
// carries accurate advances don't need it.
func (f *Font) FillAdvancesFromFace(src *VectorAdvanceSource, codepoints []rune, unitsPerEm float32) {
	if src == nil || src.face == nil || unitsPerEm == 0 {
		return
	}
	for _, cp := range codepoints {
		region, ok := f.Mapping[cp]
		if !ok {
			continue
		}
		gid, ok := src.face.NominalGlyph(cp)
		if !ok {
			continue
		}
		region.XAdvance = src.face.HorizontalAdvance(gid, nil) / unitsPerEm * f.CellWidth
		f.Mapping[cp] = region
	}
}
