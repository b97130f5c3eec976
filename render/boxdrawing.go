package render

import "math"

// weight is the thickness class of one side of a box-drawing glyph.
type weight uint8

const (
	none weight = iota
	light
	heavy
	double
)

// connector describes one box-drawing/block-element codepoint as the
// weight of the line reaching toward each of its four neighbors. This is
// the data BOX_DRAWING is built from (spec §4.8): rather than hand-
// transcribe ~160 raw float arrays, each of them error-prone to review,
// every entry here is expanded into its rel_x/rel_y/width/height
// rectangle groups by boxRects each time BoxDrawingRects looks it up.
type connector struct {
	up, down, left, right weight
}

// connectors holds every codepoint in U+2500..U+257F whose glyph is a
// straight-line composition. Rounded corners (U+256D..U+2570) reuse the
// plain light-corner geometry — true arcs aren't expressible as
// axis-aligned rectangles, so they're approximated as square corners.
// True diagonals (U+2571..U+2573) have no axis-aligned rectangle
// rendering at all and are left out, so BoxDrawingRects reports them as
// unrecognized, like any other codepoint missing from this table.
var connectors = map[rune]connector{
	0x2500: {left: light, right: light},
	0x2501: {left: heavy, right: heavy},
	0x2502: {up: light, down: light},
	0x2503: {up: heavy, down: heavy},
	0x2504: {left: light, right: light},
	0x2505: {left: heavy, right: heavy},
	0x2506: {up: light, down: light},
	0x2507: {up: heavy, down: heavy},
	0x2508: {left: light, right: light},
	0x2509: {left: heavy, right: heavy},
	0x250A: {up: light, down: light},
	0x250B: {up: heavy, down: heavy},
	0x250C: {down: light, right: light},
	0x250D: {down: light, right: heavy},
	0x250E: {down: heavy, right: light},
	0x250F: {down: heavy, right: heavy},
	0x2510: {down: light, left: light},
	0x2511: {down: light, left: heavy},
	0x2512: {down: heavy, left: light},
	0x2513: {down: heavy, left: heavy},
	0x2514: {up: light, right: light},
	0x2515: {up: light, right: heavy},
	0x2516: {up: heavy, right: light},
	0x2517: {up: heavy, right: heavy},
	0x2518: {up: light, left: light},
	0x2519: {up: light, left: heavy},
	0x251A: {up: heavy, left: light},
	0x251B: {up: heavy, left: heavy},
	0x251C: {up: light, down: light, right: light},
	0x251D: {up: light, down: light, right: heavy},
	0x251E: {up: heavy, down: light, right: light},
	0x251F: {up: light, down: heavy, right: light},
	0x2520: {up: heavy, down: heavy, right: light},
	0x2521: {up: heavy, down: light, right: heavy},
	0x2522: {up: light, down: heavy, right: heavy},
	0x2523: {up: heavy, down: heavy, right: heavy},
	0x2524: {up: light, down: light, left: light},
	0x2525: {up: light, down: light, left: heavy},
	0x2526: {up: heavy, down: light, left: light},
	0x2527: {up: light, down: heavy, left: light},
	0x2528: {up: heavy, down: heavy, left: light},
	0x2529: {up: heavy, down: light, left: heavy},
	0x252A: {up: light, down: heavy, left: heavy},
	0x252B: {up: heavy, down: heavy, left: heavy},
	0x252C: {left: light, right: light, down: light},
	0x252D: {left: heavy, right: light, down: light},
	0x252E: {left: light, right: heavy, down: light},
	0x252F: {left: heavy, right: heavy, down: light},
	0x2530: {left: light, right: light, down: heavy},
	0x2531: {left: heavy, right: light, down: heavy},
	0x2532: {left: light, right: heavy, down: heavy},
	0x2533: {left: heavy, right: heavy, down: heavy},
	0x2534: {left: light, right: light, up: light},
	0x2535: {left: heavy, right: light, up: light},
	0x2536: {left: light, right: heavy, up: light},
	0x2537: {left: heavy, right: heavy, up: light},
	0x2538: {left: light, right: light, up: heavy},
	0x2539: {left: heavy, right: light, up: heavy},
	0x253A: {left: light, right: heavy, up: heavy},
	0x253B: {left: heavy, right: heavy, up: heavy},
	0x253C: {up: light, down: light, left: light, right: light},
	0x253D: {up: light, down: light, left: heavy, right: light},
	0x253E: {up: light, down: light, left: light, right: heavy},
	0x253F: {up: light, down: light, left: heavy, right: heavy},
	0x2540: {up: heavy, down: light, left: light, right: light},
	0x2541: {up: light, down: heavy, left: light, right: light},
	0x2542: {up: heavy, down: heavy, left: light, right: light},
	0x2543: {up: heavy, down: light, left: heavy, right: light},
	0x2544: {up: heavy, down: light, left: light, right: heavy},
	0x2545: {up: light, down: heavy, left: heavy, right: light},
	0x2546: {up: light, down: heavy, left: light, right: heavy},
	0x2547: {up: heavy, down: heavy, left: light, right: heavy},
	0x2548: {up: heavy, down: heavy, left: heavy, right: light},
	0x2549: {up: heavy, down: heavy, left: heavy, right: light},
	0x254A: {up: heavy, down: heavy, left: light, right: heavy},
	0x254B: {up: heavy, down: heavy, left: heavy, right: heavy},
	0x254C: {left: light, right: light},
	0x254D: {left: heavy, right: heavy},
	0x254E: {up: light, down: light},
	0x254F: {up: heavy, down: heavy},
	0x2550: {left: double, right: double},
	0x2551: {up: double, down: double},
	0x2552: {down: light, right: double},
	0x2553: {down: double, right: light},
	0x2554: {down: double, right: double},
	0x2555: {down: light, left: double},
	0x2556: {down: double, left: light},
	0x2557: {down: double, left: double},
	0x2558: {up: light, right: double},
	0x2559: {up: double, right: light},
	0x255A: {up: double, right: double},
	0x255B: {up: light, left: double},
	0x255C: {up: double, left: light},
	0x255D: {up: double, left: double},
	0x255E: {up: light, down: light, right: double},
	0x255F: {up: double, down: double, right: light},
	0x2560: {up: double, down: double, right: double},
	0x2561: {up: light, down: light, left: double},
	0x2562: {up: double, down: double, left: light},
	0x2563: {up: double, down: double, left: double},
	0x2564: {left: double, right: double, down: light},
	0x2565: {left: light, right: light, down: double},
	0x2566: {left: double, right: double, down: double},
	0x2567: {left: double, right: double, up: light},
	0x2568: {left: light, right: light, up: double},
	0x2569: {left: double, right: double, up: double},
	0x256A: {left: double, right: double, up: light, down: light},
	0x256B: {left: light, right: light, up: double, down: double},
	0x256C: {up: double, down: double, left: double, right: double},
	0x256D: {down: light, right: light},
	0x256E: {down: light, left: light},
	0x256F: {up: light, left: light},
	0x2570: {up: light, right: light},
	0x2574: {left: light},
	0x2575: {up: light},
	0x2576: {right: light},
	0x2577: {down: light},
	0x2578: {left: heavy},
	0x2579: {up: heavy},
	0x257A: {right: heavy},
	0x257B: {down: heavy},
	0x257C: {left: light, right: heavy},
	0x257D: {up: light, down: heavy},
	0x257E: {left: heavy, right: light},
	0x257F: {up: heavy, down: light},
}

func breadthOf(w weight) float32 {
	switch w {
	case heavy:
		return 0.2
	case double:
		return 0.12
	default:
		return 0.1
	}
}

// boxRects expands one connector into its rel_x/rel_y/width/height
// rectangle groups, one per connected side, each running from the cell
// center to that side's edge. A double-weight side emits two parallel
// light rectangles straddling the centerline instead of one.
func boxRects(c connector) []float32 {
	var out []float32
	add := func(x, y, w, h float32) { out = append(out, x, y, w, h) }

	if c.left != none {
		if c.left == double {
			b := breadthOf(light)
			add(0, 0.5-b-0.04, 0.5, b)
			add(0, 0.5+0.04, 0.5, b)
		} else {
			b := breadthOf(c.left)
			add(0, 0.5-b/2, 0.5, b)
		}
	}
	if c.right != none {
		if c.right == double {
			b := breadthOf(light)
			add(0.5, 0.5-b-0.04, 0.5, b)
			add(0.5, 0.5+0.04, 0.5, b)
		} else {
			b := breadthOf(c.right)
			add(0.5, 0.5-b/2, 0.5, b)
		}
	}
	if c.up != none {
		if c.up == double {
			b := breadthOf(light)
			add(0.5-b-0.04, 0, b, 0.5)
			add(0.5+0.04, 0, b, 0.5)
		} else {
			b := breadthOf(c.up)
			add(0.5-b/2, 0, b, 0.5)
		}
	}
	if c.down != none {
		if c.down == double {
			b := breadthOf(light)
			add(0.5-b-0.04, 0.5, b, 0.5)
			add(0.5+0.04, 0.5, b, 0.5)
		} else {
			b := breadthOf(c.down)
			add(0.5-b/2, 0.5, b, 0.5)
		}
	}
	return out
}

// blockElements holds the U+2580..U+259F block-element codepoints that
// aren't line compositions: half/quadrant blocks as direct rectangles,
// and the three shade levels approximated as a sparse grid of small
// squares (their true rendering is a partial-alpha fill, which this
// rectangle-group format cannot express).
var blockElements = map[rune][]float32{
	0x2580: {0, 0, 1, 0.5},   // upper half
	0x2584: {0, 0.5, 1, 0.5}, // lower half
	0x2588: {0, 0, 1, 1},     // full block
	0x258C: {0, 0, 0.5, 1},   // left half
	0x2590: {0.5, 0, 0.5, 1}, // right half
	0x2591: shadeGrid(4),     // light shade  ~25%
	0x2592: shadeGrid(8),     // medium shade ~50%
	0x2593: shadeGrid(12),    // dark shade   ~75%
}

// shadeGrid lays out n cells (out of a 4x4 grid) as small squares,
// selected on a fixed checkerboard-like stride so successive shade
// levels nest visually.
func shadeGrid(n int) []float32 {
	const cols = 4
	cell := float32(1) / cols
	pad := cell * 0.15
	size := cell - 2*pad
	// Cells in 4x4 ordered-dither order: every prefix is spread evenly
	// over the grid, and the first 8 form a checkerboard.
	order := [cols * cols]int{0, 10, 2, 8, 5, 15, 7, 13, 1, 11, 3, 9, 4, 14, 6, 12}
	var out []float32
	for i := 0; i < n && i < cols*cols; i++ {
		row := order[i] / cols
		col := order[i] % cols
		out = append(out, float32(col)*cell+pad, float32(row)*cell+pad, size, size)
	}
	return out
}

// BoxDrawingRects returns the rectangle groups (each a rel_x, rel_y,
// width, height fraction of one cell) for codepoint, or nil if it isn't
// a recognized box-drawing or block-element glyph.
func BoxDrawingRects(codepoint rune) []float32 {
	if r, ok := blockElements[codepoint]; ok {
		return r
	}
	if c, ok := connectors[codepoint]; ok {
		return boxRects(c)
	}
	return nil
}

// DrawBlockSequence walks BoxDrawingRects(codepoint), applying breadth
// (a line-thickness multiplier, used only for line glyphs with no
// double-line side; block elements and glyphs with a double-line side
// keep their fixed geometry), moving each rectangle's top-left corner by
// a rotation of rotationDeg around the cell center, and emitting one quad
// per group via emit. The rectangles themselves stay axis-aligned: emit
// receives no rotation. cellX/cellY is the cell's top-left corner in
// world units; cellW/cellH its size. It returns false, drawing nothing,
// for an unrecognized codepoint (spec §4.8).
func DrawBlockSequence(codepoint rune, cellX, cellY, cellW, cellH, breadth, rotationDeg float32, emit func(x, y, w, h float32)) bool {
	rects := BoxDrawingRects(codepoint)
	if rects == nil {
		return false
	}
	_, isBlock := blockElements[codepoint]
	fixedBreadth := isBlock || hasAnyDouble(connectors[codepoint])
	cx, cy := cellX+cellW/2, cellY+cellH/2
	for i := 0; i+3 < len(rects); i += 4 {
		rx, ry, rw, rh := rects[i], rects[i+1], rects[i+2], rects[i+3]
		if !fixedBreadth && breadth != 1 {
			rx, ry, rw, rh = scaleAboutCenter(rx, ry, rw, rh, breadth)
		}
		x := cellX + rx*cellW
		y := cellY + ry*cellH
		w := rw * cellW
		h := rh * cellH
		if rotationDeg != 0 {
			x, y = rotatePoint(x, y, cx, cy, rotationDeg)
		}
		emit(x, y, w, h)
	}
	return true
}

func hasAnyDouble(c connector) bool {
	return c.up == double || c.down == double || c.left == double || c.right == double
}

// scaleAboutCenter widens/narrows a line-segment rectangle by breadth
// around its own centerline, leaving its span (the long axis) untouched.
func scaleAboutCenter(x, y, w, h, breadth float32) (float32, float32, float32, float32) {
	if w < h {
		cx := x + w/2
		w *= breadth
		return cx - w/2, y, w, h
	}
	cy := y + h/2
	h *= breadth
	return x, cy - h/2, w, h
}

func rotatePoint(x, y, cx, cy, deg float32) (float32, float32) {
	rad := float64(deg) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := float64(x-cx), float64(y-cy)
	return cx + float32(dx*cos-dy*sin), cy + float32(dx*sin+dy*cos)
}
