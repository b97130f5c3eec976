package font

import "strings"

// FamilySize is the fixed number of font slots a Family holds; a packed
// glyph's 4-bit font-index field addresses exactly this many slots
// (spec §3.4, §4.2, §9 "Cross-referencing FontFamily slots").
const FamilySize = 16

// Family is a fixed 16-slot array of Fonts plus a case-insensitive alias
// map from name to slot. Aliases automatically include "0".."15". A
// Family is the value a packed glyph's font index selects into.
//
// Copying a Family aliases its Font pointers rather than deep-copying
// them, so many widgets can deliberately share one family (spec §4.2).
type Family struct {
	slots   [FamilySize]*Font
	aliases map[string]uint8
}

// NewFamily returns an empty Family with slot 0 set to base (which may
// be nil) and the numeric aliases "0".."15" pre-registered.
func NewFamily(base *Font) *Family {
	fam := &Family{aliases: make(map[string]uint8, FamilySize)}
	for i := 0; i < FamilySize; i++ {
		fam.aliases[indexDigits[i]] = uint8(i)
	}
	fam.slots[0] = base
	if base != nil {
		base.Family = fam
	}
	return fam
}

var indexDigits = [FamilySize]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
}

// Set installs font in the given slot (0-15) and registers name as a
// case-insensitive alias for it, in addition to the slot's numeric
// alias. Set is a no-op if slot is out of range.
func (fam *Family) Set(slot uint8, name string, f *Font) {
	if int(slot) >= FamilySize {
		return
	}
	fam.slots[slot] = f
	if f != nil {
		f.Family = fam
	}
	if name != "" {
		fam.aliases[strings.ToLower(name)] = slot
	}
}

// Get resolves a font by name or numeric slot string, case-insensitively.
// A missing or empty name resolves to slot 0, the base font (spec §4.2).
func (fam *Family) Get(name string) (*Font, uint8) {
	if name == "" {
		return fam.slots[0], 0
	}
	slot, ok := fam.aliases[strings.ToLower(name)]
	if !ok {
		return fam.slots[0], 0
	}
	return fam.slots[slot], slot
}

// At returns the font in a given slot directly, or the base font if the
// slot is out of range or empty.
func (fam *Family) At(slot uint8) *Font {
	if int(slot) >= FamilySize || fam.slots[slot] == nil {
		return fam.slots[0]
	}
	return fam.slots[slot]
}

// Copy returns a new Family whose slot array aliases the same *Font
// pointers as fam — no Font is deep-copied (spec §4.2).
func (fam *Family) Copy() *Family {
	clone := &Family{aliases: make(map[string]uint8, len(fam.aliases))}
	clone.slots = fam.slots
	for k, v := range fam.aliases {
		clone.aliases[k] = v
	}
	return clone
}
