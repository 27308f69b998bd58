// Package deck implements the slide assembly pipeline: discovering and
// ordering markdown fragments, resolving explicit include lists, and
// concatenating rewritten fragments into a single slide body.
package deck

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// OrderKey captures the natural ordering of a slide file name: an optional
// leading numeric prefix compared by value, then the remaining stem compared
// byte-lexicographically. It orders 1.md, 1a.md, 1b.md, 2.md, 10.md exactly
// like that.
type OrderKey struct {
	Prefix    uint64
	HasPrefix bool
	Suffix    string
	Raw       string
}

// DeriveOrderKey builds the sort key for a slide file name. The markdown
// extension is stripped, then the stem splits at the first transition from
// leading decimal digits to anything else. A stem without leading digits has
// no numeric prefix and sorts after every numeric-prefixed name.
func DeriveOrderKey(filename string) OrderKey {
	stem := filename
	if isMarkdownFile(filename) {
		stem = filename[:len(filename)-len(markdownExt)]
	}

	digits := 0
	for digits < len(stem) && stem[digits] >= '0' && stem[digits] <= '9' {
		digits++
	}

	key := OrderKey{Raw: filename, Suffix: stem}
	if digits == 0 {
		return key
	}

	key.HasPrefix = true
	key.Suffix = stem[digits:]

	prefix, err := strconv.ParseUint(strings.TrimLeft(stem[:digits], "0"), 10, 64)
	switch {
	case stem[:digits] == strings.Repeat("0", digits):
		// All zeros: TrimLeft leaves an empty string that ParseUint rejects.
		key.Prefix = 0
	case err != nil:
		// Digit run too long for uint64; clamp so ordering stays total.
		key.Prefix = math.MaxUint64
	default:
		key.Prefix = prefix
	}
	return key
}

// Less defines the total order between two keys. Ties report false, so a
// stable sort preserves discovery order for identical keys.
func (k OrderKey) Less(other OrderKey) bool {
	if k.HasPrefix != other.HasPrefix {
		return k.HasPrefix
	}
	if k.HasPrefix && k.Prefix != other.Prefix {
		return k.Prefix < other.Prefix
	}
	return k.Suffix < other.Suffix
}

// sortByOrderKey orders slide files in place, keeping listing order for
// equal keys.
func sortByOrderKey(files []SlideFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Key.Less(files[j].Key)
	})
}
