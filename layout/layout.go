// Package layout maps physical key positions to the legends printed on
// them and resolves key expressions against per-language symbol tables.
package layout

import (
	"github.com/grafana/keylegend/hid"
)

// Layout is the key table of one language. It is immutable after
// construction.
// Like: "us".
type Layout struct {
	// Language is the layout identifier, e.g. "us" or "de".
	Language string
	// Name is the human-readable layout name.
	Name string
	// Geometry identifies the physical keyboard shape the table
	// assumes, e.g. "ansi" or "iso".
	Geometry string

	keys map[hid.UsageCode]Record
}

// NewLayout builds a layout from per-key entries. A usage code
// appearing more than once keeps the last entry; each duplicate is
// reported through the package logger.
func NewLayout(language, name, geometry string, entries []Entry) Layout {
	keys := make(map[hid.UsageCode]Record, len(entries))
	for _, e := range entries {
		if _, dup := keys[e.Code]; dup {
			logger().Warnf("layout:build",
				"layout %q: duplicate usage code 0x%02X (%s), keeping the later entry",
				language, uint16(e.Code), hid.Name(e.Code))
		}
		keys[e.Code] = e.Record
	}
	return Layout{
		Language: language,
		Name:     name,
		Geometry: geometry,
		keys:     keys,
	}
}

// KeyRecord returns true with the record of the key at the given usage
// code. It returns false and an empty record for codes the layout does
// not map.
func (l Layout) KeyRecord(code hid.UsageCode) (Record, bool) {
	r, ok := l.keys[code]
	return r, ok
}

// LegendForUsageCode returns the keycap legend of the key at the given
// usage code. An explicit legend on the record wins verbatim; otherwise
// the four layer symbols are spread over the corners (base bottom-left,
// shift top-left, AltGr bottom-right, AltGr+Shift top-right). It
// returns false for codes the layout does not map.
func (l Layout) LegendForUsageCode(code hid.UsageCode) (KeycapText, bool) {
	r, ok := l.keys[code]
	if !ok {
		return KeycapText{}, false
	}
	if !r.Legend.Empty() {
		return r.Legend, true
	}
	return KeycapText{
		BottomLeft:  r.Base,
		TopLeft:     r.Shift,
		BottomRight: r.AltGr,
		TopRight:    r.AltGrShift,
	}, true
}
