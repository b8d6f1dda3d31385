package layout

import (
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/grafana/keylegend/hid"
	"github.com/grafana/keylegend/keycode"
)

// Record describes one physical key of a language layout: the symbol
// it produces on each layer, which layers act as dead keys, the legend
// printed on the cap when it differs from the symbols, and an optional
// display name.
type Record struct {
	Base       string
	Shift      string
	AltGr      string
	AltGrShift string

	// Deadkeys lists the layers on which the key composes with the
	// next keystroke instead of producing output, as space-separated
	// layer names ("base shift").
	Deadkeys string

	// Legend overrides the synthesized four-corner legend when any of
	// its slots is set.
	Legend KeycapText

	// Name overrides the key's display name, e.g. "Enter" for 0x28.
	Name null.String
}

// Entry binds a Record to the usage code of the physical key it
// describes. Layout tables are built from slices of entries.
type Entry struct {
	Code hid.UsageCode
	Record
}

// Symbol returns the symbol produced on the given layer.
func (r Record) Symbol(l Layer) string {
	switch l {
	case LayerBase:
		return r.Base
	case LayerShift:
		return r.Shift
	case LayerAltGr:
		return r.AltGr
	case LayerAltGrShift:
		return r.AltGrShift
	}
	return ""
}

// DeadkeyOn returns true if the key is a dead key on the given layer.
func (r Record) DeadkeyOn(l Layer) bool {
	for _, f := range strings.Fields(r.Deadkeys) {
		if f == l.String() {
			return true
		}
	}
	return false
}

// modifierSymbol resolves a held modifier set to one of the record's
// symbols. Only exact matches count: a single shift selects the shift
// layer, a single AltGr the AltGr layer, AltGr plus either shift the
// AltGr+Shift layer. Any other combination resolves to nothing.
func (r Record) modifierSymbol(m keycode.Modifier) string {
	const shifts = keycode.ModLeftShift | keycode.ModRightShift
	switch {
	case m.HasAltGr() && m.HasShift() && m.Only(shifts|keycode.ModRightAlt):
		return r.AltGrShift
	case m.HasAltGr() && m.Only(keycode.ModRightAlt):
		return r.AltGr
	case m.HasShift() && m.Only(shifts):
		return r.Shift
	}
	return ""
}
