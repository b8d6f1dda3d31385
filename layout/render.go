package layout

import (
	"strings"

	"github.com/grafana/keylegend/keycode"
)

// Rendered pairs a key expression with the keycap text resolved for it.
// Text is the zero value when the expression passed through unrendered.
type Rendered struct {
	Expr keycode.Expression
	Text KeycapText
}

// Render resolves a key expression against the layout. Expression types
// this package does not know are handed back unchanged.
func (l Layout) Render(expr keycode.Expression) Rendered {
	switch e := expr.(type) {
	case keycode.PlainKey:
		return Rendered{Expr: expr, Text: l.renderPlain(e.Code)}
	case keycode.ModifiedKey:
		return Rendered{Expr: expr, Text: l.renderModified(e.Code, e.Mods)}
	case keycode.ModifierOnly:
		return Rendered{Expr: expr, Text: l.renderModifierOnly(e.Code, e.Mods)}
	}
	return Rendered{Expr: expr}
}

func (l Layout) renderPlain(kc keycode.Keycode) KeycapText {
	if code, ok := kc.UsageCode(); ok {
		if legend, ok := l.LegendForUsageCode(code); ok {
			return legend
		}
	}
	return KeycapText{Center: kc.Name()}
}

func (l Layout) renderModified(kc keycode.Keycode, mods keycode.Modifier) KeycapText {
	rec, found := l.recordFor(kc)
	if found {
		if sym := rec.modifierSymbol(mods); sym != "" {
			return KeycapText{Center: sym}
		}
	}
	if kc == keycode.KeyNone {
		return KeycapText{Center: mods.String()}
	}
	return KeycapText{
		Center:       strings.ToUpper(l.displayText(rec, found, kc)),
		CenterBottom: mods.String(),
	}
}

// renderModifierOnly handles modifier-like expressions such as one-shot
// modifiers. Unlike renderModified it does not require the held set to
// match a layer: the base symbol wins whenever the key has one.
func (l Layout) renderModifierOnly(kc keycode.Keycode, mods keycode.Modifier) KeycapText {
	if rec, found := l.recordFor(kc); found && rec.Base != "" {
		return KeycapText{Center: rec.Base, CenterBottom: mods.String()}
	}
	if kc == keycode.KeyNone {
		return KeycapText{Center: mods.String()}
	}
	return KeycapText{Center: kc.Name(), CenterBottom: mods.String()}
}

func (l Layout) recordFor(kc keycode.Keycode) (Record, bool) {
	code, ok := kc.UsageCode()
	if !ok {
		return Record{}, false
	}
	return l.KeyRecord(code)
}

// displayText is the fallback text of a key when no layer symbol
// applies: the base symbol, then the display-name override, then the
// raw key code name.
func (l Layout) displayText(rec Record, found bool, kc keycode.Keycode) string {
	if found && rec.Base != "" {
		return rec.Base
	}
	if found && rec.Name.Valid {
		return rec.Name.String
	}
	return kc.Name()
}
