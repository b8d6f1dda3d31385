package keycode

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/grafana/keylegend/hid"
)

//nolint:gochecknoglobals
var (
	modifierNames = map[string]Modifier{
		"ctrl":   ModLeftCtrl,
		"lctrl":  ModLeftCtrl,
		"rctrl":  ModRightCtrl,
		"shift":  ModLeftShift,
		"lshift": ModLeftShift,
		"rshift": ModRightShift,
		"alt":    ModLeftAlt,
		"lalt":   ModLeftAlt,
		"altgr":  ModRightAlt,
		"ralt":   ModRightAlt,
		"meta":   ModLeftGui,
		"gui":    ModLeftGui,
		"win":    ModLeftGui,
	}

	keyNames = func() map[string]Keycode {
		m := make(map[string]Keycode, len(hid.KeyName))
		for code, name := range hid.KeyName {
			m[strings.ToLower(name)] = Keycode(code)
		}
		return m
	}()
)

// ParseExpression parses a "+" separated key expression such as "A",
// "Shift+A", "AltGr+Shift+E" or a bare modifier chord like
// "Ctrl+Shift". The last token may be a key name from the HID usage
// table or "none"; every other token must be a modifier name. Matching
// is case-insensitive.
func ParseExpression(s string) (Expression, error) {
	tokens := strings.Split(s, "+")
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
	}
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, errors.Errorf("empty key expression %q", s)
	}

	var mods Modifier
	for _, t := range tokens[:len(tokens)-1] {
		m, ok := modifierNames[strings.ToLower(t)]
		if !ok {
			return nil, errors.Errorf("unknown modifier %q in expression %q", t, s)
		}
		mods |= m
	}

	last := strings.ToLower(tokens[len(tokens)-1])
	if m, ok := modifierNames[last]; ok {
		// The whole expression is a modifier chord.
		return ModifierOnly{Mods: mods | m, Code: KeyNone}, nil
	}

	code := KeyNone
	if last != "none" {
		kc, ok := keyNames[last]
		if !ok {
			return nil, errors.Errorf("unknown key %q in expression %q", tokens[len(tokens)-1], s)
		}
		code = kc
	}
	if mods == 0 {
		return PlainKey{Code: code}, nil
	}
	return ModifiedKey{Code: code, Mods: mods}, nil
}
