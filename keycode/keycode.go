// Package keycode models firmware key codes and the modifier state that
// accompanies them in key expressions.
package keycode

import (
	"strings"

	"github.com/grafana/keylegend/hid"
)

// Keycode is a 16-bit firmware key code. The basic range 0x04..0xE7
// coincides with the USB HID keyboard usage code of the key.
type Keycode uint16

// KeyNone is the no-op key code. Expressions carrying it produce no
// output by themselves.
const KeyNone Keycode = 0x0000

// Basic key code range.
const (
	basicMin Keycode = 0x0004
	basicMax Keycode = 0x00E7
)

// UsageCode translates a key code to the USB HID usage code of the
// physical key it addresses. It returns false for KeyNone and for codes
// outside the basic range.
func (k Keycode) UsageCode() (hid.UsageCode, bool) {
	if k < basicMin || k > basicMax {
		return 0, false
	}
	return hid.UsageCode(k), true
}

// Name returns the human-readable name of the key code.
func (k Keycode) Name() string {
	if k == KeyNone {
		return "None"
	}
	return hid.Name(hid.UsageCode(k))
}

// Modifier is a set of held modifier keys, laid out like the modifier
// byte of a HID keyboard report.
type Modifier uint8

const (
	// ModLeftCtrl is the left control key.
	ModLeftCtrl Modifier = 1 << iota
	// ModLeftShift is the left shift key.
	ModLeftShift
	// ModLeftAlt is the left alt key.
	ModLeftAlt
	// ModLeftGui is the left GUI (meta) key.
	ModLeftGui
	// ModRightCtrl is the right control key.
	ModRightCtrl
	// ModRightShift is the right shift key.
	ModRightShift
	// ModRightAlt is the right alt key, AltGr on ISO keyboards.
	ModRightAlt
	// ModRightGui is the right GUI (meta) key.
	ModRightGui
)

// HasShift returns true if either shift key is in the set.
func (m Modifier) HasShift() bool {
	return m&(ModLeftShift|ModRightShift) != 0
}

// HasAltGr returns true if the right alt key is in the set.
func (m Modifier) HasAltGr() bool {
	return m&ModRightAlt != 0
}

// Only returns true if the set contains no modifiers outside mask.
func (m Modifier) Only(mask Modifier) bool {
	return m & ^mask == 0
}

// String renders the set as a "Ctrl+Shift" style description, with
// left/right variants collapsed. AltGr is kept distinct from plain Alt.
func (m Modifier) String() string {
	var parts []string
	if m&(ModLeftCtrl|ModRightCtrl) != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModLeftAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModRightAlt != 0 {
		parts = append(parts, "AltGr")
	}
	if m&(ModLeftGui|ModRightGui) != 0 {
		parts = append(parts, "Meta")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
