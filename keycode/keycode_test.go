package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/keylegend/hid"
)

func TestKeycodeUsageCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code Keycode
		want hid.UsageCode
		ok   bool
	}{
		{name: "letter", code: 0x04, want: hid.KeyA, ok: true},
		{name: "modifier", code: 0xE1, want: hid.KeyLeftShift, ok: true},
		{name: "none", code: KeyNone, ok: false},
		{name: "below_basic_range", code: 0x01, ok: false},
		{name: "above_basic_range", code: 0x0100, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.code.UsageCode()
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKeycodeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", Keycode(0x04).Name())
	assert.Equal(t, "None", KeyNone.Name())
	assert.Equal(t, "0x90", Keycode(0x90).Name())
}

func TestModifierHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, ModLeftShift.HasShift())
	assert.True(t, ModRightShift.HasShift())
	assert.False(t, ModRightAlt.HasShift())

	assert.True(t, ModRightAlt.HasAltGr())
	assert.False(t, ModLeftAlt.HasAltGr())

	shifts := ModLeftShift | ModRightShift
	assert.True(t, ModLeftShift.Only(shifts))
	assert.True(t, (ModLeftShift | ModRightShift).Only(shifts))
	assert.False(t, (ModLeftShift | ModLeftCtrl).Only(shifts))
	assert.True(t, Modifier(0).Only(shifts))
}

func TestModifierString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mods Modifier
		want string
	}{
		{name: "empty", mods: 0, want: ""},
		{name: "shift", mods: ModLeftShift, want: "Shift"},
		{name: "collapsed_sides", mods: ModLeftCtrl | ModRightCtrl, want: "Ctrl"},
		{name: "altgr", mods: ModRightAlt, want: "AltGr"},
		{name: "alt_and_altgr_stay_distinct", mods: ModLeftAlt | ModRightAlt, want: "Alt+AltGr"},
		{name: "full_chord", mods: ModLeftCtrl | ModLeftAlt | ModLeftGui | ModLeftShift, want: "Ctrl+Alt+Meta+Shift"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.mods.String())
		})
	}
}
