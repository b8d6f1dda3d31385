package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/keylegend/keycode"
)

func TestRenderPlainKey(t *testing.T) {
	t.Parallel()

	us := LayoutFor("us")

	tests := []struct {
		name string
		code keycode.Keycode
		want KeycapText
	}{
		{
			name: "mapped_key_gets_legend",
			code: keycode.Keycode(0x04), // A
			want: KeycapText{BottomLeft: "a", TopLeft: "A"},
		},
		{
			name: "explicit_legend_key",
			code: keycode.Keycode(0x29), // Escape
			want: KeycapText{Center: "Esc"},
		},
		{
			name: "unmapped_key_falls_back_to_name",
			code: keycode.Keycode(0x89), // Intl3, not in the us table
			want: KeycapText{Center: "Intl3"},
		},
		{
			name: "none_key",
			code: keycode.KeyNone,
			want: KeycapText{Center: "None"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := us.Render(keycode.PlainKey{Code: tt.code})
			assert.Equal(t, tt.want, r.Text)
			assert.Equal(t, keycode.PlainKey{Code: tt.code}, r.Expr)
		})
	}
}

func TestRenderModifiedKey(t *testing.T) {
	t.Parallel()

	var (
		us = LayoutFor("us")
		de = LayoutFor("de")
	)

	tests := []struct {
		name   string
		layout Layout
		code   keycode.Keycode
		mods   keycode.Modifier
		want   KeycapText
	}{
		{
			name:   "shift_selects_shift_symbol",
			layout: us,
			code:   keycode.Keycode(0x1E), // 1
			mods:   keycode.ModLeftShift,
			want:   KeycapText{Center: "!"},
		},
		{
			name:   "right_shift_counts_too",
			layout: us,
			code:   keycode.Keycode(0x04), // A
			mods:   keycode.ModRightShift,
			want:   KeycapText{Center: "A"},
		},
		{
			name:   "altgr_selects_altgr_symbol",
			layout: de,
			code:   keycode.Keycode(0x14), // Q -> @
			mods:   keycode.ModRightAlt,
			want:   KeycapText{Center: "@"},
		},
		{
			name:   "altgr_shift_selects_fourth_layer",
			layout: de,
			code:   keycode.Keycode(0x2D), // ß -> ẞ
			mods:   keycode.ModRightAlt | keycode.ModLeftShift,
			want:   KeycapText{Center: "ẞ"},
		},
		{
			name:   "altgr_shift_without_symbol_falls_back",
			layout: de,
			code:   keycode.Keycode(0x14), // Q, no AltGr+Shift symbol
			mods:   keycode.ModRightAlt | keycode.ModLeftShift,
			want:   KeycapText{Center: "Q", CenterBottom: "AltGr+Shift"},
		},
		{
			name:   "ctrl_combination_has_no_symbol",
			layout: us,
			code:   keycode.Keycode(0x06), // C
			mods:   keycode.ModLeftCtrl,
			want:   KeycapText{Center: "C", CenterBottom: "Ctrl"},
		},
		{
			name:   "ctrl_shift_does_not_match_shift_layer",
			layout: us,
			code:   keycode.Keycode(0x04), // A
			mods:   keycode.ModLeftCtrl | keycode.ModLeftShift,
			want:   KeycapText{Center: "A", CenterBottom: "Ctrl+Shift"},
		},
		{
			name:   "noop_key_shows_modifiers_only",
			layout: us,
			code:   keycode.KeyNone,
			mods:   keycode.ModLeftCtrl | keycode.ModLeftAlt,
			want:   KeycapText{Center: "Ctrl+Alt"},
		},
		{
			name:   "unmapped_key_uses_name",
			layout: us,
			code:   keycode.Keycode(0x89), // Intl3
			mods:   keycode.ModLeftGui,
			want:   KeycapText{Center: "INTL3", CenterBottom: "Meta"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := tt.layout.Render(keycode.ModifiedKey{Code: tt.code, Mods: tt.mods})
			assert.Equal(t, tt.want, r.Text)
		})
	}
}

func TestRenderModifierOnly(t *testing.T) {
	t.Parallel()

	us := LayoutFor("us")

	tests := []struct {
		name string
		code keycode.Keycode
		mods keycode.Modifier
		want KeycapText
	}{
		{
			name: "base_symbol_wins_without_exact_match",
			code: keycode.Keycode(0x04), // A
			mods: keycode.ModLeftCtrl | keycode.ModLeftShift,
			want: KeycapText{Center: "a", CenterBottom: "Ctrl+Shift"},
		},
		{
			name: "noop_key_shows_modifiers_only",
			code: keycode.KeyNone,
			mods: keycode.ModLeftShift,
			want: KeycapText{Center: "Shift"},
		},
		{
			name: "key_without_base_symbol_uses_name",
			code: keycode.Keycode(0x29), // Escape
			mods: keycode.ModLeftAlt,
			want: KeycapText{Center: "Escape", CenterBottom: "Alt"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := us.Render(keycode.ModifierOnly{Code: tt.code, Mods: tt.mods})
			assert.Equal(t, tt.want, r.Text)
		})
	}
}

type passThroughExpr struct{}

func (passThroughExpr) IsKeyExpression() {}

// Render must hand back expression types it does not know, untouched.
func TestRenderPassThrough(t *testing.T) {
	t.Parallel()

	us := LayoutFor("us")

	r := us.Render(passThroughExpr{})
	assert.Equal(t, passThroughExpr{}, r.Expr)
	assert.True(t, r.Text.Empty())
}

func TestRenderIsPure(t *testing.T) {
	t.Parallel()

	de := LayoutFor("de")
	expr := keycode.ModifiedKey{
		Code: keycode.Keycode(0x08), // E
		Mods: keycode.ModRightAlt,
	}

	first := de.Render(expr)
	require.Equal(t, KeycapText{Center: "€"}, first.Text)
	assert.Equal(t, first, de.Render(expr))
}
