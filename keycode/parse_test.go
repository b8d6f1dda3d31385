package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Expression
	}{
		{
			name: "plain_key",
			in:   "A",
			want: PlainKey{Code: 0x04},
		},
		{
			name: "named_key",
			in:   "enter",
			want: PlainKey{Code: 0x28},
		},
		{
			name: "shift_key",
			in:   "Shift+A",
			want: ModifiedKey{Code: 0x04, Mods: ModLeftShift},
		},
		{
			name: "altgr_shift_key",
			in:   "AltGr+Shift+E",
			want: ModifiedKey{Code: 0x08, Mods: ModRightAlt | ModLeftShift},
		},
		{
			name: "case_insensitive",
			in:   "CTRL+shift+f1",
			want: ModifiedKey{Code: 0x3A, Mods: ModLeftCtrl | ModLeftShift},
		},
		{
			name: "spaces_tolerated",
			in:   " Ctrl + C ",
			want: ModifiedKey{Code: 0x06, Mods: ModLeftCtrl},
		},
		{
			name: "modifier_chord",
			in:   "Ctrl+Shift",
			want: ModifierOnly{Mods: ModLeftCtrl | ModLeftShift, Code: KeyNone},
		},
		{
			name: "single_modifier",
			in:   "AltGr",
			want: ModifierOnly{Mods: ModRightAlt, Code: KeyNone},
		},
		{
			name: "explicit_none",
			in:   "Shift+none",
			want: ModifiedKey{Code: KeyNone, Mods: ModLeftShift},
		},
		{
			name: "right_side_modifier",
			in:   "RShift+Tab",
			want: ModifiedKey{Code: 0x2B, Mods: ModRightShift},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseExpression(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpressionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		errText string
	}{
		{name: "empty", in: "", errText: "empty key expression"},
		{name: "unknown_key", in: "Shift+Bogus", errText: `unknown key "Bogus"`},
		{name: "unknown_modifier", in: "Hyper+A", errText: `unknown modifier "Hyper"`},
		{name: "trailing_separator", in: "Shift+", errText: "unknown key"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseExpression(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
