package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/keylegend/hid"
)

func TestLegendForUsageCode(t *testing.T) {
	t.Parallel()

	us := LayoutFor("us")
	require.Equal(t, "us", us.Language)

	tests := []struct {
		name string
		code hid.UsageCode
		want KeycapText
		ok   bool
	}{
		{
			name: "synthesized_corners",
			code: hid.KeyA,
			want: KeycapText{BottomLeft: "a", TopLeft: "A"},
			ok:   true,
		},
		{
			name: "synthesized_digit",
			code: hid.Key2,
			want: KeycapText{BottomLeft: "2", TopLeft: "@"},
			ok:   true,
		},
		{
			name: "explicit_legend_wins",
			code: hid.KeyEnter,
			want: KeycapText{Center: "Enter"},
			ok:   true,
		},
		{
			name: "absent_code",
			code: hid.KeyIntl3,
			want: KeycapText{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := us.LegendForUsageCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLegendForUsageCodeAltGrCorners(t *testing.T) {
	t.Parallel()

	de := LayoutFor("de")
	require.Equal(t, "de", de.Language)

	got, ok := de.LegendForUsageCode(hid.Key7)
	require.True(t, ok)
	assert.Equal(t, KeycapText{
		BottomLeft:  "7",
		TopLeft:     "/",
		BottomRight: "{",
	}, got)
}

func TestKeyRecord(t *testing.T) {
	t.Parallel()

	de := LayoutFor("de")

	rec, ok := de.KeyRecord(hid.KeyMinus)
	require.True(t, ok)
	assert.Equal(t, "ß", rec.Base)
	assert.Equal(t, "?", rec.Shift)
	assert.Equal(t, `\`, rec.AltGr)
	assert.Equal(t, "ẞ", rec.AltGrShift)

	_, ok = de.KeyRecord(hid.KeyKpEqual)
	assert.False(t, ok)
}

func TestRecordDeadkeyOn(t *testing.T) {
	t.Parallel()

	de := LayoutFor("de")

	caret, ok := de.KeyRecord(hid.KeyGrave)
	require.True(t, ok)
	assert.True(t, caret.DeadkeyOn(LayerBase))
	assert.False(t, caret.DeadkeyOn(LayerShift))

	acute, ok := de.KeyRecord(hid.KeyEqual)
	require.True(t, ok)
	assert.True(t, acute.DeadkeyOn(LayerBase))
	assert.True(t, acute.DeadkeyOn(LayerShift))
	assert.False(t, acute.DeadkeyOn(LayerAltGr))
}

func TestRecordSymbol(t *testing.T) {
	t.Parallel()

	rec := Record{Base: "e", Shift: "E", AltGr: "€", AltGrShift: "¢"}

	assert.Equal(t, "e", rec.Symbol(LayerBase))
	assert.Equal(t, "E", rec.Symbol(LayerShift))
	assert.Equal(t, "€", rec.Symbol(LayerAltGr))
	assert.Equal(t, "¢", rec.Symbol(LayerAltGrShift))
}
