package layout

// KeycapText is the set of text slots drawn on a single keycap: the
// four corners plus three stacked center positions.
type KeycapText struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	CenterTop    string
	Center       string
	CenterBottom string
}

// Empty returns true if no slot carries any text.
func (t KeycapText) Empty() bool {
	return t == KeycapText{}
}

// Layer is a symbol layer of a key: the character produced at a given
// modifier state.
type Layer int

const (
	// LayerBase is the unmodified layer.
	LayerBase Layer = iota
	// LayerShift is the shifted layer.
	LayerShift
	// LayerAltGr is the AltGr layer.
	LayerAltGr
	// LayerAltGrShift is the AltGr+Shift layer.
	LayerAltGrShift
)

// String returns the layer name as used in deadkey flag lists.
func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "base"
	case LayerShift:
		return "shift"
	case LayerAltGr:
		return "altgr"
	case LayerAltGrShift:
		return "altgr-shift"
	}
	return "unknown"
}
