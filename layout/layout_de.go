package layout

import (
	"gopkg.in/guregu/null.v3"

	"github.com/grafana/keylegend/hid"
)

func init() {
	register(NewLayout("de", "German", "iso", deKeys))
}

// QWERTZ. The Y and Z positions swap relative to the US table, and the
// punctuation row carries the umlauts.
//
//nolint:gochecknoglobals
var deKeys = []Entry{
	{hid.KeyA, Record{Base: "a", Shift: "A"}},
	{hid.KeyB, Record{Base: "b", Shift: "B"}},
	{hid.KeyC, Record{Base: "c", Shift: "C"}},
	{hid.KeyD, Record{Base: "d", Shift: "D"}},
	{hid.KeyE, Record{Base: "e", Shift: "E", AltGr: "€"}},
	{hid.KeyF, Record{Base: "f", Shift: "F"}},
	{hid.KeyG, Record{Base: "g", Shift: "G"}},
	{hid.KeyH, Record{Base: "h", Shift: "H"}},
	{hid.KeyI, Record{Base: "i", Shift: "I"}},
	{hid.KeyJ, Record{Base: "j", Shift: "J"}},
	{hid.KeyK, Record{Base: "k", Shift: "K"}},
	{hid.KeyL, Record{Base: "l", Shift: "L"}},
	{hid.KeyM, Record{Base: "m", Shift: "M", AltGr: "µ"}},
	{hid.KeyN, Record{Base: "n", Shift: "N"}},
	{hid.KeyO, Record{Base: "o", Shift: "O"}},
	{hid.KeyP, Record{Base: "p", Shift: "P"}},
	{hid.KeyQ, Record{Base: "q", Shift: "Q", AltGr: "@"}},
	{hid.KeyR, Record{Base: "r", Shift: "R"}},
	{hid.KeyS, Record{Base: "s", Shift: "S"}},
	{hid.KeyT, Record{Base: "t", Shift: "T"}},
	{hid.KeyU, Record{Base: "u", Shift: "U"}},
	{hid.KeyV, Record{Base: "v", Shift: "V"}},
	{hid.KeyW, Record{Base: "w", Shift: "W"}},
	{hid.KeyX, Record{Base: "x", Shift: "X"}},
	{hid.KeyY, Record{Base: "z", Shift: "Z"}},
	{hid.KeyZ, Record{Base: "y", Shift: "Y"}},

	{hid.Key1, Record{Base: "1", Shift: "!"}},
	{hid.Key2, Record{Base: "2", Shift: `"`, AltGr: "²"}},
	{hid.Key3, Record{Base: "3", Shift: "§", AltGr: "³"}},
	{hid.Key4, Record{Base: "4", Shift: "$"}},
	{hid.Key5, Record{Base: "5", Shift: "%"}},
	{hid.Key6, Record{Base: "6", Shift: "&"}},
	{hid.Key7, Record{Base: "7", Shift: "/", AltGr: "{"}},
	{hid.Key8, Record{Base: "8", Shift: "(", AltGr: "["}},
	{hid.Key9, Record{Base: "9", Shift: ")", AltGr: "]"}},
	{hid.Key0, Record{Base: "0", Shift: "=", AltGr: "}"}},

	{hid.KeyMinus, Record{Base: "ß", Shift: "?", AltGr: `\`, AltGrShift: "ẞ"}},
	// Acute accent, dead on both plain layers.
	{hid.KeyEqual, Record{Base: "´", Shift: "`", Deadkeys: "base shift"}},
	{hid.KeyLeftBrace, Record{Base: "ü", Shift: "Ü"}},
	{hid.KeyRightBrace, Record{Base: "+", Shift: "*", AltGr: "~"}},
	{hid.KeySemicolon, Record{Base: "ö", Shift: "Ö"}},
	{hid.KeyApostrophe, Record{Base: "ä", Shift: "Ä"}},
	{hid.KeyNonUSHash, Record{Base: "#", Shift: "'"}},
	{hid.KeyGrave, Record{Base: "^", Shift: "°", Deadkeys: "base"}},
	{hid.KeyComma, Record{Base: ",", Shift: ";"}},
	{hid.KeyPeriod, Record{Base: ".", Shift: ":"}},
	{hid.KeySlash, Record{Base: "-", Shift: "_"}},
	{hid.KeyNonUSBackslash, Record{Base: "<", Shift: ">", AltGr: "|"}},

	{hid.KeySpace, Record{Base: " ", Legend: KeycapText{Center: "Space"}, Name: null.StringFrom("Space")}},
	{hid.KeyEnter, Record{Base: "\n", Legend: KeycapText{Center: "Enter"}, Name: null.StringFrom("Enter")}},
	{hid.KeyEscape, Record{Legend: KeycapText{Center: "Esc"}, Name: null.StringFrom("Escape")}},
	{hid.KeyBackspace, Record{Legend: KeycapText{Center: "Bksp"}, Name: null.StringFrom("Backspace")}},
	{hid.KeyTab, Record{Base: "\t", Legend: KeycapText{Center: "Tab"}, Name: null.StringFrom("Tab")}},
	{hid.KeyCapsLock, Record{Legend: KeycapText{Center: "Caps"}, Name: null.StringFrom("Feststelltaste")}},

	{hid.KeyLeftCtrl, Record{Legend: KeycapText{Center: "Strg"}, Name: null.StringFrom("Strg")}},
	{hid.KeyLeftShift, Record{Legend: KeycapText{Center: "Shift"}, Name: null.StringFrom("Umschalt")}},
	{hid.KeyLeftAlt, Record{Legend: KeycapText{Center: "Alt"}, Name: null.StringFrom("Alt")}},
	{hid.KeyRightCtrl, Record{Legend: KeycapText{Center: "Strg"}, Name: null.StringFrom("Strg")}},
	{hid.KeyRightShift, Record{Legend: KeycapText{Center: "Shift"}, Name: null.StringFrom("Umschalt")}},
	{hid.KeyRightAlt, Record{Legend: KeycapText{Center: "AltGr"}, Name: null.StringFrom("AltGr")}},
}
