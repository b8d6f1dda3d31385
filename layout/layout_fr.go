package layout

import (
	"gopkg.in/guregu/null.v3"

	"github.com/grafana/keylegend/hid"
)

func init() {
	register(NewLayout("fr", "French", "iso", frKeys))
}

// AZERTY. Digits sit on the shift layer; the base layer of the number
// row carries accented letters and punctuation.
//
//nolint:gochecknoglobals
var frKeys = []Entry{
	{hid.KeyA, Record{Base: "q", Shift: "Q"}},
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
	{hid.KeyM, Record{Base: ",", Shift: "?"}},
	{hid.KeyN, Record{Base: "n", Shift: "N"}},
	{hid.KeyO, Record{Base: "o", Shift: "O"}},
	{hid.KeyP, Record{Base: "p", Shift: "P"}},
	{hid.KeyQ, Record{Base: "a", Shift: "A"}},
	{hid.KeyR, Record{Base: "r", Shift: "R"}},
	{hid.KeyS, Record{Base: "s", Shift: "S"}},
	{hid.KeyT, Record{Base: "t", Shift: "T"}},
	{hid.KeyU, Record{Base: "u", Shift: "U"}},
	{hid.KeyV, Record{Base: "v", Shift: "V"}},
	{hid.KeyW, Record{Base: "z", Shift: "Z"}},
	{hid.KeyX, Record{Base: "x", Shift: "X"}},
	{hid.KeyY, Record{Base: "y", Shift: "Y"}},
	{hid.KeyZ, Record{Base: "w", Shift: "W"}},

	{hid.Key1, Record{Base: "&", Shift: "1"}},
	{hid.Key2, Record{Base: "é", Shift: "2", AltGr: "~", Deadkeys: "altgr"}},
	{hid.Key3, Record{Base: `"`, Shift: "3", AltGr: "#"}},
	{hid.Key4, Record{Base: "'", Shift: "4", AltGr: "{"}},
	{hid.Key5, Record{Base: "(", Shift: "5", AltGr: "["}},
	{hid.Key6, Record{Base: "-", Shift: "6", AltGr: "|"}},
	{hid.Key7, Record{Base: "è", Shift: "7", AltGr: "`", Deadkeys: "altgr"}},
	{hid.Key8, Record{Base: "_", Shift: "8", AltGr: `\`}},
	{hid.Key9, Record{Base: "ç", Shift: "9", AltGr: "^"}},
	{hid.Key0, Record{Base: "à", Shift: "0", AltGr: "@"}},

	{hid.KeyMinus, Record{Base: ")", Shift: "°", AltGr: "]"}},
	{hid.KeyEqual, Record{Base: "=", Shift: "+", AltGr: "}"}},
	// Circumflex and diaeresis, dead on both plain layers.
	{hid.KeyLeftBrace, Record{Base: "^", Shift: "¨", Deadkeys: "base shift"}},
	{hid.KeyRightBrace, Record{Base: "$", Shift: "£", AltGr: "¤"}},
	{hid.KeySemicolon, Record{Base: "m", Shift: "M"}},
	{hid.KeyApostrophe, Record{Base: "ù", Shift: "%"}},
	{hid.KeyNonUSHash, Record{Base: "*", Shift: "µ"}},
	{hid.KeyGrave, Record{Base: "²"}},
	{hid.KeyComma, Record{Base: ";", Shift: "."}},
	{hid.KeyPeriod, Record{Base: ":", Shift: "/"}},
	{hid.KeySlash, Record{Base: "!", Shift: "§"}},
	{hid.KeyNonUSBackslash, Record{Base: "<", Shift: ">"}},

	{hid.KeySpace, Record{Base: " ", Legend: KeycapText{Center: "Espace"}, Name: null.StringFrom("Espace")}},
	{hid.KeyEnter, Record{Base: "\n", Legend: KeycapText{Center: "Entrée"}, Name: null.StringFrom("Entrée")}},
	{hid.KeyEscape, Record{Legend: KeycapText{Center: "Échap"}, Name: null.StringFrom("Échap")}},
	{hid.KeyBackspace, Record{Legend: KeycapText{Center: "Bksp"}, Name: null.StringFrom("Retour arrière")}},
	{hid.KeyTab, Record{Base: "\t", Legend: KeycapText{Center: "Tab"}, Name: null.StringFrom("Tab")}},
	{hid.KeyCapsLock, Record{Legend: KeycapText{Center: "Verr Maj"}, Name: null.StringFrom("Verrouillage majuscule")}},

	{hid.KeyLeftCtrl, Record{Legend: KeycapText{Center: "Ctrl"}, Name: null.StringFrom("Ctrl")}},
	{hid.KeyLeftShift, Record{Legend: KeycapText{Center: "Maj"}, Name: null.StringFrom("Maj")}},
	{hid.KeyLeftAlt, Record{Legend: KeycapText{Center: "Alt"}, Name: null.StringFrom("Alt")}},
	{hid.KeyRightCtrl, Record{Legend: KeycapText{Center: "Ctrl"}, Name: null.StringFrom("Ctrl")}},
	{hid.KeyRightShift, Record{Legend: KeycapText{Center: "Maj"}, Name: null.StringFrom("Maj")}},
	{hid.KeyRightAlt, Record{Legend: KeycapText{Center: "AltGr"}, Name: null.StringFrom("AltGr")}},
}
