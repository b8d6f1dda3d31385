package layout

import (
	"gopkg.in/guregu/null.v3"

	"github.com/grafana/keylegend/hid"
)

func init() {
	register(NewLayout("us", "English (US)", "ansi", usKeys))
}

//nolint:gochecknoglobals
var usKeys = []Entry{
	{hid.KeyA, Record{Base: "a", Shift: "A"}},
	{hid.KeyB, Record{Base: "b", Shift: "B"}},
	{hid.KeyC, Record{Base: "c", Shift: "C"}},
	{hid.KeyD, Record{Base: "d", Shift: "D"}},
	{hid.KeyE, Record{Base: "e", Shift: "E"}},
	{hid.KeyF, Record{Base: "f", Shift: "F"}},
	{hid.KeyG, Record{Base: "g", Shift: "G"}},
	{hid.KeyH, Record{Base: "h", Shift: "H"}},
	{hid.KeyI, Record{Base: "i", Shift: "I"}},
	{hid.KeyJ, Record{Base: "j", Shift: "J"}},
	{hid.KeyK, Record{Base: "k", Shift: "K"}},
	{hid.KeyL, Record{Base: "l", Shift: "L"}},
	{hid.KeyM, Record{Base: "m", Shift: "M"}},
	{hid.KeyN, Record{Base: "n", Shift: "N"}},
	{hid.KeyO, Record{Base: "o", Shift: "O"}},
	{hid.KeyP, Record{Base: "p", Shift: "P"}},
	{hid.KeyQ, Record{Base: "q", Shift: "Q"}},
	{hid.KeyR, Record{Base: "r", Shift: "R"}},
	{hid.KeyS, Record{Base: "s", Shift: "S"}},
	{hid.KeyT, Record{Base: "t", Shift: "T"}},
	{hid.KeyU, Record{Base: "u", Shift: "U"}},
	{hid.KeyV, Record{Base: "v", Shift: "V"}},
	{hid.KeyW, Record{Base: "w", Shift: "W"}},
	{hid.KeyX, Record{Base: "x", Shift: "X"}},
	{hid.KeyY, Record{Base: "y", Shift: "Y"}},
	{hid.KeyZ, Record{Base: "z", Shift: "Z"}},

	{hid.Key1, Record{Base: "1", Shift: "!"}},
	{hid.Key2, Record{Base: "2", Shift: "@"}},
	{hid.Key3, Record{Base: "3", Shift: "#"}},
	{hid.Key4, Record{Base: "4", Shift: "$"}},
	{hid.Key5, Record{Base: "5", Shift: "%"}},
	{hid.Key6, Record{Base: "6", Shift: "^"}},
	{hid.Key7, Record{Base: "7", Shift: "&"}},
	{hid.Key8, Record{Base: "8", Shift: "*"}},
	{hid.Key9, Record{Base: "9", Shift: "("}},
	{hid.Key0, Record{Base: "0", Shift: ")"}},

	{hid.KeyMinus, Record{Base: "-", Shift: "_"}},
	{hid.KeyEqual, Record{Base: "=", Shift: "+"}},
	{hid.KeyLeftBrace, Record{Base: "[", Shift: "{"}},
	{hid.KeyRightBrace, Record{Base: "]", Shift: "}"}},
	{hid.KeyBackslash, Record{Base: `\`, Shift: "|"}},
	{hid.KeySemicolon, Record{Base: ";", Shift: ":"}},
	{hid.KeyApostrophe, Record{Base: "'", Shift: `"`}},
	{hid.KeyGrave, Record{Base: "`", Shift: "~"}},
	{hid.KeyComma, Record{Base: ",", Shift: "<"}},
	{hid.KeyPeriod, Record{Base: ".", Shift: ">"}},
	{hid.KeySlash, Record{Base: "/", Shift: "?"}},

	{hid.KeySpace, Record{Base: " ", Legend: KeycapText{Center: "Space"}, Name: null.StringFrom("Space")}},
	{hid.KeyEnter, Record{Base: "\n", Legend: KeycapText{Center: "Enter"}, Name: null.StringFrom("Enter")}},
	{hid.KeyEscape, Record{Legend: KeycapText{Center: "Esc"}, Name: null.StringFrom("Escape")}},
	{hid.KeyBackspace, Record{Legend: KeycapText{Center: "Bksp"}, Name: null.StringFrom("Backspace")}},
	{hid.KeyTab, Record{Base: "\t", Legend: KeycapText{Center: "Tab"}, Name: null.StringFrom("Tab")}},
	{hid.KeyCapsLock, Record{Legend: KeycapText{Center: "Caps"}, Name: null.StringFrom("Caps Lock")}},

	{hid.KeyF1, Record{Legend: KeycapText{Center: "F1"}}},
	{hid.KeyF2, Record{Legend: KeycapText{Center: "F2"}}},
	{hid.KeyF3, Record{Legend: KeycapText{Center: "F3"}}},
	{hid.KeyF4, Record{Legend: KeycapText{Center: "F4"}}},
	{hid.KeyF5, Record{Legend: KeycapText{Center: "F5"}}},
	{hid.KeyF6, Record{Legend: KeycapText{Center: "F6"}}},
	{hid.KeyF7, Record{Legend: KeycapText{Center: "F7"}}},
	{hid.KeyF8, Record{Legend: KeycapText{Center: "F8"}}},
	{hid.KeyF9, Record{Legend: KeycapText{Center: "F9"}}},
	{hid.KeyF10, Record{Legend: KeycapText{Center: "F10"}}},
	{hid.KeyF11, Record{Legend: KeycapText{Center: "F11"}}},
	{hid.KeyF12, Record{Legend: KeycapText{Center: "F12"}}},

	{hid.KeyPrintScreen, Record{Legend: KeycapText{Center: "PrtSc"}, Name: null.StringFrom("Print Screen")}},
	{hid.KeyScrollLock, Record{Legend: KeycapText{Center: "ScrLk"}, Name: null.StringFrom("Scroll Lock")}},
	{hid.KeyPause, Record{Legend: KeycapText{Center: "Pause"}}},
	{hid.KeyInsert, Record{Legend: KeycapText{Center: "Ins"}, Name: null.StringFrom("Insert")}},
	{hid.KeyHome, Record{Legend: KeycapText{Center: "Home"}}},
	{hid.KeyPageUp, Record{Legend: KeycapText{Center: "PgUp"}, Name: null.StringFrom("Page Up")}},
	{hid.KeyDelete, Record{Legend: KeycapText{Center: "Del"}, Name: null.StringFrom("Delete")}},
	{hid.KeyEnd, Record{Legend: KeycapText{Center: "End"}}},
	{hid.KeyPageDown, Record{Legend: KeycapText{Center: "PgDn"}, Name: null.StringFrom("Page Down")}},

	{hid.KeyRight, Record{Legend: KeycapText{Center: "→"}, Name: null.StringFrom("Right")}},
	{hid.KeyLeft, Record{Legend: KeycapText{Center: "←"}, Name: null.StringFrom("Left")}},
	{hid.KeyDown, Record{Legend: KeycapText{Center: "↓"}, Name: null.StringFrom("Down")}},
	{hid.KeyUp, Record{Legend: KeycapText{Center: "↑"}, Name: null.StringFrom("Up")}},

	{hid.KeyNumLock, Record{Legend: KeycapText{Center: "Num"}, Name: null.StringFrom("Num Lock")}},
	{hid.KeyKpSlash, Record{Base: "/"}},
	{hid.KeyKpAsterisk, Record{Base: "*"}},
	{hid.KeyKpMinus, Record{Base: "-"}},
	{hid.KeyKpPlus, Record{Base: "+"}},
	{hid.KeyKpEnter, Record{Base: "\n", Legend: KeycapText{Center: "Enter"}, Name: null.StringFrom("Kp Enter")}},
	{hid.KeyKp1, Record{Base: "1", Legend: KeycapText{Center: "1", CenterBottom: "End"}}},
	{hid.KeyKp2, Record{Base: "2", Legend: KeycapText{Center: "2", CenterBottom: "↓"}}},
	{hid.KeyKp3, Record{Base: "3", Legend: KeycapText{Center: "3", CenterBottom: "PgDn"}}},
	{hid.KeyKp4, Record{Base: "4", Legend: KeycapText{Center: "4", CenterBottom: "←"}}},
	{hid.KeyKp5, Record{Base: "5"}},
	{hid.KeyKp6, Record{Base: "6", Legend: KeycapText{Center: "6", CenterBottom: "→"}}},
	{hid.KeyKp7, Record{Base: "7", Legend: KeycapText{Center: "7", CenterBottom: "Home"}}},
	{hid.KeyKp8, Record{Base: "8", Legend: KeycapText{Center: "8", CenterBottom: "↑"}}},
	{hid.KeyKp9, Record{Base: "9", Legend: KeycapText{Center: "9", CenterBottom: "PgUp"}}},
	{hid.KeyKp0, Record{Base: "0", Legend: KeycapText{Center: "0", CenterBottom: "Ins"}}},
	{hid.KeyKpDot, Record{Base: ".", Legend: KeycapText{Center: ".", CenterBottom: "Del"}}},

	{hid.KeyApplication, Record{Legend: KeycapText{Center: "Menu"}, Name: null.StringFrom("Menu")}},

	{hid.KeyLeftCtrl, Record{Legend: KeycapText{Center: "Ctrl"}, Name: null.StringFrom("Ctrl")}},
	{hid.KeyLeftShift, Record{Legend: KeycapText{Center: "Shift"}, Name: null.StringFrom("Shift")}},
	{hid.KeyLeftAlt, Record{Legend: KeycapText{Center: "Alt"}, Name: null.StringFrom("Alt")}},
	{hid.KeyLeftGui, Record{Legend: KeycapText{Center: "Meta"}, Name: null.StringFrom("Meta")}},
	{hid.KeyRightCtrl, Record{Legend: KeycapText{Center: "Ctrl"}, Name: null.StringFrom("Ctrl")}},
	{hid.KeyRightShift, Record{Legend: KeycapText{Center: "Shift"}, Name: null.StringFrom("Shift")}},
	{hid.KeyRightAlt, Record{Legend: KeycapText{Center: "Alt"}, Name: null.StringFrom("Alt")}},
	{hid.KeyRightGui, Record{Legend: KeycapText{Center: "Meta"}, Name: null.StringFrom("Meta")}},
}
