package hid

import "fmt"

// KeyName maps usage codes to human-readable key names.
var KeyName = map[UsageCode]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	KeyNumLock:    "NumLock",
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "Kp.",

	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyKpEqual:        "Kp=",

	KeyExecute:    "Execute",
	KeyHelp:       "Help",
	KeyMenu:       "Menu",
	KeySelect:     "Select",
	KeyStop:       "Stop",
	KeyAgain:      "Again",
	KeyUndo:       "Undo",
	KeyCut:        "Cut",
	KeyCopy:       "Copy",
	KeyPaste:      "Paste",
	KeyFind:       "Find",
	KeyMute:       "Mute",
	KeyVolumeUp:   "VolumeUp",
	KeyVolumeDown: "VolumeDown",

	KeyIntl1: "Intl1",
	KeyIntl2: "Intl2",
	KeyIntl3: "Intl3",
	KeyIntl4: "Intl4",
	KeyIntl5: "Intl5",

	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyLeftGui:    "LeftGui",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
	KeyRightGui:   "RightGui",
}

// Name returns the human-readable name of a usage code, or a hex
// rendering for codes not in the table.
func Name(c UsageCode) string {
	if n, ok := KeyName[c]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}
