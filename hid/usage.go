// Package hid holds the keyboard page of the USB HID usage tables.
// Usage codes identify physical key positions independently of any
// language layout.
package hid

// UsageCode is a key usage from the USB HID Keyboard/Keypad usage page.
type UsageCode uint16

// Keyboard/Keypad page usage codes per the USB HID usage tables 1.12.
const (
	KeyA UsageCode = 0x04
	KeyB UsageCode = 0x05
	KeyC UsageCode = 0x06
	KeyD UsageCode = 0x07
	KeyE UsageCode = 0x08
	KeyF UsageCode = 0x09
	KeyG UsageCode = 0x0A
	KeyH UsageCode = 0x0B
	KeyI UsageCode = 0x0C
	KeyJ UsageCode = 0x0D
	KeyK UsageCode = 0x0E
	KeyL UsageCode = 0x0F
	KeyM UsageCode = 0x10
	KeyN UsageCode = 0x11
	KeyO UsageCode = 0x12
	KeyP UsageCode = 0x13
	KeyQ UsageCode = 0x14
	KeyR UsageCode = 0x15
	KeyS UsageCode = 0x16
	KeyT UsageCode = 0x17
	KeyU UsageCode = 0x18
	KeyV UsageCode = 0x19
	KeyW UsageCode = 0x1A
	KeyX UsageCode = 0x1B
	KeyY UsageCode = 0x1C
	KeyZ UsageCode = 0x1D

	Key1 UsageCode = 0x1E
	Key2 UsageCode = 0x1F
	Key3 UsageCode = 0x20
	Key4 UsageCode = 0x21
	Key5 UsageCode = 0x22
	Key6 UsageCode = 0x23
	Key7 UsageCode = 0x24
	Key8 UsageCode = 0x25
	Key9 UsageCode = 0x26
	Key0 UsageCode = 0x27

	KeyEnter      UsageCode = 0x28
	KeyEscape     UsageCode = 0x29
	KeyBackspace  UsageCode = 0x2A
	KeyTab        UsageCode = 0x2B
	KeySpace      UsageCode = 0x2C
	KeyMinus      UsageCode = 0x2D // - and _
	KeyEqual      UsageCode = 0x2E // = and +
	KeyLeftBrace  UsageCode = 0x2F // [ and {
	KeyRightBrace UsageCode = 0x30 // ] and }
	KeyBackslash  UsageCode = 0x31 // \ and |
	KeyNonUSHash  UsageCode = 0x32 // Non-US # and ~
	KeySemicolon  UsageCode = 0x33 // ; and :
	KeyApostrophe UsageCode = 0x34 // ' and "
	KeyGrave      UsageCode = 0x35 // ` and ~
	KeyComma      UsageCode = 0x36 // , and <
	KeyPeriod     UsageCode = 0x37 // . and >
	KeySlash      UsageCode = 0x38 // / and ?
	KeyCapsLock   UsageCode = 0x39

	KeyF1  UsageCode = 0x3A
	KeyF2  UsageCode = 0x3B
	KeyF3  UsageCode = 0x3C
	KeyF4  UsageCode = 0x3D
	KeyF5  UsageCode = 0x3E
	KeyF6  UsageCode = 0x3F
	KeyF7  UsageCode = 0x40
	KeyF8  UsageCode = 0x41
	KeyF9  UsageCode = 0x42
	KeyF10 UsageCode = 0x43
	KeyF11 UsageCode = 0x44
	KeyF12 UsageCode = 0x45

	KeyPrintScreen UsageCode = 0x46
	KeyScrollLock  UsageCode = 0x47
	KeyPause       UsageCode = 0x48
	KeyInsert      UsageCode = 0x49
	KeyHome        UsageCode = 0x4A
	KeyPageUp      UsageCode = 0x4B
	KeyDelete      UsageCode = 0x4C
	KeyEnd         UsageCode = 0x4D
	KeyPageDown    UsageCode = 0x4E

	KeyRight UsageCode = 0x4F
	KeyLeft  UsageCode = 0x50
	KeyDown  UsageCode = 0x51
	KeyUp    UsageCode = 0x52

	KeyNumLock    UsageCode = 0x53
	KeyKpSlash    UsageCode = 0x54
	KeyKpAsterisk UsageCode = 0x55
	KeyKpMinus    UsageCode = 0x56
	KeyKpPlus     UsageCode = 0x57
	KeyKpEnter    UsageCode = 0x58
	KeyKp1        UsageCode = 0x59
	KeyKp2        UsageCode = 0x5A
	KeyKp3        UsageCode = 0x5B
	KeyKp4        UsageCode = 0x5C
	KeyKp5        UsageCode = 0x5D
	KeyKp6        UsageCode = 0x5E
	KeyKp7        UsageCode = 0x5F
	KeyKp8        UsageCode = 0x60
	KeyKp9        UsageCode = 0x61
	KeyKp0        UsageCode = 0x62
	KeyKpDot      UsageCode = 0x63

	KeyNonUSBackslash UsageCode = 0x64 // Non-US \ and |
	KeyApplication    UsageCode = 0x65
	KeyPower          UsageCode = 0x66
	KeyKpEqual        UsageCode = 0x67

	KeyF13 UsageCode = 0x68
	KeyF14 UsageCode = 0x69
	KeyF15 UsageCode = 0x6A
	KeyF16 UsageCode = 0x6B
	KeyF17 UsageCode = 0x6C
	KeyF18 UsageCode = 0x6D
	KeyF19 UsageCode = 0x6E
	KeyF20 UsageCode = 0x6F
	KeyF21 UsageCode = 0x70
	KeyF22 UsageCode = 0x71
	KeyF23 UsageCode = 0x72
	KeyF24 UsageCode = 0x73

	KeyExecute    UsageCode = 0x74
	KeyHelp       UsageCode = 0x75
	KeyMenu       UsageCode = 0x76
	KeySelect     UsageCode = 0x77
	KeyStop       UsageCode = 0x78
	KeyAgain      UsageCode = 0x79
	KeyUndo       UsageCode = 0x7A
	KeyCut        UsageCode = 0x7B
	KeyCopy       UsageCode = 0x7C
	KeyPaste      UsageCode = 0x7D
	KeyFind       UsageCode = 0x7E
	KeyMute       UsageCode = 0x7F
	KeyVolumeUp   UsageCode = 0x80
	KeyVolumeDown UsageCode = 0x81

	// International keys, used by JIS and Brazilian layouts among others.
	KeyIntl1 UsageCode = 0x87 // Ro
	KeyIntl2 UsageCode = 0x88 // Katakana/Hiragana
	KeyIntl3 UsageCode = 0x89 // Yen
	KeyIntl4 UsageCode = 0x8A // Henkan
	KeyIntl5 UsageCode = 0x8B // Muhenkan

	KeyLeftCtrl   UsageCode = 0xE0
	KeyLeftShift  UsageCode = 0xE1
	KeyLeftAlt    UsageCode = 0xE2
	KeyLeftGui    UsageCode = 0xE3
	KeyRightCtrl  UsageCode = 0xE4
	KeyRightShift UsageCode = 0xE5
	KeyRightAlt   UsageCode = 0xE6
	KeyRightGui   UsageCode = 0xE7
)

// IsModifier returns true for the modifier usage range (LeftCtrl..RightGui).
func (c UsageCode) IsModifier() bool {
	return c >= KeyLeftCtrl && c <= KeyRightGui
}
