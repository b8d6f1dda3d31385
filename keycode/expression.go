package keycode

// Expression is a renderable key expression. The concrete types below
// cover plain keys, keys typed with held modifiers, and modifier-only
// expressions such as one-shot modifiers. Consumers may pass other
// implementations; renderers hand those back untouched.
type Expression interface {
	// IsKeyExpression marks a type as a key expression.
	IsKeyExpression()
}

// PlainKey is a key code with no modifier state.
type PlainKey struct {
	Code Keycode
}

// ModifiedKey is a key code typed while the given modifier set is held.
type ModifiedKey struct {
	Code Keycode
	Mods Modifier
}

// ModifierOnly is a modifier-like expression: a held or one-shot
// modifier set, optionally tied to a key code. Code is usually KeyNone.
type ModifierOnly struct {
	Mods Modifier
	Code Keycode
}

func (PlainKey) IsKeyExpression()     {}
func (ModifiedKey) IsKeyExpression()  {}
func (ModifierOnly) IsKeyExpression() {}
