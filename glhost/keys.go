package glhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/batterm"
)

type keyMapping struct {
	code   batterm.Keycode
	keypad bool
}

var glfwKeys = map[glfw.Key]keyMapping{
	glfw.KeySpace:        {code: batterm.KeySpace},
	glfw.KeyApostrophe:   {code: batterm.KeyApostrophe},
	glfw.KeyComma:        {code: batterm.KeyComma},
	glfw.KeyMinus:        {code: batterm.KeyMinus},
	glfw.KeyPeriod:       {code: batterm.KeyPeriod},
	glfw.KeySlash:        {code: batterm.KeySlash},
	glfw.KeySemicolon:    {code: batterm.KeySemicolon},
	glfw.KeyEqual:        {code: batterm.KeyEqual},
	glfw.KeyLeftBracket:  {code: batterm.KeyLeftBracket},
	glfw.KeyBackslash:    {code: batterm.KeyBackslash},
	glfw.KeyRightBracket: {code: batterm.KeyRightBracket},
	glfw.KeyGraveAccent:  {code: batterm.KeyBackquote},

	glfw.KeyEscape:    {code: batterm.KeyEscape},
	glfw.KeyEnter:     {code: batterm.KeyEnter},
	glfw.KeyTab:       {code: batterm.KeyTab},
	glfw.KeyBackspace: {code: batterm.KeyBackspace},
	glfw.KeyInsert:    {code: batterm.KeyInsert},
	glfw.KeyDelete:    {code: batterm.KeyDelete},
	glfw.KeyRight:     {code: batterm.KeyRight},
	glfw.KeyLeft:      {code: batterm.KeyLeft},
	glfw.KeyDown:      {code: batterm.KeyDown},
	glfw.KeyUp:        {code: batterm.KeyUp},
	glfw.KeyPageUp:    {code: batterm.KeyPageUp},
	glfw.KeyPageDown:  {code: batterm.KeyPageDown},
	glfw.KeyHome:      {code: batterm.KeyHome},
	glfw.KeyEnd:       {code: batterm.KeyEnd},
	glfw.KeyPause:     {code: batterm.KeyPause},
	glfw.KeyMenu:      {code: batterm.KeyMenu},

	glfw.KeyKPDecimal:  {code: batterm.KeyPeriod, keypad: true},
	glfw.KeyKPDivide:   {code: batterm.KeySlash, keypad: true},
	glfw.KeyKPMultiply: {code: batterm.KeyAsterisk, keypad: true},
	glfw.KeyKPSubtract: {code: batterm.KeyMinus, keypad: true},
	glfw.KeyKPAdd:      {code: batterm.KeyPlus, keypad: true},
	glfw.KeyKPEnter:    {code: batterm.KeyEnter, keypad: true},
	glfw.KeyKPEqual:    {code: batterm.KeyEqual, keypad: true},
}

// modifier keys produce no press of their own
var glfwModifierKeys = map[glfw.Key]bool{
	glfw.KeyLeftShift: true, glfw.KeyRightShift: true,
	glfw.KeyLeftControl: true, glfw.KeyRightControl: true,
	glfw.KeyLeftAlt: true, glfw.KeyRightAlt: true,
	glfw.KeyLeftSuper: true, glfw.KeyRightSuper: true,
	glfw.KeyCapsLock: true, glfw.KeyNumLock: true, glfw.KeyScrollLock: true,
}

// rawKey translates a glfw key event. ok is false for keys that should not
// be reported at all.
func rawKey(key glfw.Key, mods glfw.ModifierKey) (batterm.RawKey, bool) {
	if glfwModifierKeys[key] {
		return batterm.RawKey{}, false
	}
	k := batterm.RawKey{
		Code:    batterm.KeyUnknown,
		Shift:   mods&glfw.ModShift != 0,
		Control: mods&glfw.ModControl != 0,
		Alt:     mods&glfw.ModAlt != 0,
	}
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		k.Code = batterm.KeyA + batterm.Keycode(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		k.Code = batterm.Key0 + batterm.Keycode(key-glfw.Key0)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		k.Code = batterm.Key0 + batterm.Keycode(key-glfw.KeyKP0)
		k.Keypad = true
	case key >= glfw.KeyF1 && key <= glfw.KeyF15:
		k.Code = batterm.KeyF1 + batterm.Keycode(key-glfw.KeyF1)
	default:
		if m, ok := glfwKeys[key]; ok {
			k.Code = m.code
			k.Keypad = m.keypad
		}
	}
	return k, true
}

func mouseButton(b glfw.MouseButton) (batterm.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return batterm.MouseLeft, true
	case glfw.MouseButtonRight:
		return batterm.MouseRight, true
	}
	return 0, false
}
