package termhost

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/cellux/batterm"
)

var specialKeys = map[tcell.Key]batterm.Keycode{
	tcell.KeyUp:         batterm.KeyUp,
	tcell.KeyDown:       batterm.KeyDown,
	tcell.KeyLeft:       batterm.KeyLeft,
	tcell.KeyRight:      batterm.KeyRight,
	tcell.KeyPgUp:       batterm.KeyPageUp,
	tcell.KeyPgDn:       batterm.KeyPageDown,
	tcell.KeyHome:       batterm.KeyHome,
	tcell.KeyEnd:        batterm.KeyEnd,
	tcell.KeyInsert:     batterm.KeyInsert,
	tcell.KeyDelete:     batterm.KeyDelete,
	tcell.KeyEnter:      batterm.KeyEnter,
	tcell.KeyTab:        batterm.KeyTab,
	tcell.KeyBacktab:    batterm.KeyTab,
	tcell.KeyEscape:     batterm.KeyEscape,
	tcell.KeyBackspace:  batterm.KeyBackspace,
	tcell.KeyBackspace2: batterm.KeyBackspace,
	tcell.KeyPause:      batterm.KeyPause,
}

// typed characters of keys the terminal reports as runes
var specialRunes = map[batterm.Keycode]rune{
	batterm.KeyEnter: '\r',
	batterm.KeyTab:   '\t',
}

// runes reached with shift, and the key producing them
var shiftedRunes = map[rune]batterm.Keycode{
	'~': batterm.KeyBackquote, '!': batterm.Key1, '@': batterm.Key2,
	'#': batterm.Key3, '$': batterm.Key4, '%': batterm.Key5,
	'^': batterm.Key6, '&': batterm.Key7, '*': batterm.Key8,
	'(': batterm.Key9, ')': batterm.Key0, '_': batterm.KeyMinus,
	'+': batterm.KeyEqual, '{': batterm.KeyLeftBracket,
	'}': batterm.KeyRightBracket, '|': batterm.KeyBackslash,
	':': batterm.KeySemicolon, '"': batterm.KeyApostrophe,
	'<': batterm.KeyComma, '>': batterm.KeyPeriod, '?': batterm.KeySlash,
}

// runeKey guesses the key that typed r on a US layout.
func runeKey(r rune) (code batterm.Keycode, shift bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return batterm.KeyA + batterm.Keycode(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return batterm.KeyA + batterm.Keycode(r-'A'), true
	case r == ' ':
		return batterm.KeySpace, false
	}
	if code, ok := shiftedRunes[r]; ok {
		return code, true
	}
	if code, ok := batterm.ParseKeycode(string(r)); ok {
		return code, false
	}
	return batterm.KeyUnknown, false
}

// keyInput is what one terminal key event amounts to: a press and maybe a
// typed rune.
type keyInput struct {
	press batterm.RawKey
	typed batterm.Opt[rune]
}

func translateKey(ev *tcell.EventKey) keyInput {
	mods := ev.Modifiers()
	raw := batterm.RawKey{
		Code:    batterm.KeyUnknown,
		Shift:   mods&tcell.ModShift != 0,
		Control: mods&tcell.ModCtrl != 0,
		Alt:     mods&tcell.ModAlt != 0,
	}
	key := ev.Key()
	if code, ok := specialKeys[key]; ok {
		raw.Code = code
		if key == tcell.KeyBacktab {
			raw.Shift = true
		}
		in := keyInput{press: raw}
		if r, ok := specialRunes[code]; ok && !raw.Control && !raw.Alt {
			in.typed = batterm.Some(r)
		}
		return in
	}
	if key >= tcell.KeyF1 && key <= tcell.KeyF15 {
		raw.Code = batterm.KeyF1 + batterm.Keycode(key-tcell.KeyF1)
		return keyInput{press: raw}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		raw.Code = batterm.KeyA + batterm.Keycode(key-tcell.KeyCtrlA)
		raw.Control = true
		return keyInput{press: raw}
	}
	if key != tcell.KeyRune {
		return keyInput{press: raw}
	}
	r := ev.Rune()
	code, shift := runeKey(r)
	raw.Code = code
	raw.Shift = raw.Shift || shift
	in := keyInput{press: raw}
	if !raw.Control && !raw.Alt {
		in.typed = batterm.Some(r)
	} else {
		raw.Code, _ = runeKey(unicode.ToLower(r))
		in.press = raw
	}
	return in
}

// isQuit reports the key that closes the host, Ctrl-C.
func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c'
}
