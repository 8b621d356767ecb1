package batterm

import "unicode"

// frames a typed rune waits for its key press before it is reported alone
const framesUntilGiveUp = 1

// RawKey is a key press as the host sees it. Keypad keys report the
// keycode of their main keyboard twin with Keypad set.
type RawKey struct {
	Code    Keycode
	Keypad  bool
	Shift   bool
	Control bool
	Alt     bool
}

type typedRune struct {
	r   rune
	age int
}

// Keyboard pairs the runes a host types with the key presses producing
// them, so that every press is reported once with its character.
type Keyboard struct {
	typed      []typedRune
	pressed    []RawKey
	correlated []KeyEvent
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (kb *Keyboard) Press(k RawKey) {
	kb.pressed = append(kb.pressed, k)
}

func (kb *Keyboard) Type(r rune) {
	kb.typed = append(kb.typed, typedRune{r: r})
}

// Getch pops the next correlated key.
func (kb *Keyboard) Getch() (KeyEvent, bool) {
	if len(kb.correlated) == 0 {
		return KeyEvent{}, false
	}
	e := kb.correlated[0]
	kb.correlated = kb.correlated[1:]
	return e, true
}

// Reset drops everything not yet reported.
func (kb *Keyboard) Reset() {
	kb.typed = nil
	kb.pressed = nil
	kb.correlated = nil
}

// Correlate runs once per frame. Typed runes are matched to presses first,
// unmatched presses are reported without a character afterwards.
func (kb *Keyboard) Correlate() {
	typed := kb.typed
	kb.typed = nil
	for _, t := range typed {
		provider := -1
		for _, desperate := range []bool{false, true} {
			for i, k := range kb.pressed {
				if keyProvides(k, t.r, desperate) {
					provider = i
					break
				}
			}
			if provider >= 0 {
				break
			}
		}

		var ev KeyEvent
		switch {
		case provider >= 0:
			k := kb.pressed[provider]
			kb.pressed = append(kb.pressed[:provider], kb.pressed[provider+1:]...)
			code := k.Code
			if code == KeyUnknown {
				code = mostLikelyKeycode(t.r).ValueOr(KeyUnknown)
			}
			ev = KeyEvent{Code: code, Shift: k.Shift, Control: k.Control, Alt: k.Alt, Char: Some(t.r)}
		case t.age > framesUntilGiveUp:
			code, ok := mostLikelyKeycode(t.r).Get()
			if !ok {
				continue
			}
			ev = KeyEvent{Code: code, Char: Some(t.r)}
		default:
			kb.typed = append(kb.typed, typedRune{r: t.r, age: t.age + 1})
			continue
		}
		kb.correlated = append(kb.correlated, censorKey(ev))
	}

	for _, k := range kb.pressed {
		if k.Code == KeyUnknown {
			continue
		}
		kb.correlated = append(kb.correlated, censorKey(KeyEvent{
			Code:    k.Code,
			Shift:   k.Shift,
			Control: k.Control,
			Alt:     k.Alt,
		}))
	}
	kb.pressed = kb.pressed[:0]
}

var shiftedDigits = [10]rune{')', '!', '@', '#', '$', '%', '^', '&', '*', '('}

// keys whose unshifted and shifted runes both come from the main keyboard
var punctuationRunes = map[Keycode][2]rune{
	KeyApostrophe:   {'\'', '"'},
	KeyBackquote:    {'`', '~'},
	KeyBackslash:    {'\\', '|'},
	KeyComma:        {',', '<'},
	KeyEqual:        {'=', '+'},
	KeyLeftBracket:  {'[', '{'},
	KeyMinus:        {'-', '_'},
	KeyPeriod:       {'.', '>'},
	KeyRightBracket: {']', '}'},
	KeySemicolon:    {';', ':'},
	KeySlash:        {'/', '?'},
}

func keyProvides(k RawKey, r rune, desperate bool) bool {
	if !desperate && (k.Control || k.Alt) {
		return false
	}
	r = unicode.ToUpper(r)
	if k.Keypad {
		switch {
		case k.Code <= Key9:
			if r == shiftedDigits[k.Code-Key0] {
				return true
			}
			return desperate && r == rune('0'+k.Code-Key0)
		case k.Code == KeyAsterisk && r == '*',
			k.Code == KeyPeriod && r == '.',
			k.Code == KeyEnter && (r == '\n' || r == '\r'),
			k.Code == KeyMinus && r == '-',
			k.Code == KeyPlus && r == '+',
			k.Code == KeySlash && r == '/':
			return true
		case k.Code == KeyPeriod && r == '?',
			k.Code == KeyMinus && r == '+',
			k.Code == KeySlash && r == '?':
			return desperate
		}
		return false
	}
	switch {
	case k.Code == KeySpace && r == ' ',
		k.Code == KeyTab && r == '\t',
		k.Code == KeyEnter && (r == '\n' || r == '\r'):
		return true
	case k.Code >= KeyA && k.Code <= KeyZ:
		return r == rune('A'+k.Code-KeyA)
	case k.Code <= Key9:
		return r == rune('0'+k.Code-Key0) || r == shiftedDigits[k.Code-Key0]
	}
	if pr, ok := punctuationRunes[k.Code]; ok {
		return r == pr[0] || r == pr[1]
	}
	return false
}

func mostLikelyKeycode(r rune) Opt[Keycode] {
	r = unicode.ToUpper(r)
	switch {
	case r >= '0' && r <= '9':
		return Some(Key0 + Keycode(r-'0'))
	case r >= 'A' && r <= 'Z':
		return Some(KeyA + Keycode(r-'A'))
	case r == '\n' || r == '\r':
		return Some(KeyEnter)
	case r == ' ':
		return Some(KeySpace)
	case r == '\t':
		return Some(KeyTab)
	}
	for code, pr := range punctuationRunes {
		if pr[0] == r {
			return Some(code)
		}
	}
	return None[Keycode]()
}

var shiftedRuneCodes = map[rune]Keycode{
	'~': KeyTilde, '!': KeyExclamation, '@': KeyAt, '#': KeyPound,
	'$': KeyDollar, '%': KeyPercent, '^': KeyCaret, '&': KeyAmpersand,
	'*': KeyAsterisk, '(': KeyLeftParen, ')': KeyRightParen,
	'_': KeyUnderscore, '+': KeyPlus, '{': KeyLeftBrace,
	'}': KeyRightBrace, '|': KeyPipe, ':': KeyColon,
	'"': KeyDoubleQuote, '<': KeyLessThan, '>': KeyGreaterThan,
	'?': KeyQuestionMark,
}

var shiftedKeyCodes = map[Keycode]Keycode{
	KeyBackquote: KeyTilde, Key1: KeyExclamation, Key2: KeyAt,
	Key3: KeyPound, Key4: KeyDollar, Key5: KeyPercent,
	Key6: KeyCaret, Key7: KeyAmpersand, Key8: KeyAsterisk,
	Key9: KeyLeftParen, Key0: KeyRightParen, KeyMinus: KeyUnderscore,
	KeyEqual: KeyPlus, KeyLeftBracket: KeyLeftBrace,
	KeyRightBracket: KeyRightBrace, KeyBackslash: KeyPipe,
	KeySemicolon: KeyColon, KeyApostrophe: KeyDoubleQuote,
	KeyComma: KeyLessThan, KeyPeriod: KeyGreaterThan,
	KeySlash: KeyQuestionMark,
}

// censorKey drops whitespace control characters and gives shifted
// punctuation its own keycode. Such keys are shifted by nature, so they
// lose the shift modifier.
func censorKey(e KeyEvent) KeyEvent {
	if c, ok := e.Char.Get(); ok && (c == '\r' || c == '\n' || c == '\t') {
		e.Char = None[rune]()
	}
	old := e.Code
	if c, ok := e.Char.Get(); ok {
		if code, ok := shiftedRuneCodes[c]; ok {
			e.Code = code
		}
	}
	if e.Shift && !e.Control && !e.Alt {
		if code, ok := shiftedKeyCodes[e.Code]; ok {
			e.Code = code
		}
	}
	if e.Code != old {
		e.Shift = false
	}
	return e
}
