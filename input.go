package batterm

import (
	"fmt"
	"strings"
)

// InputEvent is a KeyEvent or a MouseEvent.
type InputEvent interface {
	inputEvent()
}

type Keycode uint8

const (
	Key0 Keycode = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15

	KeyDown
	KeyLeft
	KeyRight
	KeyUp
	KeyApostrophe
	KeyBackquote

	KeyBackslash
	KeyComma
	KeyEqual
	KeyLeftBracket
	KeyMinus
	KeyPeriod
	KeyRightBracket
	KeySemicolon
	KeySlash
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter

	KeyEscape
	KeyHome
	KeyInsert
	KeyMenu
	KeyPageDown
	KeyPageUp
	KeyPause

	KeySpace
	KeyTab

	KeyTilde
	KeyExclamation
	KeyAt
	KeyPound
	KeyDollar
	KeyPercent
	KeyCaret
	KeyAmpersand
	KeyAsterisk
	KeyLeftParen
	KeyRightParen
	KeyUnderscore
	KeyPlus
	KeyLeftBrace
	KeyRightBrace
	KeyPipe
	KeyColon
	KeyDoubleQuote
	KeyLessThan
	KeyGreaterThan
	KeyQuestionMark

	KeyUnknown
)

var keyNames = map[Keycode]string{
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",

	KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up",
	KeyBackspace: "Backspace", KeyDelete: "Delete", KeyEnd: "End", KeyEnter: "Enter",
	KeyEscape: "Escape", KeyHome: "Home", KeyInsert: "Insert", KeyMenu: "Menu",
	KeyPageDown: "PageDown", KeyPageUp: "PageUp", KeyPause: "Pause",
	KeySpace: "Space", KeyTab: "Tab",

	KeyUnknown: "Unknown",
}

// punctuation keys and the rune each stands for
var keyRunes = map[Keycode]rune{
	KeyApostrophe: '\'', KeyBackquote: '`', KeyBackslash: '\\', KeyComma: ',',
	KeyEqual: '=', KeyLeftBracket: '[', KeyMinus: '-', KeyPeriod: '.',
	KeyRightBracket: ']', KeySemicolon: ';', KeySlash: '/',

	KeyTilde: '~', KeyExclamation: '!', KeyAt: '@', KeyPound: '#', KeyDollar: '$',
	KeyPercent: '%', KeyCaret: '^', KeyAmpersand: '&', KeyAsterisk: '*',
	KeyLeftParen: '(', KeyRightParen: ')', KeyUnderscore: '_', KeyPlus: '+',
	KeyLeftBrace: '{', KeyRightBrace: '}', KeyPipe: '|', KeyColon: ':',
	KeyDoubleQuote: '"', KeyLessThan: '<', KeyGreaterThan: '>', KeyQuestionMark: '?',
}

// String names the key the way key maps spell it: lower case letters,
// digits and punctuation as themselves, other keys by name.
func (k Keycode) String() string {
	switch {
	case k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	}
	if r, ok := keyRunes[k]; ok {
		return string(r)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Keycode(%d)", k)
}

// ParseKeycode is the inverse of String. Letters are accepted in either case.
func ParseKeycode(s string) (Keycode, bool) {
	for k := Key0; k < KeyUnknown; k++ {
		if k.String() == s {
			return k, true
		}
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return KeyA + Keycode(s[0]-'A'), true
	}
	return KeyUnknown, false
}

type KeyEvent struct {
	Code    Keycode
	Shift   bool
	Control bool
	Alt     bool
	Char    Opt[rune]
}

func (KeyEvent) inputEvent() {}

// Name renders the key combination as "C-M-S-key".
func (e KeyEvent) Name() string {
	return e.prefix() + e.Code.String()
}

func (e KeyEvent) prefix() string {
	var sb strings.Builder
	if e.Control {
		sb.WriteString("C-")
	}
	if e.Alt {
		sb.WriteString("M-")
	}
	if e.Shift {
		sb.WriteString("S-")
	}
	return sb.String()
}

type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	numMouseButtons
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	}
	return fmt.Sprintf("MouseButton(%d)", b)
}

type MouseEventKind uint8

const (
	MouseClick MouseEventKind = iota
	MouseUp
	MouseDrag
	MouseWiggle
	MouseScroll
)

func (k MouseEventKind) String() string {
	switch k {
	case MouseClick:
		return "click"
	case MouseUp:
		return "up"
	case MouseDrag:
		return "drag"
	case MouseWiggle:
		return "wiggle"
	case MouseScroll:
		return "scroll"
	}
	return fmt.Sprintf("MouseEventKind(%d)", k)
}

// MouseEvent reports pointer activity in cell coordinates. Drag events
// fill Start, Last and Now; wiggle events Last and Now; the others only Now.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton

	Start           Point
	StartInteractor Interactor
	Last            Point
	LastInteractor  Interactor
	Now             Point
	NowInteractor   Interactor

	// Scroll is in wheel notches, positive towards the end of the content.
	Scroll float64
}

func (MouseEvent) inputEvent() {}

// Offset translates every point of the event.
func (e MouseEvent) Offset(d Point) MouseEvent {
	e.Start = e.Start.Add(d)
	e.Last = e.Last.Add(d)
	e.Now = e.Now.Add(d)
	return e
}
