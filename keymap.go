package batterm

import "strings"

type KeyHandler func(e KeyEvent) bool

func CreateKeyHandler(f func()) KeyHandler {
	return func(KeyEvent) bool {
		f()
		return true
	}
}

// KeyMap binds key combinations spelled like "C-q", "S-Tab" or "F1" to
// handlers.
type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) Has(e KeyEvent) bool {
	_, ok := km[e.Name()]
	return ok
}

func (km KeyMap) HandleKey(e KeyEvent) bool {
	if handler, ok := km[e.Name()]; ok {
		return handler(e)
	}
	return false
}

func (km KeyMap) Bind(key string, handler KeyHandler) {
	km[normalizeKeyName(key)] = handler
}

func (km KeyMap) BindFunc(key string, f func()) {
	km.Bind(key, CreateKeyHandler(f))
}

// normalizeKeyName orders modifiers as KeyEvent.Name does and lower-cases
// letters.
func normalizeKeyName(name string) string {
	var ctrl, alt, shift bool
	for len(name) > 2 && name[1] == '-' {
		switch name[0] {
		case 'C':
			ctrl = true
		case 'M':
			alt = true
		case 'S':
			shift = true
		default:
			return name
		}
		name = name[2:]
	}
	if len(name) == 1 {
		name = strings.ToLower(name)
	}
	return KeyEvent{Control: ctrl, Alt: alt, Shift: shift}.prefix() + name
}
