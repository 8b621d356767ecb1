package batterm

type handlerKind uint8

const (
	handlesKeys handlerKind = 1 << iota
	handlesClicks
	handlesScroll
	handlesDrag
)

type menuHandler struct {
	kinds handlerKind
	cb    func(InputEvent)
}

type keyRecognizer struct {
	match      func(KeyEvent) bool
	interactor Interactor
}

// Menu collects the handlers of one screen. Every handler gets an
// interactor; cells drawn with it route clicks to the handler, and a
// handler may also answer to keys.
type Menu struct {
	handlers    []menuHandler
	recognizers []keyRecognizer
}

func NewMenu() *Menu {
	return &Menu{}
}

func (m *Menu) add(kinds handlerKind, cb func(InputEvent)) Interactor {
	m.handlers = append(m.handlers, menuHandler{kinds: kinds, cb: cb})
	return InteractorFromIndex(len(m.handlers) - 1)
}

func (m *Menu) recognize(i Interactor, match func(KeyEvent) bool) {
	m.recognizers = append(m.recognizers, keyRecognizer{match: match, interactor: i})
}

// On registers cb for both a click on the returned interactor and the key.
func (m *Menu) On(code Keycode, cb func(InputEvent)) Interactor {
	i := m.add(handlesKeys|handlesClicks, cb)
	m.recognize(i, func(e KeyEvent) bool { return e.Code == code })
	return i
}

func (m *Menu) OnKey(code Keycode, cb func(KeyEvent)) {
	i := m.add(handlesKeys, func(e InputEvent) { cb(e.(KeyEvent)) })
	m.recognize(i, func(e KeyEvent) bool { return e.Code == code })
}

// OnKeyName is OnKey matching a full combination such as "C-q".
func (m *Menu) OnKeyName(name string, cb func(KeyEvent)) {
	i := m.add(handlesKeys, func(e InputEvent) { cb(e.(KeyEvent)) })
	m.recognize(i, func(e KeyEvent) bool { return e.Name() == name })
}

// OnKeyMap hands every key to km.
func (m *Menu) OnKeyMap(km KeyMap) {
	var last KeyEvent
	i := m.add(handlesKeys, func(InputEvent) { km.HandleKey(last) })
	m.recognize(i, func(e KeyEvent) bool {
		last = e
		return km.Has(e)
	})
}

func (m *Menu) OnClick(cb func(MouseEvent)) Interactor {
	return m.add(handlesClicks, func(e InputEvent) { cb(e.(MouseEvent)) })
}

func (m *Menu) OnScroll(cb func(MouseEvent)) Interactor {
	return m.add(handlesScroll, func(e InputEvent) { cb(e.(MouseEvent)) })
}

// OnDrag receives drags starting on the returned interactor.
func (m *Menu) OnDrag(cb func(MouseEvent)) Interactor {
	return m.add(handlesDrag|handlesClicks, func(e InputEvent) {
		if me, ok := e.(MouseEvent); ok && me.Kind == MouseDrag {
			cb(me)
		}
	})
}

func (m *Menu) dispatch(i Interactor, kind handlerKind, e InputEvent) bool {
	idx, ok := i.Index()
	if !ok || idx >= len(m.handlers) {
		return false
	}
	h := m.handlers[idx]
	if h.kinds&kind == 0 {
		return false
	}
	h.cb(e)
	return true
}

// Handle routes e to its handler and reports whether one took it.
func (m *Menu) Handle(e InputEvent) bool {
	switch e := e.(type) {
	case KeyEvent:
		for _, r := range m.recognizers {
			if r.match(e) {
				return m.dispatch(r.interactor, handlesKeys, e)
			}
		}
	case MouseEvent:
		switch e.Kind {
		case MouseClick:
			return m.dispatch(e.NowInteractor, handlesClicks, e)
		case MouseScroll:
			return m.dispatch(e.NowInteractor, handlesScroll, e)
		case MouseDrag:
			return m.dispatch(e.StartInteractor, handlesDrag, e)
		}
	}
	return false
}
