package batterm

import (
	"reflect"
	"strings"
)

type ListEntry interface {
	GetUniqueId() any
	Format() string
}

// ListDisplay is a scrolling, filterable list with one selected entry.
type ListDisplay struct {
	entries    []ListEntry
	formatted  map[any]string
	index      int
	top        int
	lastHeight int
	searchText string

	SelectedBg uint8
	SelectedFg uint8
	// OnActivate runs when an entry is clicked while selected.
	OnActivate func(ListEntry)
}

func CreateListDisplay() *ListDisplay {
	return &ListDisplay{SelectedBg: LtGray2, SelectedFg: Black}
}

func (ld *ListDisplay) Reset() {
	ld.index = 0
	ld.top = 0
	ld.searchText = ""
}

func (ld *ListDisplay) PageSize() int {
	if ld.lastHeight > 0 {
		return ld.lastHeight
	}
	return 1
}

func (ld *ListDisplay) Top() int {
	return ld.top
}

func (ld *ListDisplay) SetEntries(entries []ListEntry) {
	ld.entries = entries
	ld.formatted = nil
	ld.index = max(0, min(ld.index, len(ld.entries)-1))
	ld.EnsureVisible()
}

func (ld *ListDisplay) SetSearchText(s string) {
	ld.searchText = s
	if filtered := ld.GetFilteredEntries(); len(filtered) > 0 {
		ld.SelectFiltered(ld.GetFilteredSelectionIndex())
	}
}

func (ld *ListDisplay) SearchText() string {
	return ld.searchText
}

func (ld *ListDisplay) format(e ListEntry) string {
	if ld.formatted == nil {
		ld.formatted = make(map[any]string, len(ld.entries))
	}
	id := e.GetUniqueId()
	if s, ok := ld.formatted[id]; ok {
		return s
	}
	s := e.Format()
	ld.formatted[id] = s
	return s
}

func (ld *ListDisplay) GetFilteredEntries() []ListEntry {
	if ld.searchText == "" {
		return ld.entries
	}
	needle := strings.ToLower(ld.searchText)
	var out []ListEntry
	for _, e := range ld.entries {
		if strings.Contains(strings.ToLower(ld.format(e)), needle) {
			out = append(out, e)
		}
	}
	return out
}

func (ld *ListDisplay) indexOf(entries []ListEntry, id any) int {
	for i, e := range entries {
		if reflect.DeepEqual(e.GetUniqueId(), id) {
			return i
		}
	}
	return -1
}

// GetFilteredSelectionIndex is the position of the selected entry among
// the filtered ones, 0 when it is filtered out.
func (ld *ListDisplay) GetFilteredSelectionIndex() int {
	current := ld.SelectedEntry()
	if current == nil {
		return 0
	}
	return max(0, ld.indexOf(ld.GetFilteredEntries(), current.GetUniqueId()))
}

func (ld *ListDisplay) SelectFiltered(idx int) {
	filtered := ld.GetFilteredEntries()
	if len(filtered) == 0 {
		ld.index = 0
		ld.top = 0
		return
	}
	idx = max(0, min(idx, len(filtered)-1))
	ld.index = max(0, ld.indexOf(ld.entries, filtered[idx].GetUniqueId()))
	ld.EnsureVisible()
}

func (ld *ListDisplay) SelectById(id any) bool {
	i := ld.indexOf(ld.entries, id)
	if i < 0 {
		return false
	}
	ld.index = i
	ld.EnsureVisible()
	return true
}

func (ld *ListDisplay) EnsureVisible() {
	if ld.lastHeight <= 0 {
		return
	}
	filtered := ld.GetFilteredEntries()
	if len(filtered) == 0 {
		ld.top = 0
		return
	}
	selIdx := ld.GetFilteredSelectionIndex()
	ld.top = max(ld.top, 0)
	if selIdx < ld.top {
		ld.top = selIdx
	}
	if selIdx >= ld.top+ld.lastHeight {
		ld.top = selIdx - ld.lastHeight + 1
	}
	ld.top = max(0, min(ld.top, len(filtered)-1))
}

func (ld *ListDisplay) MoveBy(delta int) {
	ld.SelectFiltered(ld.GetFilteredSelectionIndex() + delta)
}

func (ld *ListDisplay) MoveTo(idx int) {
	ld.SelectFiltered(idx)
}

func (ld *ListDisplay) SelectedEntry() ListEntry {
	if ld.index < 0 || ld.index >= len(ld.entries) {
		return nil
	}
	return ld.entries[ld.index]
}

// Keymap returns the navigation bindings of the list.
func (ld *ListDisplay) Keymap() KeyMap {
	km := CreateKeyMap()
	km.BindFunc("Up", func() { ld.MoveBy(-1) })
	km.BindFunc("Down", func() { ld.MoveBy(1) })
	km.BindFunc("PageUp", func() { ld.MoveBy(-ld.PageSize()) })
	km.BindFunc("PageDown", func() { ld.MoveBy(ld.PageSize()) })
	km.BindFunc("Home", func() { ld.MoveTo(0) })
	km.BindFunc("End", func() { ld.MoveTo(len(ld.GetFilteredEntries()) - 1) })
	return km
}

// Render draws one entry per line of the brush's font. With a menu, rows
// select on click and the wheel scrolls the list.
func (ld *ListDisplay) Render(b Brush, m *Menu) {
	cs := b.FontMode().CharSize()
	ld.lastHeight = b.Size().Y / cs.Y
	width := b.Size().X / cs.X
	if ld.lastHeight <= 0 || width <= 0 {
		return
	}
	ld.EnsureVisible()

	if m != nil {
		scroll := m.OnScroll(func(e MouseEvent) {
			ld.MoveBy(int(e.Scroll))
		})
		b = b.ScrollInteractor(scroll)
	}

	filtered := ld.GetFilteredEntries()
	selected := ld.SelectedEntry()
	for row := 0; row < ld.lastHeight && ld.top+row < len(filtered); row++ {
		entry := filtered[ld.top+row]
		line := []rune(ld.format(entry))
		if len(line) > width {
			line = line[:width]
		}
		rb := b.At(Point{0, row * cs.Y})
		if m != nil {
			idx := ld.top + row
			id := m.OnClick(func(MouseEvent) {
				if selected != nil && reflect.DeepEqual(entry.GetUniqueId(), selected.GetUniqueId()) && ld.OnActivate != nil {
					ld.OnActivate(entry)
					return
				}
				ld.SelectFiltered(idx)
			})
			rb = rb.Interactor(id, None[uint8](), None[uint8]())
		}
		if selected != nil && reflect.DeepEqual(entry.GetUniqueId(), selected.GetUniqueId()) {
			rb = rb.Color(ld.SelectedBg, ld.SelectedFg)
		}
		for _, r := range line {
			rb = rb.Putch(uint16(EncodeRune(r)))
		}
		for range width - len(line) {
			rb = rb.Putch(' ')
		}
	}
}
