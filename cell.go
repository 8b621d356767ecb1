package batterm

import "fmt"

// Interactor identifies a hot spot on the screen. The zero value is none.
type Interactor uint32

const NoInteractor Interactor = 0

func InteractorFromIndex(i int) Interactor {
	return Interactor(i + 1)
}

func (i Interactor) Index() (int, bool) {
	if i == NoInteractor {
		return 0, false
	}
	return int(i) - 1, true
}

func (i Interactor) IsNone() bool {
	return i == NoInteractor
}

func (i Interactor) String() string {
	if idx, ok := i.Index(); ok {
		return fmt.Sprintf("interactor#%d", idx)
	}
	return "interactor(none)"
}

// InteractorFmt binds a cell to an interactor along with the colors used
// while it is hovered. Absent colors swap the cell's own fg and bg.
type InteractorFmt struct {
	Interactor Interactor
	Bg         Opt[uint8]
	Fg         Opt[uint8]
}

type Bevels struct {
	Top    Opt[uint8]
	Left   Opt[uint8]
	Right  Opt[uint8]
	Bottom Opt[uint8]
}

func (b Bevels) Any() bool {
	return b.Top.IsSome() || b.Left.IsSome() || b.Right.IsSome() || b.Bottom.IsSome()
}

type SemKind uint8

const (
	SemBlank SemKind = iota
	SemSmall
	SemTopHalf
	SemBottomHalf
	SemSetTL
	SemSetTR
	SemSetBL
	SemSetBR
	SemFatTL
	SemFatTR
	SemFatBL
	SemFatBR
)

var semKindNames = [...]string{
	SemBlank:      "Blank",
	SemSmall:      "Small",
	SemTopHalf:    "TopHalf",
	SemBottomHalf: "BottomHalf",
	SemSetTL:      "SetTL",
	SemSetTR:      "SetTR",
	SemSetBL:      "SetBL",
	SemSetBR:      "SetBR",
	SemFatTL:      "FatTL",
	SemFatTR:      "FatTR",
	SemFatBL:      "FatBL",
	SemFatBR:      "FatBR",
}

func (k SemKind) String() string {
	if int(k) < len(semKindNames) {
		return semKindNames[k]
	}
	return fmt.Sprintf("SemKind(%d)", k)
}

// SemanticContent says which part of which glyph a cell shows.
type SemanticContent struct {
	Kind SemKind
	Code uint16
}

var Blank = SemanticContent{}

func Sem(kind SemKind, code uint16) SemanticContent {
	return SemanticContent{Kind: kind, Code: code}
}

func (s SemanticContent) String() string {
	if s.Kind == SemBlank {
		return "Blank"
	}
	return fmt.Sprintf("%s(%d)", s.Kind, s.Code)
}

type CellContent struct {
	Bg               uint8
	Fg               uint8
	Bevels           Bevels
	Sem              SemanticContent
	Interactor       InteractorFmt
	ScrollInteractor Interactor
}

// DefaultCell is the content of a cleared cell.
func DefaultCell(bg, fg uint8) CellContent {
	return CellContent{Bg: bg, Fg: fg}
}
