package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFSems() []FSem {
	hover := InteractorFmt{Interactor: InteractorFromIndex(2), Fg: Some[uint8](Red2)}
	return []FSem{
		{},
		FSem{}.WithBg(Blue0),
		FSem{}.WithFg(White).WithSem(Sem(SemSmall, 'a')),
		FSem{}.WithBg(Black).WithFg(Yellow3),
		FSem{}.WithInteractor(hover),
		FSem{}.WithInteractor(InteractorFmt{}).WithScrollInteractor(InteractorFromIndex(0)),
		FSem{}.WithBevels(FBevels{Top: Some(White), Left: Some(White)}),
		FSem{}.WithBevels(FBevels{Right: Some(DkGray0)}).WithSem(Blank),
		FSem{}.WithSem(Sem(SemFatBR, 0x41)).WithBg(Green1).WithBevels(FBevels{Bottom: Some(DkGray2), Top: Some(LtGray0)}),
	}
}

func TestSuperimposedOnIsLeftBiased(t *testing.T) {
	for _, a := range sampleFSems() {
		for _, b := range sampleFSems() {
			got := a.SuperimposedOn(b)
			assert.Equal(t, a.Sem.Or(b.Sem), got.Sem)
			assert.Equal(t, a.Bg.Or(b.Bg), got.Bg)
			assert.Equal(t, a.Fg.Or(b.Fg), got.Fg)
			assert.Equal(t, a.Interactor.Or(b.Interactor), got.Interactor)
			assert.Equal(t, a.ScrollInteractor.Or(b.ScrollInteractor), got.ScrollInteractor)
			assert.Equal(t, a.Bevels.Top.Or(b.Bevels.Top), got.Bevels.Top)
			assert.Equal(t, a.Bevels.Left.Or(b.Bevels.Left), got.Bevels.Left)
			assert.Equal(t, a.Bevels.Right.Or(b.Bevels.Right), got.Bevels.Right)
			assert.Equal(t, a.Bevels.Bottom.Or(b.Bevels.Bottom), got.Bevels.Bottom)
		}
	}
}

func TestSuperimposedOnIsAssociative(t *testing.T) {
	for _, a := range sampleFSems() {
		for _, b := range sampleFSems() {
			for _, c := range sampleFSems() {
				assert.Equal(t,
					a.SuperimposedOn(b).SuperimposedOn(c),
					a.SuperimposedOn(b.SuperimposedOn(c)))
			}
		}
	}
}

func TestSuperimposedOnIdentityAndOrder(t *testing.T) {
	for _, a := range sampleFSems() {
		assert.Equal(t, a, FSem{}.SuperimposedOn(a))
		assert.Equal(t, a, a.SuperimposedOn(FSem{}))
	}
	red := FSem{}.WithBg(Red0)
	blue := FSem{}.WithBg(Blue0)
	assert.NotEqual(t, red.SuperimposedOn(blue), blue.SuperimposedOn(red))
}

func TestBevelsComposePerEdge(t *testing.T) {
	top := FSem{Bevels: FBevels{Top: Some(White)}}
	left := FSem{Bevels: FBevels{Left: Some(Black)}}
	got := top.SuperimposedOn(left)
	assert.Equal(t, FBevels{Top: Some(White), Left: Some(Black)}, got.Bevels)
}

func TestApplyTo(t *testing.T) {
	c := DefaultCell(Blue0, White)
	before := c
	FSem{}.ApplyTo(&c)
	assert.Equal(t, before, c)

	FSem{}.WithFg(Red3).WithBevels(FBevels{Left: Some(Black)}).ApplyTo(&c)
	FSem{Bevels: FBevels{Right: Some(White)}}.ApplyTo(&c)
	assert.Equal(t, Blue0, c.Bg)
	assert.Equal(t, Red3, c.Fg)
	assert.Equal(t, Bevels{Left: Some(Black), Right: Some(White)}, c.Bevels)
}

func TestFCharSem(t *testing.T) {
	f := Char('x').WithFg(Yellow2)
	got := f.Sem(SemSetBR)
	assert.Equal(t, Some(Sem(SemSetBR, 'x')), got.Sem)
	assert.Equal(t, Some(Yellow2), got.Fg)
	assert.False(t, got.Bg.IsSome())

	under := FChar{Bg: Some(Black), Glyph: Some[uint16]('y')}
	assert.Equal(t, FChar{Glyph: Some[uint16]('x'), Fg: Some(Yellow2), Bg: Some(Black)}, f.SuperimposedOn(under))
	assert.False(t, FChar{}.Sem(SemSmall).Sem.IsSome())
}

func TestInteractorIndex(t *testing.T) {
	_, ok := NoInteractor.Index()
	assert.False(t, ok)
	i := InteractorFromIndex(0)
	assert.NotEqual(t, NoInteractor, i)
	idx, ok := i.Index()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
