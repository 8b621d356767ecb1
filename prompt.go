package batterm

import (
	"fmt"
	"slices"
)

type PromptInputMode int

const (
	PromptInputModeText PromptInputMode = iota
	PromptInputModeChar
)

type PromptCallbacks struct {
	OnConfirm func(answer string)
	OnCancel  func()
}

// Prompt asks a question on one line. A text prompt edits its answer in
// an input field, a char prompt takes one of a fixed set of characters.
type Prompt struct {
	mode      PromptInputMode
	prompt    string
	chars     []rune
	keymap    KeyMap
	input     *InputField
	callbacks PromptCallbacks
}

func CreateTextPrompt(prompt string, callbacks PromptCallbacks) *Prompt {
	p := &Prompt{
		mode:      PromptInputModeText,
		prompt:    prompt,
		callbacks: callbacks,
	}
	p.input = CreateInputField(InputFieldCallbacks{
		OnConfirm: p.confirm,
		OnCancel:  p.cancel,
	})
	return p
}

func CreateCharPrompt(prompt string, chars string, callbacks PromptCallbacks) *Prompt {
	p := &Prompt{
		mode:      PromptInputModeChar,
		prompt:    prompt,
		chars:     []rune(chars),
		callbacks: callbacks,
	}
	p.keymap = CreateKeyMap()
	p.keymap.BindFunc("Escape", p.cancel)
	p.keymap.BindFunc("C-g", p.cancel)
	return p
}

func (p *Prompt) Mode() PromptInputMode {
	return p.mode
}

func (p *Prompt) SetText(text string) {
	if p.mode == PromptInputModeText {
		p.input.SetText(text)
	}
}

func (p *Prompt) Text() string {
	if p.mode != PromptInputModeText {
		return ""
	}
	return p.input.Text()
}

func (p *Prompt) Reset() {
	if p.mode == PromptInputModeText {
		p.input.Reset()
	}
}

func (p *Prompt) HandleKey(e KeyEvent) bool {
	if p.mode == PromptInputModeText {
		return p.input.HandleKey(e)
	}
	if p.keymap.HandleKey(e) {
		return true
	}
	if r, ok := e.Char.Get(); ok && slices.Contains(p.chars, r) {
		p.confirm(string(r))
		return true
	}
	return false
}

// Render draws the prompt on the last line of b.
func (p *Prompt) Render(b Brush) {
	cs := b.FontMode().CharSize()
	if b.Size().X < cs.X || b.Size().Y < cs.Y {
		return
	}
	_, line := b.SplitVertically(b.Size().Y - cs.Y)
	switch p.mode {
	case PromptInputModeText:
		after := line.At(Point{}).Putfs(p.prompt + " ")
		_, input := line.SplitHorizontally(after.Cursor().X)
		p.input.Render(input)
	case PromptInputModeChar:
		line.At(Point{}).Putfs(fmt.Sprintf("%s [%s]", p.prompt, string(p.chars)))
	}
}

func (p *Prompt) confirm(answer string) {
	if p.callbacks.OnConfirm != nil {
		p.callbacks.OnConfirm(answer)
	}
}

func (p *Prompt) cancel() {
	if p.callbacks.OnCancel != nil {
		p.callbacks.OnCancel()
	}
}
