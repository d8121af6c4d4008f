package presenter

import (
	"log/slog"

	"github.com/soocke/tk-calc-go/domain/calculator"
	"github.com/soocke/tk-calc-go/ui/model"
	"github.com/soocke/tk-calc-go/ui/theme"
)

// EventHandler is the engine surface the presenter drives.
type EventHandler interface {
	Handle(calculator.Event)
}

// DisplaySource supplies the text the engine last wrote.
type DisplaySource interface {
	Text() string
}

// ModeSwitch holds the light/dark display mode.
type ModeSwitch interface {
	ToggleDark() bool
	Current() theme.Palette
}

// CalculatorView is the UI surface updated by the presenter.
type CalculatorView interface {
	SetDisplay(text string)
	ApplyPalette(p theme.Palette)
}

// CalculatorPresenter forwards key presses to the engine and mirrors the
// display and palette into the view.
type CalculatorPresenter struct {
	engine  EventHandler
	display DisplaySource
	mode    ModeSwitch
	view    CalculatorView
	logger  *slog.Logger
}

func NewCalculatorPresenter(engine EventHandler, display DisplaySource, mode ModeSwitch, view CalculatorView, logger *slog.Logger) *CalculatorPresenter {
	return &CalculatorPresenter{engine: engine, display: display, mode: mode, view: view, logger: logger}
}

// Key handles a keypad button press.
func (p *CalculatorPresenter) Key(k model.Key) {
	if p == nil {
		return
	}
	switch k.Action {
	case model.ActionDisplayMode:
		p.ToggleDisplayMode()
	default:
		p.Press(k.Event)
	}
}

// Press sends ev to the engine and shows the resulting display text.
func (p *CalculatorPresenter) Press(ev calculator.Event) {
	if p == nil || p.engine == nil || p.display == nil || p.view == nil {
		return
	}
	p.engine.Handle(ev)
	text := p.display.Text()
	if p.logger != nil {
		p.logger.Debug("key pressed", "event", ev.Kind.String(), "display", text)
	}
	p.view.SetDisplay(text)
}

// ToggleDisplayMode flips light/dark and restyles the view.
func (p *CalculatorPresenter) ToggleDisplayMode() {
	if p == nil || p.mode == nil || p.view == nil {
		return
	}
	dark := p.mode.ToggleDark()
	if p.logger != nil {
		p.logger.Info("display mode changed", "dark", dark)
	}
	p.view.ApplyPalette(p.mode.Current())
}

// Refresh pushes the current display text and palette, for the first paint.
func (p *CalculatorPresenter) Refresh() {
	if p == nil || p.view == nil {
		return
	}
	if p.display != nil {
		p.view.SetDisplay(p.display.Text())
	}
	if p.mode != nil {
		p.view.ApplyPalette(p.mode.Current())
	}
}
