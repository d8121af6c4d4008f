package view

import (
	"log/slog"

	"github.com/soocke/tk-calc-go/config"
	"github.com/soocke/tk-calc-go/ui/model"
	"github.com/soocke/tk-calc-go/ui/presenter"
	"github.com/soocke/tk-calc-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView builds the calculator window: the display label across the top
// row and the keypad grid below it.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Display *LabelWidget
	modeBtn *ButtonWidget
	buttons map[model.KeyGroup][]*ButtonWidget
}

var _ presenter.CalculatorView = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RootView{cfg: cfg, logger: logger, buttons: make(map[model.KeyGroup][]*ButtonWidget)}
}

// Build constructs the layout. onKey is invoked with the pressed key.
func (rv *RootView) Build(keys []model.Key, onKey func(model.Key)) {
	if rv == nil {
		return
	}
	rv.Display = Label(
		Txt("0"),
		Font(rv.cfg.FontFamily, rv.cfg.DisplayFontSize),
		Anchor("se"),
		Padx("4m"),
		Pady("1m"),
	)
	Grid(rv.Display, Row(0), Column(0), Columnspan(model.KeypadColumns), Sticky("nsew"))

	for _, k := range keys {
		k := k // per-iteration copy: go.mod targets go 1.21 (pre-1.22 loop semantics)
		btn := Button(
			Txt(k.Label),
			Font(rv.cfg.FontFamily, rv.cfg.ButtonFontSize),
			Command(func() {
				if onKey != nil {
					onKey(k)
				}
			}),
		)
		Grid(btn, Row(k.Row), Column(k.Column), Sticky("nsew"))
		rv.buttons[k.Group] = append(rv.buttons[k.Group], btn)
		if k.Action == model.ActionDisplayMode {
			rv.modeBtn = btn
		}
	}

	for c := 0; c < model.KeypadColumns; c++ {
		GridColumnConfigure(App, c, Weight(1))
	}
	// The display row takes the most height.
	GridRowConfigure(App, 0, Weight(6))
	for r := 1; r <= model.KeypadRows; r++ {
		GridRowConfigure(App, r, Weight(1))
	}
	if rv.logger != nil {
		rv.logger.Debug("calculator view built", "keys", len(keys))
	}
}

// SetDisplay updates the display label text.
func (rv *RootView) SetDisplay(text string) {
	if rv != nil && rv.Display != nil {
		rv.Display.Configure(Txt(text))
	}
}

// ApplyPalette recolours the window, the display and every key.
func (rv *RootView) ApplyPalette(p theme.Palette) {
	if rv == nil {
		return
	}
	App.Configure(Background(p.Background))
	if rv.Display != nil {
		rv.Display.Configure(Background(p.Background), Foreground(p.Text))
	}
	for group, btns := range rv.buttons {
		bg := p.Numerical
		switch group {
		case model.GroupFunctional:
			bg = p.Functional
		case model.GroupOperational:
			bg = p.Operational
		}
		for _, b := range btns {
			b.Configure(Background(bg), Foreground(p.Text), Activebackground(bg), Activeforeground(p.Text))
		}
	}
	if rv.modeBtn != nil {
		rv.modeBtn.Configure(Txt(p.ModeGlyph))
	}
}
