package app

import (
	"log/slog"

	"github.com/soocke/tk-calc-go/config"
	"github.com/soocke/tk-calc-go/domain/calculator"
	"github.com/soocke/tk-calc-go/ui/model"
	"github.com/soocke/tk-calc-go/ui/presenter"
	"github.com/soocke/tk-calc-go/ui/theme"
)

// Container assembles the engine, models, presenter and the view contract.
type Container struct {
	Config    *config.Config
	Logger    *slog.Logger
	Display   *model.DisplayModel
	Engine    *calculator.Engine
	Mode      *theme.Mode
	Keys      []model.Key
	Presenter *presenter.CalculatorPresenter
}

// BuildContainer constructs all Tk-independent components and binds the
// presenter to ui. Side-effects limited to reading the OS theme preference.
func BuildContainer(cfg *config.Config, logger *slog.Logger, ui presenter.CalculatorView) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Container{Config: cfg, Logger: logger}
	c.Display = model.NewDisplayModel()
	c.Engine = calculator.NewEngine(c.Display, logger)

	dark, err := theme.Initial(cfg.FollowSystemTheme, cfg.DarkMode)
	if err != nil && logger != nil {
		logger.Warn("system theme unavailable, using configured mode", "dark", cfg.DarkMode, "error", err)
	}
	c.Mode = theme.NewMode(dark)
	c.Keys = model.Keypad()
	c.Presenter = presenter.NewCalculatorPresenter(c.Engine, c.Display, c.Mode, ui, logger)
	return c
}
