package app

import (
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/tk-calc-go/config"
	"github.com/soocke/tk-calc-go/debug"
	"github.com/soocke/tk-calc-go/ui/view"
)

type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	root      *view.RootView
	container *Container
	stopStats func()
}

// NewApp configures the main window and assembles the calculator.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &app{cfg: cfg, logger: logger}
	a.root = view.NewRootView(cfg, logger)
	a.container = BuildContainer(cfg, logger, a.root)

	tk.App.WmTitle(title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Start builds the widgets, paints the initial state and runs the Tk loop.
func (a *app) Start() {
	a.root.Build(a.container.Keys, a.container.Presenter.Key)
	a.container.Presenter.Refresh()

	if a.cfg.Debug {
		interval := time.Duration(a.cfg.StatsIntervalSeconds) * time.Second
		a.stopStats = debug.StartStatsLogger(interval, a.logger, a.container.Engine)
	}
	if a.logger != nil {
		a.logger.Info("calculator started", "dark", a.container.Mode.IsDark())
	}
	tk.App.Wait()
}

func (a *app) exitHandler() {
	if a.stopStats != nil {
		a.stopStats()
	}
	if a.logger != nil {
		st := a.container.Engine.Stats()
		a.logger.Info("calculator exiting", "events", st.Events, "computations", st.Computations, "failures", st.Failures)
	}
	tk.Destroy(tk.App)
}
