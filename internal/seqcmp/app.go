// Package seqcmp assembles the comparison client, sample loader, result store,
// and exporter shared by the commands and the TUI.
package seqcmp

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/config"
	"github.com/colonyops/seqcmp/internal/core/controller"
	"github.com/colonyops/seqcmp/internal/core/export"
	"github.com/colonyops/seqcmp/internal/core/result"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the central entry point for seqcmp operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config   *config.Config
	Client   *compare.Client
	Samples  *compare.SampleLoader
	Results  *result.Store
	Exporter *export.Exporter
	Logger   zerolog.Logger
	Build    BuildInfo
}

// NewApp constructs an App from the loaded configuration.
func NewApp(cfg *config.Config, logger zerolog.Logger, build BuildInfo) *App {
	client := compare.NewClient(cfg.Server.URL,
		compare.WithTimeout(cfg.Server.Timeout),
		compare.WithLogger(logger.With().Str("component", "client").Logger()),
	)
	store := result.NewStore()

	return &App{
		Config:   cfg,
		Client:   client,
		Samples:  compare.NewSampleLoader(client, cfg.Samples.CacheTTL),
		Results:  store,
		Exporter: export.New(store, cfg.Export.Dir, nil),
		Logger:   logger,
		Build:    build,
	}
}

// NewController returns a controller bound to the App's collaborators that
// reports through notifier.
func (a *App) NewController(notifier controller.Notifier, hooks controller.Hooks) *controller.Controller {
	return controller.New(controller.Deps{
		Comparer:     a.Client,
		Samples:      a.Samples,
		Notifier:     notifier,
		Store:        a.Results,
		Exporter:     a.Exporter,
		Logger:       a.Logger,
		FilePatterns: a.Config.Files.Patterns,
		SampleNames:  [2]string{a.Config.Samples.Seq1, a.Config.Samples.Seq2},
		Hooks:        hooks,
	})
}

// SampleName returns the configured sample file name for slot.
func (a *App) SampleName(slot controller.Slot) string {
	if slot == controller.Seq2 {
		return a.Config.Samples.Seq2
	}
	return a.Config.Samples.Seq1
}
