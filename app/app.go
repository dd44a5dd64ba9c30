package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
)

type App struct {
	Output string
	Params *parameters.Parameters
	files  []string
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output": a.Output,
		"mode":   a.Params.Mode,
		"format": a.Params.Format,
	}).Debug("App started")

	if err := os.MkdirAll(a.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	switch a.Params.Mode {
	case mode.Refraction:
		return a.runRefraction(ctx)
	case mode.Variation:
		return a.runVariation(ctx)
	default:
		return fmt.Errorf("unknown mode: %v", a.Params.Mode)
	}
}

// Files lists the files written by the last Run.
func (a *App) Files() []string {
	return a.files
}

func (a *App) path(name string) string {
	return filepath.Join(a.Output, name)
}

func (a *App) saved(path string, renderTime time.Time) {
	a.files = append(a.files, path)
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"file": path,
	}).Info("Chart rendered and saved")
}
