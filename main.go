package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fermat/app"
	"github.com/AnkushinDaniil/fermat/entity/format"
	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
)

func main() {
	params := parameters.Default()

	output := flag.String("out", ".", "output directory")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Func("mode", "r (refraction) or v (variation)", func(s string) error {
		m, err := mode.UnmarshalText(s)
		params.Mode = m
		return err
	})
	flag.Func("format", "pdf, png, svg, html, csv or xlsx", func(s string) error {
		f, err := format.UnmarshalText(s)
		params.Format = f
		return err
	})
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(*output, params)
	if err := a.Run(ctx); err != nil {
		log.Fatal(err)
	}
	for _, f := range a.Files() {
		log.WithField("file", f).Info("Saved")
	}
}
