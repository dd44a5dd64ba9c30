package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fermat/app"
	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
)

func main() {
	params := parameters.Default()
	params.Mode = mode.Variation

	a := app.New(".", params)
	if err := a.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	if err := printSaved(os.Stdout, a.Files()); err != nil {
		log.Fatal(err)
	}
}

func printSaved(w io.Writer, files []string) error {
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "Grafik gespeichert als '%s'\n", filepath.Base(f)); err != nil {
			return err
		}
	}
	return nil
}
