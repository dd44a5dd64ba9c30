package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fermat/app"
	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
)

func main() {
	params := parameters.Default()
	params.Mode = mode.Refraction

	if err := app.New(".", params).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
