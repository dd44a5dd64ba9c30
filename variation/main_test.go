package main

import (
	"bytes"
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/fermat/app"
	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
)

func TestPrintSaved(t *testing.T) {
	log.SetLevel(log.WarnLevel)

	params := parameters.Default()
	params.Mode = mode.Variation
	a := app.New(t.TempDir(), params)
	require.NoError(t, a.Run(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, printSaved(&buf, a.Files()))
	require.Equal(t, "Grafik gespeichert als 'variation_demo.pdf'\n", buf.String())
}
