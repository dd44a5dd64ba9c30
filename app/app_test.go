package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/fermat/entity/format"
	"github.com/AnkushinDaniil/fermat/entity/mode"
	"github.com/AnkushinDaniil/fermat/entity/parameters"
	"github.com/AnkushinDaniil/fermat/optics"
)

func init() {
	log.SetLevel(log.WarnLevel)
}

func TestRun(t *testing.T) {
	tests := []struct {
		mode   mode.Mode
		format format.Format
		want   []string
	}{
		{mode.Refraction, format.PDF, []string{"gesamte_laufzeit.pdf", "strahlengang.pdf"}},
		{mode.Refraction, format.SVG, []string{"gesamte_laufzeit.svg", "strahlengang.svg"}},
		{mode.Refraction, format.HTML, []string{"lichtbrechung.html"}},
		{mode.Refraction, format.CSV, []string{"gesamte_laufzeit.csv"}},
		{mode.Refraction, format.XLSX, []string{"lichtbrechung.xlsx"}},
		{mode.Variation, format.PDF, []string{"variation_demo.pdf"}},
		{mode.Variation, format.PNG, []string{"variation_demo.png"}},
		{mode.Variation, format.HTML, []string{"variation_demo.html"}},
		{mode.Variation, format.CSV, []string{"variation_demo.csv"}},
		{mode.Variation, format.XLSX, []string{"variation_demo.xlsx"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.format.String(), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			params := parameters.Default()
			params.Mode = tt.mode
			params.Format = tt.format

			a := New(dir, params)
			require.NoError(t, a.Run(context.Background()))

			want := make([]string, len(tt.want))
			for i, name := range tt.want {
				want[i] = filepath.Join(dir, name)
			}
			require.Equal(t, want, a.Files())
			for _, path := range want {
				fi, err := os.Stat(path)
				require.NoError(t, err)
				require.Positive(t, fi.Size())
			}
		})
	}
}

func TestRunVariationCSV(t *testing.T) {
	dir := t.TempDir()
	params := parameters.Default()
	params.Mode = mode.Variation
	params.Format = format.CSV
	params.Variation.EpsilonHalf = 2

	require.NoError(t, New(dir, params).Run(context.Background()))
	b, err := os.ReadFile(filepath.Join(dir, "variation_demo.csv"))
	require.NoError(t, err)
	require.Contains(t, string(b), "epsilon,bogenlaenge\n-1,")
	require.Contains(t, string(b), "\n0,3.14159265")
}

func TestRunLogsOptimum(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(log.WarnLevel)

	params := parameters.Default()
	params.Format = format.CSV
	require.NoError(t, New(t.TempDir(), params).Run(context.Background()))

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message != "Optimal split found" {
			continue
		}
		found = true
		require.Contains(t, e.Data, "travelTime")
		require.NotContains(t, e.Data, "time")
		r := params.Refraction
		setup := optics.Setup{N1: r.N1, N2: r.N2, D: r.D, XTarget: r.XTarget, YTarget: r.YTarget}
		require.InDelta(t, setup.TravelTime(e.Data["y*"].(float64)), e.Data["travelTime"].(float64), 1e-12)
	}
	require.True(t, found)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, m := range []mode.Mode{mode.Refraction, mode.Variation} {
		params := parameters.Default()
		params.Mode = m
		a := New(t.TempDir(), params)
		err := a.Run(ctx)
		require.True(t, errors.Is(err, context.Canceled), "mode %v: %v", m, err)
		require.Empty(t, a.Files())
	}
}

func TestRunInvalid(t *testing.T) {
	params := parameters.Default()
	params.Mode = mode.Mode(7)
	require.Error(t, New(t.TempDir(), params).Run(context.Background()))

	params = parameters.Default()
	params.Format = format.Format(42)
	require.Error(t, New(t.TempDir(), params).Run(context.Background()))
}
