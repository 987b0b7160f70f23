// Package tabular contains end-to-end serialization tests: exact header
// literals, line and column counts, numeric formatting, and the write
// failure path.
package tabular_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PenyelamatPangan/Models/sensor"
	"github.com/PenyelamatPangan/Models/synth"
	"github.com/PenyelamatPangan/Models/tabular"
)

// TestWriteToEndToEnd: 10 rows (5 fresh / 5 bad) serialize as 11 lines —
// the exact header literal plus one line per row with the declared column
// count — for every variant.
func TestWriteToEndToEnd(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"RawADC":       "MQ135_Analog,MQ3_Analog,MiCS5524_Analog,Output",
		"PPMShelfLife": "MQ135_Analog,MQ3_Analog,MiCS5524_Analog,Output,RSL_Hours",
		"TriGas":       "C2H5OH_PPM,NH3_PPM,CH4_PPM,MQ_Analog_Value,Output",
	}

	for _, v := range []synth.Variant{synth.RawADC(), synth.PPMShelfLife(), synth.TriGas()} {
		rows, err := synth.BuildDataset(v, 10, synth.WithSeed(71), synth.WithFreshCount(5))
		require.NoError(t, err)

		var sb strings.Builder
		n, err := tabular.WriteTo(&sb, v.Schema, rows)
		require.NoError(t, err)
		require.Equal(t, 10, n)

		out := sb.String()
		require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 11, "%s: header + 10 data lines", v.Schema.Name)
		require.Equal(t, headers[v.Schema.Name], lines[0])

		want := len(v.Schema.Fields)
		for i, line := range lines[1:] {
			require.Len(t, strings.Split(line, ","), want,
				"%s line %d column count", v.Schema.Name, i+1)
		}
	}
}

// TestWriteToFormatting checks the per-kind cell rendering on a handmade row.
func TestWriteToFormatting(t *testing.T) {
	t.Parallel()

	schema := sensor.Schema{
		Name: "Fmt",
		Fields: []sensor.FieldSpec{
			{Name: "ppm", Kind: sensor.KindFloat},
			{Name: "adc", Kind: sensor.KindInt},
			{Name: "Output", Kind: sensor.KindLabel},
		},
	}
	rows := []sensor.Row{{Values: []float64{42.5, 913}, Label: sensor.LabelBad}}

	var sb strings.Builder
	n, err := tabular.WriteTo(&sb, schema, rows)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "ppm,adc,Output\n42.50,913,0\n", sb.String())
}

// TestWriteToRejectsMismatchedRow surfaces the row/schema arity error.
func TestWriteToRejectsMismatchedRow(t *testing.T) {
	t.Parallel()

	v := synth.RawADC()
	rows := []sensor.Row{{Values: []float64{1}, Label: sensor.LabelFresh}}

	var sb strings.Builder
	_, err := tabular.WriteTo(&sb, v.Schema, rows)
	require.ErrorIs(t, err, sensor.ErrArity)
}

// TestWriteUnwritableDestination: an impossible path yields ErrWrite.
func TestWriteUnwritableDestination(t *testing.T) {
	t.Parallel()

	v := synth.RawADC()
	rows, err := synth.BuildDataset(v, 4, synth.WithSeed(73))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	_, err = tabular.Write(path, v.Schema, rows)
	require.ErrorIs(t, err, tabular.ErrWrite)
}

// TestWriteRoundTrip writes a real file and re-checks the line count.
func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	v := synth.PPMShelfLife()
	rows, err := synth.BuildDataset(v, 20, synth.WithSeed(79))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	n, err := tabular.Write(path, v.Schema, rows)
	require.NoError(t, err)
	require.Equal(t, 20, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 21)
}
