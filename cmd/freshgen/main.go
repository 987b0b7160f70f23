// Command freshgen generates the food-freshness training datasets: one CSV
// per sensor-reading scheme, each with a 50/50 fresh/bad split, shuffled so
// row order carries no label signal.
//
// The configuration is compiled in (row counts, file names, distribution
// tables); the command takes no arguments. On a write failure it reports
// the cause and exits; a partially written file may remain.
package main

import (
	"log"

	"github.com/PenyelamatPangan/Models/synth"
	"github.com/PenyelamatPangan/Models/tabular"
)

const (
	totalRows      = 100000
	progressStride = 10000
)

// outputs maps each variant to its dataset file.
var outputs = []struct {
	variant  synth.Variant
	filename string
}{
	{synth.RawADC(), "food_freshness_dataset.csv"},
	{synth.PPMShelfLife(), "food_freshness_ppm_dataset.csv"},
	{synth.TriGas(), "food_freshness_trigas_dataset.csv"},
}

func main() {
	log.SetFlags(log.LstdFlags)

	for _, out := range outputs {
		log.Printf("Generating %d rows of synthetic %s data...", totalRows, out.variant.Schema.Name)

		rows, err := synth.BuildDataset(out.variant, totalRows,
			synth.WithProgress(func(done, total int) {
				if done%progressStride == 0 {
					log.Printf("  %s: %d/%d rows", out.variant.Schema.Name, done, total)
				}
			}),
		)
		if err != nil {
			log.Fatalf("generate %s: %v", out.variant.Schema.Name, err)
		}

		log.Printf("Writing data to %s...", out.filename)
		n, err := tabular.Write(out.filename, out.variant.Schema, rows)
		if err != nil {
			log.Fatalf("write %s: %v", out.filename, err)
		}

		log.Printf("Successfully generated %s with %d rows.", out.filename, n)
	}

	log.Print("Done.")
}
