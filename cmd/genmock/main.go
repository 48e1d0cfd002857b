// Command genmock generates a synthetic nuclear_explosions.csv fixture and
// prints the aggregate stats for it. It runs the generated file through the
// actual loader and analysis packages so the printed numbers match real
// program behavior and can be pasted into test assertions.
//
// Usage:
//
//	go run ./cmd/genmock -out testdata/nuclear_explosions.csv -rows 500
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

type countrySite struct {
	country string
	regions []string
	lat     float64
	lon     float64
}

// Sites roughly correspond to the real test ranges so generated coordinates
// look plausible on the geographic scatter.
var sites = []countrySite{
	{"USA", []string{"Nts", "Alamogordo", "Enewetak", "Bikini"}, 37.1, -116.0},
	{"USSR", []string{"Semi Kzakh", "Nz Russ", "Azgir Kazakh"}, 50.4, 77.8},
	{"France", []string{"Reggane Alg", "Muruhoa", "Fangataufa"}, -21.8, -138.9},
	{"UK", []string{"Monte Bello", "Emu Austr", "Maralin Austr"}, -20.4, 115.5},
	{"China", []string{"Lop Nor"}, 40.6, 89.6},
	{"India", []string{"Pokhran"}, 27.1, 71.8},
	{"Pakist", []string{"Chagai"}, 28.8, 64.9},
}

var purposes = []string{"Wr", "We", "Pne", "Fms", "Se"}
var types = []string{"Shaft", "Tunnel", "Tower", "Airdrop", "Surface", "Atmosph", "Uw"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the CSV fixture")
	rows := flag.Int("rows", 500, "number of data rows to generate")
	seed := flag.Int64("seed", 42, "PRNG seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))

	if err := writeFixture(*out, *rows, rng); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s (%d rows)", *out, *rows)

	// Load the file back through the real loader so the stats below reflect
	// what the analysis program will compute from it.
	loader := dataset.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	table, err := loader.Load(*out)
	if err != nil {
		return fmt.Errorf("reloading fixture: %w", err)
	}

	printStats(table)
	return nil
}

func writeFixture(path string, rows int, rng *rand.Rand) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, len(dataset.Columns))
	for i, col := range dataset.Columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		if err := w.Write(generateRow(rng)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func generateRow(rng *rand.Rand) []string {
	site := sites[rng.Intn(len(sites))]
	region := site.regions[rng.Intn(len(site.regions))]
	year := 1945 + rng.Intn(54)

	lat := site.lat + rng.Float64()*4 - 2
	lon := site.lon + rng.Float64()*4 - 2

	// Log-uniform yields from sub-kiloton into the megaton range, so every
	// yield category gets populated.
	lower := math.Pow(10, rng.Float64()*4.5-1)
	upper := lower * (1 + rng.Float64())

	yieldLower := strconv.FormatFloat(lower, 'f', 3, 64)
	yieldUpper := strconv.FormatFloat(upper, 'f', 3, 64)

	// A few percent of rows get blank yields to exercise missing-value
	// handling downstream.
	if rng.Float64() < 0.03 {
		yieldLower, yieldUpper = "", ""
	}

	return []string{
		strconv.Itoa(year),
		site.country,
		region,
		strconv.FormatFloat(lat, 'f', 4, 64),
		strconv.FormatFloat(lon, 'f', 4, 64),
		purposes[rng.Intn(len(purposes))],
		types[rng.Intn(len(types))],
		yieldLower,
		yieldUpper,
		fmt.Sprintf("Test-%04d", rng.Intn(10000)),
	}
}

func printStats(table *dataset.Table) {
	result := analysis.Analyze(table)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", table.Len())
	minYear, maxYear := table.YearRange()
	fmt.Printf("Years: %d-%d\n", minYear, maxYear)

	fmt.Print("By country:")
	for _, c := range result.Country.Counts {
		fmt.Printf(" %s=%d", c.Key, c.Count)
	}
	fmt.Println()

	fmt.Printf("Peak year: %d (%d tests)\n", result.Temporal.PeakYear, result.Temporal.PeakCount)

	fmt.Print("By category:")
	for _, c := range result.Yield.Categories {
		fmt.Printf(" %q=%d", c.Key, c.Count)
	}
	fmt.Println()

	fmt.Printf("Yield mean: %.2f, median: %.2f, max: %.2f\n",
		result.Yield.Stats.Mean, result.Yield.Stats.Median, result.Yield.Stats.Max)

	if len(result.Yield.Top) > 0 {
		top := result.Yield.Top[0]
		fmt.Printf("Largest: %s (%s, %d) %.2f kt\n", top.Name, top.Country, top.Year, top.AverageYield)
	}
}
