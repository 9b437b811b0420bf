package experiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/samuelfneumann/bodyguard/config"
)

func TestTesterValues(t *testing.T) {
	chain := DefaultChain()
	for _, tester := range chain {
		if n := len(tester.Values()); n != 11 {
			t.Errorf("%v: want 11 values, have %d", tester.Name, n)
		}
	}

	exploration := chain[1].Values()
	if last := exploration[len(exploration)-1]; last != 1 {
		t.Errorf("ghost exploration: last value want 1, have %v", last)
	}
	if last := chain[2].Values()[10]; last != 200 {
		t.Errorf("ghost count: last value want 200, have %v", last)
	}
}

func TestTesterRun(t *testing.T) {
	base := smallConfig()
	base.IterationMax = 5

	chain := Chain{
		NewTester("Suffering", SetSuffering, 20, 4, 28),
		NewTester("Ghost Count", SetGhostCount, 0, 2, 2),
	}

	results, err := chain.Run(base, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("run: want 5 results, have %d", len(results))
	}

	ids := make(map[string]bool)
	for _, r := range results {
		if r.Stats.Iterations != 5 {
			t.Errorf("run: %v = %v: want 5 iterations, have %d",
				r.Parameter, r.Value, r.Stats.Iterations)
		}
		if r.Fitness != r.Stats.Guard.Average {
			t.Errorf("run: fitness %v does not match guard average %v",
				r.Fitness, r.Stats.Guard.Average)
		}
		ids[r.RunID] = true
	}
	if len(ids) != len(results) {
		t.Error("run: run IDs are not unique")
	}

	graph := chain[0].Graph().Data(0)
	if len(graph.X) != 3 || graph.X[0] != 20 || graph.X[2] != 28 {
		t.Errorf("graph: want suffering values [20 24 28], have %v", graph.X)
	}

	// The base configuration is never modified
	if base.Suffering != 26 || base.GhostCount != 0 {
		t.Errorf("run: base config modified: %+v", base)
	}

	dir := t.TempDir()
	if err := chain.Save(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ghost_count_0.gph")); err != nil {
		t.Errorf("save: graph not saved: %v", err)
	}

	if err := Plot(filepath.Join(dir, "sweep.html"), chain.Graphs()...); err != nil {
		t.Fatal(err)
	}
	html, err := os.ReadFile(filepath.Join(dir, "sweep.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Performance by Suffering") {
		t.Error("plot: chart title missing from page")
	}

	filename := filepath.Join(dir, "sweep.xlsx")
	if err := Export(filename, results); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(resultSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(results)+1 {
		t.Fatalf("export: want %d rows, have %d", len(results)+1, len(rows))
	}
	if rows[0][0] != "Run ID" || rows[1][0] != results[0].RunID {
		t.Errorf("export: unexpected rows %v", rows[:2])
	}
}

func TestTesterRunTwice(t *testing.T) {
	base := smallConfig()
	base.IterationMax = 3

	tester := NewTester("Suffering", SetSuffering, 0, 1, 2)
	for i := 0; i < 2; i++ {
		if _, err := tester.Run(base, 0); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(tester.Graph().Data(0).X); n != 3 {
		t.Errorf("run: want 3 points after running twice, have %d", n)
	}
}

func TestDefaultChainDefaultConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full sweep in short mode")
	}

	base := config.Default()
	base.GridW, base.GridH = 5, 5

	results, err := DefaultChain().Run(base, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 33 {
		t.Fatalf("run: want 33 results, have %d", len(results))
	}
	for _, r := range results {
		if r.Stats.Iterations != config.DefaultIterationMax {
			t.Errorf("run: %v = %v: want %d iterations, have %d",
				r.Parameter, r.Value, config.DefaultIterationMax,
				r.Stats.Iterations)
		}
	}
}
