package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/experiment"
	"github.com/samuelfneumann/bodyguard/experiment/checkpointer"
	"github.com/samuelfneumann/bodyguard/experiment/trackers"
	"github.com/samuelfneumann/bodyguard/world"
)

var (
	configFile = flag.String("config", "", "JSON run configuration, defaults if empty")
	sweep      = flag.Bool("sweep", false, "run the parameter sweep chain")
	ticks      = flag.Int("ticks", 0, "maximum ticks per world, 0 runs until the iteration max")
	dataDir    = flag.String("data", ".", "directory graph data is saved to")
	chartDir   = flag.String("charts", "", "directory HTML charts are rendered to, none if empty")
	xlsxFile   = flag.String("xlsx", "", "spreadsheet results are exported to, none if empty")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	c := config.Default()
	if *configFile != "" {
		var err error
		if c, err = config.Load(*configFile); err != nil {
			glog.Exitf("could not load config: %v", err)
		}
	}

	var err error
	if *sweep {
		err = runSweep(c)
	} else {
		err = run(c)
	}
	if err != nil {
		glog.Exit(err)
	}
}

// run runs a single world
func run(c config.Config) error {
	w, err := world.New(c)
	if err != nil {
		return err
	}

	checks := checkpointers(w)

	graph := trackers.NewGraph("Guard vs. Hostile",
		filepath.Join(*dataDir, "reward.gph"), 0.05, w.Guard().Name(),
		w.Hostile().Name())

	o := experiment.NewOnline(w, *ticks, nil, checks)
	o.Register(graph)
	o.ShowProgress(os.Stdout)

	if err := o.Run(); err != nil {
		return err
	}

	stats, err := o.Close()
	if err != nil {
		return err
	}
	fmt.Println(stats)

	if err := o.Save(); err != nil {
		return err
	}

	if *chartDir != "" {
		if err := experiment.Plot(filepath.Join(*chartDir, "reward.html"),
			graph); err != nil {
			return err
		}
	}

	if *xlsxFile != "" {
		result := experiment.Result{
			RunID:     uuid.New().String(),
			Parameter: "Run",
			Fitness:   w.Fitness(),
			Stats:     stats,
		}
		return experiment.Export(*xlsxFile, []experiment.Result{result})
	}
	return nil
}

// checkpointers returns the checkpointers of the canonical tables of w
func checkpointers(w *world.World) []checkpointer.Checkpointer {
	c := w.Config()
	if c.CheckpointEvery == 0 {
		return nil
	}

	enumerate := func(filename string) func() string {
		ext := filepath.Ext(filename)
		return checkpointer.FilenameEnumerator(0,
			strings.TrimSuffix(filename, ext)+"-", ext)
	}

	return []checkpointer.Checkpointer{
		checkpointer.NewNStep(c.CheckpointEvery, w.Hostile(),
			enumerate(c.HostileTableFile)),
		checkpointer.NewNStep(c.CheckpointEvery, w.Guard(),
			enumerate(c.GuardTableFile)),
	}
}

// runSweep runs the default parameter sweep chain
func runSweep(c config.Config) error {
	chain := experiment.DefaultChain()

	results, err := chain.Run(c, *ticks)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%v = %v: fitness %.4f\n", r.Parameter, r.Value, r.Fitness)
	}

	if err := chain.Save(*dataDir); err != nil {
		return err
	}

	if *chartDir != "" {
		if err := experiment.Plot(filepath.Join(*chartDir, "sweep.html"),
			chain.Graphs()...); err != nil {
			return err
		}
	}

	if *xlsxFile != "" {
		return experiment.Export(*xlsxFile, results)
	}
	return nil
}
