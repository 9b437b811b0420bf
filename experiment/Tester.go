package experiment

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/experiment/trackers"
	"github.com/samuelfneumann/bodyguard/world"
)

// Setter returns c with a single parameter set to v
type Setter func(c config.Config, v float64) config.Config

// SetSuffering sets the suffering of the Guard
func SetSuffering(c config.Config, v float64) config.Config {
	c.Suffering = v
	return c
}

// SetGhostExploration sets the exploration of all ghosts
func SetGhostExploration(c config.Config, v float64) config.Config {
	c.GhostExploration = v
	return c
}

// SetGhostCount sets the number of ghosts
func SetGhostCount(c config.Config, v float64) config.Config {
	c.GhostCount = int(math.Round(v))
	return c
}

// Result is the outcome of running a single world of a sweep
type Result struct {
	RunID     string
	Parameter string
	Value     float64
	Fitness   float64
	Stats     world.Stats
}

// Tester sweeps a single parameter of a configuration. For each value
// of the parameter, a new world is built from a modified copy of the
// base configuration and run until it is done. The fitness of each
// world, the cumulative average reward of its Guard, is graphed
// against the value of the parameter.
type Tester struct {
	Name  string
	set   Setter
	start float64
	step  float64
	end   float64
	graph *trackers.Graph
}

// NewTester returns a new Tester which sweeps the parameter set by set
// from start to end, inclusive, in increments of step. NewTester panics
// if step is not positive.
func NewTester(name string, set Setter, start, step, end float64) *Tester {
	if step <= 0 {
		panic(fmt.Sprintf("newTester: step must be positive (have %v)", step))
	}

	return &Tester{
		Name:  name,
		set:   set,
		start: start,
		step:  step,
		end:   end,
		graph: trackers.NewGraph("Performance by "+name, graphFile(name), 1,
			name),
	}
}

// graphFile returns the name of the file the graph of a Tester
// sweeping parameter name is saved to
func graphFile(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_")) + ".gph"
}

// Values returns the values of the parameter that are tested
func (t *Tester) Values() []float64 {
	if t.end < t.start {
		return nil
	}

	n := int(math.Floor((t.end-t.start)/t.step + 1e-9))
	values := make([]float64, n+1)
	for i := range values {
		values[i] = t.start + float64(i)*t.step
	}
	return values
}

// Run runs one world per parameter value. Each world is built from a
// copy of base which never loads or saves tables, and is run for at
// most maxTicks ticks if maxTicks is positive. Points graphed by a
// previous Run are discarded.
func (t *Tester) Run(base config.Config, maxTicks int) ([]Result, error) {
	t.graph.Reset()
	values := t.Values()
	results := make([]Result, 0, len(values))

	for _, v := range values {
		c := t.set(base, v)
		c.UseSavedData = false

		glog.Infof("Running with %v = %v...", t.Name, v)
		w, err := world.New(c)
		if err != nil {
			return results, fmt.Errorf("run: %v = %v: %w", t.Name, v, err)
		}

		if err := NewOnline(w, maxTicks, nil, nil).Run(); err != nil {
			return results, fmt.Errorf("run: %v = %v: %w", t.Name, v, err)
		}

		stats, err := w.Close()
		if err != nil {
			return results, fmt.Errorf("run: %v = %v: %w", t.Name, v, err)
		}

		fitness := w.Fitness()
		t.graph.AddPoint(0, v, fitness)
		results = append(results, Result{
			RunID:     uuid.New().String(),
			Parameter: t.Name,
			Value:     v,
			Fitness:   fitness,
			Stats:     stats,
		})
	}

	return results, nil
}

// Graph returns the graph of fitness against parameter value
func (t *Tester) Graph() *trackers.Graph {
	return t.graph
}

// Chain runs Testers one after another
type Chain []*Tester

// DefaultChain returns a Chain which sweeps the suffering of the Guard
// from 0 to 20, the exploration of ghosts from 0 to 1 and the number of
// ghosts from 0 to 200
func DefaultChain() Chain {
	return Chain{
		NewTester("Suffering", SetSuffering, 0, 2, 20),
		NewTester("Ghost Exploration", SetGhostExploration, 0, 0.1, 1),
		NewTester("Ghost Count", SetGhostCount, 0, 20, 200),
	}
}

// Run runs every Tester of the Chain on base, in order
func (c Chain) Run(base config.Config, maxTicks int) ([]Result, error) {
	var results []Result
	for _, t := range c {
		r, err := t.Run(base, maxTicks)
		results = append(results, r...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Save saves the graph of every Tester of the Chain to dir
func (c Chain) Save(dir string) error {
	for _, t := range c {
		if err := t.graph.Dump(filepath.Join(dir, graphFile(t.Name))); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// Graphs returns the graphs of every Tester of the Chain
func (c Chain) Graphs() []*trackers.Graph {
	graphs := make([]*trackers.Graph, len(c))
	for i, t := range c {
		graphs[i] = t.graph
	}
	return graphs
}
