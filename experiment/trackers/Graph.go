// Package trackers implements Trackers which record data for graphing
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// Data is a single series of points of a Graph
type Data struct {
	X []float64
	Y []float64
}

// Graph records one series of points per agent. Each series tracks
// the recent average reward of its agent against the number of
// decisions the agent has made.
//
// A Graph may sample only a fraction of the points it is given. With a
// sample efficiency of 0.05, only every 20th point of a series is
// kept.
type Graph struct {
	Title    string
	filename string
	series   []string // name of each series
	index    map[string]int

	listenInterval float64
	calls          []float64 // calls made to AddPoint per series
	times          []float64 // values added with AddValue per series
	data           []Data
}

// NewGraph returns a new Graph with one series for each name. The
// Graph is saved to filename, see Save. NewGraph panics if
// sampleEfficiency is not in (0, 1].
func NewGraph(title, filename string, sampleEfficiency float64,
	names ...string) *Graph {
	if sampleEfficiency <= 0 || sampleEfficiency > 1 {
		panic(fmt.Sprintf("newGraph: sample efficiency must be in (0, 1] "+
			"(have %v)", sampleEfficiency))
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	return &Graph{
		Title:          title,
		filename:       filename,
		series:         append([]string{}, names...),
		index:          index,
		listenInterval: 1 / sampleEfficiency,
		calls:          make([]float64, len(names)),
		times:          make([]float64, len(names)),
		data:           make([]Data, len(names)),
	}
}

// Track adds the recent average reward of a decision to the series of
// the deciding agent. Decisions of agents without a series are
// ignored.
func (g *Graph) Track(step ts.TimeStep) {
	if i, ok := g.index[step.Agent]; ok {
		g.AddValue(i, step.AverageReward)
	}
}

// AddValue adds y to series i at the next integer x
func (g *Graph) AddValue(i int, y float64) {
	g.times[i]++
	g.AddPoint(i, g.times[i], y)
}

// AddPoint adds the point (x, y) to series i, subject to sampling
func (g *Graph) AddPoint(i int, x, y float64) {
	g.calls[i]++
	if g.calls[i] < g.listenInterval {
		return
	}
	g.calls[i] -= g.listenInterval

	g.data[i].X = append(g.data[i].X, x)
	g.data[i].Y = append(g.data[i].Y, y)
}

// Reset removes every point of every series
func (g *Graph) Reset() {
	for i := range g.data {
		g.calls[i] = 0
		g.times[i] = 0
		g.data[i] = Data{}
	}
}

// Series returns the names of all series
func (g *Graph) Series() []string {
	return append([]string{}, g.series...)
}

// Data returns the points of series i
func (g *Graph) Data(i int) Data {
	return Data{
		X: append([]float64{}, g.data[i].X...),
		Y: append([]float64{}, g.data[i].Y...),
	}
}

// Filename returns the file series i is saved to, given the filename
// of the Graph. The index of the series is inserted before the first
// extension, so that series 1 of reward.gph is saved to reward_1.gph.
func Filename(filename string, i int) string {
	dir, base := filepath.Split(filename)
	name, ext, found := strings.Cut(base, ".")
	if !found {
		return fmt.Sprintf("%v%v_%d", dir, name, i)
	}
	return fmt.Sprintf("%v%v_%d.%v", dir, name, i, ext)
}

// Dump saves each series of the Graph to its own file, see Filename
func (g *Graph) Dump(filename string) error {
	for i := range g.data {
		name := Filename(filename, i)
		glog.Infof("Dumping graph data to %q...", name)

		if err := saveData(name, g.data[i]); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}
	return nil
}

// Save saves each series of the Graph to the filename it was created
// with
func (g *Graph) Save() error {
	return g.Dump(g.filename)
}

// LoadData loads a single series saved by a Graph
func LoadData(filename string) (Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Data{}, fmt.Errorf("loadData: could not open data file: %w",
			err)
	}
	defer file.Close()

	var data Data
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return Data{}, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}

func saveData(filename string, data Data) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open save file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("could not encode data: %w", err)
	}
	return nil
}
