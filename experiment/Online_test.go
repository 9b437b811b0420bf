package experiment

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/experiment/checkpointer"
	"github.com/samuelfneumann/bodyguard/experiment/tracker"
	"github.com/samuelfneumann/bodyguard/experiment/trackers"
	"github.com/samuelfneumann/bodyguard/world"
)

func smallConfig() config.Config {
	c := config.Default()
	c.GridW, c.GridH = 5, 5
	c.DecisionInterval = 1
	c.TickDelta = 1
	c.IterationMax = 20
	c.Seed = 7
	return c
}

func TestOnlineRun(t *testing.T) {
	dir := t.TempDir()
	c := smallConfig()
	c.GhostCount = 2

	w, err := world.New(c)
	if err != nil {
		t.Fatal(err)
	}

	rewards := tracker.NewReward(filepath.Join(dir, "guard.bin"))
	graph := trackers.NewGraph("Guard vs. Hostile",
		filepath.Join(dir, "reward.gph"), 1, "Guard", "Hostile")

	o := NewOnline(w, 0, []tracker.Tracker{tracker.Register(rewards,
		"Guard")}, nil)
	o.Register(graph)

	var out bytes.Buffer
	o.ShowProgress(&out)

	if err := o.Run(); err != nil {
		t.Fatal(err)
	}

	if n := len(rewards.Data()); n != 20 {
		t.Errorf("run: want 20 tracked guard rewards, have %d", n)
	}
	if n := len(graph.Data(0).X); n != 20 {
		t.Errorf("run: want 20 guard graph points, have %d", n)
	}
	if n := len(graph.Data(1).X); n != 20 {
		t.Errorf("run: want 20 hostile graph points, have %d", n)
	}
	if out.Len() == 0 {
		t.Error("run: progress bar not displayed")
	}

	if err := o.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := tracker.LoadData(filepath.Join(dir, "guard.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 20 {
		t.Errorf("loadData: want 20 rewards, have %d", len(data))
	}
	for i := range data {
		if data[i] != rewards.Data()[i] {
			t.Fatalf("loadData: reward %d: want %v, have %v", i,
				rewards.Data()[i], data[i])
		}
	}

	series, err := trackers.LoadData(filepath.Join(dir, "reward_1.gph"))
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Y) != 20 {
		t.Errorf("loadData: want 20 hostile points, have %d", len(series.Y))
	}

	stats, err := o.Close()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Iterations != 20 {
		t.Errorf("close: want 20 iterations, have %d", stats.Iterations)
	}
}

func TestOnlineCheckpoints(t *testing.T) {
	dir := t.TempDir()
	w, err := world.New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	check := checkpointer.NewNStep(5, w.Guard(),
		checkpointer.FilenameEnumerator(0, filepath.Join(dir, "guard"), ".q"))
	o := NewOnline(w, 0, nil, []checkpointer.Checkpointer{check})
	if err := o.Run(); err != nil {
		t.Fatal(err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "guard*.q"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 4 {
		t.Errorf("checkpoint: want 4 checkpoints, have %v", matches)
	}
}

func TestOnlineNeverEnds(t *testing.T) {
	c := smallConfig()
	c.IterationMax = 0
	w, err := world.New(c)
	if err != nil {
		t.Fatal(err)
	}

	if err := NewOnline(w, 0, nil, nil).Run(); err == nil {
		t.Error("run: expected error for an experiment without an end")
	}

	o := NewOnline(w, 15, nil, nil)
	if err := o.Run(); err != nil {
		t.Fatal(err)
	}
	if n := w.Guard().IterationCount(); n != 15 {
		t.Errorf("run: want 15 guard decisions, have %d", n)
	}
}

func TestCreateExp(t *testing.T) {
	c := Config{Type: OnlineExp, World: smallConfig()}
	e, err := c.CreateExp(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	c.Type = "Offline"
	if _, err := c.CreateExp(nil, nil); err == nil {
		t.Error("createExp: expected error for unknown type")
	}
}

func TestOnlineDefaultConfig(t *testing.T) {
	w, err := world.New(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	if err := NewOnline(w, 0, nil, nil).Run(); err != nil {
		t.Fatal(err)
	}
	if n := w.Guard().IterationCount(); n != config.DefaultIterationMax {
		t.Errorf("run: want %d guard decisions, have %d",
			config.DefaultIterationMax, n)
	}
}
