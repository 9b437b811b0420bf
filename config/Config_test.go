package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if c.Guard.Gamma != 0.2 || c.Guard.Exploration != 0 {
		t.Errorf("default guard: have %+v", c.Guard)
	}
	if c.Hostile.Gamma != 0.8 || c.Hostile.Exploration != 0.4 {
		t.Errorf("default hostile: have %+v", c.Hostile)
	}
	if c.IterationMax <= 0 {
		t.Errorf("default iteration max: want a finite cap, have %v",
			c.IterationMax)
	}
	if c.SufferingOffset() != 0 {
		t.Errorf("default suffering offset: want 0, have %v",
			c.SufferingOffset())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.GridW = 0 }},
		{"negative interval", func(c *Config) { c.DecisionInterval = -1 }},
		{"bad vip mode", func(c *Config) { c.VIPMode = "Mouse" }},
		{"guard gamma", func(c *Config) { c.Guard.Gamma = 2 }},
		{"hostile exploration", func(c *Config) { c.Hostile.Exploration = -1 }},
		{"negative ghosts", func(c *Config) { c.GhostCount = -3 }},
		{"ghost exploration", func(c *Config) { c.GhostExploration = 1.1 }},
		{"zero tick", func(c *Config) { c.TickDelta = 0 }},
		{"unnamed table", func(c *Config) {
			c.UseSavedData = true
			c.GuardTableFile = ""
		}},
	}

	for _, test := range tests {
		c := Default()
		test.modify(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%v: expected error", test.name)
		}
	}
}

func TestLoadPartial(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "run.json")
	data := []byte(`{"GridW": 5, "GhostCount": 20, "VIPMode": "Auto",
		"Guard": {"Gamma": 0.5, "Exploration": 0.1, "FollowReward": true}}`)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	if c.GridW != 5 || c.GhostCount != 20 || c.VIPMode != Auto {
		t.Errorf("load: fields not decoded: %+v", c)
	}
	if c.Guard.Gamma != 0.5 {
		t.Errorf("load: guard gamma want 0.5, have %v", c.Guard.Gamma)
	}
	if c.GridH != DefaultGridH || c.Hostile.Gamma != 0.8 {
		t.Errorf("load: missing fields should keep defaults: %+v", c)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("load: expected error for missing file")
	}

	filename := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(filename, []byte(`{"GridW": -1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filename); err == nil {
		t.Error("load: expected validation error")
	}
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "run.json")
	c := Default()
	c.Suffering = 30
	c.Seed = 99

	if err := c.Save(filename); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != c {
		t.Errorf("saveLoad: want %+v, have %+v", c, loaded)
	}
}

func TestGhostPreset(t *testing.T) {
	c := Default()
	c.GhostCountInterval = 20
	if n := c.GhostPreset(3); n != 60 {
		t.Errorf("ghostPreset: want 60, have %v", n)
	}
}
