package tracker

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/bodyguard/timestep"
)

func TestRegister(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "guard.bin")
	r := NewReward(filename)
	registered := Register(r, "Guard")

	registered.Track(ts.New(ts.First, "Guard", nil, nil, nil, -1, -1, 1))
	registered.Track(ts.New(ts.First, "Hostile", nil, nil, nil, 5, 5, 1))
	registered.Track(ts.New(ts.Mid, "Guard", nil, nil, nil, -2, -1.5, 2))

	if err := registered.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 || data[0] != -1 || data[1] != -2 {
		t.Errorf("register: want [-1 -2], have %v", data)
	}
}
