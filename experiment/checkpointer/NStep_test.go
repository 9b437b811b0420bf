package checkpointer

import (
	"errors"
	"testing"

	ts "github.com/samuelfneumann/bodyguard/timestep"
)

type dumper struct {
	files []string
	err   error
}

func (d *dumper) Dump(filename string) error {
	d.files = append(d.files, filename)
	return d.err
}

func TestNStep(t *testing.T) {
	d := &dumper{}
	c := NewNStep(3, d, FilenameEnumerator(0, "guard", ".q"))

	for i := 1; i <= 10; i++ {
		step := ts.New(ts.Mid, "Guard", nil, nil, nil, 0, 0, i)
		if err := c.Checkpoint(step); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"guard1.q", "guard2.q", "guard3.q"}
	if len(d.files) != len(want) {
		t.Fatalf("checkpoint: want files %v, have %v", want, d.files)
	}
	for i := range want {
		if d.files[i] != want[i] {
			t.Errorf("checkpoint: want file %v, have %v", want[i], d.files[i])
		}
	}
}

func TestNStepError(t *testing.T) {
	d := &dumper{err: errors.New("disk full")}
	c := NewNStep(1, d, Filename("guard.q"))

	if err := c.Checkpoint(ts.New(ts.First, "Guard", nil, nil, nil, 0, 0,
		1)); err == nil {
		t.Error("checkpoint: expected error")
	}
}
