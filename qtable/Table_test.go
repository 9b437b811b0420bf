package qtable

import (
	"path/filepath"
	"testing"
)

func TestNewInvalidShape(t *testing.T) {
	tests := []struct {
		name        string
		state       []int
		action      []int
		shouldError bool
	}{
		{"valid", []int{3, 3}, []int{4}, false},
		{"no state", []int{}, []int{4}, false},
		{"no action", []int{3, 3}, []int{}, true},
		{"zero action", []int{3, 3}, []int{0}, true},
		{"zero state", []int{3, 0}, []int{4}, true},
		{"negative state", []int{-1}, []int{4}, true},
	}

	for _, test := range tests {
		_, err := New(test.state, test.action)
		if (err != nil) != test.shouldError {
			t.Errorf("%v: want error %v, have %v", test.name,
				test.shouldError, err)
		}
	}
}

func TestSetAt(t *testing.T) {
	table, err := New([]int{2, 3}, []int{4})
	if err != nil {
		t.Fatal(err)
	}

	table.Set(State{1, 2}, Action{3}, 5.5)
	table.Set(State{0, 0}, Action{0}, -1.0)

	if v := table.At(State{1, 2}, Action{3}); v != 5.5 {
		t.Errorf("at: want 5.5, have %v", v)
	}
	if v := table.At(State{0, 0}, Action{0}); v != -1.0 {
		t.Errorf("at: want -1, have %v", v)
	}
	if v := table.At(State{1, 1}, Action{3}); v != 0.0 {
		t.Errorf("at: untouched value should be 0, have %v", v)
	}

	values := table.Values(State{1, 2})
	want := []float64{0, 0, 0, 5.5}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values: want %v, have %v", want, values)
			break
		}
	}

	if max := table.Max(State{1, 2}); max != 5.5 {
		t.Errorf("max: want 5.5, have %v", max)
	}
}

func TestSetRowLayout(t *testing.T) {
	table, err := New([]int{2, 3}, []int{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	// Value v is written to the v-th element in row-major order
	v := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					table.Set(State{i, j}, Action{k, l}, v)
					v++
				}
			}
		}
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			values := table.Values(State{i, j})
			first := float64(4 * (3*i + j))
			for a, have := range values {
				if want := first + float64(a); have != want {
					t.Errorf("values %v: want %v at %d, have %v",
						State{i, j}, want, a, have)
				}
			}
			if max := table.Max(State{i, j}); max != first+3 {
				t.Errorf("max %v: want %v, have %v", State{i, j},
					first+3, max)
			}
		}
	}
}

func TestValuesIsCopy(t *testing.T) {
	table, _ := New([]int{2}, []int{2})
	values := table.Values(State{0})
	values[0] = 100

	if v := table.At(State{0}, Action{0}); v != 0 {
		t.Errorf("values: modifying returned slice changed table to %v", v)
	}
}

func TestMultiDimensionalActions(t *testing.T) {
	table, err := New([]int{2}, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if n := table.NumActions(); n != 6 {
		t.Fatalf("numActions: want 6, have %d", n)
	}

	table.Set(State{1}, Action{1, 2}, 7)
	values := table.Values(State{1})
	if values[5] != 7 {
		t.Errorf("values: action (1, 2) should be last, have %v", values)
	}

	a := table.ActionAt(5)
	if a[0] != 1 || a[1] != 2 {
		t.Errorf("actionAt: want [1 2], have %v", a)
	}
}

func TestCheck(t *testing.T) {
	table, _ := New([]int{5, 5}, []int{4})

	if err := table.Check(State{4, 4}, Action{3}); err != nil {
		t.Errorf("check: unexpected error %v", err)
	}
	if err := table.Check(State{5, 0}, Action{0}); err == nil {
		t.Error("check: expected out of range state error")
	}
	if err := table.Check(State{0}, Action{0}); err == nil {
		t.Error("check: expected arity error")
	}
	if err := table.Check(State{0, 0}, Action{4}); err == nil {
		t.Error("check: expected out of range action error")
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	table, _ := New([]int{2}, []int{2})

	defer func() {
		if r := recover(); r == nil {
			t.Error("at: expected panic on out of range state")
		}
	}()
	table.At(State{2}, Action{0})
}

func TestSaveLoad(t *testing.T) {
	table, _ := New([]int{3, 2}, []int{4})
	table.Set(State{2, 1}, Action{1}, 3.25)
	table.Set(State{0, 0}, Action{3}, -8)

	filename := filepath.Join(t.TempDir(), "table.bin")
	if err := table.Save(filename); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	if !loaded.SameShape([]int{3, 2}, []int{4}) {
		t.Fatalf("load: shape mismatch %v", loaded.Shape())
	}
	if v := loaded.At(State{2, 1}, Action{1}); v != 3.25 {
		t.Errorf("load: want 3.25, have %v", v)
	}
	if v := loaded.At(State{0, 0}, Action{3}); v != -8 {
		t.Errorf("load: want -8, have %v", v)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	if err == nil {
		t.Error("load: expected error for missing file")
	}
}

func TestGobDecodeFailureLeavesTable(t *testing.T) {
	table, _ := New([]int{2}, []int{2})
	table.Set(State{1}, Action{1}, 4)

	if err := table.GobDecode([]byte("not a table")); err == nil {
		t.Fatal("gobdecode: expected error")
	}
	if v := table.At(State{1}, Action{1}); v != 4 {
		t.Errorf("gobdecode: failed decode modified table, have %v", v)
	}
}
