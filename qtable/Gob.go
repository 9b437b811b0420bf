package qtable

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
)

// GobEncode implements the gob.GobEncoder interface
func (t *Table) GobEncode() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	err := enc.Encode(t.stateShape)
	if err != nil {
		return nil, fmt.Errorf("gobencode: could not encode state shape: %v",
			err)
	}

	err = enc.Encode(t.actionShape)
	if err != nil {
		return nil, fmt.Errorf("gobencode: could not encode action shape: %v",
			err)
	}

	err = enc.Encode(t.data)
	if err != nil {
		return nil, fmt.Errorf("gobencode: could not encode values: %v", err)
	}

	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface. If decoding
// fails, the table is left unchanged.
func (t *Table) GobDecode(in []byte) error {
	buf := bytes.NewReader(in)
	dec := gob.NewDecoder(buf)

	var stateShape, actionShape []int
	err := dec.Decode(&stateShape)
	if err != nil {
		return fmt.Errorf("gobdecode: could not decode state shape: %v", err)
	}

	err = dec.Decode(&actionShape)
	if err != nil {
		return fmt.Errorf("gobdecode: could not decode action shape: %v", err)
	}

	var data []float64
	err = dec.Decode(&data)
	if err != nil {
		return fmt.Errorf("gobdecode: could not decode values: %v", err)
	}

	decoded, err := newFromData(data, stateShape, actionShape)
	if err != nil {
		return fmt.Errorf("gobdecode: %v", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.values = decoded.values
	t.data = decoded.data
	t.stateShape = decoded.stateShape
	t.actionShape = decoded.actionShape
	t.strides = decoded.strides
	t.numActions = decoded.numActions

	return nil
}

// Save writes the table to filename
func (t *Table) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %w", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("save: could not encode table: %w", err)
	}
	return nil
}

// Load reads a table previously written with Save
func Load(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open file: %w", err)
	}
	defer file.Close()

	t := &Table{}
	dec := gob.NewDecoder(file)
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("load: could not decode table: %w", err)
	}
	return t, nil
}
