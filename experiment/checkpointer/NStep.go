package checkpointer

import (
	"fmt"

	"github.com/golang/glog"

	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// nStep implements checkpointing every N decisions
type nStep struct {
	interval int
	object   Dumper // Object to save

	// filename returns the string filename of the file to save the object
	// in.
	//
	// If each checkpoint should be saved in a separate file with each
	// file having an incremented number as a suffix (e.g. guard1.q,
	// guard2.q, ..., guardK.q), then simply use the static function
	// FilenameEnumerator, which will return a function that will
	// enumerate filenames. To overwrite a single file on every
	// checkpoint, use Filename.
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n decisions.
// NewNStep panics if n is not positive.
func NewNStep(n int, object Dumper, filename func() string) Checkpointer {
	if n <= 0 {
		panic(fmt.Sprintf("newNStep: interval must be positive (have %d)",
			n))
	}

	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Dump() method if the TimeStep's number is a multiple of the
// interval
func (n *nStep) Checkpoint(t ts.TimeStep) error {
	if t.Number%n.interval != 0 {
		return nil
	}

	glog.V(1).Infof("Checkpoint at decision %d", t.Number)
	if err := n.object.Dump(n.filename()); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}
