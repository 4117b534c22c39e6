package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards against decoding snapshots written by an
// incompatible schema.
const snapshotVersion = 1

type snapshot struct {
	Version int      `msgpack:"version"`
	Data    *Dataset `msgpack:"data"`
}

// Compile writes a msgpack snapshot of the dataset. Loading a snapshot
// with LoadCompiled skips YAML parsing entirely, which matters for
// embedders that care about startup latency.
func (d *Dataset) Compile(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(snapshot{Version: snapshotVersion, Data: d}); err != nil {
		return fmt.Errorf("encoding dataset snapshot: %w", err)
	}
	return nil
}

// CompileToFile writes a msgpack snapshot of the dataset to path.
func (d *Dataset) CompileToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := d.Compile(f); err != nil {
		return err
	}
	return f.Close()
}

// LoadCompiled reads a dataset snapshot previously written by Compile.
func LoadCompiled(r io.Reader) (*Dataset, error) {
	var snap snapshot
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding dataset snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (want %d)", snap.Version, snapshotVersion)
	}
	if snap.Data == nil {
		return nil, fmt.Errorf("snapshot contains no dataset")
	}
	return snap.Data, nil
}

// LoadCompiledFile reads a dataset snapshot from path.
func LoadCompiledFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()
	return LoadCompiled(f)
}
