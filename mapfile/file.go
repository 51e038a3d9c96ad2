package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/omap"
	"github.com/npillmayer/omap/btree"
)

// ErrNotRegular is returned when loading from a path which is not a regular
// file, e.g. a directory.
var ErrNotRegular = errors.New("mapfile: not a regular file")

// Save writes m to the file at path, replacing an existing file. It returns
// the number of bytes written.
func Save[K, V any](path string, m *omap.Map[K, V]) (int64, error) {
	if m == nil {
		return 0, omap.ErrIllegalArguments
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return 0, err
	}
	n, err := writeMap(tmp, m)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return n, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return n, err
	}
	tracer().Debugf("mapfile: saved %d entries to %s (%d bytes)", m.Len(), path, n)
	return n, nil
}

// writeMap writes m to f and closes f, even in case of errors.
func writeMap[K, V any](f *os.File, m *omap.Map[K, V]) (int64, error) {
	w := bufio.NewWriter(f)
	n, err := m.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Load reads a map from the file at path. cfg contributes the comparison
// function for keys, node sizes are taken from the file.
func Load[K, V any](path string, cfg btree.Config[K]) (*omap.Map[K, V], error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := omap.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	n, err := m.ReadFrom(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("mapfile: loading %s: %w", path, err)
	}
	tracer().Debugf("mapfile: loaded %d entries from %s (%d bytes)", m.Len(), path, n)
	return m, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	return os.Open(path) // just open for read access
}
