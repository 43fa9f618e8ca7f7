package ranges

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Shared table cache. The table is loaded at most once per process; the
// outcome (table or load error) is cached so every caller observes the same
// result. A failed load is not retried — fix the data source and restart.
var (
	mu        sync.Mutex
	shared    *Table
	sharedErr error
	loaded    bool
)

// Tried in order when RANGES_CSV is unset, mirroring wherever the binary
// might run from (repo root, server dir, container).
var candidates = []string{
	"ranges/preflop_ranges.csv",
	"server/ranges/preflop_ranges.csv",
	"../ranges/preflop_ranges.csv",
	"/app/ranges/preflop_ranges.csv",
}

// FindCSV resolves the strategy table path: RANGES_CSV if set, otherwise
// the first conventional location that exists.
func FindCSV() (string, error) {
	if p := os.Getenv("RANGES_CSV"); p != "" {
		return p, nil
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no ranges CSV found (set RANGES_CSV or provide %s)", candidates[0])
}

// Load parses the table from a file path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Shared returns the process-wide table, loading it on first use. Safe for
// concurrent callers: the lock guarantees exactly one load and no partially
// populated table is ever visible.
func Shared() (*Table, error) {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		loaded = true
		path, err := FindCSV()
		if err != nil {
			sharedErr = &LoadError{Source: "ranges CSV", Err: err}
		} else {
			shared, sharedErr = Load(path)
		}
	}
	return shared, sharedErr
}

// Reset drops the cached table so the next Shared call reloads. Test
// isolation only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	shared, sharedErr, loaded = nil, nil, false
}
