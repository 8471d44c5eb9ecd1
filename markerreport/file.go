package markerreport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shahcoding/localstack/internal/portpool"
)

// WriteFile merges this collector's report into the JSON file at path,
// creating it (and its parent directory) if needed. The read-merge-write
// sequence runs under an exclusive file lock on path+".lock", so multiple
// test processes can safely funnel their markers into one report file.
//
// Merge semantics: entries are keyed by node ID; this collector's entry for
// a node replaces an existing one, entries from other processes are kept,
// and the aggregated counts are recomputed from the merged entry set.
func (c *Collector) WriteFile(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	fl, err := acquireFileLock(ctx, path+".lock")
	if err != nil {
		return err
	}
	defer releaseFileLock(portpool.Logger(), fl)

	merged, err := readReport(path)
	if err != nil {
		return err
	}

	ours := c.Report()
	merged.PrefixFilter = ours.PrefixFilter

	byNode := make(map[string]int, len(merged.Entries))
	for i, e := range merged.Entries {
		byNode[e.NodeID] = i
	}
	for _, e := range ours.Entries {
		if i, ok := byNode[e.NodeID]; ok {
			merged.Entries[i] = e
			continue
		}
		merged.Entries = append(merged.Entries, e)
	}
	merged.aggregate()

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encode marker report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write marker report %s: %w", path, err)
	}
	return nil
}

// defaultReportFile is the report filename used by Write.
const defaultReportFile = "marker-report.json"

// Write merges the report into marker-report.json under the collector's
// output directory (the working directory when none was configured).
func (c *Collector) Write(ctx context.Context) error {
	dir := c.outputDir
	if dir == "" {
		dir = "."
	}
	return c.WriteFile(ctx, filepath.Join(dir, defaultReportFile))
}

// ReadFile loads a previously written report file.
func ReadFile(path string) (Report, error) {
	rep, err := readReport(path)
	if err != nil {
		return Report{}, err
	}
	return *rep, nil
}

// readReport parses the report at path, returning an empty report when the
// file does not exist yet.
func readReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Report{Aggregated: make(map[string]int)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read marker report %s: %w", path, err)
	}

	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode marker report %s: %w", path, err)
	}
	if rep.Aggregated == nil {
		rep.Aggregated = make(map[string]int)
	}
	return &rep, nil
}
