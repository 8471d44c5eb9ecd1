package markerreport

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
)

// Entry describes the markers recorded for a single test.
type Entry struct {
	// NodeID uniquely identifies the test, e.g. "TestReserve/out_of_range".
	NodeID string `json:"node_id"`
	// FilePath is the source file the test lives in, when known.
	FilePath string `json:"file_path"`
	// Markers are the (filtered, deduplicated) marker names.
	Markers []string `json:"markers"`
}

// Report is an aggregation snapshot produced by Collector.Report.
type Report struct {
	PrefixFilter string         `json:"prefix_filter"`
	Entries      []Entry        `json:"entries"`
	Aggregated   map[string]int `json:"aggregated_report"`
}

// Collector gathers marker entries from concurrently running tests.
// The zero value is not usable; construct with New.
type Collector struct {
	// mu protects entries.
	mu sync.Mutex
	// entries is keyed by NodeID so repeated Record calls for the same test
	// merge instead of duplicating.
	entries map[string]*Entry

	prefix    string
	outputDir string
}

// Option configures a Collector during construction.
type Option func(*Collector)

// WithPrefix restricts the collector to markers starting with prefix;
// markers without the prefix are silently dropped.
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithOutputDir sets the directory Write places the report file in.
func WithOutputDir(dir string) Option {
	return func(c *Collector) {
		c.outputDir = dir
	}
}

// New creates an empty Collector.
func New(opts ...Option) *Collector {
	c := &Collector{entries: make(map[string]*Entry)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Record stores markers for the test identified by nodeID. Markers failing
// the prefix filter are dropped; duplicates are collapsed. Repeated calls
// for the same nodeID merge their marker sets. An entry is recorded even
// when every marker is filtered out, so unmarked tests still appear in the
// report.
func (c *Collector) Record(nodeID, filePath string, markers ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[nodeID]
	if !ok {
		e = &Entry{NodeID: nodeID, FilePath: filePath}
		c.entries[nodeID] = e
	}
	if e.FilePath == "" {
		e.FilePath = filePath
	}
	for _, m := range markers {
		if !strings.HasPrefix(m, c.prefix) {
			continue
		}
		if !slices.Contains(e.Markers, m) {
			e.Markers = append(e.Markers, m)
		}
	}
}

// Mark records markers for the currently running test, deriving the node ID
// from tb.Name() and the file path from the caller's source location.
func (c *Collector) Mark(tb testing.TB, markers ...string) {
	tb.Helper()

	filePath := ""
	if _, file, _, ok := runtime.Caller(1); ok {
		filePath = file
	}
	c.Record(tb.Name(), filePath, markers...)
}

// Report returns an aggregation snapshot: entries sorted by node ID and a
// map of marker name to occurrence count across all entries.
func (c *Collector) Report() Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	rep := Report{
		PrefixFilter: c.prefix,
		Entries:      make([]Entry, 0, len(c.entries)),
		Aggregated:   make(map[string]int),
	}
	for _, e := range c.entries {
		cp := Entry{NodeID: e.NodeID, FilePath: e.FilePath, Markers: append([]string(nil), e.Markers...)}
		sort.Strings(cp.Markers)
		rep.Entries = append(rep.Entries, cp)
	}
	sort.Slice(rep.Entries, func(i, j int) bool { return rep.Entries[i].NodeID < rep.Entries[j].NodeID })

	rep.aggregate()
	return rep
}

// aggregate recomputes Aggregated from Entries.
func (r *Report) aggregate() {
	if r.Aggregated == nil {
		r.Aggregated = make(map[string]int)
	}
	clear(r.Aggregated)
	for _, e := range r.Entries {
		for _, m := range e.Markers {
			r.Aggregated[m]++
		}
	}
}

// Summary writes the aggregated counts in the classic banner form, one
// "marker: count" line per marker, sorted by name.
func (r Report) Summary(w io.Writer) error {
	names := make([]string, 0, len(r.Aggregated))
	for name := range r.Aggregated {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n=========================\n")
	b.WriteString("MARKER REPORT (SUMMARY)\n")
	b.WriteString("=========================\n")
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %d\n", name, r.Aggregated[name])
	}
	b.WriteString("=========================\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write marker summary: %w", err)
	}
	return nil
}
