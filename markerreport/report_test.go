package markerreport

import (
	"strings"
	"testing"
)

func TestCollector_RecordAndReport(t *testing.T) {
	t.Parallel()

	c := New()
	c.Record("TestA", "a_test.go", "aws_validated", "slow")
	c.Record("TestB", "b_test.go", "aws_validated")
	c.Record("TestC", "c_test.go")

	rep := c.Report()

	if len(rep.Entries) != 3 {
		t.Fatalf("Report() has %d entries, want 3", len(rep.Entries))
	}
	// Entries are sorted by node ID.
	for i, want := range []string{"TestA", "TestB", "TestC"} {
		if rep.Entries[i].NodeID != want {
			t.Errorf("Entries[%d].NodeID = %q, want %q", i, rep.Entries[i].NodeID, want)
		}
	}

	if got := rep.Aggregated["aws_validated"]; got != 2 {
		t.Errorf("Aggregated[aws_validated] = %d, want 2", got)
	}
	if got := rep.Aggregated["slow"]; got != 1 {
		t.Errorf("Aggregated[slow] = %d, want 1", got)
	}

	// An unmarked test still appears as an entry.
	if markers := rep.Entries[2].Markers; len(markers) != 0 {
		t.Errorf("unmarked entry has markers %v, want none", markers)
	}
}

func TestCollector_PrefixFilter(t *testing.T) {
	t.Parallel()

	c := New(WithPrefix("aws_"))
	c.Record("TestA", "a_test.go", "aws_validated", "slow", "aws_manual")

	rep := c.Report()
	if rep.PrefixFilter != "aws_" {
		t.Errorf("PrefixFilter = %q, want %q", rep.PrefixFilter, "aws_")
	}

	want := []string{"aws_manual", "aws_validated"}
	got := rep.Entries[0].Markers
	if len(got) != len(want) {
		t.Fatalf("filtered markers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Markers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if _, ok := rep.Aggregated["slow"]; ok {
		t.Error("marker without prefix leaked into the aggregation")
	}
}

func TestCollector_RepeatedRecordMerges(t *testing.T) {
	t.Parallel()

	c := New()
	c.Record("TestA", "a_test.go", "slow")
	c.Record("TestA", "a_test.go", "slow", "flaky")

	rep := c.Report()
	if len(rep.Entries) != 1 {
		t.Fatalf("Report() has %d entries, want 1 (merged)", len(rep.Entries))
	}
	if got := rep.Aggregated["slow"]; got != 1 {
		t.Errorf("Aggregated[slow] = %d, want 1 (deduplicated)", got)
	}
	if got := rep.Aggregated["flaky"]; got != 1 {
		t.Errorf("Aggregated[flaky] = %d, want 1", got)
	}
}

func TestCollector_Mark(t *testing.T) {
	t.Parallel()

	c := New()
	c.Mark(t, "smoke")

	rep := c.Report()
	if len(rep.Entries) != 1 {
		t.Fatalf("Report() has %d entries, want 1", len(rep.Entries))
	}
	e := rep.Entries[0]
	if e.NodeID != t.Name() {
		t.Errorf("NodeID = %q, want %q", e.NodeID, t.Name())
	}
	if !strings.HasSuffix(e.FilePath, "report_test.go") {
		t.Errorf("FilePath = %q, want the calling test file", e.FilePath)
	}
}

func TestReport_Summary(t *testing.T) {
	t.Parallel()

	c := New()
	c.Record("TestA", "a_test.go", "aws_validated", "slow")
	c.Record("TestB", "b_test.go", "aws_validated")

	var sb strings.Builder
	if err := c.Report().Summary(&sb); err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"MARKER REPORT (SUMMARY)", "aws_validated: 2", "slow: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}

	// Sorted by marker name.
	if strings.Index(out, "aws_validated") > strings.Index(out, "slow") {
		t.Error("summary lines are not sorted by marker name")
	}
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	t.Parallel()

	c := New()
	const goroutines = 50

	done := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer func() { done <- struct{}{} }()
			if i%2 == 0 {
				c.Record("TestEven", "even_test.go", "even")
			} else {
				c.Record("TestOdd", "odd_test.go", "odd")
			}
		}()
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}
	close(done)

	rep := c.Report()
	if len(rep.Entries) != 2 {
		t.Fatalf("Report() has %d entries, want 2", len(rep.Entries))
	}
	if rep.Aggregated["even"] != 1 || rep.Aggregated["odd"] != 1 {
		t.Errorf("Aggregated = %v, want even and odd deduplicated to 1 each", rep.Aggregated)
	}
}
