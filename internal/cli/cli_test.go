package cli

import (
	"bytes"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// execute runs cmd with args and returns its stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testContext(t))
	return out.String(), err
}

func TestFreePortCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewFreePortCmd())
	if err != nil {
		t.Fatalf("free-port error: %v", err)
	}

	port, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("free-port printed %q, want a number", out)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("free-port printed %d, want a valid port number", port)
	}
}

func TestProbeCmd(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close() //nolint:errcheck // test cleanup
	port := ln.Addr().(*net.TCPAddr).Port

	out, err := execute(t, NewProbeCmd(), "127.0.0.1", strconv.Itoa(port))
	if err != nil {
		t.Fatalf("probe against a live listener: %v", err)
	}
	if !strings.Contains(out, "is open") {
		t.Errorf("probe output = %q, want an open confirmation", out)
	}
}

func TestProbeCmd_Closed(t *testing.T) {
	t.Parallel()

	// Grab a port and close it so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := ln.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, NewProbeCmd(),
		"127.0.0.1", strconv.Itoa(port), "--timeout", "200ms"); err == nil {
		t.Error("probe against a closed port should fail")
	}
}

func TestProbeCmd_InvalidPort(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, NewProbeCmd(), "127.0.0.1", "nope"); err == nil {
		t.Error("probe with a non-numeric port should fail")
	}
}

func TestWaitCmd_AlreadyOpen(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close() //nolint:errcheck // test cleanup
	port := ln.Addr().(*net.TCPAddr).Port

	out, err := execute(t, NewWaitCmd(),
		"127.0.0.1", strconv.Itoa(port), "--interval", "50ms", "--timeout", "2s")
	if err != nil {
		t.Fatalf("wait for an open port: %v", err)
	}
	if !strings.Contains(out, "is open") {
		t.Errorf("wait output = %q, want an open confirmation", out)
	}
}

func TestWaitCmd_Closed(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := ln.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, NewWaitCmd(),
		"127.0.0.1", strconv.Itoa(port), "--closed",
		"--interval", "50ms", "--timeout", "2s"); err != nil {
		t.Fatalf("wait --closed on a closed port: %v", err)
	}
}

func TestReserveCmd(t *testing.T) {
	t.Parallel()

	const base = 40800
	out, err := execute(t, NewReserveCmd(),
		strconv.Itoa(base), strconv.Itoa(base+10), "--bind", "127.0.0.1")
	if err != nil {
		t.Fatalf("reserve error: %v", err)
	}

	port, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("reserve printed %q, want a number", out)
	}
	if port < base || port >= base+10 {
		t.Errorf("reserve printed %d, want a port in [%d, %d)", port, base, base+10)
	}
}

func TestReserveCmd_ExactPort(t *testing.T) {
	t.Parallel()

	const port = 40820
	out, err := execute(t, NewReserveCmd(),
		strconv.Itoa(port), strconv.Itoa(port+1),
		"--port", strconv.Itoa(port), "--bind", "127.0.0.1")
	if err != nil {
		t.Fatalf("reserve --port error: %v", err)
	}
	if got := strings.TrimSpace(out); got != strconv.Itoa(port) {
		t.Errorf("reserve printed %q, want %d", got, port)
	}
}

func TestReserveCmd_InvalidRange(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, NewReserveCmd(), "200", "100"); err == nil {
		t.Error("reserve with an inverted range should fail")
	}
}
