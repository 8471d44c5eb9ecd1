package netprobe

import (
	"net"
	"strconv"
	"testing"
)

func TestFreeTCPPort(t *testing.T) {
	t.Parallel()

	port, err := FreeTCPPort()
	if err != nil {
		t.Fatalf("FreeTCPPort() error: %v", err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("FreeTCPPort() = %d, want a valid port number", port)
	}

	// The port should be immediately bindable.
	l, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("listen on fresh free port %d: %v", port, err)
	}
	_ = l.Close()
}

func TestFreeTCPPort_Blocklist(t *testing.T) {
	t.Parallel()

	first, err := FreeTCPPort()
	if err != nil {
		t.Fatalf("FreeTCPPort() error: %v", err)
	}

	second, err := FreeTCPPort(first)
	if err != nil {
		t.Fatalf("FreeTCPPort(blocklist) error: %v", err)
	}
	if second == first {
		t.Errorf("FreeTCPPort returned blocklisted port %d", first)
	}
}

func TestFreeUDPPort(t *testing.T) {
	t.Parallel()

	port, err := FreeUDPPort()
	if err != nil {
		t.Fatalf("FreeUDPPort() error: %v", err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("FreeUDPPort() = %d, want a valid port number", port)
	}

	pc, err := net.ListenPacket("udp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("listen on fresh free port %d: %v", port, err)
	}
	_ = pc.Close()
}

func TestFreeUDPPort_Blocklist(t *testing.T) {
	t.Parallel()

	first, err := FreeUDPPort()
	if err != nil {
		t.Fatalf("FreeUDPPort() error: %v", err)
	}

	second, err := FreeUDPPort(first)
	if err != nil {
		t.Fatalf("FreeUDPPort(blocklist) error: %v", err)
	}
	if second == first {
		t.Errorf("FreeUDPPort returned blocklisted port %d", first)
	}
}
