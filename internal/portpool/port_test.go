package portpool

import "testing"

func TestWrapPort(t *testing.T) {
	t.Parallel()

	p := WrapPort(4566)
	if p.Number != 4566 {
		t.Errorf("WrapPort(4566).Number = %d, want 4566", p.Number)
	}
	if p.Proto != TCP {
		t.Errorf("WrapPort(4566).Proto = %q, want tcp", p.Proto)
	}
}

func TestPort_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		port Port
		want string
	}{
		"tcp": {port: Port{Number: 4566, Proto: TCP}, want: "4566/tcp"},
		"udp": {port: Port{Number: 53, Proto: UDP}, want: "53/udp"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.port.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPort_Equality(t *testing.T) {
	t.Parallel()

	// Same number, different protocol: distinct ports (and distinct map keys).
	tcp := Port{Number: 4566, Proto: TCP}
	udp := Port{Number: 4566, Proto: UDP}
	if tcp == udp {
		t.Error("TCP and UDP ports with the same number compared equal")
	}

	seen := map[Port]bool{tcp: true, udp: true}
	if len(seen) != 2 {
		t.Errorf("map collapsed distinct ports: len = %d, want 2", len(seen))
	}
}

func TestProtocol_IsValid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		proto Protocol
		want  bool
	}{
		"tcp":     {proto: TCP, want: true},
		"udp":     {proto: UDP, want: true},
		"empty":   {proto: Protocol(""), want: false},
		"unknown": {proto: Protocol("sctp"), want: false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.proto.IsValid(); got != tc.want {
				t.Errorf("IsValid() = %v, want %v", got, tc.want)
			}
		})
	}
}
