package localstack

import (
	"log/slog"

	"github.com/shahcoding/localstack/internal/portpool"
)

// SetLogger replaces the package-level logger used by localstack.
// This allows applications to integrate localstack logging with their own
// logging infrastructure. The provided logger should already have any
// desired attributes; localstack will not add additional attributes.
//
// If l is nil, the logger resets to the default: slog.Default() with
// "component" attribute, re-derived on the next internal Logger() call and
// then cached. Call SetLogger(nil) after slog.SetDefault() to pick up
// changes.
//
// Thread safety: SetLogger is safe to call concurrently with other
// localstack operations. Both the custom logger and the cached default are
// stored as atomic pointers, so loads and stores are data-race-free. For a
// strict happens-before guarantee, call SetLogger before starting
// goroutines that use the library (e.g., in TestMain before m.Run).
func SetLogger(l *slog.Logger) {
	portpool.SetLogger(l)
}
