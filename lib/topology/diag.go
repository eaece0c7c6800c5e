package topology

import (
	"fmt"
	"strings"
)

// Diagnostics is an ordered, append-only log of human-readable validation
// messages. Supplying one to Validate switches the call from fail-fast mode
// to accumulate mode; the log is cleared at the start of every call.
type Diagnostics struct {
	entries []string
}

func (d *Diagnostics) appendf(format string, args ...interface{}) {
	d.entries = append(d.entries, fmt.Sprintf(format, args...))
}

// Reset discards all recorded entries.
func (d *Diagnostics) Reset() {
	d.entries = d.entries[:0]
}

// Len returns the number of recorded entries.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the recorded messages in append order.
func (d *Diagnostics) Entries() []string {
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

// String joins all entries with newlines.
func (d *Diagnostics) String() string {
	return strings.Join(d.entries, "\n")
}
