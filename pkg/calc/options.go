package calc

// Options configures per-calculation behavior.
type Options struct {
	// IncludeAnaesthetics controls whether the anaesthetic-gas group is
	// computed. When false the anaesthetic lookups are skipped entirely:
	// the group contributes zero and a table with no anaesthetic rows
	// still calculates cleanly.
	IncludeAnaesthetics bool
}

// DefaultOptions returns the conservative defaults: anaesthetic gases are
// opt-in, so a caller that never asks for them never depends on those
// factors being present.
func DefaultOptions() Options {
	return Options{IncludeAnaesthetics: false}
}
