package reader

// CharSource is what component C1 must satisfy (spec.md §6). pkg/edn/source
// implements it; dispatch-engine tests substitute a mock built with
// go.uber.org/mock so failure paths (a scripted rune sequence and position
// that end in a reader error mid-token) can be exercised without a real
// io.Reader.
type CharSource interface {
	// Peek returns the next rune without consuming it, or ok=false at EOF.
	Peek() (rune, bool)
	// Read returns the next rune, advancing position, or ok=false at EOF.
	Read() (rune, bool)
	// Unread pushes r back so the next Read/Peek returns it.
	Unread(r rune) error
	// Position reports line, column, and file when the source is indexing.
	Position() (line, col int, file string, ok bool)
}
