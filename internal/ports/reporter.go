package ports

// Reporter renders human-facing progress lines. It is separate from Logger:
// Reporter output is the tool's user interface, Logger output is diagnostics.
type Reporter interface {
	// Section announces the start of a phase.
	Section(title string)
	// Success reports a completed operation.
	Success(msg string)
	// Skip reports an operation that had nothing to do.
	Skip(msg string)
	// Failure reports a failed operation followed by its diagnostic.
	Failure(msg string, err error)
	// Summary prints a closing block of lines under a title.
	Summary(title string, lines ...string)
}
