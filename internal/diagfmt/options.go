package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI-colored severities and carets.
	Color bool
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}
