package parse

type parseOpts struct {
	requireFull   bool
	stripComments bool
}

type ParseOption func(*parseOpts)

// RequireFull makes any non-whitespace content after the top-level
// value a parse failure.
func RequireFull() ParseOption {
	return func(o *parseOpts) { o.requireFull = true }
}

// StripComments routes the input through the minifier before parsing,
// tolerating // and /* */ comments. The caller's buffer is not
// modified.
func StripComments() ParseOption {
	return func(o *parseOpts) { o.stripComments = true }
}
