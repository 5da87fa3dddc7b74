package errors

// Code identifies the kind of AnalysisError raised. The CORE operates on
// already-built IR, not source text, so its error space is much smaller
// than a front-end's: a handful of "the IR itself doesn't make sense"
// conditions rather than hundreds of syntax/semantic diagnostics.
type Code string

const (
	// ErrMalformedIR marks an IR shape the analyses can't make sense of:
	// a nil field that must be set for the statement's kind (an
	// assignment's LHS, a non-static invoke's receiver, a field or array
	// access's base, an array index, an if's condition) — invariant
	// breaks a Provider should never hand the analyses but that aren't
	// worth a panic.
	ErrMalformedIR Code = "A0001"

	// ErrUnknownOperator marks a BinOp value outside ir's declared
	// operator set, the set intracp's evaluator knows how to fold.
	ErrUnknownOperator Code = "A0002"
)

var descriptions = map[Code]string{
	ErrMalformedIR:     "malformed IR",
	ErrUnknownOperator: "unknown operator variant",
}

// Description returns the human-readable name for a Code, or "" if c is
// not one of the codes this package defines.
func Description(c Code) string {
	return descriptions[c]
}
