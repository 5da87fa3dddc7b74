package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"statix/internal/ir"
)

// Level is the severity of an AnalysisError.
type Level string

const (
	Error Level = "error"
	Note  Level = "note"
)

// AnalysisError is a structured error the CORE raises against its IR.
// There is no source text or *ast.Position in this pipeline — a Func and
// a statement index inside it are all the location any analysis ever
// has, so that's what stands in for a source span here.
type AnalysisError struct {
	Level   Level
	Code    Code
	Message string
	Method  ir.MethodRef
	Stmt    int // index within Method.Stmts; -1 if not statement-specific
	Notes   []string
}

func (e *AnalysisError) Error() string {
	if e.Stmt < 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Method, e.Message)
	}
	return fmt.Sprintf("[%s] %s#%d: %s", e.Code, e.Method, e.Stmt, e.Message)
}

// Reporter formats AnalysisErrors with the same Rust-style caret-era
// coloring the CLI's parse-error path uses, minus the source-line
// context a source-text front-end would show.
type Reporter struct{}

func NewReporter() *Reporter { return &Reporter{} }

// Format renders err for terminal output.
func (r *Reporter) Format(err *AnalysisError) string {
	var b strings.Builder

	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if err.Level == Note {
		levelColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	}
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))

	loc := err.Method.String()
	if err.Stmt >= 0 {
		loc = fmt.Sprintf("%s statement #%d", loc, err.Stmt)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), loc))

	for _, n := range err.Notes {
		b.WriteString(fmt.Sprintf("  %s %s\n", bold("note:"), n))
	}

	if desc := Description(err.Code); desc != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", dim("="), desc))
	}
	return b.String()
}

// Report prints the formatted error.
func (r *Reporter) Report(err *AnalysisError) {
	fmt.Print(r.Format(err))
}
