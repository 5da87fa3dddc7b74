package lsp

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"statix/internal/deadcode"
	"statix/internal/errors"
	"statix/internal/intracp"
	"statix/internal/ir"
)

// convertParseError turns a textual IR syntax error into a diagnostic
// anchored at the offending token, using the same Position/Message
// pair irtext's own CLI-facing reportParseError prints to the terminal.
func convertParseError(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{wholeDocumentDiagnostic(err.Error(), "statix-parser")}
	}
	pos := pe.Position()
	line := uint32(0)
	if pos.Line > 0 {
		line = uint32(pos.Line - 1)
	}
	col := uint32(0)
	if pos.Column > 0 {
		col = uint32(pos.Column - 1)
	}
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("statix-parser"),
		Message:  pe.Message(),
	}}
}

// convertBuildError reports a failure lowering a parsed Program to IR
// (an unrecognized operator, most often) at the top of the document —
// the AST-to-IR pass doesn't carry per-node source positions.
func convertBuildError(err error) []protocol.Diagnostic {
	return []protocol.Diagnostic{wholeDocumentDiagnostic(err.Error(), "statix-build")}
}

func wholeDocumentDiagnostic(msg, source string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  msg,
	}
}

// analyzeDiagnostics runs IR validation and per-method dead-code
// detection over every function the document defines and reports the
// findings as document-level diagnostics. The textual IR surface
// carries no per-statement source position (statements only know
// their own method and index), so every finding is anchored at the
// top of the document and says where it actually lives — method and
// statement number — in the message text instead of the range.
func analyzeDiagnostics(mp *ir.MapProvider) []protocol.Diagnostic {
	refs := mp.All()
	var diagnostics []protocol.Diagnostic

	for _, e := range errors.Validate(mp, refs) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("statix-validate"),
			Message:  fmt.Sprintf("[%s] %s %s statement #%d", e.Code, e.Message, e.Method, e.Stmt),
		})
	}

	for _, ref := range refs {
		f, ok := mp.Method(ref)
		if !ok {
			continue
		}
		cp := intracp.Analyze(f)
		live := deadcode.Liveness(f)
		res := deadcode.Detect(f, cp, live)
		for _, s := range res.Dead {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    zeroRange(),
				Severity: ptrSeverity(protocol.DiagnosticSeverityWarning),
				Source:   ptrString("statix-deadcode"),
				Message:  fmt.Sprintf("%s statement #%d is dead", ref, s.Index()),
			})
		}
	}

	return diagnostics
}

func zeroRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
