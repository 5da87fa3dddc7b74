package lsp

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"statix/internal/irtext"
)

// SemanticToken is one entry of the delta-encoded token stream the LSP
// wire format expects; Line and StartChar are 0-based.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// keywords is every reserved word the textual IR grammar recognizes —
// shared between semantic highlighting (keyword token type) and
// completion (the only suggestions this server offers).
var keywords = []string{
	"func", "static", "special", "virtual", "interface",
	"recv", "return", "new", "int",
	"add", "sub", "mul", "div", "rem", "eq", "ne", "lt", "le", "gt", "ge",
}

func isKeyword(s string) bool {
	for _, kw := range keywords {
		if kw == s {
			return true
		}
	}
	return false
}

// collectSemanticTokens re-lexes the document with the same stateful
// lexer irtext's parser uses and classifies each token by surface
// shape alone (keyword table, digits, "->", identifier) rather than by
// walking a parsed AST — the textual IR grammar doesn't track
// per-field positions, so re-lexing is the only source of accurate
// column spans a token highlighter can draw from.
func collectSemanticTokens(src string) []SemanticToken {
	tokens, err := irtext.StatixLexer.Lex("", strings.NewReader(src))
	if err != nil {
		return nil
	}
	symbols := irtext.StatixLexer.Symbols()
	skip := map[lexer.TokenType]bool{
		symbols["Whitespace"]: true,
		symbols["Comment"]:    true,
	}

	var out []SemanticToken
	prevWasClassDot := false
	for {
		tok, err := tokens.Next()
		if err != nil || tok.EOF() {
			break
		}
		if skip[tok.Type] {
			continue
		}

		tokenType, ok := classify(tok, prevWasClassDot)
		if !ok {
			continue
		}
		out = append(out, SemanticToken{
			Line:      uint32(tok.Pos.Line - 1),
			StartChar: uint32(tok.Pos.Column - 1),
			Length:    uint32(len([]rune(tok.Value))),
			TokenType: tokenType,
		})
		prevWasClassDot = tok.Value == "."
	}
	return out
}

// classify maps one lexical token to an index into SemanticTokenTypes.
// prevWasDot distinguishes "Class.sig" — a dotted method reference —
// from a bare identifier, since the lexer has no notion of "field
// access" beyond the punctuation character itself.
func classify(tok lexer.Token, prevWasDot bool) (int, bool) {
	switch {
	case tok.Value == "->":
		return indexOf("operator"), true
	case tok.Value == "." || tok.Value == "," || tok.Value == "(" || tok.Value == ")" || tok.Value == "{" || tok.Value == "}" || tok.Value == ":":
		return 0, false
	case isDigits(tok.Value):
		return indexOf("number"), true
	case isKeyword(tok.Value):
		return indexOf("keyword"), true
	case prevWasDot:
		return indexOf("function"), true
	default:
		return indexOf("variable"), true
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if start == len(s) {
		return false
	}
	for _, r := range s[start:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func indexOf(tokenType string) int {
	for i, t := range SemanticTokenTypes {
		if t == tokenType {
			return i
		}
	}
	return -1
}
