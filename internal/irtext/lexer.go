package irtext

import "github.com/alecthomas/participle/v2/lexer"

// StatixLexer tokenizes the textual IR assembler surface: a small
// prefix-call dialect ("add(x,y)", "int(5)", "static Util.helper(...)")
// built as a demo/fixture format, not a language front-end — it exists
// so fixtures and the CLI's demo mode don't have to be hand-assembled
// via ir.Builder calls in Go.
var StatixLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `-?[0-9]+`, nil},
		{"Arrow", `->`, nil},
		{"Punct", `[{}()\[\],.:;=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
