package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"statix/internal/lsp"
)

const sample = `
func static Main.main () void {
  x = int(1)
  y = int(2)
  z = add(x, y)
  static Util.helper (z) -> r
  return r
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.sx")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func TestTextDocumentDidOpenReportsNoDiagnosticsForCleanProgram(t *testing.T) {
	handler := lsp.NewHandler()
	path := writeSample(t)
	uri := "file://" + filepath.ToSlash(path)

	var published []protocol.Diagnostic
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			p, ok := params.(*protocol.PublishDiagnosticsParams)
			if ok {
				published = p.Diagnostics
			}
		},
	}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sample},
	})
	require.NoError(t, err)
	require.Empty(t, published, "every variable here is used, so no diagnostics should fire")
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	path := writeSample(t)
	uri := "file://" + filepath.ToSlash(path)

	ctx := &glsp.Context{Notify: func(string, any) {}}
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sample},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.Data)
	require.Zero(t, len(tokens.Data)%5, "semantic token data must be a multiple of 5")
}

func TestTextDocumentCompletionListsKeywords(t *testing.T) {
	handler := lsp.NewHandler()
	list, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)
	completion, ok := list.(*protocol.CompletionList)
	require.True(t, ok)
	require.NotEmpty(t, completion.Items)
}
