package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFiling_WrapsAndKeepsLineBreaks(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.RenderFiling("EXCELENTÍSSIMO SENHOR DOUTOR JUIZ\nDA 1ª VARA CÍVEL\n\n**DOS FATOS**")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="peca-juridica">`))
	assert.Contains(t, out, "<br")
	assert.Contains(t, out, "<strong>DOS FATOS</strong>")
}

func TestRenderFiling_StripsScripts(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.RenderFiling("Pedido <script>alert(1)</script> deferido")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "deferido")
}
