package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderObservacao_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderObservacao(""))
}

func TestRenderObservacao_PlainText(t *testing.T) {
	result := RenderObservacao("token expira todo mês")
	assert.Contains(t, result, "token expira todo mês")
}

func TestRenderObservacao_Bold(t *testing.T) {
	result := RenderObservacao("**não compartilhar**")
	assert.Contains(t, result, "<strong>não compartilhar</strong>")
}

func TestRenderObservacao_Link(t *testing.T) {
	result := RenderObservacao("[portal](https://example.com)")
	assert.Contains(t, result, `<a href="https://example.com"`)
	assert.Contains(t, result, "portal</a>")
}

func TestRenderObservacao_SanitizesScript(t *testing.T) {
	result := RenderObservacao(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderObservacao_SanitizesEventHandler(t *testing.T) {
	result := RenderObservacao(`<img src=x onerror="alert(1)">`)
	assert.NotContains(t, result, "onerror")
}

func TestRenderObservacao_GFMStrikethrough(t *testing.T) {
	result := RenderObservacao("~~senha antiga~~")
	assert.Contains(t, result, "<del>senha antiga</del>")
}
