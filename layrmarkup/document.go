package layrmarkup

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer goldmark.Markdown

func init() {
	markdownRenderer = goldmark.New(
		goldmark.WithRendererOptions(
			goldmarkHtml.WithXHTML(),
		),
		goldmark.WithExtensions(
			extension.Table,
		),
	)
}

// Document is the markdown file a markup diagram is saved as.
func Document(title, code string) string {
	return fmt.Sprintf("# %s\n\n```mermaid\n%s\n```\n", title, code)
}

// HTML renders a markdown document. Raw HTML in doc is omitted.
func HTML(doc string) (string, error) {
	var output bytes.Buffer
	if err := markdownRenderer.Convert([]byte(doc), &output); err != nil {
		return "", err
	}
	return output.String(), nil
}
