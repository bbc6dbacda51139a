package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// Names of the available Markdown engines.
const (
	Blackfriday = "blackfriday"
	Goldmark    = "goldmark"
)

// NewRenderer returns the Markdown engine with the given name.
// An empty name selects blackfriday.
func NewRenderer(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", Blackfriday:
		return blackfridayRenderer{}, nil
	case Goldmark:
		return newGoldmarkRenderer(), nil
	}
	return nil, fmt.Errorf("NewRenderer: unknown Markdown renderer %q", name)
}

type blackfridayRenderer struct{}

func (blackfridayRenderer) Render(src []byte) ([]byte, error) {
	return blackfriday.Run(src, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)), nil
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

func newGoldmarkRenderer() goldmarkRenderer {
	return goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
			// Articles embed raw HTML, so it must pass through.
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

func (r goldmarkRenderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("Render: %w", err)
	}
	return buf.Bytes(), nil
}
