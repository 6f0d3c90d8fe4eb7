package blog

import (
	"bytes"
	"fmt"
	"strings"

	"qcscargo/pkg/serrors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is a section heading of a post.
type Heading struct {
	Level int
	Text  string
}

// Image is an image embedded in a post.
type Image struct {
	Src string
	Alt string
}

// Content is a rendered post body together with the structure the SEO
// analyzer looks at.
type Content struct {
	// HTML is sanitised and safe to embed in a page.
	HTML string
	// Meta holds the YAML front matter, nil when there is none.
	Meta map[string]any

	Text           string
	FirstParagraph string
	Headings       []Heading
	Links          []string
	Images         []Image
}

// Renderer converts post markdown to HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a Renderer supporting GitHub flavoured markdown and
// YAML front matter.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				meta.Meta,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render renders source and extracts its front matter and structure.
func (r *Renderer) Render(source []byte) (*Content, error) {
	pctx := parser.NewContext()
	doc := r.md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	metadata, err := meta.TryGet(pctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid front matter")
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("could not render markdown: %w", err)
	}

	c := &Content{
		HTML: r.policy.Sanitize(buf.String()),
		Meta: metadata,
	}
	c.collect(doc, source)

	return c, nil
}

func (c *Content) collect(doc ast.Node, source []byte) {
	var plain strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				plain.WriteByte(' ')
			}

			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			plain.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.Write(node.Value)
		case *ast.Heading:
			c.Headings = append(c.Headings, Heading{Level: node.Level, Text: nodeText(node, source)})
		case *ast.Paragraph:
			if c.FirstParagraph == "" && node.Parent() == doc {
				c.FirstParagraph = nodeText(node, source)
			}
		case *ast.Link:
			c.Links = append(c.Links, string(node.Destination))
		case *ast.AutoLink:
			c.Links = append(c.Links, string(node.URL(source)))
		case *ast.Image:
			c.Images = append(c.Images, Image{Src: string(node.Destination), Alt: nodeText(node, source)})
		}

		return ast.WalkContinue, nil
	})
	c.Text = strings.Join(strings.Fields(plain.String()), " ")
}

// nodeText concatenates the text below n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}
