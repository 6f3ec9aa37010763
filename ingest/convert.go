package ingest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// noiseTags are stripped from HTML documents before conversion. They
// carry navigation or presentation, never architecture documentation.
var noiseTags = []string{
	"nav", "header", "footer", "aside", "script", "style", "noscript",
	"iframe", "form", "button",
}

// Converter turns HTML documentation into markdown suitable for
// keyword-based review.
type Converter struct {
	md *md.Converter
}

// NewConverter creates an HTML to markdown converter.
func NewConverter() *Converter {
	c := md.NewConverter("", true, nil)
	c.Use(plugin.GitHubFlavored())
	return &Converter{md: c}
}

// Convert strips presentation noise from the HTML document and renders
// the remainder as markdown. The document title, when present, is
// prepended as an H1 heading.
func (c *Converter) Convert(htmlContent []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	title := documentTitle(doc)
	stripTags(doc, noiseTags)

	root := doc
	if body := findTag(doc, "body"); body != nil {
		root = body
	}

	var rendered strings.Builder
	if err := html.Render(&rendered, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	markdown, err := c.md.ConvertString(rendered.String())
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}
	markdown = tidyMarkdown(markdown)

	if title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}
	return markdown, nil
}

func documentTitle(doc *html.Node) string {
	node := findTag(doc, "title")
	if node == nil || node.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(node.FirstChild.Data)
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func stripTags(n *html.Node, tags []string) {
	drop := make(map[string]bool, len(tags))
	for _, t := range tags {
		drop[t] = true
	}

	var doomed []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && drop[node.Data] {
			doomed = append(doomed, node)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	for _, node := range doomed {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}
}

func tidyMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
