package inputprocessor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// skipTags never contribute visible article text.
var skipTags = map[string]bool{
	"script": true, "style": true, "head": true, "nav": true,
	"footer": true, "aside": true, "form": true, "noscript": true,
	"template": true, "svg": true,
}

// htmlToText returns the visible text of an HTML document, one block element
// per paragraph.
func htmlToText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML article: %w", err)
	}

	var (
		paragraphs []string
		current    strings.Builder
	)
	flush := func() {
		if text := strings.Join(strings.Fields(current.String()), " "); text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			current.WriteString(n.Data)
			return
		}
		block := isBlockElement(n)
		if block {
			flush()
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if block {
			flush()
		}
	}
	walk(root)
	flush()

	return strings.Join(paragraphs, "\n\n"), nil
}

func isBlockElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "address", "article", "blockquote", "br", "dd", "div", "dl", "dt", "figcaption", "figure",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "li", "main", "ol", "p", "pre",
		"section", "table", "td", "th", "tr", "ul":
		return true
	default:
		return false
	}
}
