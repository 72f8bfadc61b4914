package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockSelector lists the elements that become one line of text each. Table
// rows are the important case: each <tr> turns into "description v1 v2 ...".
const blockSelector = "tr, p, li, h1, h2, h3, h4, h5, h6, caption"

// HTMLProvider extracts line-oriented text from HTML statements, such as
// filings saved from a regulator's website.
type HTMLProvider struct{}

// Extract reads the HTML file at path and returns its text.
func (HTMLProvider) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return HTMLText(doc), nil
}

// HTMLText returns one line per table row and text block of doc, in document
// order. Blocks nested in another block (a <p> inside a <td>) are part of
// their enclosing line.
func HTMLText(doc *goquery.Document) string {
	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}

		var line string
		if goquery.NodeName(s) == "tr" {
			var cells []string
			s.Find("td, th").Each(func(_ int, c *goquery.Selection) {
				if t := nodeText(c.Get(0)); t != "" {
					cells = append(cells, t)
				}
			})
			line = strings.Join(cells, " ")
		} else {
			line = nodeText(s.Get(0))
		}

		if line != "" {
			lines = append(lines, line)
		}
	})
	return strings.Join(lines, "\n")
}

// nodeText returns the text under n with whitespace collapsed, skipping
// script and style content.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	nodeTextRecursive(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func nodeTextRecursive(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "br":
			sb.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodeTextRecursive(c, sb)
	}
	if n.Type == html.ElementNode {
		// cells and blocks never run into each other
		sb.WriteByte(' ')
	}
}
