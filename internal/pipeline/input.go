package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// htmlMarkupRe detects text that is really an HTML export. OCR and
// document-conversion collaborators occasionally hand over HTML instead of
// plain text.
var htmlMarkupRe = regexp.MustCompile(`(?is)<\s*(!doctype|html|body|div|p|table)\b`)

// NormalizeInput turns raw bytes from a text-acquisition collaborator into
// the plain UTF-8 text the extractors operate on: invalid UTF-8 is
// replaced, Unicode is NFC-normalized, line endings are unified, and HTML
// markup is stripped down to its visible text.
func NormalizeInput(raw []byte) string {
	text := strings.ToValidUTF8(string(raw), "�")
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if htmlMarkupRe.MatchString(text) {
		if stripped, err := stripMarkup(text); err == nil {
			text = stripped
		}
	}
	return text
}

// stripMarkup extracts the visible text of an HTML document, skipping
// script/style content
func stripMarkup(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
