package richtext

import (
	"strings"

	"golang.org/x/net/html"
)

var droppedElements = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
	"object": true,
	"embed":  true,
}

// Sanitize re-serializes editor HTML through the parser, dropping
// active content (script/style/iframe and on* handlers) so stored
// blog content is always well-formed markup.
func Sanitize(content string) (string, error) {
	frag, err := Parse(content)
	if err != nil {
		return "", err
	}
	clean(frag.root)
	return frag.HTML(), nil
}

func clean(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && droppedElements[c.Data] {
			n.RemoveChild(c)
		} else {
			if c.Type == html.ElementNode {
				c.Attr = safeAttrs(c.Attr)
			}
			clean(c)
		}
		c = next
	}
}

func safeAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if key == "href" || key == "src" {
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
