// Package richtext implements the blog editor's formatting operations
// as explicit transforms on a parsed HTML fragment and a text
// selection, so the algorithms are testable without a browser DOM.
package richtext

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrInvalidSelection = errors.New("invalid_selection")
	ErrUnknownBlock     = errors.New("unknown_block")
)

type InlineStyle string

const (
	StyleBold      InlineStyle = "strong"
	StyleItalic    InlineStyle = "em"
	StyleUnderline InlineStyle = "u"
	StyleStrike    InlineStyle = "s"
)

type BlockKind string

const (
	BlockH1            BlockKind = "h1"
	BlockH2            BlockKind = "h2"
	BlockH3            BlockKind = "h3"
	BlockOrderedList   BlockKind = "ol"
	BlockUnorderedList BlockKind = "ul"
)

// Selection is a half-open range [Start, End) of rune offsets into
// the fragment's text content. Start == End is a collapsed caret.
type Selection struct {
	Start int
	End   int
}

func (s Selection) Collapsed() bool { return s.Start == s.End }

// Fragment is an editable HTML fragment. The root node is synthetic
// and never serialized.
type Fragment struct {
	root *html.Node
}

// Parse builds a fragment from an HTML string (body context).
func Parse(s string) (*Fragment, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{root: root}, nil
}

// HTML serializes the fragment back to an HTML string.
func (f *Fragment) HTML() string {
	var b strings.Builder
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// Text returns the fragment's concatenated text content.
func (f *Fragment) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(f.root)
	return b.String()
}

/* ------------------------------------------------------------------
   Inline operations
------------------------------------------------------------------ */

// ApplyInline toggles an inline style over the selection: if every
// selected character already sits inside the style's tag the nearest
// enclosing tag elements are unwrapped, otherwise the selected text
// is wrapped. The fragment is left unchanged on error.
func (f *Fragment) ApplyInline(sel Selection, style InlineStyle) error {
	return f.toggleInline(sel, string(style), nil)
}

// SetColor wraps the selection in a color span.
func (f *Fragment) SetColor(sel Selection, color string) error {
	color = strings.TrimSpace(color)
	if color == "" || strings.ContainsAny(color, `"';`) {
		return ErrInvalidSelection
	}
	nodes, err := f.splitForSelection(sel)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		wrapNode(n, "span", []html.Attribute{{Key: "style", Val: "color: " + color}})
	}
	return nil
}

// InsertLink wraps the selection in an anchor. A collapsed selection
// inserts the href itself as the link text at the caret.
func (f *Fragment) InsertLink(sel Selection, href string) error {
	if sel.Collapsed() {
		text := &html.Node{Type: html.TextNode, Data: href}
		a := &html.Node{
			Type: html.ElementNode, Data: "a", DataAtom: atom.A,
			Attr: []html.Attribute{{Key: "href", Val: href}},
		}
		a.AppendChild(text)
		return f.insertAtCaret(sel.Start, a)
	}
	nodes, err := f.splitForSelection(sel)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		wrapNode(n, "a", []html.Attribute{{Key: "href", Val: href}})
	}
	return nil
}

func (f *Fragment) toggleInline(sel Selection, tag string, attrs []html.Attribute) error {
	nodes, err := f.splitForSelection(sel)
	if err != nil {
		return err
	}

	allWrapped := true
	for _, n := range nodes {
		if findAncestor(f.root, n, tag) == nil {
			allWrapped = false
			break
		}
	}

	if allWrapped {
		for _, n := range nodes {
			if el := findAncestor(f.root, n, tag); el != nil {
				unwrap(el)
			}
		}
		return nil
	}

	for _, n := range nodes {
		if findAncestor(f.root, n, tag) == nil {
			wrapNode(n, tag, attrs)
		}
	}
	return nil
}

/* ------------------------------------------------------------------
   Block operations
------------------------------------------------------------------ */

// Placeholder text inserted when a block operation runs on a
// collapsed selection; the returned selection covers it for overtype.
const placeholderText = "Heading"
const placeholderItem = "List item"

// InsertBlock applies a structural element over the selection. For
// headings every top-level block intersecting the selection is
// converted; for lists the intersecting blocks are gathered into a
// single list with one item per block. A collapsed selection inserts
// a placeholder node instead and the returned selection covers its
// text for overtype.
func (f *Fragment) InsertBlock(sel Selection, kind BlockKind) (Selection, error) {
	switch kind {
	case BlockH1, BlockH2, BlockH3, BlockOrderedList, BlockUnorderedList:
	default:
		return sel, ErrUnknownBlock
	}

	if sel.Collapsed() {
		return f.insertPlaceholder(kind)
	}

	blocks, err := f.topLevelBlocks(sel)
	if err != nil {
		return sel, err
	}

	switch kind {
	case BlockH1, BlockH2, BlockH3:
		for _, b := range blocks {
			convertBlock(b, string(kind))
		}
	case BlockOrderedList, BlockUnorderedList:
		f.gatherIntoList(blocks, string(kind))
	}
	return sel, nil
}

func (f *Fragment) insertPlaceholder(kind BlockKind) (Selection, error) {
	end := len([]rune(f.Text()))
	switch kind {
	case BlockOrderedList, BlockUnorderedList:
		li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
		li.AppendChild(&html.Node{Type: html.TextNode, Data: placeholderItem})
		list := &html.Node{Type: html.ElementNode, Data: string(kind)}
		list.AppendChild(li)
		f.root.AppendChild(list)
		return Selection{Start: end, End: end + len([]rune(placeholderItem))}, nil
	default:
		h := &html.Node{Type: html.ElementNode, Data: string(kind)}
		h.AppendChild(&html.Node{Type: html.TextNode, Data: placeholderText})
		f.root.AppendChild(h)
		return Selection{Start: end, End: end + len([]rune(placeholderText))}, nil
	}
}

// topLevelBlocks returns the direct children of the root that contain
// any part of the selection, wrapping bare top-level text nodes in a
// paragraph first so every returned node is an element.
func (f *Fragment) topLevelBlocks(sel Selection) ([]*html.Node, error) {
	nodes, err := f.splitForSelection(sel)
	if err != nil {
		return nil, err
	}

	seen := map[*html.Node]bool{}
	var blocks []*html.Node
	for _, n := range nodes {
		top := n
		for top.Parent != f.root {
			top = top.Parent
		}
		if top.Type == html.TextNode {
			top = wrapNode(top, "p", nil)
		}
		if !seen[top] {
			seen[top] = true
			blocks = append(blocks, top)
		}
	}
	return blocks, nil
}

func convertBlock(b *html.Node, tag string) {
	b.Data = tag
	b.DataAtom = 0
	b.Attr = nil
}

func (f *Fragment) gatherIntoList(blocks []*html.Node, tag string) {
	if len(blocks) == 0 {
		return
	}
	list := &html.Node{Type: html.ElementNode, Data: tag}
	f.root.InsertBefore(list, blocks[0])
	for _, b := range blocks {
		f.root.RemoveChild(b)
		convertBlock(b, "li")
		b.DataAtom = atom.Li
		list.AppendChild(b)
	}
}

/* ------------------------------------------------------------------
   Selection plumbing
------------------------------------------------------------------ */

type textSpan struct {
	node  *html.Node
	start int
	end   int
}

func (f *Fragment) textSpans() []textSpan {
	var spans []textSpan
	offset := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			l := len([]rune(n.Data))
			spans = append(spans, textSpan{node: n, start: offset, end: offset + l})
			offset += l
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(f.root)
	return spans
}

// splitForSelection splits text nodes at the selection boundaries and
// returns the text nodes exactly covering [sel.Start, sel.End).
func (f *Fragment) splitForSelection(sel Selection) ([]*html.Node, error) {
	total := len([]rune(f.Text()))
	if sel.Start < 0 || sel.End > total || sel.Start >= sel.End {
		return nil, ErrInvalidSelection
	}

	var covered []*html.Node
	for _, span := range f.textSpans() {
		if span.end <= sel.Start || span.start >= sel.End {
			continue
		}
		cutStart := max(sel.Start, span.start) - span.start
		cutEnd := min(sel.End, span.end) - span.start
		covered = append(covered, splitTextNode(span.node, cutStart, cutEnd))
	}
	if len(covered) == 0 {
		return nil, ErrInvalidSelection
	}
	return covered, nil
}

// splitTextNode splits a text node so that [from, to) (rune offsets
// within the node) becomes its own node, and returns it.
func splitTextNode(n *html.Node, from, to int) *html.Node {
	runes := []rune(n.Data)
	if from == 0 && to == len(runes) {
		return n
	}
	parent := n.Parent

	mid := &html.Node{Type: html.TextNode, Data: string(runes[from:to])}
	parent.InsertBefore(mid, n)
	if from > 0 {
		before := &html.Node{Type: html.TextNode, Data: string(runes[:from])}
		parent.InsertBefore(before, mid)
	}
	if to < len(runes) {
		after := &html.Node{Type: html.TextNode, Data: string(runes[to:])}
		parent.InsertBefore(after, n)
	}
	parent.RemoveChild(n)
	return mid
}

// insertAtCaret places a node at the given caret offset, splitting
// the text node under the caret if needed; offset at or past the end
// appends to the root.
func (f *Fragment) insertAtCaret(offset int, node *html.Node) error {
	if offset < 0 {
		return ErrInvalidSelection
	}
	for _, span := range f.textSpans() {
		if offset < span.start || offset > span.end {
			continue
		}
		at := offset - span.start
		runes := []rune(span.node.Data)
		parent := span.node.Parent
		if at == 0 {
			parent.InsertBefore(node, span.node)
		} else if at >= len(runes) {
			insertAfter(parent, node, span.node)
		} else {
			before := &html.Node{Type: html.TextNode, Data: string(runes[:at])}
			after := &html.Node{Type: html.TextNode, Data: string(runes[at:])}
			parent.InsertBefore(before, span.node)
			parent.InsertBefore(node, span.node)
			parent.InsertBefore(after, span.node)
			parent.RemoveChild(span.node)
		}
		return nil
	}
	f.root.AppendChild(node)
	return nil
}

/* ------------------------------------------------------------------
   Node helpers
------------------------------------------------------------------ */

func wrapNode(n *html.Node, tag string, attrs []html.Attribute) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
	parent := n.Parent
	parent.InsertBefore(el, n)
	parent.RemoveChild(n)
	el.AppendChild(n)
	return el
}

// unwrap replaces an element with its children.
func unwrap(el *html.Node) {
	parent := el.Parent
	for el.FirstChild != nil {
		c := el.FirstChild
		el.RemoveChild(c)
		parent.InsertBefore(c, el)
	}
	parent.RemoveChild(el)
}

// findAncestor walks from n toward root looking for an element with
// the given tag; root itself never matches.
func findAncestor(root, n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return p
		}
	}
	return nil
}

func insertAfter(parent, node, ref *html.Node) {
	if ref.NextSibling != nil {
		parent.InsertBefore(node, ref.NextSibling)
	} else {
		parent.AppendChild(node)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
