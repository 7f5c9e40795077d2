package richtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Fragment {
	t.Helper()
	f, err := Parse(s)
	require.NoError(t, err)
	return f
}

func TestParseAndSerializeRoundTrip(t *testing.T) {
	in := `<p>hello <strong>world</strong></p>`
	f := mustParse(t, in)

	require.Equal(t, in, f.HTML())
	require.Equal(t, "hello world", f.Text())
}

func TestApplyInlineWrapsSelection(t *testing.T) {
	f := mustParse(t, `<p>hello world</p>`)

	// "world" is runes 6..11.
	require.NoError(t, f.ApplyInline(Selection{Start: 6, End: 11}, StyleBold))

	require.Equal(t, `<p>hello <strong>world</strong></p>`, f.HTML())
	require.Equal(t, "hello world", f.Text(), "text content is unchanged")
}

func TestApplyInlineTogglesOff(t *testing.T) {
	f := mustParse(t, `<p>hello <strong>world</strong></p>`)

	require.NoError(t, f.ApplyInline(Selection{Start: 6, End: 11}, StyleBold))

	require.Equal(t, `<p>hello world</p>`, f.HTML())
}

func TestApplyInlineMidWordSplitsTextNode(t *testing.T) {
	f := mustParse(t, `<p>abcdef</p>`)

	require.NoError(t, f.ApplyInline(Selection{Start: 2, End: 4}, StyleItalic))

	require.Equal(t, `<p>ab<em>cd</em>ef</p>`, f.HTML())
}

func TestApplyInlineNestedStyles(t *testing.T) {
	f := mustParse(t, `<p><em>hello world</em></p>`)

	require.NoError(t, f.ApplyInline(Selection{Start: 0, End: 5}, StyleBold))

	require.Equal(t, `<p><em><strong>hello</strong> world</em></p>`, f.HTML())
}

func TestApplyInlineInvalidSelection(t *testing.T) {
	f := mustParse(t, `<p>abc</p>`)
	before := f.HTML()

	require.ErrorIs(t, f.ApplyInline(Selection{Start: 2, End: 2}, StyleBold), ErrInvalidSelection)
	require.ErrorIs(t, f.ApplyInline(Selection{Start: 0, End: 99}, StyleBold), ErrInvalidSelection)
	require.ErrorIs(t, f.ApplyInline(Selection{Start: -1, End: 2}, StyleBold), ErrInvalidSelection)
	require.Equal(t, before, f.HTML(), "fragment unchanged on error")
}

func TestSetColor(t *testing.T) {
	f := mustParse(t, `<p>hello world</p>`)

	require.NoError(t, f.SetColor(Selection{Start: 0, End: 5}, "#c0392b"))

	require.Equal(t, `<p><span style="color: #c0392b">hello</span> world</p>`, f.HTML())
}

func TestSetColorRejectsUnsafeValues(t *testing.T) {
	f := mustParse(t, `<p>hello</p>`)

	require.Error(t, f.SetColor(Selection{Start: 0, End: 5}, `red;background:url(x)`))
	require.Error(t, f.SetColor(Selection{Start: 0, End: 5}, `"onmouseover`))
	require.Error(t, f.SetColor(Selection{Start: 0, End: 5}, "  "))
	require.Equal(t, `<p>hello</p>`, f.HTML())
}

func TestInsertLinkOverSelection(t *testing.T) {
	f := mustParse(t, `<p>visit our site today</p>`)

	// "our site" is runes 6..14.
	require.NoError(t, f.InsertLink(Selection{Start: 6, End: 14}, "https://clubrealty.in"))

	require.Equal(t, `<p>visit <a href="https://clubrealty.in">our site</a> today</p>`, f.HTML())
}

func TestInsertLinkCollapsedInsertsHrefText(t *testing.T) {
	f := mustParse(t, `<p>see </p>`)

	require.NoError(t, f.InsertLink(Selection{Start: 4, End: 4}, "https://clubrealty.in"))

	require.Equal(t, `<p>see <a href="https://clubrealty.in">https://clubrealty.in</a></p>`, f.HTML())
}

func TestInsertBlockConvertsHeading(t *testing.T) {
	f := mustParse(t, `<p>About us</p><p>We sell homes.</p>`)

	// Selection inside the first block only.
	sel, err := f.InsertBlock(Selection{Start: 0, End: 5}, BlockH2)
	require.NoError(t, err)
	require.Equal(t, Selection{Start: 0, End: 5}, sel, "selection preserved for non-collapsed op")

	require.Equal(t, `<h2>About us</h2><p>We sell homes.</p>`, f.HTML())
}

func TestInsertBlockHeadingSpanningBlocks(t *testing.T) {
	f := mustParse(t, `<p>one</p><p>two</p>`)

	// Runes 0..6 cross both paragraphs.
	_, err := f.InsertBlock(Selection{Start: 0, End: 6}, BlockH1)
	require.NoError(t, err)

	require.Equal(t, `<h1>one</h1><h1>two</h1>`, f.HTML())
}

func TestInsertBlockGathersListItems(t *testing.T) {
	f := mustParse(t, `<p>first</p><p>second</p><p>third</p>`)

	// Select across the first two blocks; the third stays a paragraph.
	_, err := f.InsertBlock(Selection{Start: 0, End: 11}, BlockUnorderedList)
	require.NoError(t, err)

	require.Equal(t, `<ul><li>first</li><li>second</li></ul><p>third</p>`, f.HTML())
}

func TestInsertBlockCollapsedInsertsPlaceholder(t *testing.T) {
	f := mustParse(t, `<p>intro</p>`)

	sel, err := f.InsertBlock(Selection{Start: 5, End: 5}, BlockH1)
	require.NoError(t, err)

	require.Equal(t, `<p>intro</p><h1>Heading</h1>`, f.HTML())
	// The returned selection covers the placeholder for overtype.
	require.Equal(t, Selection{Start: 5, End: 12}, sel)
}

func TestInsertBlockCollapsedListPlaceholder(t *testing.T) {
	f := mustParse(t, ``)

	sel, err := f.InsertBlock(Selection{}, BlockOrderedList)
	require.NoError(t, err)

	require.Equal(t, `<ol><li>List item</li></ol>`, f.HTML())
	require.Equal(t, Selection{Start: 0, End: 9}, sel)
}

func TestInsertBlockUnknownKind(t *testing.T) {
	f := mustParse(t, `<p>abc</p>`)

	_, err := f.InsertBlock(Selection{Start: 0, End: 3}, BlockKind("blockquote"))
	require.ErrorIs(t, err, ErrUnknownBlock)
}

func TestInsertBlockWrapsBareText(t *testing.T) {
	f := mustParse(t, `loose text`)

	_, err := f.InsertBlock(Selection{Start: 0, End: 10}, BlockH3)
	require.NoError(t, err)

	require.Equal(t, `<h3>loose text</h3>`, f.HTML())
}

func TestSanitizeDropsActiveContent(t *testing.T) {
	in := `<p onclick="x()">hi</p><script>steal()</script><iframe src="x"></iframe>`
	out, err := Sanitize(in)
	require.NoError(t, err)

	require.Equal(t, `<p>hi</p>`, out)
}

func TestSanitizeDropsJavascriptHrefs(t *testing.T) {
	in := `<p><a href="javascript:alert(1)">x</a><a href="https://ok.example">y</a></p>`
	out, err := Sanitize(in)
	require.NoError(t, err)

	require.NotContains(t, out, "javascript:")
	require.Contains(t, out, `href="https://ok.example"`)
}

func TestSanitizeKeepsFormatting(t *testing.T) {
	in := `<h2>Title</h2><p><strong>bold</strong> and <em>italic</em></p><ul><li>a</li></ul>`
	out, err := Sanitize(in)
	require.NoError(t, err)

	require.Equal(t, in, out)
}
