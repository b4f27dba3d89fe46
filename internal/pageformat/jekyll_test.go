package pageformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatWritesFrontMatter(t *testing.T) {
	out, err := New("").Format("# Hello\n\nWorld\n\n", "About", "/about/")
	require.NoError(t, err)
	require.Equal(t, "---\nlayout: page\ntitle: About\npermalink: /about/\n---\n\n# Hello\n\nWorld\n", out)
}

func TestFormatIsDeterministic(t *testing.T) {
	f := New("default")
	a, err := f.Format("text", "T", "/t/")
	require.NoError(t, err)
	b, err := f.Format("text", "T", "/t/")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		name, text, title, permalink string
	}{
		{"markdown", "# My Contents\n\nSome *text*.", "About", "/about/"},
		{"quoted title", "body", "About: the team", "/about/"},
		{"inner delimiter", "before\n\n---\n\nafter", "About", "/about/"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			raw, err := New("").Format(tc.text, tc.title, tc.permalink)
			require.NoError(t, err)

			doc, err := Parse(raw)
			require.NoError(t, err)
			require.Equal(t, tc.text, doc.Contents)
			require.Equal(t, tc.title, doc.Title)
			require.Equal(t, tc.permalink, doc.Permalink)
		})
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	doc, err := Parse("just text\n")
	require.NoError(t, err)
	require.Equal(t, Document{Contents: "just text"}, doc)
}

func TestParseCRLF(t *testing.T) {
	doc, err := Parse("---\r\ntitle: About\r\npermalink: /about/\r\n---\r\n\r\nHello\r\n")
	require.NoError(t, err)
	require.Equal(t, Document{Title: "About", Permalink: "/about/", Contents: "Hello"}, doc)
}

func TestParseUnterminated(t *testing.T) {
	_, err := Parse("---\ntitle: About\n")
	require.ErrorIs(t, err, errUnterminated)
}
