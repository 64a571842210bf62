package cms

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func TestRenderContent(t *testing.T) {
	md := goldmark.New()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"null", `null`, ""},
		{"empty", ``, ""},
		{"markdown string", `"# Outlook\n\nMarkets were **steady**."`, "<h1>Outlook</h1>\n<p>Markets were <strong>steady</strong>.</p>"},
		{
			"paragraph and heading blocks",
			`[{"type":"heading","level":3,"children":[{"text":"Q3"}]},{"type":"paragraph","children":[{"text":"Strong "},{"text":"quarter"}]}]`,
			"<h3>Q3</h3><p>Strong quarter</p>",
		},
		{"heading defaults to level 2", `[{"type":"heading","children":[{"text":"Title"}]}]`, "<h2>Title</h2>"},
		{"unknown blocks are dropped", `[{"type":"image","children":[]},{"type":"paragraph","children":[{"text":"kept"}]}]`, "<p>kept</p>"},
		{"text is escaped", `[{"type":"paragraph","children":[{"text":"<b>x</b>"}]}]`, "<p>&lt;b&gt;x&lt;/b&gt;</p>"},
		{"unexpected shape", `42`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderContent(md, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed blocks", func(t *testing.T) {
		_, err := renderContent(md, json.RawMessage(`[{"type":1}]`))
		assert.Error(t, err)
	})
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("joins block text", func(t *testing.T) {
		got := deriveExcerpt("<h2>Title</h2><p>First   line\nsecond</p>")
		assert.Equal(t, "Title First line second", got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", deriveExcerpt(""))
	})

	t.Run("truncates long text", func(t *testing.T) {
		long := "<p>" + strings.Repeat("word ", 100) + "</p>"
		got := deriveExcerpt(long)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), ExcerptLength)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		arabic := "<p>" + strings.Repeat("ص", ExcerptLength) + "</p>"
		got := deriveExcerpt(arabic)
		assert.Equal(t, strings.Repeat("ص", ExcerptLength), got)
	})
}
