package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-authors/authorlist"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestCLISeedCountsRender(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "cli.db")
	storage := []string{"--driver", "sqlite", "--dsn", dsn}

	assert.Equal(t, "sqlite storage is up to date\n", run(t, append([]string{"migrate"}, storage...)...))
	assert.Equal(t, "seeded 3 authors, 5 posts\n", run(t, append([]string{"seed", "--file", "fixtures/authors.yaml"}, storage...)...))
	assert.Equal(t, "seeded 3 authors, 5 posts\n", run(t, append([]string{"seed", "--file", "fixtures/authors.yaml"}, storage...)...))

	assert.Equal(t, "1\t2\n2\t1\n", run(t, append([]string{"counts"}, storage...)...))
	assert.Equal(t, "1\t3\n2\t1\n", run(t, append([]string{"counts", "--read-private"}, storage...)...))

	html := run(t, append([]string{"render", "--hide-empty", "--order", "desc", "--align", "wide"}, storage...)...)
	assert.Contains(t, html, `class="wp-block-x3p0-list-authors alignwide"`)
	assert.Contains(t, html, `>Justin Tadlock</a><span class="wp-block-x3p0-list-authors__count">(2)</span>`)
	assert.NotContains(t, html, "Kim Minji")
	assert.Less(t, bytes.Index([]byte(html), []byte("Justin")), bytes.Index([]byte(html), []byte("Ana Souza")))
}

func TestRenderFlagsOnlySetChangedAttributes(t *testing.T) {
	cmd := renderCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--number", "500", "--show-feed"}))

	var f renderFlags
	f.number, f.showFeed = 500, true
	attrs := f.attributes(cmd)
	require.NotNil(t, attrs.Number)
	require.NotNil(t, attrs.ShowFeed)
	assert.Nil(t, attrs.Order)
	assert.Nil(t, attrs.HideEmpty)

	cfg := attrs.Configuration()
	assert.Equal(t, authorlist.MaxNumber, cfg.Count)
	assert.True(t, cfg.ShowPostCount)
}

func TestFormatCounts(t *testing.T) {
	assert.Equal(t, "", formatCounts(nil))
	assert.Equal(t, "3\t1\n10\t4\n", formatCounts(authorlist.AuthorCountMap{10: 4, 3: 1, 7: 0}))
}
