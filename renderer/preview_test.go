package renderer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-authors/authorlist"
	"list-authors/renderer"
)

func TestBuildPreviewEmpty(t *testing.T) {
	elements := renderer.BuildPreview(nil, authorlist.DefaultConfiguration(), renderer.BlockContext{})
	require.NotNil(t, elements)
	assert.Empty(t, elements)

	raw, err := json.Marshal(elements)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestBuildPreviewTree(t *testing.T) {
	cfg := authorlist.DefaultConfiguration()
	cfg.ShowFeedLink = true

	elements := renderer.BuildPreview(sampleRows(), cfg, renderer.BlockContext{Anchor: "team"})
	require.Len(t, elements, 1)

	root := elements[0]
	assert.Equal(t, "div", root.Tag)
	assert.Equal(t, "wp-block-x3p0-list-authors", root.Props["className"])
	assert.Equal(t, "team", root.Props["id"])

	require.Len(t, root.Children, 1)
	list := root.Children[0]
	assert.Equal(t, "ul", list.Tag)
	require.Len(t, list.Children, 2)

	content := list.Children[1].Children[0]
	assert.Equal(t, "wp-block-x3p0-list-authors__content", content.Props["className"])
	require.Len(t, content.Children, 3)

	link := content.Children[0]
	assert.Equal(t, "Bob", link.Text)
	assert.Equal(t, "https://example.com/author/bob/", link.Props["href"])
	assert.Equal(t, "true", link.Props["data-prevent-default"])

	feed := content.Children[1]
	require.Len(t, feed.Children, 3)
	assert.Equal(t, renderer.FeedPseudoLink, feed.Children[1].Props["href"])
	assert.Equal(t, "Feed", feed.Children[1].Text)

	assert.Equal(t, "(0)", content.Children[2].Text)
}

func TestBuildPreviewWithoutToggles(t *testing.T) {
	rows := sampleRows()
	for i := range rows {
		rows[i].PostCount = nil
	}
	elements := renderer.BuildPreview(rows, authorlist.DefaultConfiguration(), renderer.BlockContext{})

	content := elements[0].Children[0].Children[0].Children[0]
	require.Len(t, content.Children, 1, "only the profile link")
}
