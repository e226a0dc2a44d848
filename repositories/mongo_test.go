package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"list-authors/models"
)

func TestAuthorFilter(t *testing.T) {
	assert.Empty(t, authorFilter(ListAuthorsOptions{}))

	f := authorFilter(ListAuthorsOptions{Include: []int64{}})
	assert.Equal(t, bson.M{"_id": bson.M{"$in": []int64{}}}, f, "empty include must stay a restriction")

	f = authorFilter(ListAuthorsOptions{Include: []int64{4, 2}})
	assert.Equal(t, bson.M{"_id": bson.M{"$in": []int64{4, 2}}}, f)
}

func TestAuthorSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "display_name", Value: 1}, {Key: "_id", Value: 1}},
		authorSort(ListAuthorsOptions{OrderBy: "name", Order: "asc"}))
	assert.Equal(t, bson.D{{Key: "registered_at", Value: -1}, {Key: "_id", Value: 1}},
		authorSort(ListAuthorsOptions{OrderBy: "registered_date", Order: "desc"}))
	assert.Equal(t, bson.D{{Key: "_id", Value: -1}},
		authorSort(ListAuthorsOptions{OrderBy: "id", Order: "desc"}))
	assert.Equal(t, bson.D{{Key: "login", Value: 1}, {Key: "_id", Value: 1}},
		authorSort(ListAuthorsOptions{OrderBy: "bogus", Order: "bogus"}))
}

func TestAuthorKeyFilter(t *testing.T) {
	assert.Equal(t, bson.M{"login": "justin"}, authorKeyFilter(&models.Author{Login: "justin", Slug: "justin-t"}))
}

func TestPostKeyFilter(t *testing.T) {
	linked := &models.Post{AuthorID: 2, Title: "a", Link: "https://example.com/a"}
	assert.Equal(t, bson.M{"author_id": int64(2), "link": "https://example.com/a"}, postKeyFilter(linked))

	draft := &models.Post{AuthorID: 2, Title: "notes"}
	assert.Equal(t, bson.M{"author_id": int64(2), "link": "", "title": "notes"}, postKeyFilter(draft))
}

func TestSequenceFloor(t *testing.T) {
	filter, update := sequenceFloor("posts", 42)
	assert.Equal(t, bson.M{"_id": "posts"}, filter)
	assert.Equal(t, bson.M{"$max": bson.M{"seq": int64(42)}}, update)
}

func TestVisibilityFilter(t *testing.T) {
	anon := visibilityFilter(models.Viewer{})
	assert.Equal(t, models.PostTypePost, anon["post_type"])
	assert.Equal(t, []bson.M{{"status": "publish"}}, anon["$or"])

	admin := visibilityFilter(models.Viewer{ID: 1, CanReadPrivate: true})
	assert.Equal(t, []bson.M{{"status": "publish"}, {"status": "private"}}, admin["$or"])

	owner := visibilityFilter(models.Viewer{ID: 7})
	assert.Equal(t, []bson.M{{"status": "publish"}, {"status": "private", "author_id": int64(7)}}, owner["$or"])
}

func TestCountPipeline(t *testing.T) {
	p := countPipeline(models.Viewer{})
	require.Len(t, p, 2)
	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, "$group", p[1][0].Key)

	group, ok := p[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.E{Key: "_id", Value: "$author_id"}, group[0])
}

func TestViewerCanSeeMatchesFilters(t *testing.T) {
	post := models.Post{AuthorID: 7, Type: models.PostTypePost, Status: models.PostStatusPrivate}
	assert.False(t, models.Viewer{}.CanSee(post))
	assert.True(t, models.Viewer{ID: 7}.CanSee(post))
	assert.True(t, models.Viewer{CanReadPrivate: true}.CanSee(post))

	post.Status = models.PostStatusDraft
	assert.False(t, models.Viewer{CanReadPrivate: true}.CanSee(post))

	post.Status = models.PostStatusPublish
	post.Type = "page"
	assert.False(t, models.Viewer{}.CanSee(post))
}
