package services

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-authors/authorlist"
	"list-authors/models"
	"list-authors/repositories"
)

func loadSampleFixtures(t *testing.T) Fixtures {
	t.Helper()
	f, err := os.Open("../fixtures/authors.yaml")
	require.NoError(t, err)
	defer f.Close()

	fixtures, err := LoadFixtures(f)
	require.NoError(t, err)
	return fixtures
}

func TestSeedSampleFixtures(t *testing.T) {
	fixtures := loadSampleFixtures(t)
	require.Len(t, fixtures.Authors, 3)
	assert.Equal(t, "Justin Tadlock", fixtures.Authors[0].DisplayName)

	store := newStore(t)
	ctx := context.Background()
	res, err := Seed(ctx, store, fixtures)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Authors: 3, Posts: 5}, res)

	svc := NewAuthorListService(store, site(), nil)
	cfg := authorlist.Attributes{HideEmpty: ptr(true)}.Configuration()
	rows, err := svc.Rows(ctx, cfg, models.Viewer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Souza(1)", "Justin Tadlock(2)"}, summarize(rows))
}

func TestSeedTwiceLeavesStoreUnchanged(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := Seed(ctx, store, loadSampleFixtures(t))
	require.NoError(t, err)
	before, err := store.Authors.List(ctx, repositories.ListAuthorsOptions{})
	require.NoError(t, err)

	res, err := Seed(ctx, store, loadSampleFixtures(t))
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Authors: 3, Posts: 5}, res)

	after, err := store.Authors.List(ctx, repositories.ListAuthorsOptions{})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	ids := map[string]int64{}
	for _, a := range after {
		ids[a.Login] = a.ID
	}
	counts, err := store.Posts.CountByAuthor(ctx, models.Viewer{CanReadPrivate: true})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{ids["justin"]: 3, ids["ana"]: 1}, counts)
}

func TestLoadFixturesRejectsUnknownFields(t *testing.T) {
	_, err := LoadFixtures(strings.NewReader("authors:\n  - login: x\n    nickname: y\n"))
	assert.Error(t, err)

	empty, err := LoadFixtures(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Authors)
}
