package services

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"list-authors/models"
	"list-authors/repositories"
)

// Fixtures is the seed file layout: authors with their posts.
type Fixtures struct {
	Authors []AuthorFixture `yaml:"authors"`
}

type AuthorFixture struct {
	models.Author `yaml:",inline"`
	Posts         []models.Post `yaml:"posts"`
}

func LoadFixtures(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

type SeedResult struct {
	Authors int
	Posts   int
}

// Seed upserts every author and post of f. Authors are matched by login
// and posts by (author, link), or (author, title) without a link, so
// seeding the same file twice leaves the store unchanged.
func Seed(ctx context.Context, store *repositories.Store, f Fixtures) (SeedResult, error) {
	var res SeedResult
	for _, af := range f.Authors {
		author := af.Author
		if err := store.Authors.Upsert(ctx, &author); err != nil {
			return res, fmt.Errorf("seed author %q: %w", author.Login, err)
		}
		res.Authors++

		for _, p := range af.Posts {
			p.AuthorID = author.ID
			if err := store.Posts.UpsertByAuthorAndLink(ctx, &p); err != nil {
				return res, fmt.Errorf("seed post %q of %s: %w", p.Title, author.Slug, err)
			}
			res.Posts++
		}
	}
	return res, nil
}
