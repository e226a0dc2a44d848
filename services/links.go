package services

import (
	"net/url"
	"strings"

	"list-authors/config"
)

const slugPlaceholder = "{slug}"

// LinkBuilder turns author slugs into public profile and feed URLs.
type LinkBuilder struct {
	baseURL    string
	authorPath string
	feedPath   string
}

func NewLinkBuilder(site config.SiteConfig) LinkBuilder {
	return LinkBuilder{
		baseURL:    strings.TrimRight(site.BaseURL, "/"),
		authorPath: site.AuthorPath,
		feedPath:   site.FeedPath,
	}
}

func (l LinkBuilder) ProfileURL(slug string) string {
	return l.expand(l.authorPath, slug)
}

func (l LinkBuilder) FeedURL(slug string) string {
	return l.expand(l.feedPath, slug)
}

func (l LinkBuilder) expand(path, slug string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.baseURL + strings.ReplaceAll(path, slugPlaceholder, url.PathEscape(slug))
}
