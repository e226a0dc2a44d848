package renderer

import (
	"encoding/xml"
	"time"

	"list-authors/models"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Description string  `xml:"description,omitempty"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// AuthorFeed describes one author's feed document.
type AuthorFeed struct {
	SiteTitle  string
	Author     models.Author
	ProfileURL string
	Posts      []models.Post
}

// RenderAuthorFeed renders an RSS 2.0 document of the author's posts in
// the order given.
func RenderAuthorFeed(f AuthorFeed) ([]byte, error) {
	ch := rssChannel{
		Title:       f.SiteTitle + " » Posts by " + f.Author.DisplayName,
		Link:        f.ProfileURL,
		Description: "Posts by " + f.Author.DisplayName,
		Items:       make([]rssItem, 0, len(f.Posts)),
	}
	var latest time.Time
	for _, p := range f.Posts {
		item := rssItem{
			Title:       p.Title,
			Link:        p.Link,
			GUID:        rssGUID{IsPermaLink: true, Value: p.Link},
			Description: p.Summary,
		}
		if !p.PublishedAt.IsZero() {
			item.PubDate = p.PublishedAt.UTC().Format(time.RFC1123Z)
			if p.PublishedAt.After(latest) {
				latest = p.PublishedAt
			}
		}
		ch.Items = append(ch.Items, item)
	}
	if !latest.IsZero() {
		ch.LastBuildDate = latest.UTC().Format(time.RFC1123Z)
	}

	out, err := xml.MarshalIndent(rssDocument{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
